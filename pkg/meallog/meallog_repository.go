package meallog

import (
	"NutriPlan-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MealLogRepository interface {
		Insert(ctx context.Context, log *entities.MealLog) error
		ListByDate(ctx context.Context, date string, userID string) ([]*entities.MealLog, error)
	}

	mealLogRepository struct {
		db *gorm.DB
	}
)

func NewMealLogRepository(db *gorm.DB) MealLogRepository {
	return &mealLogRepository{db: db}
}

func (r *mealLogRepository) Insert(ctx context.Context, log *entities.MealLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// Day listing hits the (date, user_id) index instead of scanning the table;
// the wire behavior is the same exact-equality filter.
func (r *mealLogRepository) ListByDate(ctx context.Context, date string, userID string) ([]*entities.MealLog, error) {
	var logs []*entities.MealLog
	query := r.db.WithContext(ctx).Where("date = ?", date)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
