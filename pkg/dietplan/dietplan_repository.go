package dietplan

import (
	"NutriPlan-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	DietPlanRepository interface {
		Insert(ctx context.Context, plan *entities.DietPlan) error
		ListByUserID(ctx context.Context, userID string) ([]*entities.DietPlan, error)
		Deactivate(ctx context.Context, userID string, planDate time.Time) error
	}

	dietPlanRepository struct {
		db *gorm.DB
	}
)

func NewDietPlanRepository(db *gorm.DB) DietPlanRepository {
	return &dietPlanRepository{db: db}
}

func (r *dietPlanRepository) Insert(ctx context.Context, plan *entities.DietPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *dietPlanRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.DietPlan, error) {
	var plans []*entities.DietPlan
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Plans are never deleted; superseded ones are flipped inactive row by row.
func (r *dietPlanRepository) Deactivate(ctx context.Context, userID string, planDate time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.DietPlan{}).
		Where("user_id = ? AND plan_date = ?", userID, planDate).
		Update("active", false).Error
}
