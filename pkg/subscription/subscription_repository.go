package subscription

import (
	"NutriPlan-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	SubscriptionRepository interface {
		ListByUserID(ctx context.Context, userID string) ([]*entities.Subscription, error)
		DeleteAllForUser(ctx context.Context, userID string) error
		Insert(ctx context.Context, sub *entities.Subscription) error
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Subscription, error) {
	var subs []*entities.Subscription
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.Subscription{}).Error
}

func (r *subscriptionRepository) Insert(ctx context.Context, sub *entities.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}
