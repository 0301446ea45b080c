package profile

import (
	"NutriPlan-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ProfileRepository interface {
		GetByUserID(ctx context.Context, userID string) (*entities.UserProfile, error)
		Create(ctx context.Context, profile *entities.UserProfile) error
		Update(ctx context.Context, profile *entities.UserProfile) error
	}

	profileRepository struct {
		db *gorm.DB
	}
)

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *entities.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) Update(ctx context.Context, profile *entities.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
