package foodscan

import (
	"NutriPlan-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FoodScanRepository interface {
		GetResultByImageKey(ctx context.Context, imageKey string) (*entities.NutritionResult, error)
	}

	foodScanRepository struct {
		db *gorm.DB
	}
)

func NewFoodScanRepository(db *gorm.DB) FoodScanRepository {
	return &foodScanRepository{db: db}
}

func (r *foodScanRepository) GetResultByImageKey(ctx context.Context, imageKey string) (*entities.NutritionResult, error) {
	var result entities.NutritionResult
	if err := r.db.WithContext(ctx).Where("image_key = ?", imageKey).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
