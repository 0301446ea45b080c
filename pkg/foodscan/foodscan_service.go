package foodscan

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// The label-extraction pipeline itself runs outside this service; upload
	// feeds it through the bucket and GetResult is what the browser polls.
	FoodScanService interface {
		UploadImage(ctx context.Context, req domain.UploadFoodScanRequest) (domain.UploadFoodScanResponse, error)
		GetResult(ctx context.Context, imageKey string) (domain.NutritionResultResponse, error)
	}

	foodScanService struct {
		foodScanRepository FoodScanRepository
		s3                 storage.AwsS3
	}
)

func NewFoodScanService(foodScanRepository FoodScanRepository, s3 storage.AwsS3) FoodScanService {
	return &foodScanService{
		foodScanRepository: foodScanRepository,
		s3:                 s3,
	}
}

func (s *foodScanService) UploadImage(ctx context.Context, req domain.UploadFoodScanRequest) (domain.UploadFoodScanResponse, error) {
	fileName := fmt.Sprintf("food-scan-%s", uuid.NewString())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "food-scans", storage.AllowImage...)
	if err != nil {
		return domain.UploadFoodScanResponse{}, err
	}

	// The extraction pipeline records its result under the bare object name.
	return domain.UploadFoodScanResponse{ImageKey: filepath.Base(objectKey)}, nil
}

func (s *foodScanService) GetResult(ctx context.Context, imageKey string) (domain.NutritionResultResponse, error) {
	result, err := s.foodScanRepository.GetResultByImageKey(ctx, imageKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NutritionResultResponse{}, domain.ErrScanResultNotFound
		}
		return domain.NutritionResultResponse{}, err
	}

	return domain.NutritionResultResponse{
		ImageKey:      result.ImageKey,
		FoodName:      result.FoodName,
		Calories:      result.Calories,
		Carbohydrates: result.Carbohydrates,
		Protein:       result.Protein,
		Fat:           result.Fat,
	}, nil
}
