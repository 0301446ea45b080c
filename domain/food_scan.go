package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageFailedUploadScan = "failed to upload food scan image"

	ErrScanResultNotFound = errors.New("Result not found")
)

type (
	UploadFoodScanRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadFoodScanResponse struct {
		ImageKey string `json:"image_key"`
	}

	NutritionResultResponse struct {
		ImageKey      string  `json:"image_key"`
		FoodName      string  `json:"food_name"`
		Calories      float64 `json:"calories"`
		Carbohydrates float64 `json:"carbohydrates"`
		Protein       float64 `json:"protein"`
		Fat           float64 `json:"fat"`
	}
)
