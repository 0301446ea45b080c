package handlers

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/internal/api/presenters"
	"NutriPlan-Backend/pkg/foodscan"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodScanHandler interface {
		UploadImage(c *fiber.Ctx) error
		GetResult(c *fiber.Ctx) error
	}

	foodScanHandler struct {
		foodScanService foodscan.FoodScanService
		validator       *validator.Validate
	}
)

func NewFoodScanHandler(foodScanService foodscan.FoodScanService, validator *validator.Validate) FoodScanHandler {
	return &foodScanHandler{
		foodScanService: foodScanService,
		validator:       validator,
	}
}

func (h *foodScanHandler) UploadImage(c *fiber.Ctx) error {
	req := new(domain.UploadFoodScanRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.foodScanService.UploadImage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadScan, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusAccepted, res)
}

func (h *foodScanHandler) GetResult(c *fiber.Ctx) error {
	imageKey := c.Params("image_key")

	res, err := h.foodScanService.GetResult(c.Context(), imageKey)
	if err != nil {
		if errors.Is(err, domain.ErrScanResultNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, err.Error(), nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}
