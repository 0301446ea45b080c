package handlers

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/internal/api/presenters"
	"NutriPlan-Backend/pkg/nutrition"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	NutritionHandler interface {
		EstimateNutrients(c *fiber.Ctx) error
	}

	nutritionHandler struct {
		nutritionService nutrition.NutritionService
	}
)

func NewNutritionHandler(nutritionService nutrition.NutritionService) NutritionHandler {
	return &nutritionHandler{nutritionService: nutritionService}
}

func (h *nutritionHandler) EstimateNutrients(c *fiber.Ctx) error {
	req := new(domain.EstimateNutrientsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, nil)
	}

	estimate, err := h.nutritionService.EstimateNutrients(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingNutrientParams):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, domain.ErrNutrientParseFailed):
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageErrorCalculating, err)
		}
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, estimate)
}
