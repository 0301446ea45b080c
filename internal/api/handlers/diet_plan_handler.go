package handlers

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/internal/api/presenters"
	"NutriPlan-Backend/pkg/dietplan"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DietPlanHandler interface {
		GeneratePlan(c *fiber.Ctx) error
		GetUserPlans(c *fiber.Ctx) error
	}

	dietPlanHandler struct {
		dietPlanService dietplan.DietPlanService
		validator       *validator.Validate
	}
)

func NewDietPlanHandler(dietPlanService dietplan.DietPlanService, validator *validator.Validate) DietPlanHandler {
	return &dietPlanHandler{
		dietPlanService: dietPlanService,
		validator:       validator,
	}
}

func (h *dietPlanHandler) GeneratePlan(c *fiber.Ctx) error {
	req := new(domain.GeneratePlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, nil)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	plan, err := h.dietPlanService.GeneratePlan(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		return presenters.SuccessResponse(c, fiber.StatusInternalServerError, fiber.Map{
			"message": domain.MessageErrorGeneratingPlan,
			"error":   err.Error(),
		})
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, domain.GeneratePlanResponse{
		DietPlan: plan,
		Message:  domain.MessagePlanGenerated,
	})
}

func (h *dietPlanHandler) GetUserPlans(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		userID = c.Params("userId")
	}
	if userID == "" {
		return presenters.SuccessResponse(c, fiber.StatusBadRequest, fiber.Map{
			"message": domain.MessageMissingUserIDParam,
		})
	}

	plans, err := h.dietPlanService.GetUserPlans(c.Context(), userID)
	if err != nil {
		return presenters.SuccessResponse(c, fiber.StatusInternalServerError, fiber.Map{
			"message": domain.MessageErrorFetchingPlans,
			"error":   err.Error(),
		})
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, plans)
}
