package handlers

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/internal/api/presenters"
	"NutriPlan-Backend/pkg/calculator"

	"github.com/gofiber/fiber/v2"
)

type (
	CalculatorHandler interface {
		BMI(c *fiber.Ctx) error
		Calories(c *fiber.Ctx) error
		Macros(c *fiber.Ctx) error
	}

	calculatorHandler struct {
		calculatorService calculator.CalculatorService
	}
)

func NewCalculatorHandler(calculatorService calculator.CalculatorService) CalculatorHandler {
	return &calculatorHandler{calculatorService: calculatorService}
}

func (h *calculatorHandler) BMI(c *fiber.Ctx) error {
	req := new(domain.BMIRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, nil)
	}

	res, err := h.calculatorService.BMI(*req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *calculatorHandler) Calories(c *fiber.Ctx) error {
	req := new(domain.CalorieRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, nil)
	}

	res, err := h.calculatorService.Calories(*req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *calculatorHandler) Macros(c *fiber.Ctx) error {
	req := new(domain.MacroRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, nil)
	}

	res, err := h.calculatorService.Macros(*req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}
