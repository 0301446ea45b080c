package handlers

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/internal/api/presenters"
	"NutriPlan-Backend/pkg/profile"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	ProfileHandler interface {
		CompleteProfile(c *fiber.Ctx) error
		GetProfile(c *fiber.Ctx) error
	}

	profileHandler struct {
		profileService profile.ProfileService
	}
)

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &profileHandler{profileService: profileService}
}

func (h *profileHandler) CompleteProfile(c *fiber.Ctx) error {
	req := new(domain.CompleteProfileRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrInvalidJSONPayload.Error(), nil)
	}

	item, message, err := h.profileService.CompleteProfile(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingUserID), errors.Is(err, domain.ErrMissingEmailOrName):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), nil)
		}
	}

	status := fiber.StatusOK
	if message == domain.MessageUserCreated {
		status = fiber.StatusCreated
	}
	return presenters.SuccessResponse(c, status, fiber.Map{
		"message": message,
		"item":    item,
	})
}

func (h *profileHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrMissingUserID.Error(), nil)
	}

	item, err := h.profileService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, err.Error(), nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, item)
}
