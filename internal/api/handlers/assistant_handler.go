package handlers

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/internal/api/presenters"
	"NutriPlan-Backend/pkg/assistant"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	AssistantHandler interface {
		Chat(c *fiber.Ctx) error
	}

	assistantHandler struct {
		assistantService assistant.AssistantService
	}
)

func NewAssistantHandler(assistantService assistant.AssistantService) AssistantHandler {
	return &assistantHandler{assistantService: assistantService}
}

func (h *assistantHandler) Chat(c *fiber.Ctx) error {
	req := new(domain.ChatRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrInvalidJSONPayload.Error(), nil)
	}

	res, err := h.assistantService.Chat(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyChatMessage):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, domain.ErrMissingAPIKey):
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerMisconfiguration, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.ErrAssistantUpstream.Error(), err)
		}
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}
