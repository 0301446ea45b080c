package handlers

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/internal/api/presenters"
	"NutriPlan-Backend/pkg/meallog"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type (
	MealLogHandler interface {
		Dispatch(c *fiber.Ctx) error
		InsertMealLog(c *fiber.Ctx) error
		ListMealLogs(c *fiber.Ctx) error
	}

	mealLogHandler struct {
		mealLogService meallog.MealLogService
	}
)

func NewMealLogHandler(mealLogService meallog.MealLogService) MealLogHandler {
	return &mealLogHandler{mealLogService: mealLogService}
}

// Dispatch decides between insert and list by checking, in order, the
// resource hint in the path, the HTTP method, and finally whether the
// call looks like a query or a submission. Requests matching none of
// the rules are rejected as an invalid resource.
func (h *mealLogHandler) Dispatch(c *fiber.Ctx) error {
	resource := c.Params("resource")
	if resource == "" {
		resource = c.Query("resource")
	}
	switch {
	case strings.Contains(resource, "insertMealLog"):
		return h.InsertMealLog(c)
	case strings.Contains(resource, "getMealLogs"):
		return h.ListMealLogs(c)
	}

	switch c.Method() {
	case fiber.MethodPost:
		return h.InsertMealLog(c)
	case fiber.MethodGet:
		return h.ListMealLogs(c)
	}

	if len(c.Queries()) > 0 {
		return h.ListMealLogs(c)
	}
	if len(c.Body()) > 0 {
		return h.InsertMealLog(c)
	}

	return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrInvalidResource.Error(), nil)
}

func (h *mealLogHandler) InsertMealLog(c *fiber.Ctx) error {
	req := new(domain.InsertMealLogRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrInvalidJSONPayload.Error(), nil)
	}

	mealLogID, err := h.mealLogService.InsertMealLog(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingMealLogFields),
			errors.Is(err, domain.ErrNoActiveSubscription):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, domain.ErrRetrievingSubscription):
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.ErrRetrievingSubscription.Error(), err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.ErrCouldNotInsertLog.Error(), err)
		}
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, domain.InsertMealLogResponse{
		Message:   domain.MessageMealLogInserted,
		MealLogID: mealLogID,
	})
}

func (h *mealLogHandler) ListMealLogs(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrMissingDateParam.Error(), nil)
	}
	userID := c.Query("user_id")

	logs, err := h.mealLogService.ListMealLogs(c.Context(), date, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.ErrCouldNotFetchLogs.Error(), err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, domain.ListMealLogsResponse{MealLogs: logs})
}
