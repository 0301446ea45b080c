package handlers

import (
	"NutriPlan-Backend/domain"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNutritionService struct {
	estimate domain.NutrientEstimate
	err      error
	lastReq  domain.EstimateNutrientsRequest
}

func (s *fakeNutritionService) EstimateNutrients(_ context.Context, req domain.EstimateNutrientsRequest) (domain.NutrientEstimate, error) {
	s.lastReq = req
	if s.err != nil {
		return domain.NutrientEstimate{}, s.err
	}
	return s.estimate, nil
}

func newNutritionApp(svc *fakeNutritionService) *fiber.App {
	app := fiber.New()
	h := NewNutritionHandler(svc)
	app.Post("/api/v1/nutrition/estimate", h.EstimateNutrients)
	return app
}

func TestEstimateNutrientsSuccess(t *testing.T) {
	svc := &fakeNutritionService{estimate: domain.NutrientEstimate{
		TotalCalories: 182,
		Macros:        domain.NutrientMacros{Protein: 12, Carbs: 2, Fat: 14},
	}}
	app := newNutritionApp(svc)

	req := httptest.NewRequest("POST", "/api/v1/nutrition/estimate",
		strings.NewReader(`{"food":"Scrambled Eggs","portion":2,"unit":"piece"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, 182.0, body["total_calories"])
	macros := body["macros"].(map[string]interface{})
	assert.Equal(t, 12.0, macros["protein"])
	assert.Equal(t, domain.FlexScalar("2"), svc.lastReq.Portion)
}

func TestEstimateNutrientsMissingFields(t *testing.T) {
	svc := &fakeNutritionService{err: domain.ErrMissingNutrientParams}
	app := newNutritionApp(svc)

	req := httptest.NewRequest("POST", "/api/v1/nutrition/estimate",
		strings.NewReader(`{"food":"Eggs"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Missing required parameters: food, portion, and unit.", body["error"])
}

func TestEstimateNutrientsUpstreamFailure(t *testing.T) {
	svc := &fakeNutritionService{err: assert.AnError}
	app := newNutritionApp(svc)

	req := httptest.NewRequest("POST", "/api/v1/nutrition/estimate",
		strings.NewReader(`{"food":"Eggs","portion":"2","unit":"piece"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Error calculating nutrients.", body["error"])
	assert.NotEmpty(t, body["details"])
}
