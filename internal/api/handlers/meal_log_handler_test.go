package handlers

import (
	"NutriPlan-Backend/domain"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMealLogService struct {
	insertedID string
	insertErr  error
	records    []domain.MealLogRecord
	listErr    error

	lastInsert domain.InsertMealLogRequest
	lastDate   string
	lastUserID string
}

func (s *fakeMealLogService) InsertMealLog(_ context.Context, req domain.InsertMealLogRequest) (string, error) {
	s.lastInsert = req
	if s.insertErr != nil {
		return "", s.insertErr
	}
	return s.insertedID, nil
}

func (s *fakeMealLogService) ListMealLogs(_ context.Context, date string, userID string) ([]domain.MealLogRecord, error) {
	s.lastDate = date
	s.lastUserID = userID
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.records, nil
}

func newMealLogApp(svc *fakeMealLogService) *fiber.App {
	app := fiber.New()
	h := NewMealLogHandler(svc)
	app.All("/api/v1/meal-logs", h.Dispatch)
	app.All("/api/v1/meal-logs/:resource", h.Dispatch)
	return app
}

func decodeBody(t *testing.T, resp io.Reader) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp).Decode(&body))
	return body
}

func TestDispatchPostInserts(t *testing.T) {
	svc := &fakeMealLogService{insertedID: "log-1"}
	app := newMealLogApp(svc)

	req := httptest.NewRequest("POST", "/api/v1/meal-logs", strings.NewReader(`{"user_id":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Meal log inserted successfully.", body["message"])
	assert.Equal(t, "log-1", body["meal_log_id"])
	assert.Equal(t, "u1", svc.lastInsert.UserID)
}

func TestDispatchGetLists(t *testing.T) {
	svc := &fakeMealLogService{records: []domain.MealLogRecord{{MealLogID: "m1"}}}
	app := newMealLogApp(svc)

	req := httptest.NewRequest("GET", "/api/v1/meal-logs?date=2025-03-10&user_id=u1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "2025-03-10", svc.lastDate)
	assert.Equal(t, "u1", svc.lastUserID)

	body := decodeBody(t, resp.Body)
	logs := body["meal_logs"].([]interface{})
	assert.Len(t, logs, 1)
}

// The resource hint in the path outranks the HTTP method.
func TestDispatchResourceHintWins(t *testing.T) {
	svc := &fakeMealLogService{records: []domain.MealLogRecord{}}
	app := newMealLogApp(svc)

	req := httptest.NewRequest("POST", "/api/v1/meal-logs/getMealLogs?date=2025-03-10", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "2025-03-10", svc.lastDate)
}

func TestDispatchInsertHint(t *testing.T) {
	svc := &fakeMealLogService{insertedID: "log-2"}
	app := newMealLogApp(svc)

	req := httptest.NewRequest("POST", "/api/v1/meal-logs/insertMealLog", strings.NewReader(`{"user_id":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "log-2", body["meal_log_id"])
}

// Any query parameter routes to listing, even when the method gives no hint
// and the date itself is absent.
func TestDispatchAnyQueryLists(t *testing.T) {
	app := newMealLogApp(&fakeMealLogService{})

	req := httptest.NewRequest("PUT", "/api/v1/meal-logs?user_id=u1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Missing 'date' query parameter.", body["error"])
}

func TestListWithoutDate(t *testing.T) {
	app := newMealLogApp(&fakeMealLogService{})

	req := httptest.NewRequest("GET", "/api/v1/meal-logs", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Missing 'date' query parameter.", body["error"])
}

func TestInsertWithoutSubscription(t *testing.T) {
	svc := &fakeMealLogService{insertErr: domain.ErrNoActiveSubscription}
	app := newMealLogApp(svc)

	req := httptest.NewRequest("POST", "/api/v1/meal-logs", strings.NewReader(`{"user_id":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "No active subscription found for the user.", body["error"])
}

func TestInsertRepositoryFailure(t *testing.T) {
	svc := &fakeMealLogService{insertErr: assert.AnError}
	app := newMealLogApp(svc)

	req := httptest.NewRequest("POST", "/api/v1/meal-logs", strings.NewReader(`{"user_id":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Could not insert meal log.", body["error"])
	assert.NotEmpty(t, body["details"])
}
