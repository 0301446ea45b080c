package meallog

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMealLogRepository struct {
	logs      []*entities.MealLog
	insertErr error
	listErr   error
}

func (r *fakeMealLogRepository) Insert(_ context.Context, log *entities.MealLog) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeMealLogRepository) ListByDate(_ context.Context, date string, userID string) ([]*entities.MealLog, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*entities.MealLog
	for _, log := range r.logs {
		if log.Date != date {
			continue
		}
		if userID != "" && log.UserID != userID {
			continue
		}
		out = append(out, log)
	}
	return out, nil
}

type fakeSubscriptionService struct {
	sub *entities.Subscription
	err error
}

func (s *fakeSubscriptionService) GetActiveSubscription(_ context.Context, _ string) (*entities.Subscription, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sub, nil
}

func (s *fakeSubscriptionService) Replace(_ context.Context, _ string, _ *entities.Subscription) error {
	return nil
}

func validInsertRequest() domain.InsertMealLogRequest {
	return domain.InsertMealLogRequest{
		UserID:        "u1",
		MealTimestamp: "2025-03-10T08:30:00Z",
		MealType:      "breakfast",
		Date:          "2025-03-10",
		FoodItems: []domain.MealLogFoodItem{
			{Name: "Oatmeal", Portion: "1 bowl", Calories: 100},
			{Name: "Banana", Portion: "1", Calories: 50},
		},
	}
}

func TestInsertMealLogRequiredFields(t *testing.T) {
	s := NewMealLogService(&fakeMealLogRepository{}, &fakeSubscriptionService{})

	req := validInsertRequest()
	req.MealType = ""
	_, err := s.InsertMealLog(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrMissingMealLogFields)

	req = validInsertRequest()
	req.FoodItems = nil
	_, err = s.InsertMealLog(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrMissingMealLogFields)
}

func TestInsertMealLogRequiresActiveSubscription(t *testing.T) {
	repo := &fakeMealLogRepository{}
	s := NewMealLogService(repo, &fakeSubscriptionService{err: domain.ErrNoActiveSubscription})

	_, err := s.InsertMealLog(context.Background(), validInsertRequest())
	assert.ErrorIs(t, err, domain.ErrNoActiveSubscription)
	assert.Empty(t, repo.logs)
}

func TestInsertMealLogSubscriptionLookupFailure(t *testing.T) {
	s := NewMealLogService(&fakeMealLogRepository{}, &fakeSubscriptionService{err: assert.AnError})

	_, err := s.InsertMealLog(context.Background(), validInsertRequest())
	assert.ErrorIs(t, err, domain.ErrRetrievingSubscription)
}

func TestInsertMealLogStampsPlanAndTotals(t *testing.T) {
	repo := &fakeMealLogRepository{}
	s := NewMealLogService(repo, &fakeSubscriptionService{
		sub: &entities.Subscription{UserID: "u1", SubscriptionStatus: domain.SubscriptionStatusActive, LastDietPlanID: "plan-9"},
	})

	id, err := s.InsertMealLog(context.Background(), validInsertRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, repo.logs, 1)
	log := repo.logs[0]
	assert.Equal(t, id, log.MealLogID)
	assert.Equal(t, "plan-9", log.DietPlanID)
	assert.Equal(t, "2025-03-10", log.Date)
	assert.Equal(t, 150.0, log.TotalCalories)
	assert.False(t, log.LoggedAt.IsZero())
}

// Calorie values arrive as numbers, numeric strings, nulls or junk; anything
// that is not a number counts as zero in the total.
func TestInsertMealLogCoercesCalories(t *testing.T) {
	payload := `{
		"user_id": "u1",
		"meal_timestamp": "2025-03-10T08:30:00Z",
		"meal_type": "lunch",
		"date": "2025-03-10",
		"food_items": [
			{"name": "Rice", "portion": "1 cup", "calories": 100},
			{"name": "Chicken", "portion": "100g", "calories": "50"},
			{"name": "Salad", "portion": "1 bowl", "calories": null},
			{"name": "Tea", "portion": "1 cup", "calories": "n/a"}
		]
	}`
	var req domain.InsertMealLogRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	repo := &fakeMealLogRepository{}
	s := NewMealLogService(repo, &fakeSubscriptionService{
		sub: &entities.Subscription{SubscriptionStatus: domain.SubscriptionStatusActive},
	})

	_, err := s.InsertMealLog(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, 150.0, repo.logs[0].TotalCalories)
}

func TestListMealLogsFiltersByDayAndUser(t *testing.T) {
	repo := &fakeMealLogRepository{logs: []*entities.MealLog{
		{MealLogID: "m1", UserID: "u1", Date: "2025-03-10", FoodItems: []entities.MealFoodItem{{Name: "Rice", Portion: "1 cup"}}},
		{MealLogID: "m2", UserID: "u2", Date: "2025-03-10", FoodItems: []entities.MealFoodItem{{Name: "Soup", Portion: "1 bowl"}}},
		{MealLogID: "m3", UserID: "u1", Date: "2025-03-11", FoodItems: []entities.MealFoodItem{{Name: "Fish", Portion: "100g"}}},
	}}
	s := NewMealLogService(repo, &fakeSubscriptionService{})

	records, err := s.ListMealLogs(context.Background(), "2025-03-10", "u1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "m1", records[0].MealLogID)

	all, err := s.ListMealLogs(context.Background(), "2025-03-10", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListMealLogsDefaultsForOldRecords(t *testing.T) {
	repo := &fakeMealLogRepository{logs: []*entities.MealLog{
		{
			MealLogID: "m1", UserID: "u1", Date: "2025-03-10",
			FoodItems: []entities.MealFoodItem{{Name: "Rice", Portion: "1 cup"}},
		},
	}}
	s := NewMealLogService(repo, &fakeSubscriptionService{})

	records, err := s.ListMealLogs(context.Background(), "2025-03-10", "u1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].LoggedAt)
	assert.Equal(t, 0.0, records[0].TotalCalories)
	assert.Equal(t, "", records[0].DietPlanID)
}

func TestListMealLogsRejectsMalformedStoredItem(t *testing.T) {
	repo := &fakeMealLogRepository{logs: []*entities.MealLog{
		{
			MealLogID: "m1", UserID: "u1", Date: "2025-03-10",
			FoodItems: []entities.MealFoodItem{{Name: "", Portion: "1 cup"}},
		},
	}}
	s := NewMealLogService(repo, &fakeSubscriptionService{})

	_, err := s.ListMealLogs(context.Background(), "2025-03-10", "u1")
	assert.ErrorIs(t, err, domain.ErrMalformedStoredItem)
}

func TestTotalCalories(t *testing.T) {
	assert.Equal(t, 0.0, TotalCalories(nil))
	assert.Equal(t, 150.0, TotalCalories([]domain.MealLogFoodItem{
		{Calories: 100}, {Calories: 50},
	}))
}

func TestNormalizeDay(t *testing.T) {
	for _, input := range []string{
		"2025-03-10",
		"2025-03-10T15:04:05Z",
		"2025-03-10T15:04:05",
		"2025/03/10",
	} {
		day, err := NormalizeDay(input)
		require.NoError(t, err, input)
		assert.Equal(t, "2025-03-10", day, input)
	}

	_, err := NormalizeDay("10 March 2025")
	assert.Error(t, err)
}

func TestNormalizeDayKeepsUTCDay(t *testing.T) {
	day, err := NormalizeDay("2025-03-10T23:30:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", day)
}
