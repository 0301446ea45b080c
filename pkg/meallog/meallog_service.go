package meallog

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"
	"NutriPlan-Backend/pkg/subscription"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type (
	MealLogService interface {
		InsertMealLog(ctx context.Context, req domain.InsertMealLogRequest) (string, error)
		ListMealLogs(ctx context.Context, date string, userID string) ([]domain.MealLogRecord, error)
	}

	mealLogService struct {
		mealLogRepository   MealLogRepository
		subscriptionService subscription.SubscriptionService
	}
)

func NewMealLogService(mealLogRepository MealLogRepository, subscriptionService subscription.SubscriptionService) MealLogService {
	return &mealLogService{
		mealLogRepository:   mealLogRepository,
		subscriptionService: subscriptionService,
	}
}

// InsertMealLog validates the submission, requires an active subscription to
// stamp the log with its plan reference, and appends one record. Logs are
// never updated afterwards.
func (s *mealLogService) InsertMealLog(ctx context.Context, req domain.InsertMealLogRequest) (string, error) {
	if req.UserID == "" || req.MealTimestamp == "" || req.MealType == "" ||
		len(req.FoodItems) == 0 || req.Date == "" {
		return "", domain.ErrMissingMealLogFields
	}

	sub, err := s.subscriptionService.GetActiveSubscription(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveSubscription) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", domain.ErrRetrievingSubscription, err)
	}

	day, err := NormalizeDay(req.Date)
	if err != nil {
		return "", err
	}

	items := make([]entities.MealFoodItem, 0, len(req.FoodItems))
	for _, item := range req.FoodItems {
		items = append(items, entities.MealFoodItem{
			Name:     item.Name,
			Portion:  item.Portion,
			Calories: float64(item.Calories),
			Macros: entities.MealMacros{
				Carbs:   float64(item.Macros.Carbs),
				Fat:     float64(item.Macros.Fat),
				Protein: float64(item.Macros.Protein),
			},
		})
	}

	log := &entities.MealLog{
		MealLogID:     uuid.NewString(),
		UserID:        req.UserID,
		Date:          day,
		MealTimestamp: req.MealTimestamp,
		MealType:      req.MealType,
		FoodItems:     items,
		TotalCalories: TotalCalories(req.FoodItems),
		Notes:         req.Notes,
		LoggedAt:      time.Now().UTC(),
		DietPlanID:    sub.LastDietPlanID,
	}

	if err := s.mealLogRepository.Insert(ctx, log); err != nil {
		return "", err
	}
	return log.MealLogID, nil
}

func (s *mealLogService) ListMealLogs(ctx context.Context, date string, userID string) ([]domain.MealLogRecord, error) {
	logs, err := s.mealLogRepository.ListByDate(ctx, date, userID)
	if err != nil {
		return nil, err
	}

	records := make([]domain.MealLogRecord, 0, len(logs))
	for _, log := range logs {
		items := make([]domain.MealLogFoodItem, 0, len(log.FoodItems))
		for _, item := range log.FoodItems {
			if item.Name == "" || item.Portion == "" {
				return nil, domain.ErrMalformedStoredItem
			}
			items = append(items, domain.MealLogFoodItem{
				Name:     item.Name,
				Portion:  item.Portion,
				Calories: domain.Number(item.Calories),
				Macros: domain.MealLogMacros{
					Carbs:   domain.Number(item.Macros.Carbs),
					Fat:     domain.Number(item.Macros.Fat),
					Protein: domain.Number(item.Macros.Protein),
				},
			})
		}

		loggedAt := ""
		if !log.LoggedAt.IsZero() {
			loggedAt = log.LoggedAt.Format(time.RFC3339)
		}

		records = append(records, domain.MealLogRecord{
			MealLogID:     log.MealLogID,
			UserID:        log.UserID,
			Date:          log.Date,
			MealType:      log.MealType,
			Notes:         log.Notes,
			FoodItems:     items,
			TotalCalories: log.TotalCalories,
			LoggedAt:      loggedAt,
			DietPlanID:    log.DietPlanID,
		})
	}
	return records, nil
}

// TotalCalories sums the item calories after coercion; missing or non-numeric
// values already collapsed to zero during unmarshal. The sum is never taken
// from the client.
func TotalCalories(items []domain.MealLogFoodItem) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(item.Calories)
	}
	return total
}

var dayLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
}

// NormalizeDay re-parses the client date and truncates it to calendar-day
// granularity, discarding any time of day. It is deliberately independent of
// meal_timestamp; the two fields can disagree.
func NormalizeDay(date string) (string, error) {
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.UTC().Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unparsable date %q", date)
}
