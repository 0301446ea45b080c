package domain

import (
	"errors"
)

var (
	MessageMealLogInserted = "Meal log inserted successfully."

	ErrMissingMealLogFields = errors.New("Missing required fields: user_id, meal_timestamp, meal_type, food_items, and date.")
	ErrMissingDateParam     = errors.New("Missing 'date' query parameter.")
	ErrInvalidResource      = errors.New("Invalid resource")
	ErrCouldNotInsertLog    = errors.New("Could not insert meal log.")
	ErrCouldNotFetchLogs    = errors.New("Could not fetch meal logs.")
	ErrMalformedStoredItem  = errors.New("stored food item is missing required attributes")
)

type (
	InsertMealLogRequest struct {
		UserID        string            `json:"user_id"`
		MealTimestamp string            `json:"meal_timestamp"`
		MealType      string            `json:"meal_type"`
		FoodItems     []MealLogFoodItem `json:"food_items"`
		Date          string            `json:"date"`
		Notes         string            `json:"notes"`
	}

	MealLogFoodItem struct {
		Name     string        `json:"name"`
		Portion  string        `json:"portion"`
		Calories Number        `json:"calories"`
		Macros   MealLogMacros `json:"macros"`
	}

	MealLogMacros struct {
		Carbs   Number `json:"carbs"`
		Fat     Number `json:"fat"`
		Protein Number `json:"protein"`
	}

	InsertMealLogResponse struct {
		Message   string `json:"message"`
		MealLogID string `json:"meal_log_id"`
	}

	MealLogRecord struct {
		MealLogID     string            `json:"meal_log_id"`
		UserID        string            `json:"user_id"`
		Date          string            `json:"date"`
		MealType      string            `json:"meal_type"`
		Notes         string            `json:"notes"`
		FoodItems     []MealLogFoodItem `json:"food_items"`
		TotalCalories float64           `json:"total_calories"`
		LoggedAt      string            `json:"logged_at"`
		DietPlanID    string            `json:"diet_plan_id"`
	}

	ListMealLogsResponse struct {
		MealLogs []MealLogRecord `json:"meal_logs"`
	}
)
