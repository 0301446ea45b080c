package entities

import (
	"time"
)

type MealFoodItem struct {
	Name     string     `json:"name"`
	Portion  string     `json:"portion"`
	Calories float64    `json:"calories"`
	Macros   MealMacros `json:"macros"`
}

type MealMacros struct {
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Protein float64 `json:"protein"`
}

// Append-only: meal logs are never updated or deleted.
type MealLog struct {
	MealLogID     string         `gorm:"type:uuid;primary_key" json:"meal_log_id"`
	UserID        string         `gorm:"type:varchar(255);index:idx_meal_logs_day,priority:2" json:"user_id"`
	Date          string         `gorm:"type:varchar(10);index:idx_meal_logs_day,priority:1" json:"date"`
	MealTimestamp string         `json:"meal_timestamp"`
	MealType      string         `json:"meal_type"`
	FoodItems     []MealFoodItem `gorm:"serializer:json;type:jsonb" json:"food_items"`
	TotalCalories float64        `json:"total_calories"`
	Notes         string         `json:"notes"`
	LoggedAt      time.Time      `json:"logged_at"`
	DietPlanID    string         `json:"diet_plan_id"`
}
