package entities

import (
	"time"
)

// One logical subscription per user. Rows are hard-deleted and reinserted on
// every plan generation, unlike diet plans which are only deactivated.
type Subscription struct {
	UserID                string    `gorm:"type:varchar(255);primaryKey" json:"user_id"`
	SubscriptionStartDate time.Time `gorm:"primaryKey" json:"subscription_start_date"`
	SubscriptionStatus    string    `json:"subscription_status"`
	DietaryPreferences    string    `json:"dietary_preferences"`
	HealthConditions      []string  `gorm:"serializer:json;type:jsonb" json:"health_conditions"`
	FitnessGoals          string    `json:"fitness_goals"`
	PlanFrequency         string    `json:"plan_frequency"`
	LastDietPlanID        string    `gorm:"type:uuid" json:"last_diet_plan_id"`
	NextPlanDue           string    `json:"next_plan_due"`
	UpdatedAt             time.Time `json:"updated_at"`
}
