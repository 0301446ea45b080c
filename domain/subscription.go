package domain

import (
	"errors"
)

var (
	ErrNoActiveSubscription   = errors.New("No active subscription found for the user.")
	ErrRetrievingSubscription = errors.New("Error retrieving subscription information.")
	SubscriptionStatusActive  = "active"
)

type (
	SubscriptionRecord struct {
		UserID                string   `json:"user_id"`
		SubscriptionStartDate string   `json:"subscription_start_date"`
		SubscriptionStatus    string   `json:"subscription_status"`
		DietaryPreferences    string   `json:"dietary_preferences"`
		HealthConditions      []string `json:"health_conditions"`
		FitnessGoals          string   `json:"fitness_goals"`
		PlanFrequency         string   `json:"plan_frequency"`
		LastDietPlanID        string   `json:"last_diet_plan_id"`
		NextPlanDue           string   `json:"next_plan_due"`
		UpdatedAt             string   `json:"updated_at"`
	}
)
