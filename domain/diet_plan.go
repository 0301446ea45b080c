package domain

import (
	"encoding/json"
	"errors"
)

var (
	MessagePlanGenerated       = "Diet plan generated and subscription updated successfully."
	MessageErrorGeneratingPlan = "Error generating diet plan."
	MessageErrorFetchingPlans  = "Error fetching plans"
	MessageMissingUserIDParam  = "Missing userId parameter"

	ErrUserNotFound       = errors.New("User not found in Users table.")
	ErrPlanNotValidJSON   = errors.New("Generated diet plan is not valid JSON")
	ErrMissingAPIKey      = errors.New("GEMINI_API_KEY environment variable not set")
	ErrEmptyModelResponse = errors.New("text generation returned no candidates")
)

type (
	GeneratePlanRequest struct {
		UserID             string      `json:"userId" validate:"required"`
		TargetWeight       Number      `json:"targetWeight" validate:"required"`
		Allergies          FlexStrings `json:"allergies"`
		DietaryPreferences string      `json:"dietaryPreferences"`
		FoodIntake         FlexStrings `json:"foodIntake"`
		Activities         FlexStrings `json:"activities"`
		ActivityFrequency  string      `json:"activityFrequency"`
		FitnessGoals       string      `json:"fitnessGoals"`
		Triggers           FlexStrings `json:"triggers"`
	}

	GeneratePlanResponse struct {
		DietPlan json.RawMessage `json:"dietPlan"`
		Message  string          `json:"message"`
	}

	UserPlansResponse struct {
		DietPlans           []DietPlanRecord     `json:"dietPlans"`
		SubscriptionRecords []SubscriptionRecord `json:"subscriptionRecords"`
	}

	DietPlanRecord struct {
		UserID      string          `json:"user_id"`
		PlanDate    string          `json:"plan_date"`
		DietPlanID  string          `json:"diet_plan_id"`
		Active      bool            `json:"active"`
		PlanDetails json.RawMessage `json:"plan_details"`
		CreatedAt   string          `json:"created_at"`
	}
)
