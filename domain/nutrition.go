package domain

import (
	"errors"
)

var (
	ErrMissingNutrientParams = errors.New("Missing required parameters: food, portion, and unit.")
	ErrNutrientParseFailed   = errors.New("Error parsing LLM response as JSON.")
	MessageErrorCalculating  = "Error calculating nutrients."
)

type (
	// Portion arrives as a number or a string depending on the client form.
	EstimateNutrientsRequest struct {
		Food    string     `json:"food"`
		Portion FlexScalar `json:"portion"`
		Unit    string     `json:"unit"`
	}

	NutrientEstimate struct {
		TotalCalories Number         `json:"total_calories"`
		Macros        NutrientMacros `json:"macros"`
	}

	NutrientMacros struct {
		Protein Number `json:"protein"`
		Carbs   Number `json:"carbs"`
		Fat     Number `json:"fat"`
	}
)
