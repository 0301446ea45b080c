package domain

import (
	"errors"
)

var (
	ErrInvalidMetricParams  = errors.New("Invalid parameters for metric calculation. Please provide positive numbers for height (cm) and weight (kg).")
	ErrInvalidUSParams      = errors.New("Invalid parameters for US calculation. Please provide non-negative numbers for feet and inches, and a positive number for weight (lb).")
	ErrUnsupportedUnit      = errors.New("Unsupported unit type. Please use 'metric' or 'us'.")
	ErrAgeGenderRequired    = errors.New("Age and gender are required fields.")
	ErrUSFieldsRequired     = errors.New("For US system, height_feet, height_inches, and weight_lbs are required.")
	ErrMetricFieldsRequired = errors.New("For Metric system, height_cm and weight_kg are required.")
	ErrInvalidGender        = errors.New("Invalid gender specified.")
)

type (
	BMIRequest struct {
		Unit   string  `json:"unit"`
		Height *Number `json:"height"`
		Weight *Number `json:"weight"`
		Feet   *Number `json:"feet"`
		Inches *Number `json:"inches"`
	}

	BMIResponse struct {
		BMI              float64 `json:"bmi"`
		Category         string  `json:"category"`
		MinHealthyWeight float64 `json:"minHealthyWeight"`
		MaxHealthyWeight float64 `json:"maxHealthyWeight"`
		Prime            string  `json:"prime"`
		Pi               float64 `json:"pi"`
	}

	CalorieRequest struct {
		System        string  `json:"system"`
		Age           *Number `json:"age"`
		Gender        string  `json:"gender"`
		Formula       string  `json:"formula"`
		HeightFeet    *Number `json:"height_feet"`
		HeightInches  *Number `json:"height_inches"`
		WeightLbs     *Number `json:"weight_lbs"`
		HeightCm      *Number `json:"height_cm"`
		WeightKg      *Number `json:"weight_kg"`
		ActivityLevel string  `json:"activity_level"`
		EnergyUnit    string  `json:"energy_unit"`
	}

	CalorieResponse struct {
		BMR           float64 `json:"bmr"`
		DailyCalories float64 `json:"daily_calories"`
		DailyEnergy   float64 `json:"daily_energy"`
		EnergyUnit    string  `json:"energy_unit"`
	}

	MacroRequest struct {
		Age            Number `json:"age"`
		Gender         string `json:"gender"`
		HeightCm       Number `json:"heightCm"`
		WeightKg       Number `json:"weightKg"`
		ActivityFactor Number `json:"activityFactor"`
		Goal           string `json:"goal"`
		Formula        string `json:"formula"`
		BodyFatPerc    Number `json:"bodyFatPerc"`
	}

	// Gram figures are rendered to whole numbers, as the UI displays them.
	MacroPlan struct {
		Protein string `json:"protein"`
		Carbs   string `json:"carbs"`
		Fat     string `json:"fat"`
		Sugar   string `json:"sugar"`
		SatFat  string `json:"satfat"`
		Kcal    string `json:"kcal"`
	}

	MacroResponse struct {
		TDEE        float64   `json:"tdee"`
		Balanced    MacroPlan `json:"balanced"`
		LowFat      MacroPlan `json:"lowfat"`
		LowCarb     MacroPlan `json:"lowcarb"`
		HighProtein MacroPlan `json:"highprotein"`
	}
)
