package calculator

import (
	"NutriPlan-Backend/domain"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type (
	CalculatorService interface {
		BMI(req domain.BMIRequest) (domain.BMIResponse, error)
		Calories(req domain.CalorieRequest) (domain.CalorieResponse, error)
		Macros(req domain.MacroRequest) (domain.MacroResponse, error)
	}

	calculatorService struct{}
)

func NewCalculatorService() CalculatorService {
	return &calculatorService{}
}

var activityMultipliers = map[string]float64{
	"bmr":          1.0,
	"sedentary":    1.2,
	"light":        1.375,
	"moderate":     1.55,
	"active":       1.725,
	"very active":  1.9,
	"extra active": 2.2,
}

// Ratio tables per macro plan: calorie shares plus the estimated sugar and
// saturated-fat fractions of the carb and fat gram totals.
type macroRatio struct {
	protein      float64
	carbs        float64
	fat          float64
	sugarFactor  float64
	satFatFactor float64
}

var macroRatios = map[string]macroRatio{
	"balanced":    {protein: 0.28, carbs: 0.45, fat: 0.27, sugarFactor: 0.15, satFatFactor: 0.25},
	"lowfat":      {protein: 0.30, carbs: 0.50, fat: 0.20, sugarFactor: 0.10, satFatFactor: 0.20},
	"lowcarb":     {protein: 0.40, carbs: 0.15, fat: 0.45, sugarFactor: 0.10, satFatFactor: 0.30},
	"highprotein": {protein: 0.45, carbs: 0.35, fat: 0.20, sugarFactor: 0.10, satFatFactor: 0.20},
}

func (s *calculatorService) BMI(req domain.BMIRequest) (domain.BMIResponse, error) {
	unit := strings.ToLower(req.Unit)
	if unit == "" {
		unit = "metric"
	}

	var heightM, weightKg float64

	switch unit {
	case "metric":
		if req.Height == nil || req.Weight == nil ||
			float64(*req.Height) <= 0 || float64(*req.Weight) <= 0 {
			return domain.BMIResponse{}, domain.ErrInvalidMetricParams
		}
		heightM = float64(*req.Height) / 100
		weightKg = float64(*req.Weight)
	case "us":
		if req.Feet == nil || req.Inches == nil || req.Weight == nil ||
			float64(*req.Feet) < 0 || float64(*req.Inches) < 0 || float64(*req.Weight) <= 0 {
			return domain.BMIResponse{}, domain.ErrInvalidUSParams
		}
		totalInches := float64(*req.Feet)*12 + float64(*req.Inches)
		heightM = totalInches * 0.0254
		weightKg = float64(*req.Weight) * 0.45359237
	default:
		return domain.BMIResponse{}, domain.ErrUnsupportedUnit
	}

	bmi := round2(weightKg / (heightM * heightM))

	return domain.BMIResponse{
		BMI:              bmi,
		Category:         BMICategory(bmi),
		MinHealthyWeight: round1(18.5 * heightM * heightM),
		MaxHealthyWeight: round1(25 * heightM * heightM),
		Prime:            fmt.Sprintf("%.2f", bmi/25),
		Pi:               round1(weightKg / math.Pow(heightM, 3)),
	}, nil
}

// Boundaries are half-open: a BMI of exactly 25.00 is Overweight.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obesity"
	}
}

// MifflinStJeor expects weight in kilograms, height in centimeters and age in
// whole years.
func MifflinStJeor(weightKg, heightCm, age float64, gender string) float64 {
	if gender == "male" {
		return 10*weightKg + 6.25*heightCm - 5*age + 5
	}
	return 10*weightKg + 6.25*heightCm - 5*age - 161
}

func HarrisBenedict(weightKg, heightCm, age float64, gender string) float64 {
	if gender == "male" {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*age
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*age
}

func KatchMcArdle(weightKg, bodyFatPercentage float64) float64 {
	leanMass := weightKg * (1 - bodyFatPercentage/100)
	return 370 + 21.6*leanMass
}

// TDEE adjusts BMR for the activity factor, then for the stated goal.
func TDEE(bmr, activityFactor float64, goal string) float64 {
	tdee := bmr * activityFactor
	switch goal {
	case "mildloss":
		tdee *= 0.9
	case "weightloss":
		tdee *= 0.8
	case "mildgain":
		tdee *= 1.1
	case "weightgain":
		tdee *= 1.2
	}
	return tdee
}

func (s *calculatorService) Calories(req domain.CalorieRequest) (domain.CalorieResponse, error) {
	gender := strings.ToLower(req.Gender)
	if req.Age == nil || gender == "" {
		return domain.CalorieResponse{}, domain.ErrAgeGenderRequired
	}
	if gender != "male" && gender != "female" {
		return domain.CalorieResponse{}, domain.ErrInvalidGender
	}

	system := strings.ToLower(req.System)
	if system == "" {
		system = "us"
	}

	var heightCm, weightKg float64
	if system == "us" {
		if req.HeightFeet == nil || req.HeightInches == nil || req.WeightLbs == nil {
			return domain.CalorieResponse{}, domain.ErrUSFieldsRequired
		}
		totalInches := float64(*req.HeightFeet)*12 + float64(*req.HeightInches)
		heightCm = totalInches * 2.54
		weightKg = float64(*req.WeightLbs) * 0.453592
	} else {
		if req.HeightCm == nil || req.WeightKg == nil {
			return domain.CalorieResponse{}, domain.ErrMetricFieldsRequired
		}
		heightCm = float64(*req.HeightCm)
		weightKg = float64(*req.WeightKg)
	}

	age := float64(*req.Age)
	var bmr float64
	if strings.ToLower(req.Formula) == "harris" {
		bmr = HarrisBenedict(weightKg, heightCm, age, gender)
	} else {
		bmr = MifflinStJeor(weightKg, heightCm, age, gender)
	}

	level := strings.ToLower(req.ActivityLevel)
	if level == "" {
		level = "sedentary"
	}
	multiplier, ok := activityMultipliers[level]
	if !ok {
		multiplier = 1.2
	}
	dailyCalories := bmr * multiplier

	energyUnit := strings.ToLower(req.EnergyUnit)
	dailyEnergy := dailyCalories
	unitLabel := "calories"
	if energyUnit == "kj" {
		dailyEnergy = dailyCalories * 4.184
		unitLabel = "kilojoules"
	}

	return domain.CalorieResponse{
		BMR:           round2(bmr),
		DailyCalories: round2(dailyCalories),
		DailyEnergy:   round2(dailyEnergy),
		EnergyUnit:    unitLabel,
	}, nil
}

func (s *calculatorService) Macros(req domain.MacroRequest) (domain.MacroResponse, error) {
	age := float64(req.Age)
	if age == 0 {
		age = 25
	}
	gender := strings.ToLower(req.Gender)
	if gender == "" {
		gender = "male"
	}
	heightCm := float64(req.HeightCm)
	if heightCm == 0 {
		heightCm = 175
	}
	weightKg := float64(req.WeightKg)
	if weightKg == 0 {
		weightKg = 70
	}
	activityFactor := float64(req.ActivityFactor)
	if activityFactor == 0 {
		activityFactor = 1.2
	}
	goal := req.Goal
	if goal == "" {
		goal = "maintain"
	}

	var bmr float64
	if req.Formula == "mifflin" || req.Formula == "" {
		bmr = MifflinStJeor(weightKg, heightCm, age, gender)
	} else {
		bmr = KatchMcArdle(weightKg, float64(req.BodyFatPerc))
	}

	tdee := TDEE(bmr, activityFactor, goal)

	plans := map[string]domain.MacroPlan{}
	for name, ratio := range macroRatios {
		proteinGrams := tdee * ratio.protein / 4
		carbsGrams := tdee * ratio.carbs / 4
		fatGrams := tdee * ratio.fat / 9

		plans[name] = domain.MacroPlan{
			Protein: strconv.FormatFloat(proteinGrams, 'f', 0, 64),
			Carbs:   strconv.FormatFloat(carbsGrams, 'f', 0, 64),
			Fat:     strconv.FormatFloat(fatGrams, 'f', 0, 64),
			Sugar:   strconv.FormatFloat(carbsGrams*ratio.sugarFactor, 'f', 0, 64),
			SatFat:  strconv.FormatFloat(fatGrams*ratio.satFatFactor, 'f', 0, 64),
			Kcal:    strconv.FormatFloat(tdee, 'f', 0, 64),
		}
	}

	return domain.MacroResponse{
		TDEE:        tdee,
		Balanced:    plans["balanced"],
		LowFat:      plans["lowfat"],
		LowCarb:     plans["lowcarb"],
		HighProtein: plans["highprotein"],
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
