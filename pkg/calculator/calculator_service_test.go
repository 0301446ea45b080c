package calculator

import (
	"NutriPlan-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(v float64) *domain.Number {
	n := domain.Number(v)
	return &n
}

func TestBMIMetric(t *testing.T) {
	s := NewCalculatorService()

	res, err := s.BMI(domain.BMIRequest{
		Unit:   "metric",
		Height: num(170),
		Weight: num(70),
	})
	require.NoError(t, err)

	assert.InDelta(t, 24.22, res.BMI, 0.001)
	assert.Equal(t, "Normal weight", res.Category)
	assert.InDelta(t, 53.5, res.MinHealthyWeight, 0.001)
	assert.Equal(t, "0.97", res.Prime)
}

func TestBMIDefaultsToMetric(t *testing.T) {
	s := NewCalculatorService()

	res, err := s.BMI(domain.BMIRequest{Height: num(170), Weight: num(70)})
	require.NoError(t, err)
	assert.InDelta(t, 24.22, res.BMI, 0.001)
}

func TestBMIUS(t *testing.T) {
	s := NewCalculatorService()

	res, err := s.BMI(domain.BMIRequest{
		Unit:   "us",
		Feet:   num(5),
		Inches: num(10),
		Weight: num(154),
	})
	require.NoError(t, err)
	assert.InDelta(t, 22.1, res.BMI, 0.01)
}

func TestBMICategoryBoundaries(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(18.49))
	assert.Equal(t, "Normal weight", BMICategory(18.5))
	assert.Equal(t, "Normal weight", BMICategory(24.99))
	assert.Equal(t, "Overweight", BMICategory(25))
	assert.Equal(t, "Overweight", BMICategory(29.99))
	assert.Equal(t, "Obesity", BMICategory(30))
}

func TestBMIExactBoundaryIsOverweight(t *testing.T) {
	s := NewCalculatorService()

	// 64 kg at 160 cm is a BMI of exactly 25.
	res, err := s.BMI(domain.BMIRequest{
		Unit:   "metric",
		Height: num(160),
		Weight: num(64),
	})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, res.BMI, 0.001)
	assert.Equal(t, "Overweight", res.Category)
}

func TestBMIInvalidInput(t *testing.T) {
	s := NewCalculatorService()

	_, err := s.BMI(domain.BMIRequest{Unit: "metric", Height: num(0), Weight: num(70)})
	assert.ErrorIs(t, err, domain.ErrInvalidMetricParams)

	_, err = s.BMI(domain.BMIRequest{Unit: "metric", Weight: num(70)})
	assert.ErrorIs(t, err, domain.ErrInvalidMetricParams)

	_, err = s.BMI(domain.BMIRequest{Unit: "us", Feet: num(5), Weight: num(154)})
	assert.ErrorIs(t, err, domain.ErrInvalidUSParams)

	_, err = s.BMI(domain.BMIRequest{Unit: "imperial", Height: num(170), Weight: num(70)})
	assert.ErrorIs(t, err, domain.ErrUnsupportedUnit)
}

func TestCaloriesMetricMifflin(t *testing.T) {
	s := NewCalculatorService()

	res, err := s.Calories(domain.CalorieRequest{
		System:   "metric",
		Age:      num(30),
		Gender:   "male",
		HeightCm: num(175),
		WeightKg: num(70),
	})
	require.NoError(t, err)

	// BMR 1648.75, sedentary default multiplier 1.2.
	assert.InDelta(t, 1648.75, res.BMR, 0.001)
	assert.InDelta(t, 1978.5, res.DailyCalories, 0.001)
	assert.Equal(t, "calories", res.EnergyUnit)
}

func TestCaloriesKilojoules(t *testing.T) {
	s := NewCalculatorService()

	res, err := s.Calories(domain.CalorieRequest{
		System:     "metric",
		Age:        num(30),
		Gender:     "male",
		HeightCm:   num(175),
		WeightKg:   num(70),
		EnergyUnit: "kj",
	})
	require.NoError(t, err)
	assert.InDelta(t, 1978.5*4.184, res.DailyEnergy, 0.01)
	assert.Equal(t, "kilojoules", res.EnergyUnit)
}

func TestCaloriesUnknownActivityFallsBack(t *testing.T) {
	s := NewCalculatorService()

	res, err := s.Calories(domain.CalorieRequest{
		System:        "metric",
		Age:           num(30),
		Gender:        "female",
		HeightCm:      num(165),
		WeightKg:      num(60),
		ActivityLevel: "astronaut",
	})
	require.NoError(t, err)

	// BMR 1320.25, unknown level falls back to the sedentary multiplier.
	assert.InDelta(t, 1320.25*1.2, res.DailyCalories, 0.001)
}

func TestCaloriesValidation(t *testing.T) {
	s := NewCalculatorService()

	_, err := s.Calories(domain.CalorieRequest{Gender: "male"})
	assert.ErrorIs(t, err, domain.ErrAgeGenderRequired)

	_, err = s.Calories(domain.CalorieRequest{Age: num(30), Gender: "other"})
	assert.ErrorIs(t, err, domain.ErrInvalidGender)

	_, err = s.Calories(domain.CalorieRequest{Age: num(30), Gender: "male"})
	assert.ErrorIs(t, err, domain.ErrUSFieldsRequired)

	_, err = s.Calories(domain.CalorieRequest{System: "metric", Age: num(30), Gender: "male"})
	assert.ErrorIs(t, err, domain.ErrMetricFieldsRequired)
}

func TestMacrosDefaults(t *testing.T) {
	s := NewCalculatorService()

	res, err := s.Macros(domain.MacroRequest{})
	require.NoError(t, err)

	// Defaults: 25y male, 175 cm, 70 kg, factor 1.2, maintain, Mifflin.
	// BMR 1673.75, TDEE 2008.5.
	assert.InDelta(t, 2008.5, res.TDEE, 0.001)
	assert.Equal(t, "141", res.Balanced.Protein)
	assert.Equal(t, "226", res.Balanced.Carbs)
	assert.Equal(t, "60", res.Balanced.Fat)
}

func TestMacrosGoalAdjustment(t *testing.T) {
	s := NewCalculatorService()

	maintain, err := s.Macros(domain.MacroRequest{Goal: "maintain"})
	require.NoError(t, err)
	loss, err := s.Macros(domain.MacroRequest{Goal: "weightloss"})
	require.NoError(t, err)
	gain, err := s.Macros(domain.MacroRequest{Goal: "weightgain"})
	require.NoError(t, err)

	assert.InDelta(t, maintain.TDEE*0.8, loss.TDEE, 0.001)
	assert.InDelta(t, maintain.TDEE*1.2, gain.TDEE, 0.001)
}

func TestMacrosKatchMcArdle(t *testing.T) {
	s := NewCalculatorService()

	res, err := s.Macros(domain.MacroRequest{
		WeightKg:    70,
		Formula:     "katch",
		BodyFatPerc: 20,
	})
	require.NoError(t, err)

	// Lean mass 56 kg, BMR 370 + 21.6*56 = 1579.6, factor 1.2.
	assert.InDelta(t, 1579.6*1.2, res.TDEE, 0.001)
}
