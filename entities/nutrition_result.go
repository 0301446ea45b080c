package entities

// Filled out-of-band by the image extraction pipeline; the API only reads it.
type NutritionResult struct {
	ImageKey      string  `gorm:"type:varchar(255);primary_key" json:"image_key"`
	FoodName      string  `json:"food_name"`
	Calories      float64 `json:"calories"`
	Carbohydrates float64 `json:"carbohydrates"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`

	Timestamp
}
