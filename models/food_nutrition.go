package models

import "gorm.io/gorm"

// FoodNutrition is the per-serving reference entry for one dish label.
// The scoring path only ever reads these rows.
type FoodNutrition struct {
	gorm.Model
	FoodName    string  `gorm:"size:100;uniqueIndex;not null" json:"food_name"`
	Calories    float64 `gorm:"not null" json:"calories"`
	Protein     float64 `gorm:"not null" json:"protein"`
	Carbs       float64 `gorm:"not null" json:"carbs"`
	Fat         float64 `gorm:"not null" json:"fat"`
	ServingSize string  `gorm:"size:50" json:"serving_size"`
	HealthScore int     `gorm:"default:50" json:"health_score"`
	Category    string  `gorm:"size:50" json:"category"`
}
