package models

import "time"

// FoodLog is one classified meal. Rows are created once and never
// updated; the nutrition columns are a snapshot taken at log time, so
// later edits to the reference table do not rewrite history.
type FoodLog struct {
	ID              uint      `gorm:"primaryKey" json:"log_id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	FoodName        string    `gorm:"size:100;not null" json:"food_name"`
	ConfidenceScore float64   `json:"confidence_score"`
	ImagePath       string    `gorm:"size:255" json:"image_path"`
	MealType        string    `gorm:"size:20" json:"meal_type"`
	Calories        float64   `json:"calories"`
	Protein         float64   `json:"protein"`
	Carbs           float64   `json:"carbs"`
	Fat             float64   `json:"fat"`
	HealthScore     int       `json:"health_score"`
	PointsAwarded   int       `json:"points_awarded"`
	LoggedAt        time.Time `gorm:"index;not null" json:"logged_at"`
}
