package models

import "time"

// WeeklyProgress is the aggregation bucket for one (user, Monday-keyed
// week). Exactly one row exists per pair; all writes go through the
// atomic insert-or-add upsert in services.ProgressService.
type WeeklyProgress struct {
	ID            uint      `gorm:"primaryKey" json:"progress_id"`
	UserID        uint      `gorm:"uniqueIndex:idx_user_week;not null" json:"user_id"`
	WeekStartDate time.Time `gorm:"uniqueIndex:idx_user_week;not null" json:"week_start_date"`
	WeekEndDate   time.Time `gorm:"not null" json:"week_end_date"`
	TotalPoints   int       `gorm:"default:0" json:"total_points"`
	MealsLogged   int       `gorm:"default:0" json:"meals_logged"`
	TotalCalories float64   `gorm:"default:0" json:"total_calories"`
	TotalProtein  float64   `gorm:"default:0" json:"total_protein"`
	TotalCarbs    float64   `gorm:"default:0" json:"total_carbs"`
	TotalFat      float64   `gorm:"default:0" json:"total_fat"`
}
