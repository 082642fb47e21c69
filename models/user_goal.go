package models

import "time"

// GoalType is the user-selected dietary objective. Unknown values are
// scored like "maintain" rather than rejected.
type GoalType string

const (
	GoalMaintain     GoalType = "maintain"
	GoalLoseWeight   GoalType = "lose_weight"
	GoalGainWeight   GoalType = "gain_weight"
	GoalEatHealthier GoalType = "eat_healthier"
	GoalAthletic     GoalType = "athletic"
)

// UserGoal is append-only history; exactly one row per user has
// IsActive=true at any time (enforced by deactivate-then-insert in one
// transaction, see services.GoalService).
type UserGoal struct {
	ID                 uint      `gorm:"primaryKey" json:"goal_id"`
	UserID             uint      `gorm:"index;not null" json:"user_id"`
	GoalType           GoalType  `gorm:"size:50;not null;default:maintain" json:"goal_type"`
	WeeklyPointsTarget int       `gorm:"default:100" json:"weekly_points_target"`
	CalorieTarget      int       `gorm:"default:2000" json:"calorie_target"`
	ProteinTarget      float64   `gorm:"default:120" json:"protein_target"`
	GoalDescription    string    `gorm:"type:text" json:"goal_description"`
	StartDate          time.Time `gorm:"not null" json:"start_date"`
	IsActive           bool      `gorm:"index;default:true" json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}
