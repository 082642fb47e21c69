package models

import "time"

// UserAchievement records the first time a user earned an achievement.
// Identity is the (user_id, achievement_key) pair; re-earning is a no-op.
type UserAchievement struct {
	ID                     uint      `gorm:"primaryKey" json:"achievement_id"`
	UserID                 uint      `gorm:"uniqueIndex:idx_user_achievement;not null" json:"user_id"`
	AchievementKey         string    `gorm:"size:50;uniqueIndex:idx_user_achievement;not null" json:"achievement_key"`
	AchievementName        string    `gorm:"size:100;not null" json:"achievement_name"`
	AchievementDescription string    `gorm:"type:text" json:"achievement_description"`
	EarnedAt               time.Time `json:"earned_at"`
	PointsAwarded          int       `gorm:"default:0" json:"points_awarded"`
}
