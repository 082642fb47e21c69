package services

import (
	"context"
	"errors"
	"time"

	"github.com/iamomal/nutrivision-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressService struct{ db *gorm.DB }

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// StartOfWeek truncates t to the Monday of its ISO week, at midnight.
func StartOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	tt := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return tt.AddDate(0, 0, -(wd - 1))
}

// ApplyMeal merges one meal into the user's bucket for the week containing
// loggedAt. The write is a single insert-or-add statement, so two
// concurrent submissions for the same week can neither create duplicate
// rows nor lose an increment. Pass tx to join an enclosing transaction,
// nil to use the service's own handle.
func (s *ProgressService) ApplyMeal(ctx context.Context, tx *gorm.DB, userID uint, loggedAt time.Time, points int, nutrition models.FoodNutrition) error {
	db := tx
	if db == nil {
		db = s.db
	}

	weekStart := StartOfWeek(loggedAt)
	row := models.WeeklyProgress{
		UserID:        userID,
		WeekStartDate: weekStart,
		WeekEndDate:   weekStart.AddDate(0, 0, 6),
		TotalPoints:   points,
		MealsLogged:   1,
		TotalCalories: nutrition.Calories,
		TotalProtein:  nutrition.Protein,
		TotalCarbs:    nutrition.Carbs,
		TotalFat:      nutrition.Fat,
	}

	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "week_start_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_points":   gorm.Expr("total_points + ?", points),
			"meals_logged":   gorm.Expr("meals_logged + 1"),
			"total_calories": gorm.Expr("total_calories + ?", nutrition.Calories),
			"total_protein":  gorm.Expr("total_protein + ?", nutrition.Protein),
			"total_carbs":    gorm.Expr("total_carbs + ?", nutrition.Carbs),
			"total_fat":      gorm.Expr("total_fat + ?", nutrition.Fat),
		}),
	}).Create(&row).Error
}

// GetWeekProgress returns the bucket for the week containing at. A week
// with no logged meals yields a zero-valued bucket, not an error.
func (s *ProgressService) GetWeekProgress(ctx context.Context, userID uint, at time.Time) (*models.WeeklyProgress, error) {
	weekStart := StartOfWeek(at)

	var progress models.WeeklyProgress
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND week_start_date = ?", userID, weekStart).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.WeeklyProgress{
				UserID:        userID,
				WeekStartDate: weekStart,
				WeekEndDate:   weekStart.AddDate(0, 0, 6),
			}, nil
		}
		return nil, err
	}
	return &progress, nil
}

// GetCurrentWeekProgress is GetWeekProgress for time.Now().
func (s *ProgressService) GetCurrentWeekProgress(ctx context.Context, userID uint) (*models.WeeklyProgress, error) {
	return s.GetWeekProgress(ctx, userID, time.Now())
}
