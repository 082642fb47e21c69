package services

import (
	"context"
	"errors"
	"time"

	"github.com/iamomal/nutrivision-backend/models"

	"gorm.io/gorm"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// ActiveGoal returns the newest active goal row, or nil when the user has
// never set one. Absence is not an error.
func (s *GoalService) ActiveGoal(ctx context.Context, userID uint) (*models.UserGoal, error) {
	var goal models.UserGoal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("id DESC").
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

// ActiveGoalType resolves the goal type used for scoring, defaulting to
// maintain when no goal is set.
func (s *GoalService) ActiveGoalType(ctx context.Context, userID uint) (models.GoalType, error) {
	goal, err := s.ActiveGoal(ctx, userID)
	if err != nil {
		return models.GoalMaintain, err
	}
	if goal == nil || goal.GoalType == "" {
		return models.GoalMaintain, nil
	}
	return goal.GoalType, nil
}

type GoalInput struct {
	GoalType           models.GoalType `json:"goal_type"`
	WeeklyPointsTarget int             `json:"weekly_points_target"`
	CalorieTarget      int             `json:"calorie_target"`
	ProteinTarget      float64         `json:"protein_target"`
	GoalDescription    string          `json:"goal_description"`
}

// SetGoal appends a new active goal. History is kept; the deactivate and
// the insert run in one transaction so the single-active invariant holds
// even if either write fails.
func (s *GoalService) SetGoal(ctx context.Context, userID uint, input GoalInput) (*models.UserGoal, error) {
	if input.WeeklyPointsTarget <= 0 {
		input.WeeklyPointsTarget = 100
	}
	if input.CalorieTarget <= 0 {
		input.CalorieTarget = 2000
	}
	if input.ProteinTarget <= 0 {
		input.ProteinTarget = 120
	}
	if input.GoalType == "" {
		input.GoalType = models.GoalMaintain
	}

	goal := &models.UserGoal{
		UserID:             userID,
		GoalType:           input.GoalType,
		WeeklyPointsTarget: input.WeeklyPointsTarget,
		CalorieTarget:      input.CalorieTarget,
		ProteinTarget:      input.ProteinTarget,
		GoalDescription:    input.GoalDescription,
		StartDate:          time.Now(),
		IsActive:           true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.UserGoal{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(goal).Error
	})
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// CreateDefaultGoal seeds the maintain goal a fresh account starts with.
func (s *GoalService) CreateDefaultGoal(ctx context.Context, tx *gorm.DB, userID uint) error {
	db := tx
	if db == nil {
		db = s.db
	}
	goal := &models.UserGoal{
		UserID:             userID,
		GoalType:           models.GoalMaintain,
		WeeklyPointsTarget: 100,
		CalorieTarget:      2000,
		ProteinTarget:      120,
		StartDate:          time.Now(),
		IsActive:           true,
	}
	return db.WithContext(ctx).Create(goal).Error
}
