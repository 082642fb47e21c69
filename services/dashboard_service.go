package services

import (
	"context"

	"github.com/iamomal/nutrivision-backend/models"
)

type DashboardService struct {
	achievements *AchievementService
	meals        *MealLogService
	goals        *GoalService
}

func NewDashboardService(achievements *AchievementService, meals *MealLogService, goals *GoalService) *DashboardService {
	return &DashboardService{achievements: achievements, meals: meals, goals: goals}
}

type DashboardOverview struct {
	Level          LevelInfo            `json:"level"`
	TodayNutrition models.FoodNutrition `json:"today_nutrition"`
	Goals          *models.UserGoal     `json:"goals"`
}

// Overview assembles the dashboard payload. The level is derived on
// demand from lifetime points, never stored.
func (s *DashboardService) Overview(ctx context.Context, userID uint) (*DashboardOverview, error) {
	totalPoints, err := s.achievements.TotalPoints(ctx, userID)
	if err != nil {
		return nil, err
	}

	today, err := s.meals.TodayNutrition(ctx, userID)
	if err != nil {
		return nil, err
	}

	goal, err := s.goals.ActiveGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		Level:          CalculateLevel(totalPoints),
		TodayNutrition: today,
		Goals:          goal,
	}, nil
}
