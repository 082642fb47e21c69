package services

import (
	"context"
	"time"

	"github.com/iamomal/nutrivision-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LifetimeStats feeds achievement conditions. StreakDays is the count of
// distinct calendar days with at least one log in the trailing 7 days; it
// is NOT a consecutive-day streak, and it can never exceed 7.
type LifetimeStats struct {
	StreakDays   int     `json:"streak_days"`
	MealCount    int64   `json:"meal_count"`
	TotalProtein float64 `json:"total_protein"`
	TotalCarbs   float64 `json:"total_carbs"`
	TotalFat     float64 `json:"total_fat"`
}

type AchievementDef struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Earned      func(LifetimeStats) bool `json:"-"`
}

// achievementCatalog is the fixed unlockable table. The streak_21 and
// streak_42 thresholds are kept for client compatibility even though the
// 7-day-window metric cannot reach them; see the service tests.
var achievementCatalog = []AchievementDef{
	{Key: "streak_7", Name: "Week Warrior", Description: "Log meals on 7 days within a week", Points: 50,
		Earned: func(s LifetimeStats) bool { return s.StreakDays >= 7 }},
	{Key: "streak_21", Name: "Habit Builder", Description: "Keep a 21-day logging streak", Points: 150,
		Earned: func(s LifetimeStats) bool { return s.StreakDays >= 21 }},
	{Key: "streak_42", Name: "Lifestyle Legend", Description: "Keep a 42-day logging streak", Points: 300,
		Earned: func(s LifetimeStats) bool { return s.StreakDays >= 42 }},
	{Key: "protein_500", Name: "Protein Pioneer", Description: "Log 500g of lifetime protein", Points: 30,
		Earned: func(s LifetimeStats) bool { return s.TotalProtein > 500 }},
	{Key: "protein_2000", Name: "Muscle Fuel Master", Description: "Log 2000g of lifetime protein", Points: 100,
		Earned: func(s LifetimeStats) bool { return s.TotalProtein > 2000 }},
	{Key: "meals_10", Name: "Getting Started", Description: "Log 10 meals", Points: 20,
		Earned: func(s LifetimeStats) bool { return s.MealCount >= 10 }},
	{Key: "meals_50", Name: "Regular Logger", Description: "Log 50 meals", Points: 75,
		Earned: func(s LifetimeStats) bool { return s.MealCount >= 50 }},
	{Key: "meals_100", Name: "Century Club", Description: "Log 100 meals", Points: 200,
		Earned: func(s LifetimeStats) bool { return s.MealCount >= 100 }},
}

type AchievementService struct{ db *gorm.DB }

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

// Stats aggregates the user's lifetime numbers in two queries.
func (s *AchievementService) Stats(ctx context.Context, userID uint) (LifetimeStats, error) {
	var stats LifetimeStats

	since := time.Now().AddDate(0, 0, -7)
	err := s.db.WithContext(ctx).
		Model(&models.FoodLog{}).
		Where("user_id = ? AND logged_at >= ?", userID, since).
		Select("COUNT(DISTINCT DATE(logged_at))").
		Scan(&stats.StreakDays).Error
	if err != nil {
		return stats, err
	}

	type totals struct {
		MealCount    int64
		TotalProtein float64
		TotalCarbs   float64
		TotalFat     float64
	}
	var t totals
	err = s.db.WithContext(ctx).
		Model(&models.FoodLog{}).
		Where("user_id = ?", userID).
		Select("COUNT(*) AS meal_count, COALESCE(SUM(protein),0) AS total_protein, COALESCE(SUM(carbs),0) AS total_carbs, COALESCE(SUM(fat),0) AS total_fat").
		Scan(&t).Error
	if err != nil {
		return stats, err
	}

	stats.MealCount = t.MealCount
	stats.TotalProtein = t.TotalProtein
	stats.TotalCarbs = t.TotalCarbs
	stats.TotalFat = t.TotalFat
	return stats, nil
}

// Evaluate runs the lazy on-read unlock pass: every catalog entry whose
// condition holds and that the user has not earned yet is recorded and
// returned as newly earned. Already-earned entries are never re-awarded.
func (s *AchievementService) Evaluate(ctx context.Context, userID uint) (earned []models.UserAchievement, newlyEarned []models.UserAchievement, err error) {
	stats, err := s.Stats(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_at ASC").
		Find(&earned).Error; err != nil {
		return nil, nil, err
	}

	have := make(map[string]bool, len(earned))
	for _, a := range earned {
		have[a.AchievementKey] = true
	}

	now := time.Now()
	for _, def := range achievementCatalog {
		if have[def.Key] || !def.Earned(stats) {
			continue
		}
		row := models.UserAchievement{
			UserID:                 userID,
			AchievementKey:         def.Key,
			AchievementName:        def.Name,
			AchievementDescription: def.Description,
			EarnedAt:               now,
			PointsAwarded:          def.Points,
		}
		// DoNothing keeps a concurrent evaluation from double-awarding.
		res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_key"}},
			DoNothing: true,
		}).Create(&row)
		if res.Error != nil {
			return nil, nil, res.Error
		}
		if res.RowsAffected == 0 {
			continue // another request got there first
		}
		earned = append(earned, row)
		newlyEarned = append(newlyEarned, row)
	}

	return earned, newlyEarned, nil
}

// TotalPoints is the lifetime sum backing the level calculation: meal
// points plus achievement rewards.
func (s *AchievementService) TotalPoints(ctx context.Context, userID uint) (int, error) {
	var mealPoints int
	err := s.db.WithContext(ctx).
		Model(&models.FoodLog{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points_awarded),0)").
		Scan(&mealPoints).Error
	if err != nil {
		return 0, err
	}

	var achievementPoints int
	err = s.db.WithContext(ctx).
		Model(&models.UserAchievement{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points_awarded),0)").
		Scan(&achievementPoints).Error
	if err != nil {
		return 0, err
	}

	return mealPoints + achievementPoints, nil
}

// Catalog exposes the fixed achievement table for the API layer.
func Catalog() []AchievementDef {
	return achievementCatalog
}
