package services

import (
	"context"
	"strings"
	"time"

	"github.com/iamomal/nutrivision-backend/models"
	"github.com/iamomal/nutrivision-backend/utils"

	"gorm.io/gorm"
)

// MealLogService ties one classified meal together: nutrition lookup,
// goal resolution, scoring, and the two persistence writes.
type MealLogService struct {
	db        *gorm.DB
	nutrition *NutritionService
	goals     *GoalService
	progress  *ProgressService
}

func NewMealLogService(db *gorm.DB, nutrition *NutritionService, goals *GoalService, progress *ProgressService) *MealLogService {
	return &MealLogService{db: db, nutrition: nutrition, goals: goals, progress: progress}
}

type LoggedMeal struct {
	FoodName      string               `json:"food_name"`
	Confidence    float64              `json:"confidence"`
	Nutrition     models.FoodNutrition `json:"nutrition"`
	PointsAwarded int                  `json:"points_awarded"`
	GoalType      models.GoalType      `json:"goal_type"`
	LogID         uint                 `json:"log_id"`
}

// LogMeal runs the full workflow for one submitted meal. The log insert
// and the weekly merge share one transaction: either both land or neither
// does.
func (s *MealLogService) LogMeal(ctx context.Context, userID uint, foodName string, confidence float64, mealType, imagePath string) (*LoggedMeal, error) {
	nutrition, err := s.nutrition.Lookup(ctx, foodName)
	if err != nil {
		return nil, err
	}

	goalType, err := s.goals.ActiveGoalType(ctx, userID)
	if err != nil {
		return nil, err
	}

	points := CalculatePoints(nutrition, goalType)
	loggedAt := time.Now()

	entry := models.FoodLog{
		UserID:          userID,
		FoodName:        foodName,
		ConfidenceScore: confidence,
		ImagePath:       imagePath,
		MealType:        mealType,
		Calories:        nutrition.Calories,
		Protein:         nutrition.Protein,
		Carbs:           nutrition.Carbs,
		Fat:             nutrition.Fat,
		HealthScore:     nutrition.HealthScore,
		PointsAwarded:   points,
		LoggedAt:        loggedAt,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return s.progress.ApplyMeal(ctx, tx, userID, loggedAt, points, nutrition)
	})
	if err != nil {
		utils.Log().Errorw("meal log rolled back", "user_id", userID, "food", foodName, "error", err)
		return nil, err
	}

	return &LoggedMeal{
		FoodName:      TitleizeFoodName(foodName),
		Confidence:    confidence,
		Nutrition:     nutrition,
		PointsAwarded: points,
		GoalType:      goalType,
		LogID:         entry.ID,
	}, nil
}

// RecentLogs returns the newest entries, capped at limit (default 10).
func (s *MealLogService) RecentLogs(ctx context.Context, userID uint, limit int) ([]models.FoodLog, error) {
	if limit <= 0 {
		limit = 10
	}
	var logs []models.FoodLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// TodayNutrition sums the macro snapshots of everything logged today.
func (s *MealLogService) TodayNutrition(ctx context.Context, userID uint) (models.FoodNutrition, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	type sums struct {
		Calories float64
		Protein  float64
		Carbs    float64
		Fat      float64
	}
	var t sums
	err := s.db.WithContext(ctx).
		Model(&models.FoodLog{}).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Select("COALESCE(SUM(calories),0) AS calories, COALESCE(SUM(protein),0) AS protein, COALESCE(SUM(carbs),0) AS carbs, COALESCE(SUM(fat),0) AS fat").
		Scan(&t).Error
	if err != nil {
		return models.FoodNutrition{}, err
	}
	return models.FoodNutrition{Calories: t.Calories, Protein: t.Protein, Carbs: t.Carbs, Fat: t.Fat}, nil
}

// TitleizeFoodName turns a class label like "grilled_salmon" into
// "Grilled Salmon" for display.
func TitleizeFoodName(label string) string {
	words := strings.Split(label, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
