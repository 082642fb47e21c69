package services

import (
	"context"
	"testing"
	"time"

	"github.com/iamomal/nutrivision-backend/models"
)

func seedLogs(t *testing.T, svc *AchievementService, userID uint, n int, protein float64, daysApart bool) {
	t.Helper()
	now := time.Now()
	for i := 0; i < n; i++ {
		at := now
		if daysApart {
			at = now.AddDate(0, 0, -i)
		}
		log := models.FoodLog{
			UserID:        userID,
			FoodName:      "grilled_salmon",
			Protein:       protein,
			PointsAwarded: 10,
			LoggedAt:      at,
		}
		if err := svc.db.Create(&log).Error; err != nil {
			t.Fatalf("seed log %d: %v", i, err)
		}
	}
}

func TestEvaluate_MealCountUnlocksOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewAchievementService(db)
	ctx := context.Background()

	seedLogs(t, svc, 1, 10, 5, false)

	earned, newly, err := svc.Evaluate(ctx, 1)
	if err != nil {
		t.Fatalf("first evaluate: %v", err)
	}
	found := false
	for _, a := range newly {
		if a.AchievementKey == "meals_10" {
			found = true
			if a.PointsAwarded != 20 {
				t.Fatalf("meals_10 reward = %d, want 20", a.PointsAwarded)
			}
		}
	}
	if !found {
		t.Fatalf("meals_10 not in newly earned: %+v", newly)
	}
	if len(earned) < len(newly) {
		t.Fatalf("earned (%d) must include newly earned (%d)", len(earned), len(newly))
	}

	// Second evaluation must not re-award anything.
	_, newly2, err := svc.Evaluate(ctx, 1)
	if err != nil {
		t.Fatalf("second evaluate: %v", err)
	}
	if len(newly2) != 0 {
		t.Fatalf("re-evaluation re-awarded: %+v", newly2)
	}

	var count int64
	if err := db.Model(&models.UserAchievement{}).
		Where("user_id = ? AND achievement_key = ?", 1, "meals_10").
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("meals_10 rows = %d, want 1", count)
	}
}

func TestEvaluate_ProteinThresholdIsStrict(t *testing.T) {
	db := newTestDB(t)
	svc := NewAchievementService(db)
	ctx := context.Background()

	// 10 meals x 50g = exactly 500g; protein_500 requires strictly more.
	seedLogs(t, svc, 1, 10, 50, false)
	_, newly, err := svc.Evaluate(ctx, 1)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	for _, a := range newly {
		if a.AchievementKey == "protein_500" {
			t.Fatalf("protein_500 awarded at exactly 500g")
		}
	}

	seedLogs(t, svc, 1, 1, 1, false)
	_, newly, err = svc.Evaluate(ctx, 1)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	found := false
	for _, a := range newly {
		if a.AchievementKey == "protein_500" {
			found = true
		}
	}
	if !found {
		t.Fatalf("protein_500 not awarded past 500g")
	}
}

func TestEvaluate_StreakUsesTrailingWeekWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewAchievementService(db)
	ctx := context.Background()

	// One log on each of the last 7 distinct days.
	seedLogs(t, svc, 1, 7, 5, true)

	stats, err := svc.Stats(ctx, 1)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.StreakDays != 7 {
		t.Fatalf("streak_days = %d, want 7", stats.StreakDays)
	}

	_, newly, err := svc.Evaluate(ctx, 1)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	gotStreak7 := false
	for _, a := range newly {
		// The window caps distinct days at 7, so the higher streak tiers
		// can never trigger regardless of how long the user keeps going.
		if a.AchievementKey == "streak_21" || a.AchievementKey == "streak_42" {
			t.Fatalf("%s awarded from a 7-day window", a.AchievementKey)
		}
		if a.AchievementKey == "streak_7" {
			gotStreak7 = true
		}
	}
	if !gotStreak7 {
		t.Fatalf("streak_7 not awarded after 7 distinct days")
	}
}

func TestTotalPoints_SumsMealsAndAchievements(t *testing.T) {
	db := newTestDB(t)
	svc := NewAchievementService(db)
	ctx := context.Background()

	seedLogs(t, svc, 1, 10, 5, false) // 10 meals x 10 points

	if _, _, err := svc.Evaluate(ctx, 1); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	got, err := svc.TotalPoints(ctx, 1)
	if err != nil {
		t.Fatalf("total points: %v", err)
	}
	// 100 meal points + 20 for meals_10
	if got != 120 {
		t.Fatalf("total_points = %d, want 120", got)
	}
}
