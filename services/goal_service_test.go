package services

import (
	"context"
	"testing"

	"github.com/iamomal/nutrivision-backend/models"
)

func TestActiveGoalType_DefaultsToMaintain(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)

	got, err := svc.ActiveGoalType(context.Background(), 1)
	if err != nil {
		t.Fatalf("active goal type: %v", err)
	}
	if got != models.GoalMaintain {
		t.Fatalf("got %q, want maintain", got)
	}
}

func TestSetGoal_DeactivatesPriorGoals(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	ctx := context.Background()

	if _, err := svc.SetGoal(ctx, 1, GoalInput{GoalType: models.GoalLoseWeight}); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if _, err := svc.SetGoal(ctx, 1, GoalInput{GoalType: models.GoalAthletic, WeeklyPointsTarget: 150}); err != nil {
		t.Fatalf("second set: %v", err)
	}

	goal, err := svc.ActiveGoal(ctx, 1)
	if err != nil {
		t.Fatalf("active goal: %v", err)
	}
	if goal == nil || goal.GoalType != models.GoalAthletic || goal.WeeklyPointsTarget != 150 {
		t.Fatalf("active goal wrong: %+v", goal)
	}

	var active int64
	if err := db.Model(&models.UserGoal{}).Where("user_id = ? AND is_active = ?", 1, true).Count(&active).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if active != 1 {
		t.Fatalf("expected exactly one active goal, got %d", active)
	}

	// history stays
	var total int64
	if err := db.Model(&models.UserGoal{}).Where("user_id = ?", 1).Count(&total).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 goal rows, got %d", total)
	}
}

func TestSetGoal_FillsDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)

	goal, err := svc.SetGoal(context.Background(), 1, GoalInput{})
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if goal.GoalType != models.GoalMaintain || goal.WeeklyPointsTarget != 100 ||
		goal.CalorieTarget != 2000 || goal.ProteinTarget != 120 {
		t.Fatalf("defaults wrong: %+v", goal)
	}
}

func TestSetGoal_ScopedToUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	ctx := context.Background()

	if _, err := svc.SetGoal(ctx, 1, GoalInput{GoalType: models.GoalLoseWeight}); err != nil {
		t.Fatalf("user1 set: %v", err)
	}
	if _, err := svc.SetGoal(ctx, 2, GoalInput{GoalType: models.GoalGainWeight}); err != nil {
		t.Fatalf("user2 set: %v", err)
	}

	g1, err := svc.ActiveGoalType(ctx, 1)
	if err != nil {
		t.Fatalf("user1 type: %v", err)
	}
	if g1 != models.GoalLoseWeight {
		t.Fatalf("user2's goal clobbered user1's: %q", g1)
	}
}
