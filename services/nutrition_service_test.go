package services

import (
	"context"
	"testing"

	"github.com/iamomal/nutrivision-backend/models"
)

func TestLookup_KnownDish(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	ctx := context.Background()

	if err := svc.SeedReferenceData(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := svc.Lookup(ctx, "grilled_salmon")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.Calories != 280 || got.Protein != 39 || got.HealthScore != 95 {
		t.Fatalf("grilled_salmon facts wrong: %+v", got)
	}
}

func TestLookup_UnknownDishFallsBackToDefault(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)

	got, err := svc.Lookup(context.Background(), "mystery_stew")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	want := models.FoodNutrition{FoodName: "mystery_stew", Calories: 250, Protein: 10, Carbs: 30, Fat: 10, HealthScore: 50}
	if got.FoodName != want.FoodName || got.Calories != want.Calories || got.Protein != want.Protein ||
		got.Carbs != want.Carbs || got.Fat != want.Fat || got.HealthScore != want.HealthScore {
		t.Fatalf("default facts wrong: %+v", got)
	}
}

func TestSeedReferenceData_IdempotentAndPreservesEdits(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	ctx := context.Background()

	if err := svc.SeedReferenceData(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	var before int64
	if err := db.Model(&models.FoodNutrition{}).Count(&before).Error; err != nil {
		t.Fatalf("count: %v", err)
	}

	// Manual edits to a reference row must survive a reseed.
	if err := db.Model(&models.FoodNutrition{}).
		Where("food_name = ?", "apple_pie").
		Update("calories", 999).Error; err != nil {
		t.Fatalf("edit: %v", err)
	}

	if err := svc.SeedReferenceData(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var after int64
	if err := db.Model(&models.FoodNutrition{}).Count(&after).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if before != after {
		t.Fatalf("reseed changed row count: %d -> %d", before, after)
	}

	got, err := svc.Lookup(ctx, "apple_pie")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.Calories != 999 {
		t.Fatalf("reseed overwrote manual edit: %+v", got)
	}
}
