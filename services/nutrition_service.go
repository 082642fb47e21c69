package services

import (
	"context"
	"errors"

	"github.com/iamomal/nutrivision-backend/models"

	"gorm.io/gorm"
)

type NutritionService struct{ db *gorm.DB }

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

// DefaultNutrition is substituted when a label has no reference row.
// A miss is not an error; the caller always gets usable facts.
func DefaultNutrition(foodName string) models.FoodNutrition {
	return models.FoodNutrition{
		FoodName:    foodName,
		Calories:    250,
		Protein:     10,
		Carbs:       30,
		Fat:         10,
		HealthScore: 50,
	}
}

// Lookup resolves a dish label to its per-serving reference facts,
// falling back to DefaultNutrition for unknown labels.
func (s *NutritionService) Lookup(ctx context.Context, foodName string) (models.FoodNutrition, error) {
	var nutrition models.FoodNutrition
	err := s.db.WithContext(ctx).
		Where("food_name = ?", foodName).
		First(&nutrition).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultNutrition(foodName), nil
		}
		return models.FoodNutrition{}, err
	}
	return nutrition, nil
}

// SeedReferenceData loads the dish catalog, inserting rows that are not
// present yet. Existing rows are left untouched so manual edits survive
// restarts.
func (s *NutritionService) SeedReferenceData(ctx context.Context) error {
	for _, entry := range nutritionCatalog {
		row := entry
		err := s.db.WithContext(ctx).
			Where("food_name = ?", row.FoodName).
			FirstOrCreate(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}
