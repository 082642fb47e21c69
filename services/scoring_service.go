package services

import "github.com/iamomal/nutrivision-backend/models"

const (
	MinMealPoints = -15
	MaxMealPoints = 25
)

// CalculatePoints turns one meal's nutrition facts and the user's active
// goal into a bounded point value. Pure function; every write path and the
// /predict response go through it.
//
// Base points come from the health score, then the goal applies its own
// rule set on top. An unknown goal type scores like "maintain".
func CalculatePoints(nutrition models.FoodNutrition, goalType models.GoalType) int {
	healthScore := nutrition.HealthScore
	calories := nutrition.Calories
	protein := nutrition.Protein

	var points int
	switch {
	case healthScore >= 80:
		points = 15
	case healthScore >= 60:
		points = 10
	case healthScore >= 40:
		points = 5
	default:
		points = -5
	}

	switch goalType {
	case models.GoalLoseWeight:
		if calories > 400 {
			points -= 5
		} else if calories < 250 && healthScore >= 70 {
			points += 10
		}
		// extra penalty for calorie-dense junk, stacks with the above
		if calories > 300 && healthScore < 40 {
			points -= 5
		}

	case models.GoalGainWeight:
		if protein > 25 {
			points += 10
		} else if protein > 15 {
			points += 5
		}
		if calories > 350 && healthScore >= 60 {
			points += 5
		}
		// junk food still brings calories; floor instead of penalizing.
		// Must run after the additive rules above.
		if healthScore < 40 && points < 0 {
			points = 0
		}

	case models.GoalEatHealthier:
		if healthScore >= 85 {
			points += 15
		} else if healthScore >= 70 {
			points += 10
		} else if healthScore < 40 {
			points -= 10
		}
		if healthScore < 30 {
			points -= 5
		}

	case models.GoalAthletic:
		if protein > 25 {
			points += 10
		} else if protein > 15 {
			points += 5
		}
		if healthScore >= 70 {
			points += 5
		}
	}

	if points > MaxMealPoints {
		points = MaxMealPoints
	}
	if points < MinMealPoints {
		points = MinMealPoints
	}
	return points
}
