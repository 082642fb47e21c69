package main

import (
	"context"
	"os"

	"github.com/iamomal/nutrivision-backend/config"
	"github.com/iamomal/nutrivision-backend/controllers"
	"github.com/iamomal/nutrivision-backend/middlewares"
	"github.com/iamomal/nutrivision-backend/routes"
	"github.com/iamomal/nutrivision-backend/services"
	"github.com/iamomal/nutrivision-backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	middlewares.InitPrometheus()

	db := config.DB
	ctx := context.Background()

	nutrition := services.NewNutritionService(db)
	if err := nutrition.SeedReferenceData(ctx); err != nil {
		utils.Log().Fatalw("seeding nutrition reference data failed", "error", err)
	}

	goals := services.NewGoalService(db)
	progress := services.NewProgressService(db)
	meals := services.NewMealLogService(db, nutrition, goals, progress)
	achievements := services.NewAchievementService(db)
	dashboard := services.NewDashboardService(achievements, meals, goals)
	hub := services.NewRealtimeHub()

	classifier, err := services.NewRekognitionClassifier()
	if err != nil {
		utils.Log().Fatalw("rekognition client init failed", "error", err)
	}

	r := routes.SetupRouter(routes.Controllers{
		Predict:      controllers.NewPredictController(classifier, meals, hub),
		Progress:     controllers.NewProgressController(progress, goals),
		Logs:         controllers.NewLogController(meals),
		Goals:        controllers.NewGoalController(goals),
		Achievements: controllers.NewAchievementController(achievements, hub),
		Dashboard:    controllers.NewDashboardController(dashboard),
		Realtime:     controllers.NewRealtimeController(hub),
	})

	go middlewares.CleanupVisitors()

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		utils.Log().Fatalw("server exited", "error", err)
	}
}
