package routes

import (
	"net/http"

	"github.com/iamomal/nutrivision-backend/controllers"
	"github.com/iamomal/nutrivision-backend/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Controllers bundles everything SetupRouter needs to wire.
type Controllers struct {
	Predict      *controllers.PredictController
	Progress     *controllers.ProgressController
	Logs         *controllers.LogController
	Goals        *controllers.GoalController
	Achievements *controllers.AchievementController
	Dashboard    *controllers.DashboardController
	Realtime     *controllers.RealtimeController
}

func SetupRouter(hc Controllers) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.MonitorMiddleware())
	r.Use(middlewares.RateLimitMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected API routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/predict", hc.Predict.PredictFood)

		api.GET("/progress", hc.Progress.GetWeeklyProgress)
		api.GET("/logs", hc.Logs.GetRecentLogs)

		api.GET("/goals", hc.Goals.GetActiveGoal)
		api.POST("/goals", hc.Goals.SetGoal)

		api.GET("/achievements", hc.Achievements.GetAchievements)
		api.GET("/achievements/catalog", hc.Achievements.GetCatalog)

		api.GET("/dashboard", hc.Dashboard.GetDashboard)

		api.GET("/ws/events", hc.Realtime.EventsWS)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/profile/password", controllers.ChangePassword)
		user.POST("/profile/picture", controllers.UploadProfilePicture)
	}

	// Dev helpers
	dev := r.Group("/dev")
	dev.Use(middlewares.AuthMiddleware())
	{
		dev.POST("/upload", controllers.DevUploadImage)
	}

	return r
}
