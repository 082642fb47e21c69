package controllers

import (
	"net/http"
	"time"

	"github.com/iamomal/nutrivision-backend/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *services.ProgressService
	Goals    *services.GoalService
}

func NewProgressController(progress *services.ProgressService, goals *services.GoalService) *ProgressController {
	return &ProgressController{Progress: progress, Goals: goals}
}

// GetWeeklyProgress returns the aggregate bucket for one week (current by
// default, or ?week_start=YYYY-MM-DD) plus the active weekly points target.
func (h *ProgressController) GetWeeklyProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now()
	at := now
	if v := c.Query("week_start"); v != "" {
		ws, err := time.ParseInLocation("2006-01-02", v, now.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_start"})
			return
		}
		at = ws
	}

	progress, err := h.Progress.GetWeekProgress(c.Request.Context(), userID, at)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	target := 100
	if goal, err := h.Goals.ActiveGoal(c.Request.Context(), userID); err == nil && goal != nil {
		target = goal.WeeklyPointsTarget
	}

	c.JSON(http.StatusOK, gin.H{
		"week_start":     progress.WeekStartDate.Format("2006-01-02"),
		"total_points":   progress.TotalPoints,
		"meals_logged":   progress.MealsLogged,
		"total_calories": progress.TotalCalories,
		"total_protein":  progress.TotalProtein,
		"total_carbs":    progress.TotalCarbs,
		"total_fat":      progress.TotalFat,
		"target":         target,
	})
}
