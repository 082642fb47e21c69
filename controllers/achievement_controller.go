package controllers

import (
	"net/http"

	"github.com/iamomal/nutrivision-backend/services"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	Achievements *services.AchievementService
	Hub          *services.RealtimeHub
}

func NewAchievementController(achievements *services.AchievementService, hub *services.RealtimeHub) *AchievementController {
	return &AchievementController{Achievements: achievements, Hub: hub}
}

// GetAchievements re-evaluates the unlock table and returns everything
// earned so far plus whatever unlocked on this call. Fresh unlocks are
// also pushed over the websocket hub.
func (h *AchievementController) GetAchievements(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	earned, newlyEarned, err := h.Achievements.Evaluate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for _, a := range newlyEarned {
		h.Hub.NotifyAchievementUnlocked(userID, a)
	}

	c.JSON(http.StatusOK, gin.H{
		"achievements":     earned,
		"new_achievements": newlyEarned,
	})
}

func (h *AchievementController) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"catalog": services.Catalog()})
}
