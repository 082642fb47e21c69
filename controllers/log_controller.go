package controllers

import (
	"net/http"
	"strconv"

	"github.com/iamomal/nutrivision-backend/services"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	Meals *services.MealLogService
}

func NewLogController(meals *services.MealLogService) *LogController {
	return &LogController{Meals: meals}
}

func (h *LogController) GetRecentLogs(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := 10
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	logs, err := h.Meals.RecentLogs(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs, "count": len(logs)})
}
