package controllers

import (
	"io"
	"net/http"

	"github.com/iamomal/nutrivision-backend/services"
	"github.com/iamomal/nutrivision-backend/utils"

	"github.com/gin-gonic/gin"
)

const maxImageBytes = 10 << 20 // 10 MB

type PredictController struct {
	Classifier services.Classifier
	Meals      *services.MealLogService
	Hub        *services.RealtimeHub
}

func NewPredictController(classifier services.Classifier, meals *services.MealLogService, hub *services.RealtimeHub) *PredictController {
	return &PredictController{Classifier: classifier, Meals: meals, Hub: hub}
}

// PredictFood accepts a multipart meal photo, classifies it, and logs the
// meal with points and weekly progress in one shot.
func (h *PredictController) PredictFood(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'image' file"})
		return
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}

	mealType := c.DefaultPostForm("meal_type", "other")

	label, confidence, err := h.Classifier.Classify(c.Request.Context(), image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "classification failed", "detail": err.Error()})
		return
	}

	// The photo is kept for the log history; a failed upload should not
	// cost the user their points.
	imagePath, err := utils.UploadImageToS3(image, header.Header.Get("Content-Type"), "meal-photos")
	if err != nil {
		utils.Log().Warnw("meal photo upload failed", "user_id", userID, "error", err)
		imagePath = ""
	}

	logged, err := h.Meals.LogMeal(c.Request.Context(), userID, label, confidence, mealType, imagePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.Hub.NotifyMealLogged(userID, logged)

	c.JSON(http.StatusOK, gin.H{
		"food_name":      logged.FoodName,
		"label":          label,
		"confidence":     logged.Confidence,
		"nutrition":      logged.Nutrition,
		"points_awarded": logged.PointsAwarded,
		"goal_type":      logged.GoalType,
		"log_id":         logged.LogID,
		"image_url":      imagePath,
	})
}
