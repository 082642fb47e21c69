package controllers

import (
	"net/http"

	"github.com/iamomal/nutrivision-backend/utils"

	"github.com/gin-gonic/gin"
)

type DevUploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// DevUploadImage pushes a base64 meal photo straight to storage without
// classifying or logging it. Used to exercise the S3 path from dev
// tooling.
func DevUploadImage(c *gin.Context) {
	var req DevUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_base64 is required"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "meal-photos/dev")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
