package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iamomal/nutrivision-backend/models"
	"github.com/iamomal/nutrivision-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubClassifier struct {
	label      string
	confidence float64
}

func (s stubClassifier) Classify(ctx context.Context, image []byte) (string, float64, error) {
	return s.label, s.confidence, nil
}

func newHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&models.FoodNutrition{},
		&models.UserGoal{},
		&models.FoodLog{},
		&models.WeeklyProgress{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestPredictFood_ResponseCarriesDisplayName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newHandlerTestDB(t)

	nutrition := services.NewNutritionService(db)
	meals := services.NewMealLogService(db, nutrition, services.NewGoalService(db), services.NewProgressService(db))
	pc := NewPredictController(stubClassifier{"grilled_salmon", 0.91}, meals, services.NewRealtimeHub())

	r := gin.New()
	r.POST("/api/predict", func(c *gin.Context) {
		c.Set("userID", uint(1))
		pc.PredictFood(c)
	})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", "meal.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("image-bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.WriteField("meal_type", "dinner"); err != nil {
		t.Fatalf("write meal_type: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/predict", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["food_name"] != "Grilled Salmon" {
		t.Fatalf("food_name = %v, want display name", resp["food_name"])
	}
	if resp["label"] != "grilled_salmon" {
		t.Fatalf("label = %v, want raw class label", resp["label"])
	}
	if resp["confidence"] != 0.91 {
		t.Fatalf("confidence = %v", resp["confidence"])
	}
}
