package services

import (
	"errors"
	"time"

	"github.com/iamomal/nutrivision-backend/config"
	"github.com/iamomal/nutrivision-backend/models"
	"github.com/iamomal/nutrivision-backend/utils"

	"gorm.io/gorm"
)

var ErrUserExists = errors.New("user already exists")

// RegisterUser creates an account plus its default maintain goal in one
// transaction.
func RegisterUser(username, email, password string) (*models.User, error) {
	var existing models.User
	err := config.DB.
		Where("username = ? OR email = ?", username, email).
		First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		goal := &models.UserGoal{
			UserID:             user.ID,
			GoalType:           models.GoalMaintain,
			WeeklyPointsTarget: 100,
			CalorieTarget:      2000,
			ProteinTarget:      120,
			StartDate:          time.Now(),
			IsActive:           true,
		}
		return tx.Create(goal).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// AuthenticateUser verifies credentials and returns a signed token.
func AuthenticateUser(username, password string) (string, *models.User, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, errors.New("invalid credentials")
	}

	now := time.Now()
	user.LastLogin = &now
	config.DB.Model(&user).Update("last_login", now)

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
