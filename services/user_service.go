package services

import (
	"errors"
	"fmt"

	"github.com/iamomal/nutrivision-backend/config"
	"github.com/iamomal/nutrivision-backend/models"
	"github.com/iamomal/nutrivision-backend/utils"
)

func FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"user_id":         user.ID,
		"username":        user.Username,
		"email":           user.Email,
		"profile_picture": user.ProfilePicture,
		"created_at":      user.CreatedAt,
	}, nil
}

// UpdateUserProfile changes username/email; uniqueness violations surface
// as a conflict error to the controller.
func UpdateUserProfile(userID uint, username, email string) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}

	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}

	return config.DB.Save(user).Error
}

func ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return errors.New("current password is incorrect")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return config.DB.Model(user).Update("password_hash", hashed).Error
}

// UpdateProfilePicture uploads a base64 data URI to S3 and stores the URL.
func UpdateProfilePicture(userID uint, base64Image string) (string, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return "", err
	}

	url, err := utils.UploadBase64ImageToS3(base64Image, fmt.Sprintf("profile-pictures/%d", userID))
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}

	if err := config.DB.Model(user).Update("profile_picture", url).Error; err != nil {
		return "", err
	}
	return url, nil
}
