package services

import (
	"errors"
	"testing"

	"github.com/iamomal/nutrivision-backend/config"
	"github.com/iamomal/nutrivision-backend/models"
	"github.com/iamomal/nutrivision-backend/utils"
)

func useTestDB(t *testing.T) {
	t.Helper()
	prev := config.DB
	config.DB = newTestDB(t)
	t.Cleanup(func() { config.DB = prev })
}

func TestRegisterUser_CreatesDefaultGoal(t *testing.T) {
	useTestDB(t)

	user, err := RegisterUser("omal", "omal@example.com", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("user id not set")
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password stored in plain text")
	}

	var goal models.UserGoal
	if err := config.DB.Where("user_id = ? AND is_active = ?", user.ID, true).First(&goal).Error; err != nil {
		t.Fatalf("default goal missing: %v", err)
	}
	if goal.GoalType != models.GoalMaintain || goal.WeeklyPointsTarget != 100 {
		t.Fatalf("default goal wrong: %+v", goal)
	}
}

func TestRegisterUser_RejectsDuplicates(t *testing.T) {
	useTestDB(t)

	if _, err := RegisterUser("omal", "omal@example.com", "secret123"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := RegisterUser("omal", "other@example.com", "secret123"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("duplicate username: got %v, want ErrUserExists", err)
	}
	if _, err := RegisterUser("other", "omal@example.com", "secret123"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("duplicate email: got %v, want ErrUserExists", err)
	}
}

func TestAuthenticateUser(t *testing.T) {
	useTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	user, err := RegisterUser("omal", "omal@example.com", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, got, err := AuthenticateUser("omal", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("wrong user: %d != %d", got.ID, user.ID)
	}
	id, err := utils.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if id != user.ID {
		t.Fatalf("token user id = %d, want %d", id, user.ID)
	}
	if got.LastLogin == nil {
		t.Fatalf("last_login not set")
	}

	if _, _, err := AuthenticateUser("omal", "wrongpass"); err == nil {
		t.Fatalf("wrong password accepted")
	}
	if _, _, err := AuthenticateUser("nobody", "secret123"); err == nil {
		t.Fatalf("unknown user accepted")
	}
}
