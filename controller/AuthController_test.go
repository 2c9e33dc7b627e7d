package controller

import (
	"errors"
	"testing"

	"planboard/model"
	"planboard/service"
	"planboard/util"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
Auth endpoint test cases:

1. TestRegister_Success - 201 with the new user's id
2. TestRegister_Duplicate - 409 when email or username is taken
3. TestRegister_BadUsername - 400 for a username outside the format rule
4. TestLogin_Success - 200 with tokens and the refresh cookie set
5. TestLogin_WrongPassword - 401
6. TestLogin_Unverified - 403 with the resend hint
*/

func newAuthApp(userRepo *stubUserRepo, credRepo *stubCredentialRepo, refreshRepo *stubRefreshTokenRepo, roleRepo *stubRoleRepo, otpRepo *stubOTPRepo) *fiber.App {
	otpSvc := service.NewOTPService(otpRepo, userRepo, &stubThrottle{allowed: true}, stubSender{})
	authSvc := service.NewAuthService(userRepo, credRepo, refreshRepo, roleRepo, otpSvc)
	ac := NewAuthController(authSvc)

	app := fiber.New()
	app.Post("/auth/register", ac.Register)
	app.Post("/auth/login", ac.Login)
	return app
}

func TestRegister_Success(t *testing.T) {
	userRepo := &stubUserRepo{
		createFunc: func(user *model.User) error {
			user.ID = uuid.New()
			return nil
		},
		getByEmailFunc: func(email string) (*model.User, error) {
			return &model.User{ID: uuid.New(), Email: email}, nil
		},
	}
	credRepo := &stubCredentialRepo{
		createFunc: func(*model.Credential) error { return nil },
	}
	roleRepo := &stubRoleRepo{
		getByCodeFunc: func(code string) (*model.Role, error) {
			return &model.Role{ID: uuid.New(), Code: code}, nil
		},
	}
	otpRepo := &stubOTPRepo{
		upsertFunc: func(*model.OTPCode) error { return nil },
	}

	app := newAuthApp(userRepo, credRepo, &stubRefreshTokenRepo{}, roleRepo, otpRepo)

	status, body := postJSON(t, app, "POST", "/auth/register", map[string]string{
		"name":     "Test User",
		"username": "test_user",
		"email":    "user@example.com",
		"password": "s3cret-password",
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "user@example.com", body["email"])
}

func TestRegister_Duplicate(t *testing.T) {
	userRepo := &stubUserRepo{
		createFunc: func(*model.User) error {
			return errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)
		},
	}
	roleRepo := &stubRoleRepo{
		getByCodeFunc: func(code string) (*model.Role, error) {
			return &model.Role{Code: code}, nil
		},
	}

	app := newAuthApp(userRepo, &stubCredentialRepo{}, &stubRefreshTokenRepo{}, roleRepo, &stubOTPRepo{})

	status, _ := postJSON(t, app, "POST", "/auth/register", map[string]string{
		"name":     "Test User",
		"username": "test_user",
		"email":    "taken@example.com",
		"password": "s3cret-password",
	})

	assert.Equal(t, fiber.StatusConflict, status)
}

func TestRegister_BadUsername(t *testing.T) {
	app := newAuthApp(&stubUserRepo{}, &stubCredentialRepo{}, &stubRefreshTokenRepo{}, &stubRoleRepo{}, &stubOTPRepo{})

	status, _ := postJSON(t, app, "POST", "/auth/register", map[string]string{
		"name":     "Test User",
		"username": "Bad Username!",
		"email":    "user@example.com",
		"password": "s3cret-password",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func loginUser(t *testing.T, password string) *model.User {
	t.Helper()

	hashed, err := util.HashPassword(password)
	require.NoError(t, err)

	return &model.User{
		ID:              uuid.New(),
		Email:           "user@example.com",
		IsEmailVerified: true,
		IsActive:        true,
		Credentials: []model.Credential{
			{Type: model.CredTypePassword, Value: hashed, Active: true},
		},
		Roles: []model.Role{{Code: "user"}},
	}
}

func TestLogin_Success(t *testing.T) {
	user := loginUser(t, "s3cret-password")

	userRepo := &stubUserRepo{
		getByEmailFunc: func(string) (*model.User, error) { return user, nil },
	}
	refreshRepo := &stubRefreshTokenRepo{
		createFunc: func(*model.RefreshToken) error { return nil },
	}

	app := newAuthApp(userRepo, &stubCredentialRepo{}, refreshRepo, &stubRoleRepo{}, &stubOTPRepo{})

	status, body := postJSON(t, app, "POST", "/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "s3cret-password",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body["access_token"])
	assert.NotEmpty(t, body["refresh_token"])
	assert.Equal(t, float64(1800), body["expires_in"])
}

func TestLogin_WrongPassword(t *testing.T) {
	user := loginUser(t, "right-password")

	userRepo := &stubUserRepo{
		getByEmailFunc: func(string) (*model.User, error) { return user, nil },
	}

	app := newAuthApp(userRepo, &stubCredentialRepo{}, &stubRefreshTokenRepo{}, &stubRoleRepo{}, &stubOTPRepo{})

	status, _ := postJSON(t, app, "POST", "/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "wrong-password",
	})

	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLogin_Unverified(t *testing.T) {
	user := loginUser(t, "s3cret-password")
	user.IsEmailVerified = false

	userRepo := &stubUserRepo{
		getByEmailFunc: func(string) (*model.User, error) { return user, nil },
	}
	otpRepo := &stubOTPRepo{
		upsertFunc: func(*model.OTPCode) error { return nil },
	}

	app := newAuthApp(userRepo, &stubCredentialRepo{}, &stubRefreshTokenRepo{}, &stubRoleRepo{}, otpRepo)

	status, body := postJSON(t, app, "POST", "/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "s3cret-password",
	})

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, body["message"], "verification code")
}
