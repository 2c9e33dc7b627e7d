package controller

import (
	"errors"
	"os"
	"time"

	"planboard/dto"
	"planboard/service"
	"planboard/util"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AuthController provides handlers for authentication
type AuthController struct {
	svc *service.AuthService
}

func NewAuthController(s *service.AuthService) *AuthController {
	return &AuthController{svc: s}
}

func setRefreshCookie(c *fiber.Ctx, token string) {
	cookiePath := os.Getenv("COOKIE_PATH")
	if cookiePath == "" {
		cookiePath = "/api/v1/auth"
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Expires:  time.Now().Add(util.RefreshTokenTTL),
		HTTPOnly: true,     // JS cannot access
		Secure:   true,     // HTTPS only (set false for localhost if needed)
		SameSite: "Strict", // CSRF protection
		Path:     cookiePath,
	})
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a user account with email, username and password. Assigns the default 'user' role and sends a verification OTP.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload body dto.RegisterRequest true "Register payload"
// @Success      201  {object}  dto.RegisterResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}

	if err := util.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := ac.svc.Register(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

// Login godoc
// @Summary      Login with email and password
// @Description  Validates credentials, returns an access/refresh pair and sets the refresh token in an HttpOnly cookie. Unverified accounts get a fresh verification OTP and a 403.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload body dto.LoginRequest true "Login payload"
// @Success      200  {object}  dto.LoginResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string "Email not verified - verification OTP sent"
// @Failure      500  {object}  map[string]string
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}

	if err := util.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := ac.svc.Login(c.Context(), &req, c.IP(), c.Get("User-Agent"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrTOTPInvalid):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrTOTPRequired):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error(), "mfa_required": true})
		case errors.Is(err, service.ErrEmailNotVerified):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   err.Error(),
				"message": "a verification code has been sent to your email address",
			})
		case errors.Is(err, service.ErrAccountDisabled):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	setRefreshCookie(c, res.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(res)
}

// Refresh godoc
// @Summary      Rotate refresh token
// @Description  Reads 'refresh_token' from the HttpOnly cookie (or the JSON body) and issues a new access/refresh pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        Cookie header string false "Cookie containing refresh_token"
// @Success      200  {object}  dto.RefreshResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/refresh [post]
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		// Mobile clients send it in the body instead
		var body dto.RefreshRequest
		if err := c.BodyParser(&body); err == nil {
			refreshToken = body.RefreshToken
		}
	}
	if refreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing refresh token"})
	}

	req := dto.RefreshRequest{RefreshToken: refreshToken}

	res, err := ac.svc.Refresh(&req, c.IP(), c.Get("User-Agent"))
	if err != nil {
		c.ClearCookie("refresh_token")

		if errors.Is(err, service.ErrInvalidRefreshToken) || errors.Is(err, service.ErrRefreshTokenExpired) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	setRefreshCookie(c, res.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(res)
}

// Logout godoc
// @Summary      Logout
// @Description  Revokes every refresh token of the authenticated user and clears the cookie.
// @Tags         auth
// @Produce      json
// @Param        Authorization header string true "Bearer <access_token>"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)

	if err := ac.svc.Logout(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to revoke session"})
	}

	c.ClearCookie("refresh_token")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "signed out"})
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Changes the authenticated user's password. Requires the old password; all sessions are revoked afterwards.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer <access_token>"
// @Param        payload body dto.ChangePasswordRequest true "Password change payload"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/password-change [post]
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}

	if err := util.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.OldPassword == req.NewPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "new password must be different from old password"})
	}

	if err := ac.svc.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidOldPassword) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "password changed successfully"})
}

// ForgotPassword godoc
// @Summary      Reset password with OTP
// @Description  Verifies the password-reset OTP (reference + code) and writes the new password in one call.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload body dto.ForgotPasswordRequest true "Reset payload"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/forgot-password [post]
func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}

	if err := util.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ac.svc.ResetPasswordWithOTP(&req); err != nil {
		switch {
		case errors.Is(err, service.ErrOTPNotFound),
			errors.Is(err, service.ErrOTPUsed),
			errors.Is(err, service.ErrOTPExpired),
			errors.Is(err, service.ErrOTPMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "password has been reset"})
}

// SetupMFA godoc
// @Summary      Begin TOTP enrolment
// @Description  Provisions a TOTP secret for the authenticated user. The secret stays inactive until confirmed.
// @Tags         auth
// @Produce      json
// @Param        Authorization header string true "Bearer <access_token>"
// @Success      200  {object}  dto.MFASetupResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/mfa/setup [post]
func (ac *AuthController) SetupMFA(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)

	res, err := ac.svc.SetupMFA(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// ConfirmMFA godoc
// @Summary      Confirm TOTP enrolment
// @Description  Activates MFA after the user proves possession of the secret with a valid code.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer <access_token>"
// @Param        payload body dto.MFAConfirmRequest true "Confirm payload"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/mfa/confirm [post]
func (ac *AuthController) ConfirmMFA(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)

	var req dto.MFAConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}

	if err := util.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ac.svc.ConfirmMFA(userID, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrTOTPInvalid):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrMFANotSetup):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "mfa enabled"})
}
