package service

import "errors"

// Sentinel errors the controllers translate into HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email or username already registered")

	ErrTOTPRequired = errors.New("totp code required")
	ErrTOTPInvalid  = errors.New("invalid totp code")
	ErrMFANotSetup  = errors.New("mfa not set up")

	ErrInvalidRefreshToken = errors.New("invalid or unknown refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired or revoked")

	ErrInvalidOldPassword = errors.New("invalid old password")

	ErrOTPNotFound     = errors.New("invalid reference code")
	ErrOTPUsed         = errors.New("otp has already been used")
	ErrOTPExpired      = errors.New("otp has expired")
	ErrOTPMismatch     = errors.New("invalid otp")
	ErrOTPThrottled    = errors.New("too many otp requests")
	ErrAlreadyVerified = errors.New("email already verified")
)
