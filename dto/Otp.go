package dto

// RequestOTPRequest asks for a fresh code. Purpose picks the flow:
// "verify" for account verification, "password_reset" for forgot-password.
type RequestOTPRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Purpose string `json:"purpose" validate:"required,oneof=verify password_reset"`
}

type RequestOTPResponse struct {
	Message   string `json:"message"`
	Reference string `json:"ref"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// VerifyOTPRequest is the JSON payload sent to /auth/otp/verify
type VerifyOTPRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Purpose   string `json:"purpose" validate:"required,oneof=verify password_reset"`
	Reference string `json:"ref" validate:"required,len=10"`
	Code      string `json:"otp" validate:"required,len=6,numeric"` // Enforce exact 6 digits
}

// ResendOTPRequest backs the "Resend Code" button
type ResendOTPRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Purpose string `json:"purpose" validate:"required,oneof=verify password_reset"`
}
