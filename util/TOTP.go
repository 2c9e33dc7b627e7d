package util

import (
	"fmt"

	"github.com/pquerna/otp/totp"
)

// GenerateTOTPSecret creates a new TOTP secret for MFA enrolment.
// Returns the base32 secret and the otpauth:// provisioning URL.
func GenerateTOTPSecret(email string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      getEnv("APP_NAME", "planboard"),
		AccountName: email,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate TOTP secret: %w", err)
	}
	return key.Secret(), key.URL(), nil
}

// VerifyTOTP validates a TOTP code against the stored secret
func VerifyTOTP(secret, code string) bool {
	return totp.Validate(code, secret)
}
