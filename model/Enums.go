package model

// CredentialType distinguishes the kinds of secrets stored per user.
type CredentialType string

const (
	CredTypePassword CredentialType = "password"
	CredTypeTOTP     CredentialType = "totp" // MFA shared secret
)

func (ct CredentialType) IsValid() bool {
	switch ct {
	case CredTypePassword, CredTypeTOTP:
		return true
	}
	return false
}

// OTPPurpose says what a one-time code unlocks when verified.
type OTPPurpose string

const (
	OTPPurposeVerify        OTPPurpose = "verify"
	OTPPurposePasswordReset OTPPurpose = "password_reset"
)

func (p OTPPurpose) IsValid() bool {
	switch p {
	case OTPPurposeVerify, OTPPurposePasswordReset:
		return true
	}
	return false
}
