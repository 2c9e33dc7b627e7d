package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

/*
Model test cases:

1. TestTableNames - every entity reports its table-name constant
2. TestEnums_IsValid - enum membership checks
3. TestOTPCode_IsExpired - expiry boundary
4. TestRefreshToken_IsValid - expired and revoked tokens are invalid
*/

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())
	assert.Equal(t, "credentials", Credential{}.TableName())
	assert.Equal(t, "otp_codes", OTPCode{}.TableName())
	assert.Equal(t, "refresh_tokens", RefreshToken{}.TableName())
	assert.Equal(t, "roles", Role{}.TableName())
}

func TestEnums_IsValid(t *testing.T) {
	assert.True(t, CredTypePassword.IsValid())
	assert.True(t, CredTypeTOTP.IsValid())
	assert.False(t, CredentialType("fingerprint").IsValid())

	assert.True(t, OTPPurposeVerify.IsValid())
	assert.True(t, OTPPurposePasswordReset.IsValid())
	assert.False(t, OTPPurpose("unlock").IsValid())
}

func TestOTPCode_IsExpired(t *testing.T) {
	live := OTPCode{ExpiresAt: time.Now().Add(time.Minute)}
	assert.False(t, live.IsExpired())

	dead := OTPCode{ExpiresAt: time.Now().Add(-time.Second)}
	assert.True(t, dead.IsExpired())
}

func TestRefreshToken_IsValid(t *testing.T) {
	live := RefreshToken{ExpiresAt: time.Now().Add(time.Hour)}
	assert.True(t, live.IsValid())

	expired := RefreshToken{ExpiresAt: time.Now().Add(-time.Hour)}
	assert.False(t, expired.IsValid())

	revokedAt := time.Now()
	revoked := RefreshToken{ExpiresAt: time.Now().Add(time.Hour), RevokedAt: &revokedAt}
	assert.False(t, revoked.IsValid())
}
