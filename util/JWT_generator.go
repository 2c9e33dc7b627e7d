package util

import (
	"time"

	"planboard/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenTTL  = 30 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	RefreshID    uuid.UUID // saved to DB so the token can be revoked
}

// Load keys once at startup to prevent reading env on every request
var (
	accessSecret  = []byte(getEnv("JWT_ACCESS_SECRET", "fallback-dev-secret"))
	refreshSecret = []byte(getEnv("JWT_REFRESH_SECRET", "fallback-dev-secret"))
)

// GenerateTokens issues an access/refresh pair with the user's roles baked
// into the access token.
func GenerateTokens(userID uuid.UUID, roles []string) (*TokenPair, error) {
	now := time.Now()

	accessClaims := dto.AuthClaims{
		UserID: userID.String(),
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "planboard",
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	signedAccess, err := accessToken.SignedString(accessSecret)
	if err != nil {
		return nil, err
	}

	// Refresh token is opaque to clients, strictly for the auth endpoints
	refreshID := uuid.New()
	refreshClaims := dto.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(RefreshTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "planboard",
			ID:        refreshID.String(),
		},
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	signedRefresh, err := refreshToken.SignedString(refreshSecret)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  signedAccess,
		RefreshToken: signedRefresh,
		RefreshID:    refreshID,
	}, nil
}
