package util

import (
	"errors"
	"strings"

	"planboard/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ParseAccessToken validates and returns the access token claims
func ParseAccessToken(tokenString string) (*dto.AuthClaims, error) {
	claims := &dto.AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method, expected HS256")
		}
		return accessSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired access token")
	}

	return claims, nil
}

// ParseRefreshToken decodes and validates a refresh token, returning the
// user ID (subject) and the refresh token ID (jti).
func ParseRefreshToken(tokenString string) (uuid.UUID, uuid.UUID, error) {
	claims := &dto.AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method, expected HS256")
		}
		return refreshSecret, nil
	})

	if err != nil || !token.Valid {
		return uuid.Nil, uuid.Nil, errors.New("invalid or expired refresh token")
	}

	if claims.Subject == "" {
		return uuid.Nil, uuid.Nil, errors.New("missing subject (user_id) in refresh token")
	}
	if claims.ID == "" {
		return uuid.Nil, uuid.Nil, errors.New("missing jti in refresh token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid user_id format in token")
	}

	refreshID, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid jti format in token")
	}

	return userID, refreshID, nil
}

// ExtractUserIDFromToken reads "Bearer <token>" and returns the subject.
func ExtractUserIDFromToken(authHeader string) (uuid.UUID, error) {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return uuid.Nil, errors.New("malformed authorization header")
	}

	claims, err := ParseAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(claims.Subject)
}
