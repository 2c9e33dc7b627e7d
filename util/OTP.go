package util

import (
	"crypto/rand"
	"math/big"
)

// GenerateRandomDigits returns a numeric one-time code of the given length.
func GenerateRandomDigits(length int) string {
	digits := "0123456789"
	b := make([]byte, length)
	for i := range b {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		b[i] = digits[num.Int64()]
	}
	return string(b)
}

// GenerateReference returns an alphanumeric reference code the user can
// match against the one printed in the OTP email.
func GenerateReference(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	for i := range b {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		b[i] = charset[num.Int64()]
	}
	return string(b)
}
