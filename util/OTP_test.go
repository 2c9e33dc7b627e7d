package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
OTP generation test cases:

1. TestGenerateRandomDigits - exact length, digits only
2. TestGenerateReference - exact length, alphanumeric only
3. TestGenerateReference_Varies - two calls almost surely differ
*/

func TestGenerateRandomDigits(t *testing.T) {
	code := GenerateRandomDigits(6)

	assert.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9', "unexpected character %q in code", c)
	}
}

func TestGenerateReference(t *testing.T) {
	ref := GenerateReference(10)

	assert.Len(t, ref, 10)
	for _, c := range ref {
		ok := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		assert.True(t, ok, "unexpected character %q in reference", c)
	}
}

func TestGenerateReference_Varies(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[GenerateReference(10)] = true
	}
	// 20 identical 62^10 references would mean the RNG is broken
	assert.Greater(t, len(seen), 1)
}
