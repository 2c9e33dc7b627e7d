package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
Validator test cases:

1. TestIsValidUsername - table of accepted and rejected usernames
2. TestValidateStruct_UsernameTag - the custom tag fires on DTO binding
3. TestValidateStruct_Email - built-in email rule still works alongside it
*/

func TestIsValidUsername(t *testing.T) {
	cases := []struct {
		username string
		valid    bool
	}{
		{"alice", true},
		{"a1c.e_2", true},
		{"abc", true},
		{"a23456789012345678901234567890", true}, // 30 chars

		{"ab", false},                             // too short
		{"a234567890123456789012345678901", false}, // 31 chars
		{"Alice", false},                          // uppercase
		{"1alice", false},                         // starts with digit
		{".alice", false},                         // starts with dot
		{"al ice", false},                         // space
		{"al-ice", false},                         // hyphen
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, IsValidUsername(tc.username), "username %q", tc.username)
	}
}

func TestValidateStruct_UsernameTag(t *testing.T) {
	type payload struct {
		Username string `validate:"required,username"`
	}

	assert.NoError(t, ValidateStruct(&payload{Username: "valid_user"}))
	assert.Error(t, ValidateStruct(&payload{Username: "Invalid User"}))
	assert.Error(t, ValidateStruct(&payload{}))
}

func TestValidateStruct_Email(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}

	assert.NoError(t, ValidateStruct(&payload{Email: "user@example.com"}))
	assert.Error(t, ValidateStruct(&payload{Email: "not-an-email"}))
}
