package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalUsername(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase unchanged", input: "frodo", expected: "frodo"},
		{name: "mixed case folded", input: "FrOdO", expected: "frodo"},
		{name: "surrounding whitespace trimmed", input: "  Frodo ", expected: "frodo"},
		{name: "empty stays empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalUsername(tt.input))
		})
	}
}

func TestUser_Redacted(t *testing.T) {
	user := &User{
		ID:           7,
		Username:     "Frodo",
		PasswordHash: []byte("hash"),
		PasswordSalt: []byte("salt"),
		Email:        "frodo@shire.example",
	}

	redacted := user.Redacted()

	assert.Nil(t, redacted.PasswordHash)
	assert.Nil(t, redacted.PasswordSalt)
	assert.Equal(t, user.ID, redacted.ID)
	assert.Equal(t, user.Username, redacted.Username)
	assert.Equal(t, user.Email, redacted.Email)

	// The original must keep its credential pair.
	assert.NotNil(t, user.PasswordHash)
	assert.NotNil(t, user.PasswordSalt)
}
