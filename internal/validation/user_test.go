package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("password123"))
	assert.NoError(t, ValidatePassword("12345678"))

	assert.Error(t, ValidatePassword("1234567"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword(strings.Repeat("a", 129)))
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	valid := []string{"alice", "bob_smith", "user-123", "ABCD"}
	for _, name := range valid {
		assert.NoError(t, ValidateUsername(name), name)
	}

	invalid := []string{
		"abc",                      // too short
		"_alice",                   // leading underscore
		"alice-",                   // trailing hyphen
		"ali ce",                   // whitespace
		"alice!",                   // punctuation
		strings.Repeat("a", 65),    // too long
	}
	for _, name := range invalid {
		assert.Error(t, ValidateUsername(name), name)
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.NoError(t, ValidateEmail("a.b+c@sub.example.co"))

	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
	assert.Error(t, ValidateEmail("@example.com"))
	assert.Error(t, ValidateEmail(strings.Repeat("a", 250)+"@x.com"))
}
