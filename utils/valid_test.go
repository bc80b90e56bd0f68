package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.co",
		"a+tag@domain.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"user@",
		"user@domain",
		"user name@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Str0ng!pass"))
	assert.True(t, IsStrongPassword("Abcdef1?"))

	assert.False(t, IsStrongPassword("Sh0r!t"), "too short")
	assert.False(t, IsStrongPassword("alllower1!"), "no uppercase")
	assert.False(t, IsStrongPassword("ALLUPPER1!"), "no lowercase")
	assert.False(t, IsStrongPassword("NoNumbers!"), "no digit")
	assert.False(t, IsStrongPassword("NoSpecial1"), "no special character")
}
