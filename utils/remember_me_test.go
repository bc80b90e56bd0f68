package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEncryptionKey = "0123456789abcdef0123456789abcdef"

func TestGenerateRememberMeToken(t *testing.T) {
	a, err := GenerateRememberMeToken()
	require.NoError(t, err)
	b, err := GenerateRememberMeToken()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestSessionEncryptionRoundTrip(t *testing.T) {
	t.Setenv("REMEMBER_ME_ENCRYPTION_KEY", testEncryptionKey)

	session := RememberedSession{
		Email:     "admin@karetou.app",
		Role:      "admin",
		AccountID: "64f0c2a1b3d4e5f6a7b8c9d0",
		ExpiresAt: time.Now().Add(24 * time.Hour).Truncate(time.Second),
	}

	encrypted, err := encryptSession(session)
	require.NoError(t, err)
	assert.NotContains(t, encrypted, session.Email)

	decrypted, err := decryptSession(encrypted)
	require.NoError(t, err)
	assert.Equal(t, session.Email, decrypted.Email)
	assert.Equal(t, session.Role, decrypted.Role)
	assert.Equal(t, session.AccountID, decrypted.AccountID)
	assert.WithinDuration(t, session.ExpiresAt, decrypted.ExpiresAt, time.Second)
}

func TestSessionEncryptionRequiresKey(t *testing.T) {
	t.Setenv("REMEMBER_ME_ENCRYPTION_KEY", "too-short")

	_, err := encryptSession(RememberedSession{Email: "a@b.co"})
	assert.Error(t, err)
}

func TestDecryptSessionRejectsTampering(t *testing.T) {
	t.Setenv("REMEMBER_ME_ENCRYPTION_KEY", testEncryptionKey)

	encrypted, err := encryptSession(RememberedSession{Email: "a@b.co"})
	require.NoError(t, err)

	_, err = decryptSession(encrypted[:len(encrypted)-4] + "AAAA")
	assert.Error(t, err)

	_, err = decryptSession("not base64 at all!")
	assert.Error(t, err)
}
