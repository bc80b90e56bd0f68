package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, refreshToken, err := GenerateJWT("64f0c2a1b3d4e5f6a7b8c9d0", "admin@karetou.app", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, token, refreshToken)

	parsed, err := jwt.ParseWithClaims(token, &JwtCustomClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(*JwtCustomClaims)
	require.True(t, ok)
	assert.Equal(t, "64f0c2a1b3d4e5f6a7b8c9d0", claims.UserID)
	assert.Equal(t, "admin@karetou.app", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, _, err := GenerateJWT("id", "a@b.co", "admin")
	assert.Error(t, err)
}

func TestClaimsValid(t *testing.T) {
	expired := JwtCustomClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Minute).Unix()},
	}
	assert.Error(t, expired.Valid())

	current := JwtCustomClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
	}
	assert.NoError(t, current.Valid())

	notYet := JwtCustomClaims{
		StandardClaims: jwt.StandardClaims{NotBefore: time.Now().Add(time.Hour).Unix()},
	}
	assert.Error(t, notYet.Valid())
}

func TestTokenBlacklist(t *testing.T) {
	token := "some.jwt.token"
	assert.False(t, IsTokenBlacklisted(token))

	BlacklistToken(token, time.Now().Add(time.Hour))
	assert.True(t, IsTokenBlacklisted(token))
}
