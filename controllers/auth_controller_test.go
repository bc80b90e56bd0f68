package controllers

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestVerifyIDTokenSignature(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	idToken := signTestToken(t, key, jwt.MapClaims{
		"sub":   "firebase-uid-1",
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := verifyIDTokenSignature(idToken, "RS256", &key.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid-1", claims["sub"])
	assert.Equal(t, "user@example.com", claims["email"])
}

func TestVerifyIDTokenSignatureExpired(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	idToken := signTestToken(t, key, jwt.MapClaims{
		"sub": "firebase-uid-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err = verifyIDTokenSignature(idToken, "RS256", &key.PublicKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
	assert.NotContains(t, err.Error(), "%!w")
}

func TestVerifyIDTokenSignatureRejectsWrongKey(t *testing.T) {
	signingKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	idToken := signTestToken(t, signingKey, jwt.MapClaims{
		"sub": "firebase-uid-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = verifyIDTokenSignature(idToken, "RS256", &otherKey.PublicKey)
	assert.Error(t, err)
}

func TestVerifyIDTokenSignatureRejectsWrongAlgorithm(t *testing.T) {
	hmacToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "firebase-uid-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	_, err = verifyIDTokenSignature(hmacToken, "RS256", &key.PublicKey)
	assert.Error(t, err)
}
