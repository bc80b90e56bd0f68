// utils/remember_me.go
package utils

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// RememberedSession is the encrypted payload stored in Redis for the
// admin panel's "remember me" checkbox.
type RememberedSession struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AccountID string    `json:"accountId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// GenerateRememberMeToken generates a secure random token
func GenerateRememberMeToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

func encryptionKey() ([]byte, error) {
	key := os.Getenv("REMEMBER_ME_ENCRYPTION_KEY")
	if len(key) < 32 {
		return nil, fmt.Errorf("REMEMBER_ME_ENCRYPTION_KEY must be at least 32 bytes")
	}
	return []byte(key)[:32], nil
}

func encryptSession(session RememberedSession) (string, error) {
	key, err := encryptionKey()
	if err != nil {
		return "", err
	}

	jsonData, err := json.Marshal(session)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, jsonData, nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func decryptSession(encryptedData string) (*RememberedSession, error) {
	key, err := encryptionKey()
	if err != nil {
		return nil, err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encryptedData)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, err
	}

	var session RememberedSession
	if err := json.Unmarshal(plaintext, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// StoreRememberedSession stores an encrypted session in Redis
func StoreRememberedSession(redisClient *redis.Client, token string, session RememberedSession, expiration time.Duration) error {
	if redisClient == nil {
		return fmt.Errorf("redis client not available")
	}

	encryptedData, err := encryptSession(session)
	if err != nil {
		return fmt.Errorf("failed to encrypt session: %w", err)
	}

	key := fmt.Sprintf("remember_me:%s", token)
	if err := redisClient.Set(context.Background(), key, encryptedData, expiration).Err(); err != nil {
		return fmt.Errorf("failed to store in Redis: %w", err)
	}

	return nil
}

// RetrieveRememberedSession retrieves and decrypts a session from Redis
func RetrieveRememberedSession(redisClient *redis.Client, token string) (*RememberedSession, error) {
	if redisClient == nil {
		return nil, fmt.Errorf("redis client not available")
	}

	ctx := context.Background()
	key := fmt.Sprintf("remember_me:%s", token)
	encryptedData, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("remember me token not found or expired")
		}
		return nil, fmt.Errorf("redis error: %w", err)
	}

	session, err := decryptSession(encryptedData)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		redisClient.Del(ctx, key)
		return nil, fmt.Errorf("remember me token expired")
	}

	return session, nil
}

// RemoveRememberedSession removes the remembered session from Redis
func RemoveRememberedSession(redisClient *redis.Client, token string) error {
	if redisClient == nil {
		return fmt.Errorf("redis client not available")
	}

	key := fmt.Sprintf("remember_me:%s", token)
	return redisClient.Del(context.Background(), key).Err()
}
