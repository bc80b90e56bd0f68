// utils/auth.go
package utils

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/karetou/karetou_backend/config"
	"github.com/karetou/karetou_backend/middleware"
	"github.com/karetou/karetou_backend/models"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ValidateTokenResponse represents the response for token validation
type ValidateTokenResponse struct {
	Valid     bool          `json:"valid"`
	Admin     *models.Admin `json:"admin,omitempty"`
	Message   string        `json:"message,omitempty"`
	ExpiresAt *time.Time    `json:"expiresAt,omitempty"`
}

// ValidateToken validates a JWT token and returns the admin account if
// valid. The panel calls this on load to check session validity.
func ValidateToken(tokenString string, db *mongo.Client) (*ValidateTokenResponse, error) {
	if tokenString == "" {
		return &ValidateTokenResponse{Valid: false, Message: "No token provided"}, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &middleware.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(middleware.GetJWTSecret()), nil
	})
	if err != nil {
		return &ValidateTokenResponse{Valid: false, Message: "Invalid token: " + err.Error()}, nil
	}
	if !token.Valid {
		return &ValidateTokenResponse{Valid: false, Message: "Token is not valid"}, nil
	}

	claims, ok := token.Claims.(*middleware.JwtCustomClaims)
	if !ok {
		return &ValidateTokenResponse{Valid: false, Message: "Invalid token claims"}, nil
	}

	var expiresAt *time.Time
	if claims.ExpiresAt > 0 {
		expTime := time.Unix(claims.ExpiresAt, 0)
		expiresAt = &expTime
	}

	// The env-configured super-admin has no database document
	if claims.UserID == "superadmin" {
		return &ValidateTokenResponse{
			Valid: true,
			Admin: &models.Admin{
				Email:    claims.Email,
				Role:     models.RoleSuperAdmin,
				IsActive: true,
			},
			Message:   "Token is valid",
			ExpiresAt: expiresAt,
		}, nil
	}

	adminID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return &ValidateTokenResponse{Valid: false, Message: "Invalid account ID format"}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var admin models.Admin
	err = config.GetCollection(db, "adminUsers").FindOne(ctx, bson.M{"_id": adminID}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &ValidateTokenResponse{Valid: false, Message: "Account not found"}, nil
		}
		return &ValidateTokenResponse{Valid: false, Message: "Error retrieving account: " + err.Error()}, nil
	}

	if !admin.IsActive {
		return &ValidateTokenResponse{Valid: false, Message: "Account is inactive"}, nil
	}

	admin.Password = ""

	return &ValidateTokenResponse{
		Valid:     true,
		Admin:     &admin,
		Message:   "Token is valid",
		ExpiresAt: expiresAt,
	}, nil
}

// GetUserFromToken retrieves the full mobile user document for the
// authenticated request.
func GetUserFromToken(c echo.Context, db *mongo.Client) (*models.User, error) {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return nil, errors.New("no token found")
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, errors.New("invalid user ID format")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = config.GetCollection(db, "users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("user not found")
		}
		return nil, errors.New("error retrieving user")
	}

	return &user, nil
}
