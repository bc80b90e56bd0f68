// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User model. Accounts are created by the mobile app; the admin panel
// only lists, flags and toggles them.
type User struct {
	ID         primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Email      string              `json:"email" bson:"email"`
	FullName   string              `json:"fullName" bson:"fullName"`
	Phone      string              `json:"phone,omitempty" bson:"phone,omitempty"`
	UserType   string              `json:"userType" bson:"userType"` // "user" or "business"
	IsActive   bool                `json:"isActive" bson:"isActive"`
	BusinessID *primitive.ObjectID `json:"businessId,omitempty" bson:"businessId,omitempty"`
	// LastLogin holds the time of the user's last logout; the mobile
	// client stamps it when the session ends.
	LastLogin   time.Time `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	FirebaseUID string    `json:"firebaseUID,omitempty" bson:"firebaseUID,omitempty"`
	FCMToken    string    `json:"fcmToken,omitempty" bson:"fcmToken,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Location model
type Location struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// LoginRequest models
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe,omitempty"`
}

// FirebaseLoginRequest carries the ID token issued to the mobile app.
type FirebaseLoginRequest struct {
	IDToken  string `json:"idToken"`
	FullName string `json:"fullName,omitempty"`
	FCMToken string `json:"fcmToken,omitempty"`
}

type FCMTokenUpdateRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
}

// Response model
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
