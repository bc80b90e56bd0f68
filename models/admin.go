package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin roles
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

type Admin struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password,omitempty" bson:"password"`
	FullName  string             `json:"fullName" bson:"fullName"`
	Role      string             `json:"role" bson:"role"` // "admin" or "superadmin"
	IsActive  bool               `json:"isActive" bson:"isActive"`
	LastLogin time.Time          `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedBy string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateAdminRequest is the super-admin payload for creating an admin
// account. The server creates the account directly, so the caller's own
// session is never disturbed.
type CreateAdminRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty"`
}

// DashboardStats represents statistics for the admin dashboard
type DashboardStats struct {
	TotalUsers          int64      `json:"totalUsers"`
	ActiveUsers         int64      `json:"activeUsers"`
	TotalBusinesses     int64      `json:"totalBusinesses"`
	PendingBusinesses   int64      `json:"pendingBusinesses"`
	ApprovedBusinesses  int64      `json:"approvedBusinesses"`
	RejectedBusinesses  int64      `json:"rejectedBusinesses"`
	ActiveBusinesses    int64      `json:"activeBusinesses"`
	InactiveBusinesses  int64      `json:"inactiveBusinesses"`
	TopPerformers       []Business `json:"topPerformers"`
	FlaggedUsers        []string   `json:"flaggedUsers"`
	FlaggedAdmins       []string   `json:"flaggedAdmins"`
	GeneratedAt         time.Time  `json:"generatedAt"`
	ThresholdMinutes    int        `json:"thresholdMinutes"`
}
