package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Log action types. Two collections exist on purpose: adminActivityLogs
// records what the panel did, adminHistoryLogs records account/audit
// history shown on the history screen.
const (
	ActionBusinessRegistered  = "business_registered"
	ActionBusinessApproved    = "business_approved"
	ActionBusinessRejected    = "business_rejected"
	ActionBusinessActivated   = "business_activated"
	ActionBusinessDeactivated = "business_deactivated"
	ActionUserActivated       = "user_activated"
	ActionUserDeactivated     = "user_deactivated"
	ActionUserArchived        = "user_archived"
	ActionAdminCreated        = "admin_created"
	ActionAdminActivated      = "admin_activated"
	ActionAdminDeactivated    = "admin_deactivated"
	ActionAdminDeleted        = "admin_deleted"
	ActionLogin               = "login"
	ActionLogout              = "logout"
)

// ActivityLog is an append-only log entry
type ActivityLog struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Action      string             `json:"action" bson:"action"`
	Description string             `json:"description" bson:"description"`
	ActorID     string             `json:"actorId" bson:"actorId"`
	ActorEmail  string             `json:"actorEmail" bson:"actorEmail"`
	ActorRole   string             `json:"actorRole" bson:"actorRole"`
	TargetType  string             `json:"targetType,omitempty" bson:"targetType,omitempty"`
	TargetID    string             `json:"targetId,omitempty" bson:"targetId,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
