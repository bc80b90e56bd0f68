// models/business.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Business status values
const (
	BusinessStatusPending  = "pending"
	BusinessStatusApproved = "approved"
	BusinessStatusRejected = "rejected"
)

// Business represents a registration submitted from the mobile app.
// status and isActive are independent axes: an approved business can be
// deactivated without touching its approval state.
type Business struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BusinessName    string             `json:"businessName" bson:"businessName"`
	OwnerName       string             `json:"ownerName" bson:"ownerName"`
	BusinessType    string             `json:"businessType" bson:"businessType"`
	OpeningHours    string             `json:"openingHours,omitempty" bson:"openingHours,omitempty"`
	ContactNumbers  []string           `json:"contactNumbers,omitempty" bson:"contactNumbers,omitempty"`
	Address         string             `json:"address" bson:"address"`
	PermitNumber    string             `json:"permitNumber" bson:"permitNumber"`
	PermitPhotoURL  string             `json:"permitPhotoUrl,omitempty" bson:"permitPhotoUrl,omitempty"`
	OwnerIDPhotoURL string             `json:"ownerIdPhotoUrl,omitempty" bson:"ownerIdPhotoUrl,omitempty"`
	BusinessPhoto   string             `json:"businessPhoto,omitempty" bson:"businessPhoto,omitempty"`
	ImageURLs       []string           `json:"imageUrls,omitempty" bson:"imageUrls,omitempty"`
	Location        *Location          `json:"location,omitempty" bson:"location,omitempty"`
	Status          string             `json:"status" bson:"status"` // "pending", "approved", "rejected"
	IsActive        bool               `json:"isActive" bson:"isActive"`
	DisplayInApp    bool               `json:"displayInUserApp" bson:"displayInUserApp"`
	ViewCount       int64              `json:"viewCount" bson:"viewCount"`
	RejectionReason string             `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
	RegisteredAt    time.Time          `json:"registeredAt" bson:"registeredAt"`
	ApprovedDate    *time.Time         `json:"approvedDate,omitempty" bson:"approvedDate,omitempty"`
	RejectionDate   *time.Time         `json:"rejectionDate,omitempty" bson:"rejectionDate,omitempty"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId"`
	UserEmail       string             `json:"userEmail" bson:"userEmail"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// BusinessFilter represents server-side filters for business listing
type BusinessFilter struct {
	Status       string `json:"status,omitempty" query:"status"`
	BusinessType string `json:"businessType,omitempty" query:"businessType"`
	SearchTerm   string `json:"searchTerm,omitempty" query:"search"`
	Page         int64  `json:"page,omitempty" query:"page"`
	Limit        int64  `json:"limit,omitempty" query:"limit"`
}

// RejectBusinessRequest is the body for the reject endpoint. The reason
// is mandatory; approval never carries one.
type RejectBusinessRequest struct {
	Reason string `json:"reason" validate:"required"`
}
