// controllers/business_controller.go
package controllers

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/karetou/karetou_backend/config"
	"github.com/karetou/karetou_backend/middleware"
	"github.com/karetou/karetou_backend/models"
	"github.com/karetou/karetou_backend/utils"
	"github.com/karetou/karetou_backend/websocket"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BusinessController handles registration review and the public
// business listing.
type BusinessController struct {
	DB  *mongo.Client
	Hub *websocket.Hub
}

// NewBusinessController creates a new business controller
func NewBusinessController(db *mongo.Client, hub *websocket.Hub) *BusinessController {
	return &BusinessController{DB: db, Hub: hub}
}

// GetBusinesses lists registrations for the admin panel. Filtering and
// pagination happen server-side so the panel never pulls the whole
// collection.
func (bc *BusinessController) GetBusinesses(c echo.Context) error {
	var filter models.BusinessFilter
	if err := c.Bind(&filter); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid query parameters",
		})
	}

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.BusinessType != "" {
		query["businessType"] = filter.BusinessType
	}
	if filter.SearchTerm != "" {
		query["$or"] = []bson.M{
			{"businessName": bson.M{"$regex": filter.SearchTerm, "$options": "i"}},
			{"ownerName": bson.M{"$regex": filter.SearchTerm, "$options": "i"}},
			{"address": bson.M{"$regex": filter.SearchTerm, "$options": "i"}},
		}
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(bc.DB, "businesses")

	total, err := collection.CountDocuments(ctx, query)
	if err != nil {
		log.Printf("Error counting businesses: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch businesses",
		})
	}

	cursor, err := collection.Find(ctx, query, options.Find().
		SetSort(bson.M{"registeredAt": -1}).
		SetSkip((page-1)*limit).
		SetLimit(limit))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch businesses",
		})
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode businesses",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Businesses fetched successfully",
		Data: map[string]interface{}{
			"businesses": businesses,
			"total":      total,
			"page":       page,
			"limit":      limit,
		},
	})
}

// GetBusiness returns one registration with its owner account and a QR
// code linking to the public profile.
func (bc *BusinessController) GetBusiness(c echo.Context) error {
	businessID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid business ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var business models.Business
	err = config.GetCollection(bc.DB, "businesses").FindOne(ctx, bson.M{"_id": businessID}).Decode(&business)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Business not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Database error",
		})
	}

	var owner models.User
	ownerData := map[string]interface{}{}
	err = config.GetCollection(bc.DB, "users").FindOne(ctx, bson.M{"_id": business.UserID}).Decode(&owner)
	if err == nil {
		ownerData = map[string]interface{}{
			"id":       owner.ID,
			"email":    owner.Email,
			"fullName": owner.FullName,
			"phone":    owner.Phone,
			"isActive": owner.IsActive,
		}
	} else if err != mongo.ErrNoDocuments {
		log.Printf("Error fetching owner for business %s: %v", businessID.Hex(), err)
	}

	qrCode, err := generateProfileQR(businessID.Hex())
	if err != nil {
		log.Printf("Failed to generate QR for business %s: %v", businessID.Hex(), err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Business fetched successfully",
		Data: map[string]interface{}{
			"business": business,
			"owner":    ownerData,
			"qrCode":   qrCode,
		},
	})
}

// ApproveBusiness moves a pending registration to approved. The filter
// includes status=pending so two admins racing on the same registration
// can only approve it once; the loser gets a conflict.
func (bc *BusinessController) ApproveBusiness(c echo.Context) error {
	businessID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid business ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(bc.DB, "businesses")
	now := time.Now()

	var business models.Business
	err = collection.FindOneAndUpdate(ctx,
		bson.M{"_id": businessID, "status": models.BusinessStatusPending},
		bson.M{"$set": bson.M{
			"status":           models.BusinessStatusApproved,
			"isActive":         true,
			"displayInUserApp": true,
			"approvedDate":     now,
			"updatedAt":        now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&business)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Either missing or already decided
			count, countErr := collection.CountDocuments(ctx, bson.M{"_id": businessID})
			if countErr == nil && count > 0 {
				return c.JSON(http.StatusConflict, models.Response{
					Status:  http.StatusConflict,
					Message: "Business is not pending approval",
				})
			}
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Business not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to approve business",
		})
	}

	claims := middleware.GetUserFromToken(c)
	if claims != nil {
		utils.LogAdminActivity(bc.DB, models.ActivityLog{
			Action:      models.ActionBusinessApproved,
			Description: fmt.Sprintf("Approved business %s", business.BusinessName),
			ActorID:     claims.UserID,
			ActorEmail:  claims.Email,
			ActorRole:   claims.Role,
			TargetType:  "business",
			TargetID:    businessID.Hex(),
		})
	}

	// Owner notification first, then the broadcast to everyone else
	if err := utils.SaveNotification(bc.DB, business.UserID,
		"Your business was approved!",
		fmt.Sprintf("%s is now live on Karetou.", business.BusinessName),
		models.NotificationTypeBusinessApproved,
		map[string]interface{}{"businessId": businessID.Hex()}); err != nil {
		log.Printf("Failed to save owner notification for business %s: %v", businessID.Hex(), err)
	}
	if err := utils.SendFCMNotificationToUser(bc.DB, business.UserID,
		"Your business was approved!",
		fmt.Sprintf("%s is now live on Karetou.", business.BusinessName),
		map[string]string{"type": models.NotificationTypeBusinessApproved, "businessId": businessID.Hex()}); err != nil {
		log.Printf("Owner push for business %s failed: %v", businessID.Hex(), err)
	}

	go func() {
		if err := utils.BroadcastNewPlace(bc.DB, business); err != nil {
			log.Printf("New place broadcast for business %s failed: %v", businessID.Hex(), err)
		}
	}()

	if business.UserEmail != "" {
		go func() {
			body := fmt.Sprintf("Good news! Your business %q has been approved and is now visible on Karetou.", business.BusinessName)
			if err := utils.SendOwnerEmail(business.UserEmail, "Karetou: business approved", body); err != nil {
				log.Printf("Approval email to %s failed: %v", business.UserEmail, err)
			}
		}()
	}

	bc.Hub.Broadcast(websocket.Event{
		Type:    websocket.EventBusinessApproved,
		Message: fmt.Sprintf("%s was approved", business.BusinessName),
		Data:    map[string]interface{}{"businessId": businessID.Hex()},
	})

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Business approved successfully",
		Data:    business,
	})
}

// RejectBusiness moves a pending registration to rejected. A reason is
// mandatory and is shown to the owner.
func (bc *BusinessController) RejectBusiness(c echo.Context) error {
	businessID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid business ID",
		})
	}

	var req models.RejectBusinessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Rejection reason is required",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(bc.DB, "businesses")
	now := time.Now()

	var business models.Business
	err = collection.FindOneAndUpdate(ctx,
		bson.M{"_id": businessID, "status": models.BusinessStatusPending},
		bson.M{"$set": bson.M{
			"status":           models.BusinessStatusRejected,
			"isActive":         false,
			"displayInUserApp": false,
			"rejectionReason":  req.Reason,
			"rejectionDate":    now,
			"updatedAt":        now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&business)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			count, countErr := collection.CountDocuments(ctx, bson.M{"_id": businessID})
			if countErr == nil && count > 0 {
				return c.JSON(http.StatusConflict, models.Response{
					Status:  http.StatusConflict,
					Message: "Business is not pending approval",
				})
			}
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Business not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to reject business",
		})
	}

	claims := middleware.GetUserFromToken(c)
	if claims != nil {
		utils.LogAdminActivity(bc.DB, models.ActivityLog{
			Action:      models.ActionBusinessRejected,
			Description: fmt.Sprintf("Rejected business %s: %s", business.BusinessName, req.Reason),
			ActorID:     claims.UserID,
			ActorEmail:  claims.Email,
			ActorRole:   claims.Role,
			TargetType:  "business",
			TargetID:    businessID.Hex(),
		})
	}

	if err := utils.SaveNotification(bc.DB, business.UserID,
		"Your business registration was rejected",
		fmt.Sprintf("%s was not approved. Reason: %s", business.BusinessName, req.Reason),
		models.NotificationTypeBusinessRejected,
		map[string]interface{}{"businessId": businessID.Hex(), "reason": req.Reason}); err != nil {
		log.Printf("Failed to save rejection notification for business %s: %v", businessID.Hex(), err)
	}
	if err := utils.SendFCMNotificationToUser(bc.DB, business.UserID,
		"Your business registration was rejected",
		fmt.Sprintf("%s was not approved. Reason: %s", business.BusinessName, req.Reason),
		map[string]string{"type": models.NotificationTypeBusinessRejected, "businessId": businessID.Hex()}); err != nil {
		log.Printf("Owner push for business %s failed: %v", businessID.Hex(), err)
	}

	if business.UserEmail != "" {
		go func() {
			body := fmt.Sprintf("Your business %q was not approved.\n\nReason: %s\n\nYou may update your registration and submit again.", business.BusinessName, req.Reason)
			if err := utils.SendOwnerEmail(business.UserEmail, "Karetou: business registration rejected", body); err != nil {
				log.Printf("Rejection email to %s failed: %v", business.UserEmail, err)
			}
		}()
	}

	bc.Hub.Broadcast(websocket.Event{
		Type:    websocket.EventBusinessRejected,
		Message: fmt.Sprintf("%s was rejected", business.BusinessName),
		Data:    map[string]interface{}{"businessId": businessID.Hex()},
	})

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Business rejected",
		Data:    business,
	})
}

// ToggleBusinessStatus flips isActive without touching the approval
// status.
func (bc *BusinessController) ToggleBusinessStatus(c echo.Context) error {
	businessID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid business ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(bc.DB, "businesses")
	var business models.Business
	if err := collection.FindOne(ctx, bson.M{"_id": businessID}).Decode(&business); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Business not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Database error",
		})
	}

	newStatus := !business.IsActive
	update := bson.M{"isActive": newStatus, "updatedAt": time.Now()}
	// A deactivated business also disappears from the user app
	if !newStatus {
		update["displayInUserApp"] = false
	} else if business.Status == models.BusinessStatusApproved {
		update["displayInUserApp"] = true
	}

	if _, err := collection.UpdateOne(ctx, bson.M{"_id": businessID}, bson.M{"$set": update}); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update business status",
		})
	}

	action := models.ActionBusinessDeactivated
	event := websocket.EventBusinessDeactivated
	if newStatus {
		action = models.ActionBusinessActivated
		event = websocket.EventBusinessActivated
	}

	claims := middleware.GetUserFromToken(c)
	if claims != nil {
		utils.LogAdminActivity(bc.DB, models.ActivityLog{
			Action:      action,
			Description: fmt.Sprintf("Set business %s active=%t", business.BusinessName, newStatus),
			ActorID:     claims.UserID,
			ActorEmail:  claims.Email,
			ActorRole:   claims.Role,
			TargetType:  "business",
			TargetID:    businessID.Hex(),
		})
	}

	bc.Hub.Broadcast(websocket.Event{
		Type:    event,
		Message: fmt.Sprintf("%s active=%t", business.BusinessName, newStatus),
		Data:    map[string]interface{}{"businessId": businessID.Hex(), "isActive": newStatus},
	})

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Business status updated",
		Data:    map[string]interface{}{"isActive": newStatus},
	})
}

// UploadBusinessPhoto stores a photo for a business and appends its URL
// to imageUrls. A thumbnail is generated alongside.
func (bc *BusinessController) UploadBusinessPhoto(c echo.Context) error {
	businessID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid business ID",
		})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Photo file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to open uploaded file",
		})
	}
	defer src.Close()

	fileData, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to read uploaded file",
		})
	}

	photoURL, thumbnailURL, err := utils.SaveBusinessPhoto(fileData, file.Filename)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.GetCollection(bc.DB, "businesses").UpdateOne(ctx,
		bson.M{"_id": businessID},
		bson.M{
			"$push": bson.M{"imageUrls": photoURL},
			"$set":  bson.M{"updatedAt": time.Now()},
		})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to attach photo to business",
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Business not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Photo uploaded successfully",
		Data: map[string]interface{}{
			"photoUrl":     photoURL,
			"thumbnailUrl": thumbnailURL,
		},
	})
}

// RegisterBusiness lets a signed-in mobile user submit a registration.
// New registrations always start as pending and hidden from the app.
func (bc *BusinessController) RegisterBusiness(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Not authenticated",
		})
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	var business models.Business
	if err := c.Bind(&business); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if business.BusinessName == "" || business.BusinessType == "" || business.Address == "" || business.PermitNumber == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Business name, type, address and permit number are required",
		})
	}

	now := time.Now()
	business.ID = primitive.NewObjectID()
	business.Status = models.BusinessStatusPending
	business.IsActive = false
	business.DisplayInApp = false
	business.ViewCount = 0
	business.RejectionReason = ""
	business.ApprovedDate = nil
	business.RejectionDate = nil
	business.RegisteredAt = now
	business.UpdatedAt = now
	business.UserID = userID
	business.UserEmail = claims.Email

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := config.GetCollection(bc.DB, "businesses").InsertOne(ctx, business); err != nil {
		log.Printf("Error inserting business registration: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to submit registration",
		})
	}

	// Mark the submitting account as a business owner
	if _, err := config.GetCollection(bc.DB, "users").UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"userType": "business", "businessId": business.ID, "updatedAt": now}}); err != nil {
		log.Printf("Failed to flag user %s as business owner: %v", claims.UserID, err)
	}

	utils.LogAdminActivity(bc.DB, models.ActivityLog{
		Action:      models.ActionBusinessRegistered,
		Description: fmt.Sprintf("New registration: %s", business.BusinessName),
		ActorID:     claims.UserID,
		ActorEmail:  claims.Email,
		ActorRole:   "user",
		TargetType:  "business",
		TargetID:    business.ID.Hex(),
	})

	bc.Hub.Broadcast(websocket.Event{
		Type:    websocket.EventBusinessSubmitted,
		Message: fmt.Sprintf("%s submitted a registration", business.BusinessName),
		Data:    map[string]interface{}{"businessId": business.ID.Hex()},
	})

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Registration submitted. You will be notified once it is reviewed.",
		Data:    business,
	})
}

// GetPublicBusinesses is the mobile listing: approved, active and
// flagged for display only.
func (bc *BusinessController) GetPublicBusinesses(c echo.Context) error {
	query := bson.M{
		"status":           models.BusinessStatusApproved,
		"isActive":         true,
		"displayInUserApp": true,
	}
	if businessType := c.QueryParam("businessType"); businessType != "" {
		query["businessType"] = businessType
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.GetCollection(bc.DB, "businesses").Find(ctx, query,
		options.Find().SetSort(bson.M{"viewCount": -1}))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch businesses",
		})
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode businesses",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Businesses fetched successfully",
		Data:    businesses,
	})
}

// RecordView bumps viewCount atomically. Concurrent views never lose
// increments; the ranking reads whatever the counter says.
func (bc *BusinessController) RecordView(c echo.Context) error {
	businessID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid business ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := config.GetCollection(bc.DB, "businesses").UpdateOne(ctx,
		bson.M{"_id": businessID, "status": models.BusinessStatusApproved},
		bson.M{"$inc": bson.M{"viewCount": 1}})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to record view",
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Business not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "View recorded",
	})
}

// generateProfileQR renders the public profile link as a base64 PNG.
func generateProfileQR(businessID string) (string, error) {
	appBaseURL := os.Getenv("APP_BASE_URL")
	if appBaseURL == "" {
		appBaseURL = "https://karetou.app"
	}
	profileURL := fmt.Sprintf("%s/business/%s", appBaseURL, businessID)

	qrCode, err := qr.Encode(profileURL, qr.M, qr.Auto)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR: %w", err)
	}

	qrCode, err = barcode.Scale(qrCode, 256, 256)
	if err != nil {
		return "", fmt.Errorf("failed to scale QR: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qrCode); err != nil {
		return "", fmt.Errorf("failed to render QR: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
