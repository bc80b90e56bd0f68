// controllers/admin_controller.go
package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/karetou/karetou_backend/config"
	"github.com/karetou/karetou_backend/middleware"
	"github.com/karetou/karetou_backend/models"
	"github.com/karetou/karetou_backend/utils"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// AdminController manages admin accounts. Creation and deletion are
// super-admin only; the routes enforce that.
type AdminController struct {
	DB *mongo.Client
}

// NewAdminController creates a new admin controller
func NewAdminController(db *mongo.Client) *AdminController {
	return &AdminController{DB: db}
}

// CreateAdmin creates an admin account server-side. The creator's own
// session stays untouched.
func (ac *AdminController) CreateAdmin(c echo.Context) error {
	var req models.CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Full name, email and password are required",
		})
	}

	if !utils.IsValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid email format",
		})
	}
	if !utils.IsStrongPassword(req.Password) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Password must be at least 8 characters with uppercase, lowercase, number and special character",
		})
	}

	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}
	if role != models.RoleAdmin && role != models.RoleSuperAdmin {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid role",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(ac.DB, "adminUsers")

	count, err := collection.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		log.Printf("Error checking existing admin: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Database error",
		})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "An admin with this email already exists",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to hash password",
		})
	}

	claims := middleware.GetUserFromToken(c)
	creatorEmail := ""
	if claims != nil {
		creatorEmail = claims.Email
	}

	admin := models.Admin{
		ID:        primitive.NewObjectID(),
		Email:     req.Email,
		Password:  string(hashedPassword),
		FullName:  req.FullName,
		Role:      role,
		IsActive:  true,
		CreatedBy: creatorEmail,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := collection.InsertOne(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, models.Response{
				Status:  http.StatusConflict,
				Message: "An admin with this email already exists",
			})
		}
		log.Printf("Error creating admin: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create admin",
		})
	}

	if claims != nil {
		utils.LogAdminHistory(ac.DB, models.ActivityLog{
			Action:      models.ActionAdminCreated,
			Description: fmt.Sprintf("Created admin account %s", admin.Email),
			ActorID:     claims.UserID,
			ActorEmail:  claims.Email,
			ActorRole:   claims.Role,
			TargetType:  "admin",
			TargetID:    admin.ID.Hex(),
		})
	}

	admin.Password = ""
	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Admin created successfully",
		Data:    admin,
	})
}

// adminListItem decorates an admin account with the advisory
// deactivation hint shown in the panel.
type adminListItem struct {
	models.Admin
	NeedsDeactivation bool `json:"needsDeactivation"`
}

// GetAdmins lists admin accounts with deactivation hints. Passwords
// never leave the server.
func (ac *AdminController) GetAdmins(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(ac.DB, "adminUsers")
	cursor, err := collection.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"password": 0}).SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Printf("Error listing admins: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch admins",
		})
	}
	defer cursor.Close(ctx)

	var admins []models.Admin
	if err := cursor.All(ctx, &admins); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode admins",
		})
	}

	threshold := utils.DeactivationThresholdMinutes()
	items := make([]adminListItem, 0, len(admins))
	for _, admin := range admins {
		items = append(items, adminListItem{
			Admin:             admin,
			NeedsDeactivation: admin.IsActive && utils.NeedsDeactivation(admin.LastLogin, threshold),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Admins fetched successfully",
		Data: map[string]interface{}{
			"admins":           items,
			"thresholdMinutes": threshold,
		},
	})
}

// ToggleAdminStatus flips an admin account between active and inactive.
func (ac *AdminController) ToggleAdminStatus(c echo.Context) error {
	adminID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid admin ID",
		})
	}

	claims := middleware.GetUserFromToken(c)
	if claims != nil && claims.UserID == adminID.Hex() {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "You cannot change your own account status",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(ac.DB, "adminUsers")
	var admin models.Admin
	if err := collection.FindOne(ctx, bson.M{"_id": adminID}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Admin not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Database error",
		})
	}

	newStatus := !admin.IsActive
	_, err = collection.UpdateOne(ctx, bson.M{"_id": adminID},
		bson.M{"$set": bson.M{"isActive": newStatus, "updatedAt": time.Now()}})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update admin status",
		})
	}

	action := models.ActionAdminDeactivated
	if newStatus {
		action = models.ActionAdminActivated
	}
	if claims != nil {
		utils.LogAdminHistory(ac.DB, models.ActivityLog{
			Action:      action,
			Description: fmt.Sprintf("Set admin %s active=%t", admin.Email, newStatus),
			ActorID:     claims.UserID,
			ActorEmail:  claims.Email,
			ActorRole:   claims.Role,
			TargetType:  "admin",
			TargetID:    adminID.Hex(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Admin status updated",
		Data:    map[string]interface{}{"isActive": newStatus},
	})
}

// DeleteAdmin removes an admin account. Self-deletion is refused so a
// super-admin cannot lock themselves out mid-session.
func (ac *AdminController) DeleteAdmin(c echo.Context) error {
	adminID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid admin ID",
		})
	}

	claims := middleware.GetUserFromToken(c)
	if claims != nil && claims.UserID == adminID.Hex() {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "You cannot delete your own account",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(ac.DB, "adminUsers")
	var admin models.Admin
	if err := collection.FindOne(ctx, bson.M{"_id": adminID}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Admin not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Database error",
		})
	}

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": adminID}); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete admin",
		})
	}

	if claims != nil {
		utils.LogAdminHistory(ac.DB, models.ActivityLog{
			Action:      models.ActionAdminDeleted,
			Description: fmt.Sprintf("Deleted admin account %s", admin.Email),
			ActorID:     claims.UserID,
			ActorEmail:  claims.Email,
			ActorRole:   claims.Role,
			TargetType:  "admin",
			TargetID:    adminID.Hex(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Admin deleted successfully",
	})
}

// GetHistoryLogs returns the audit history shown on the history screen.
func (ac *AdminController) GetHistoryLogs(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(ac.DB, "adminHistoryLogs")
	cursor, err := collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(200))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch history logs",
		})
	}
	defer cursor.Close(ctx)

	var logs []models.ActivityLog
	if err := cursor.All(ctx, &logs); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode history logs",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "History logs fetched successfully",
		Data:    logs,
	})
}
