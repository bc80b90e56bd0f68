// controllers/user_controller.go
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
)

// UserController manages mobile user accounts from the admin panel.
type UserController struct {
	DB *mongo.Client
}

// NewUserController creates a new user controller
func NewUserController(db *mongo.Client) *UserController {
	return &UserController{DB: db}
}

type userListItem struct {
	models.User
	NeedsDeactivation bool `json:"needsDeactivation"`
}

// GetUsers lists user accounts with deactivation hints.
func (uc *UserController) GetUsers(c echo.Context) error {
	query := bson.M{}
	if userType := c.QueryParam("userType"); userType != "" {
		query["userType"] = userType
	}
	if search := c.QueryParam("search"); search != "" {
		query["$or"] = []bson.M{
			{"email": bson.M{"$regex": search, "$options": "i"}},
			{"fullName": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.GetCollection(uc.DB, "users").Find(ctx, query,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch users",
		})
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode users",
		})
	}

	threshold := utils.DeactivationThresholdMinutes()
	items := make([]userListItem, 0, len(users))
	for _, user := range users {
		items = append(items, userListItem{
			User:              user,
			NeedsDeactivation: user.IsActive && utils.NeedsDeactivation(user.LastLogin, threshold),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Users fetched successfully",
		Data: map[string]interface{}{
			"users":            items,
			"thresholdMinutes": threshold,
		},
	})
}

// ToggleUserStatus flips a user account between active and inactive.
func (uc *UserController) ToggleUserStatus(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(uc.DB, "users")
	var user models.User
	if err := collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "User not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Database error",
		})
	}

	newStatus := !user.IsActive
	_, err = collection.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$set": bson.M{"isActive": newStatus, "updatedAt": time.Now()}})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update user status",
		})
	}

	action := models.ActionUserDeactivated
	if newStatus {
		action = models.ActionUserActivated
	}
	if claims := middleware.GetUserFromToken(c); claims != nil {
		utils.LogAdminActivity(uc.DB, models.ActivityLog{
			Action:      action,
			Description: fmt.Sprintf("Set user %s active=%t", user.Email, newStatus),
			ActorID:     claims.UserID,
			ActorEmail:  claims.Email,
			ActorRole:   claims.Role,
			TargetType:  "user",
			TargetID:    userID.Hex(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "User status updated",
		Data:    map[string]interface{}{"isActive": newStatus},
	})
}

// DeleteUser archives the user document first and deletes it only once
// the archive write succeeded. If archiving fails the account stays.
func (uc *UserController) DeleteUser(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(uc.DB, "users")
	var user models.User
	if err := collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "User not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Database error",
		})
	}

	archive := bson.M{
		"user":       user,
		"archivedAt": time.Now(),
	}
	if claims := middleware.GetUserFromToken(c); claims != nil {
		archive["archivedBy"] = claims.Email
	}

	if _, err := config.GetCollection(uc.DB, "archivedUsers").InsertOne(ctx, archive); err != nil {
		log.Printf("Failed to archive user %s, aborting delete: %v", userID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to archive user; account was not deleted",
		})
	}

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": userID}); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete user",
		})
	}

	if claims := middleware.GetUserFromToken(c); claims != nil {
		utils.LogAdminHistory(uc.DB, models.ActivityLog{
			Action:      models.ActionUserArchived,
			Description: fmt.Sprintf("Archived and deleted user %s", user.Email),
			ActorID:     claims.UserID,
			ActorEmail:  claims.Email,
			ActorRole:   claims.Role,
			TargetType:  "user",
			TargetID:    userID.Hex(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "User archived and deleted",
	})
}
