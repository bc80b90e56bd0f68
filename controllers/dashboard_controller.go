// controllers/dashboard_controller.go
package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/karetou/karetou_backend/config"
	"github.com/karetou/karetou_backend/models"
	"github.com/karetou/karetou_backend/utils"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 60 * time.Second
)

// DashboardController serves the admin overview numbers.
type DashboardController struct {
	DB *mongo.Client
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(db *mongo.Client) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboard returns the stats, cached for a minute so the panel can
// poll without hammering Mongo.
func (dc *DashboardController) GetDashboard(c echo.Context) error {
	if rdb := config.GetRedisClient(); rdb != nil {
		if cached, err := rdb.Get(context.Background(), dashboardCacheKey).Result(); err == nil {
			var stats models.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return c.JSON(http.StatusOK, models.Response{
					Status:  http.StatusOK,
					Message: "Dashboard stats fetched successfully",
					Data:    stats,
				})
			}
		} else if err != redis.Nil {
			log.Printf("Dashboard cache read failed: %v", err)
		}
	}

	stats, err := ComputeDashboardStats(dc.DB)
	if err != nil {
		log.Printf("Error computing dashboard stats: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to compute dashboard stats",
		})
	}

	if rdb := config.GetRedisClient(); rdb != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := rdb.Set(context.Background(), dashboardCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
				log.Printf("Dashboard cache write failed: %v", err)
			}
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Dashboard stats fetched successfully",
		Data:    stats,
	})
}

// ComputeDashboardStats gathers the dashboard numbers straight from
// Mongo. The report endpoints reuse it so exports always match the
// panel.
func ComputeDashboardStats(db *mongo.Client) (models.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	users := config.GetCollection(db, "users")
	businesses := config.GetCollection(db, "businesses")
	admins := config.GetCollection(db, "adminUsers")

	stats := models.DashboardStats{
		GeneratedAt:      time.Now(),
		ThresholdMinutes: utils.DeactivationThresholdMinutes(),
		TopPerformers:    []models.Business{},
		FlaggedUsers:     []string{},
		FlaggedAdmins:    []string{},
	}

	counts := []struct {
		dest       *int64
		collection *mongo.Collection
		filter     bson.M
	}{
		{&stats.TotalUsers, users, bson.M{}},
		{&stats.ActiveUsers, users, bson.M{"isActive": true}},
		{&stats.TotalBusinesses, businesses, bson.M{}},
		{&stats.PendingBusinesses, businesses, bson.M{"status": models.BusinessStatusPending}},
		{&stats.ApprovedBusinesses, businesses, bson.M{"status": models.BusinessStatusApproved}},
		{&stats.RejectedBusinesses, businesses, bson.M{"status": models.BusinessStatusRejected}},
		{&stats.ActiveBusinesses, businesses, bson.M{"status": models.BusinessStatusApproved, "isActive": true}},
		{&stats.InactiveBusinesses, businesses, bson.M{"status": models.BusinessStatusApproved, "isActive": false}},
	}
	for _, count := range counts {
		n, err := count.collection.CountDocuments(ctx, count.filter)
		if err != nil {
			return stats, err
		}
		*count.dest = n
	}

	// Top performers by profile views among visible businesses
	cursor, err := businesses.Find(ctx,
		bson.M{"status": models.BusinessStatusApproved, "isActive": true},
		options.Find().SetSort(bson.M{"viewCount": -1}).SetLimit(utils.TopPerformerLimit))
	if err != nil {
		return stats, err
	}
	var performers []models.Business
	if err := cursor.All(ctx, &performers); err != nil {
		return stats, err
	}
	stats.TopPerformers = utils.TopPerformers(performers, utils.TopPerformerLimit)

	// Flagged accounts: active but quiet past the threshold
	userCursor, err := users.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return stats, err
	}
	var activeUsers []models.User
	if err := userCursor.All(ctx, &activeUsers); err != nil {
		return stats, err
	}
	for _, user := range activeUsers {
		if utils.NeedsDeactivation(user.LastLogin, stats.ThresholdMinutes) {
			stats.FlaggedUsers = append(stats.FlaggedUsers, user.Email)
		}
	}

	adminCursor, err := admins.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return stats, err
	}
	var activeAdmins []models.Admin
	if err := adminCursor.All(ctx, &activeAdmins); err != nil {
		return stats, err
	}
	for _, admin := range activeAdmins {
		if utils.NeedsDeactivation(admin.LastLogin, stats.ThresholdMinutes) {
			stats.FlaggedAdmins = append(stats.FlaggedAdmins, admin.Email)
		}
	}

	return stats, nil
}
