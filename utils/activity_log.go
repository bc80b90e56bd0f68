// utils/activity_log.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/karetou/karetou_backend/config"
	"github.com/karetou/karetou_backend/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// LogAdminActivity appends an entry to adminActivityLogs. Failures are
// logged and swallowed: logging must never break the main flow.
func LogAdminActivity(db *mongo.Client, entry models.ActivityLog) {
	writeLog(db, "adminActivityLogs", entry)
}

// LogAdminHistory appends an entry to adminHistoryLogs, the account
// audit trail shown on the panel's history screen.
func LogAdminHistory(db *mongo.Client, entry models.ActivityLog) {
	writeLog(db, "adminHistoryLogs", entry)
}

func writeLog(db *mongo.Client, collectionName string, entry models.ActivityLog) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	collection := config.GetCollection(db, collectionName)
	if _, err := collection.InsertOne(ctx, entry); err != nil {
		log.Printf("Failed to write %s entry (%s): %v", collectionName, entry.Action, err)
	}
}
