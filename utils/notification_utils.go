// utils/notification_utils.go
package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/karetou/karetou_backend/config"
	"github.com/karetou/karetou_backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/gomail.v2"
)

// SaveNotification saves a notification to the database
func SaveNotification(db *mongo.Client, userID primitive.ObjectID, title, message, notifType string, data interface{}) error {
	collection := config.GetCollection(db, "notifications")

	notification := models.Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		Data:      data,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	_, err := collection.InsertOne(context.Background(), notification)
	return err
}

// BuildNewPlaceNotifications builds one "new place" notification per
// active non-business user. The owner gets a dedicated approval
// notification instead, so business accounts are skipped here.
func BuildNewPlaceNotifications(users []models.User, business models.Business, now time.Time) []models.Notification {
	var notifications []models.Notification
	for _, user := range users {
		if user.UserType == "business" || !user.IsActive {
			continue
		}
		notifications = append(notifications, models.Notification{
			ID:      primitive.NewObjectID(),
			UserID:  user.ID,
			Title:   "New place to discover!",
			Message: fmt.Sprintf("%s is now on Karetou. Check it out.", business.BusinessName),
			Type:    models.NotificationTypeNewPlace,
			Data: map[string]interface{}{
				"businessId":   business.ID.Hex(),
				"businessType": business.BusinessType,
			},
			IsRead:    false,
			CreatedAt: now,
		})
	}
	return notifications
}

// BroadcastNewPlace writes the "new place" fan-out in a single
// InsertMany and follows up with one FCM multicast. The database writes
// are the source of truth; a failed push send is logged, never fatal.
func BroadcastNewPlace(db *mongo.Client, business models.Business) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	usersCollection := config.GetCollection(db, "users")
	cursor, err := usersCollection.Find(ctx, bson.M{"isActive": true, "userType": bson.M{"$ne": "business"}})
	if err != nil {
		return fmt.Errorf("failed to list users for broadcast: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return fmt.Errorf("failed to decode users for broadcast: %w", err)
	}

	notifications := BuildNewPlaceNotifications(users, business, time.Now())
	if len(notifications) == 0 {
		return nil
	}

	docs := make([]interface{}, len(notifications))
	for i, n := range notifications {
		docs[i] = n
	}

	notifCollection := config.GetCollection(db, "notifications")
	if _, err := notifCollection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert broadcast notifications: %w", err)
	}

	// Push delivery is best effort
	var tokens []string
	for _, user := range users {
		if user.UserType != "business" && user.IsActive && user.FCMToken != "" {
			tokens = append(tokens, user.FCMToken)
		}
	}
	if len(tokens) > 0 {
		if err := sendFCMMulticast(tokens, notifications[0].Title, notifications[0].Message, map[string]string{
			"type":       models.NotificationTypeNewPlace,
			"businessId": business.ID.Hex(),
		}); err != nil {
			log.Printf("FCM broadcast for business %s failed: %v", business.ID.Hex(), err)
		}
	}

	return nil
}

// SendFCMNotificationToUser sends a push notification to a single user
func SendFCMNotificationToUser(db *mongo.Client, userID primitive.ObjectID, title, message string, data map[string]string) error {
	collection := config.GetCollection(db, "users")
	var user models.User
	err := collection.FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user.FCMToken == "" {
		return fmt.Errorf("user has no FCM token")
	}

	if config.FirebaseApp == nil {
		return fmt.Errorf("firebase app not initialized")
	}

	ctx := context.Background()
	client, err := config.FirebaseApp.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging client: %w", err)
	}

	notificationData := map[string]string{
		"timestamp": time.Now().Format(time.RFC3339),
	}
	for key, value := range data {
		notificationData[key] = value
	}

	fcmMessage := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  message,
		},
		Data: notificationData,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:     "default",
				ChannelID: "karetou_fcm_channel",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: title,
						Body:  message,
					},
					Sound: "default",
					Badge: func() *int { v := 1; return &v }(),
				},
			},
		},
	}

	response, err := client.Send(ctx, fcmMessage)
	if err != nil {
		return fmt.Errorf("failed to send FCM notification: %w", err)
	}

	log.Printf("FCM notification sent to user %s: %s", userID.Hex(), response)
	return nil
}

func sendFCMMulticast(tokens []string, title, message string, data map[string]string) error {
	if config.FirebaseApp == nil {
		return fmt.Errorf("firebase app not initialized")
	}

	ctx := context.Background()
	client, err := config.FirebaseApp.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging client: %w", err)
	}

	// FCM caps multicast sends at 500 tokens per request
	const batchSize = 500
	for start := 0; start < len(tokens); start += batchSize {
		end := start + batchSize
		if end > len(tokens) {
			end = len(tokens)
		}

		multicast := &messaging.MulticastMessage{
			Tokens: tokens[start:end],
			Notification: &messaging.Notification{
				Title: title,
				Body:  message,
			},
			Data: data,
			Android: &messaging.AndroidConfig{
				Priority: "high",
				Notification: &messaging.AndroidNotification{
					Sound:     "default",
					ChannelID: "karetou_fcm_channel",
				},
			},
		}

		response, err := client.SendEachForMulticast(ctx, multicast)
		if err != nil {
			return err
		}
		if response.FailureCount > 0 {
			log.Printf("FCM multicast: %d of %d sends failed", response.FailureCount, end-start)
		}
	}

	return nil
}

// SendOwnerEmail emails the business owner about an approval decision.
func SendOwnerEmail(toEmail, subject, body string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	if smtpHost == "" {
		return fmt.Errorf("SMTP_HOST not configured")
	}
	smtpPort := 587
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		fmt.Sscanf(portStr, "%d", &smtpPort)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
