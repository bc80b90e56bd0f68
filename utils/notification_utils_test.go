package utils

import (
	"testing"
	"time"

	"github.com/karetou/karetou_backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildNewPlaceNotifications(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	business := models.Business{
		ID:           primitive.NewObjectID(),
		BusinessName: "Harbor View Inn",
		BusinessType: "hotel",
	}

	regular := models.User{ID: primitive.NewObjectID(), UserType: "user", IsActive: true}
	another := models.User{ID: primitive.NewObjectID(), UserType: "user", IsActive: true}
	owner := models.User{ID: primitive.NewObjectID(), UserType: "business", IsActive: true}
	inactive := models.User{ID: primitive.NewObjectID(), UserType: "user", IsActive: false}

	notifications := BuildNewPlaceNotifications(
		[]models.User{regular, owner, inactive, another}, business, now)

	// Business accounts and inactive users are skipped
	require.Len(t, notifications, 2)
	assert.Equal(t, regular.ID, notifications[0].UserID)
	assert.Equal(t, another.ID, notifications[1].UserID)

	for _, n := range notifications {
		assert.Equal(t, models.NotificationTypeNewPlace, n.Type)
		assert.False(t, n.IsRead)
		assert.Equal(t, now, n.CreatedAt)
		assert.Contains(t, n.Message, "Harbor View Inn")

		data, ok := n.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, business.ID.Hex(), data["businessId"])
		assert.Equal(t, "hotel", data["businessType"])
	}
}

func TestBuildNewPlaceNotificationsNoRecipients(t *testing.T) {
	business := models.Business{ID: primitive.NewObjectID(), BusinessName: "Empty Town"}

	assert.Empty(t, BuildNewPlaceNotifications(nil, business, time.Now()))
	assert.Empty(t, BuildNewPlaceNotifications([]models.User{
		{ID: primitive.NewObjectID(), UserType: "business", IsActive: true},
	}, business, time.Now()))
}
