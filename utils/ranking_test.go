package utils

import (
	"testing"

	"github.com/karetou/karetou_backend/models"
	"github.com/stretchr/testify/assert"
)

func businessWithViews(name string, views int64) models.Business {
	return models.Business{BusinessName: name, ViewCount: views}
}

func TestTopPerformers(t *testing.T) {
	businesses := []models.Business{
		businessWithViews("cafe", 10),
		businessWithViews("resort", 500),
		businessWithViews("diner", 42),
		businessWithViews("museum", 0),
		businessWithViews("park", 42),
		businessWithViews("hostel", 7),
	}

	ranked := TopPerformers(businesses, 5)

	assert.Len(t, ranked, 5)
	assert.Equal(t, "resort", ranked[0].BusinessName)
	assert.Equal(t, "diner", ranked[1].BusinessName)
	// Stable sort keeps input order for equal view counts
	assert.Equal(t, "park", ranked[2].BusinessName)
	assert.Equal(t, "cafe", ranked[3].BusinessName)
	assert.Equal(t, "hostel", ranked[4].BusinessName)
}

func TestTopPerformersFewerThanLimit(t *testing.T) {
	businesses := []models.Business{
		businessWithViews("cafe", 3),
		businessWithViews("diner", 9),
	}

	ranked := TopPerformers(businesses, 5)

	assert.Len(t, ranked, 2)
	assert.Equal(t, "diner", ranked[0].BusinessName)
}

func TestTopPerformersDoesNotMutateInput(t *testing.T) {
	businesses := []models.Business{
		businessWithViews("a", 1),
		businessWithViews("b", 2),
		businessWithViews("c", 3),
	}

	TopPerformers(businesses, 2)

	assert.Equal(t, "a", businesses[0].BusinessName)
	assert.Equal(t, "b", businesses[1].BusinessName)
	assert.Equal(t, "c", businesses[2].BusinessName)
}

func TestTopPerformersEdgeCases(t *testing.T) {
	assert.Nil(t, TopPerformers([]models.Business{businessWithViews("a", 1)}, 0))
	assert.Empty(t, TopPerformers(nil, 5))
}
