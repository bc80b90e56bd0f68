package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/karetou/karetou_backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStats() models.DashboardStats {
	return models.DashboardStats{
		TotalUsers:         120,
		ActiveUsers:        95,
		TotalBusinesses:    40,
		PendingBusinesses:  5,
		ApprovedBusinesses: 30,
		RejectedBusinesses: 5,
		ActiveBusinesses:   28,
		InactiveBusinesses: 2,
		TopPerformers: []models.Business{
			{BusinessName: "Sunrise Resort", BusinessType: "resort", ViewCount: 900},
			{BusinessName: "Bay Cafe", BusinessType: "cafe", ViewCount: 412},
		},
		GeneratedAt: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestBuildReportData(t *testing.T) {
	data := BuildReportData(sampleStats())

	assert.Equal(t, "Karetou Admin Report", data.Title)
	require.Len(t, data.Summary, 8)
	assert.Equal(t, "Total users", data.Summary[0].Label)
	assert.Equal(t, "120", data.Summary[0].Value)
	assert.Equal(t, "Inactive businesses", data.Summary[7].Label)
	assert.Equal(t, "2", data.Summary[7].Value)
	assert.Len(t, data.Performers, 2)
}

func TestRenderReportText(t *testing.T) {
	text := RenderReportText(BuildReportData(sampleStats()))

	assert.True(t, strings.HasPrefix(text, "Karetou Admin Report\n"))
	assert.Contains(t, text, "Generated: 2025-06-01 09:30")
	assert.Contains(t, text, "Total users:")
	assert.Contains(t, text, "120")
	assert.Contains(t, text, "1. Sunrise Resort")
	assert.Contains(t, text, "900 views")
	assert.Contains(t, text, "2. Bay Cafe")
}

func TestRenderReportTextNoPerformers(t *testing.T) {
	stats := sampleStats()
	stats.TopPerformers = nil

	text := RenderReportText(BuildReportData(stats))

	assert.Contains(t, text, "none")
}
