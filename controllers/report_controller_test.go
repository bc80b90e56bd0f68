package controllers

import (
	"testing"
	"time"

	"github.com/karetou/karetou_backend/models"
	"github.com/karetou/karetou_backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReportPDF(t *testing.T) {
	data := utils.BuildReportData(models.DashboardStats{
		TotalUsers:         10,
		ActiveUsers:        8,
		TotalBusinesses:    4,
		ApprovedBusinesses: 3,
		TopPerformers: []models.Business{
			{BusinessName: "Sunrise Resort", BusinessType: "resort", ViewCount: 321},
		},
		GeneratedAt: time.Now(),
	})

	pdfBytes, err := renderReportPDF(data)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestRenderReportPDFNoPerformers(t *testing.T) {
	data := utils.BuildReportData(models.DashboardStats{GeneratedAt: time.Now()})

	pdfBytes, err := renderReportPDF(data)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
