// utils/report.go
package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/karetou/karetou_backend/models"
)

// ReportRow is one label/value line in the summary section.
type ReportRow struct {
	Label string
	Value string
}

// ReportData is the layout-independent content of an admin report; the
// PDF and plain-text exporters both render from it.
type ReportData struct {
	Title       string
	GeneratedAt time.Time
	Summary     []ReportRow
	Performers  []models.Business
}

// BuildReportData assembles the report content from dashboard stats.
func BuildReportData(stats models.DashboardStats) ReportData {
	return ReportData{
		Title:       "Karetou Admin Report",
		GeneratedAt: stats.GeneratedAt,
		Summary: []ReportRow{
			{Label: "Total users", Value: fmt.Sprintf("%d", stats.TotalUsers)},
			{Label: "Active users", Value: fmt.Sprintf("%d", stats.ActiveUsers)},
			{Label: "Total businesses", Value: fmt.Sprintf("%d", stats.TotalBusinesses)},
			{Label: "Pending businesses", Value: fmt.Sprintf("%d", stats.PendingBusinesses)},
			{Label: "Approved businesses", Value: fmt.Sprintf("%d", stats.ApprovedBusinesses)},
			{Label: "Rejected businesses", Value: fmt.Sprintf("%d", stats.RejectedBusinesses)},
			{Label: "Active businesses", Value: fmt.Sprintf("%d", stats.ActiveBusinesses)},
			{Label: "Inactive businesses", Value: fmt.Sprintf("%d", stats.InactiveBusinesses)},
		},
		Performers: stats.TopPerformers,
	}
}

// RenderReportText serializes the report as plain text for the
// download-as-file export.
func RenderReportText(data ReportData) string {
	var b strings.Builder

	b.WriteString(data.Title + "\n")
	b.WriteString("Generated: " + data.GeneratedAt.Format("2006-01-02 15:04") + "\n\n")

	b.WriteString("Summary\n")
	for _, row := range data.Summary {
		b.WriteString(fmt.Sprintf("  %-22s %s\n", row.Label+":", row.Value))
	}

	b.WriteString("\nTop performers (by profile views)\n")
	if len(data.Performers) == 0 {
		b.WriteString("  none\n")
	}
	for i, business := range data.Performers {
		b.WriteString(fmt.Sprintf("  %d. %-30s %d views\n", i+1, business.BusinessName, business.ViewCount))
	}

	return b.String()
}
