// controllers/report_controller.go
package controllers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/karetou/karetou_backend/models"
	"github.com/karetou/karetou_backend/utils"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReportController exports the dashboard stats as downloadable files.
type ReportController struct {
	DB *mongo.Client
}

// NewReportController creates a new report controller
func NewReportController(db *mongo.Client) *ReportController {
	return &ReportController{DB: db}
}

// GetPDFReport renders the current stats as a PDF attachment.
func (rc *ReportController) GetPDFReport(c echo.Context) error {
	stats, err := ComputeDashboardStats(rc.DB)
	if err != nil {
		log.Printf("Error computing stats for PDF report: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate report",
		})
	}

	data := utils.BuildReportData(stats)

	pdfBytes, err := renderReportPDF(data)
	if err != nil {
		log.Printf("Error rendering PDF report: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to render report",
		})
	}

	filename := fmt.Sprintf("karetou-report-%s.pdf", uuid.New().String()[:8])
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}

// GetTextReport serves the same stats as plain text.
func (rc *ReportController) GetTextReport(c echo.Context) error {
	stats, err := ComputeDashboardStats(rc.DB)
	if err != nil {
		log.Printf("Error computing stats for text report: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate report",
		})
	}

	data := utils.BuildReportData(stats)
	text := utils.RenderReportText(data)

	filename := fmt.Sprintf("karetou-report-%s.txt", uuid.New().String()[:8])
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// renderReportPDF lays the report out as a title, a summary table and
// a top performers table.
func renderReportPDF(data utils.ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, data.Title)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, "Generated: "+data.GeneratedAt.Format("2006-01-02 15:04"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range data.Summary {
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(80, 7, row.Label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(40, 7, row.Value, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Top performers (by profile views)")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(80, 7, "Business", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 7, "Type", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, "Views", "1", 0, "R", true, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	if len(data.Performers) == 0 {
		pdf.CellFormat(160, 7, "No approved businesses yet", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	for i, business := range data.Performers {
		pdf.CellFormat(10, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(80, 7, business.BusinessName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, business.BusinessType, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", business.ViewCount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
