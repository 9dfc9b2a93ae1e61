package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/services"
)

// ReportHandler serves downloadable report files.
type ReportHandler struct {
	exportService services.ExportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(exportService services.ExportServicer) *ReportHandler {
	return &ReportHandler{exportService: exportService}
}

// DownloadCSV handles the CSV report download.
// @Summary     Download CSV report
// @Description Sectioned project report with income, expenses, labour payments, and a grand summary
// @Tags        reports
// @Produce     text/csv
// @Success     200 {string} string "CSV report"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/csv [get]
func (h *ReportHandler) DownloadCSV(c *gin.Context) {
	// Rendered into a buffer first so a failure can still return JSON.
	var buf bytes.Buffer
	if err := h.exportService.WriteCSV(&buf); err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", services.ReportFilename("csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// DownloadXLSX handles the XLSX report download.
// @Summary     Download XLSX report
// @Description Project report workbook with one sheet per section
// @Tags        reports
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success     200 {string} string "XLSX report"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/xlsx [get]
func (h *ReportHandler) DownloadXLSX(c *gin.Context) {
	f, err := h.exportService.BuildXLSX()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", services.ReportFilename("xlsx")))

	if err := f.Write(c.Writer); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
	}
}
