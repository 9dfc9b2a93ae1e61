package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitekhata/internal/models"
	"sitekhata/internal/report"
	"sitekhata/internal/services"
)

// DashboardHandler serves the derived read-only views.
type DashboardHandler struct {
	reportService services.ReportServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reportService services.ReportServicer) *DashboardHandler {
	return &DashboardHandler{reportService: reportService}
}

// GetDashboard handles the project overview.
// @Summary     Project dashboard
// @Description Balance sheet, partner shares, workforce totals, and budget usage
// @Tags        reports
// @Produce     json
// @Success     200 {object} services.Dashboard "Dashboard"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dash, err := h.reportService.Dashboard()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dash)
}

// GetLedger handles the unified outflow ledger.
// @Summary     Unified ledger
// @Description Direct expenses and labour payouts merged into one history, newest first
// @Tags        reports
// @Produce     json
// @Param       category query string false "Filter by expense category"
// @Param       q query string false "Search payee, vendor, and notes"
// @Success     200 {array} report.LedgerEntry "Ledger entries"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledger [get]
func (h *DashboardHandler) GetLedger(c *gin.Context) {
	filter := report.LedgerFilter{
		Category: models.ExpenseCategory(c.Query("category")),
		Search:   c.Query("q"),
	}

	entries, err := h.reportService.Ledger(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ledger": entries})
}
