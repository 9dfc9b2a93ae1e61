package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
	"sitekhata/internal/services"
)

// LabourHandler handles worker roster requests.
type LabourHandler struct {
	labourService services.LabourServicer
	reportService services.ReportServicer
}

// NewLabourHandler creates a new LabourHandler.
func NewLabourHandler(labourService services.LabourServicer, reportService services.ReportServicer) *LabourHandler {
	return &LabourHandler{labourService: labourService, reportService: reportService}
}

// LabourRequest represents the payload for creating or updating a worker.
type LabourRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=100"`
	Mobile    string  `json:"mobile" binding:"max=20"`
	WorkType  string  `json:"work_type" binding:"required,min=1,max=100"`
	DailyWage float64 `json:"daily_wage" binding:"required,gt=0"`
}

func (r *LabourRequest) toModel() *models.LabourProfile {
	return &models.LabourProfile{
		Name:      r.Name,
		Mobile:    r.Mobile,
		WorkType:  r.WorkType,
		DailyWage: r.DailyWage,
	}
}

// CreateLabour handles adding a worker to the roster.
// @Summary     Add a worker
// @Tags        labours
// @Accept      json
// @Produce     json
// @Param       request body LabourRequest true "Worker details"
// @Success     201 {object} models.LabourProfile "Worker created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /labours [post]
func (h *LabourHandler) CreateLabour(c *gin.Context) {
	var req LabourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	labour, err := h.labourService.CreateLabour(req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"labour": labour})
}

// GetLabours handles listing the roster.
// @Summary     List workers
// @Tags        labours
// @Produce     json
// @Success     200 {array} models.LabourProfile "Workers"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /labours [get]
func (h *LabourHandler) GetLabours(c *gin.Context) {
	labours, err := h.labourService.GetLabours()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"labours": labours})
}

// GetLabour handles retrieving a single worker.
// @Summary     Get a worker
// @Tags        labours
// @Produce     json
// @Param       id path string true "Labour ID"
// @Success     200 {object} models.LabourProfile "Worker"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /labours/{id} [get]
func (h *LabourHandler) GetLabour(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	labour, err := h.labourService.GetLabourByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"labour": labour})
}

// UpdateLabour handles updating a worker profile.
// @Summary     Update a worker
// @Tags        labours
// @Accept      json
// @Produce     json
// @Param       id path string true "Labour ID"
// @Param       request body LabourRequest true "Worker details"
// @Success     200 {object} models.LabourProfile "Updated worker"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /labours/{id} [put]
func (h *LabourHandler) UpdateLabour(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req LabourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	labour, err := h.labourService.UpdateLabour(id, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"labour": labour})
}

// DeleteLabour handles removing a worker and all records tied to them.
// @Summary     Delete a worker
// @Description Delete a worker along with their attendance and payments
// @Tags        labours
// @Produce     json
// @Param       id path string true "Labour ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /labours/{id} [delete]
func (h *LabourHandler) DeleteLabour(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.labourService.DeleteLabour(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Labour deleted"})
}

// GetLabourStats handles the per-worker wage position view.
// @Summary     Worker wage positions
// @Description Derived days worked, earnings, payouts, and outstanding dues per worker
// @Tags        labours
// @Produce     json
// @Success     200 {object} map[string]interface{} "Stats"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /labours/stats [get]
func (h *LabourHandler) GetLabourStats(c *gin.Context) {
	stats, totals, err := h.reportService.LabourStats()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats, "totals": totals})
}
