package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
	"sitekhata/internal/services"
)

// AttendanceHandler handles daily attendance requests.
type AttendanceHandler struct {
	attendanceService services.AttendanceServicer
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService services.AttendanceServicer) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// MarkAttendanceRequest represents the payload for marking attendance.
type MarkAttendanceRequest struct {
	LabourID      string  `json:"labour_id" binding:"required"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	Status        string  `json:"status" binding:"required,attendance_status"`
	OvertimeHours float64 `json:"overtime_hours" binding:"gte=0,lte=24"`
}

// UpdateAttendanceRequest represents the payload for editing one entry.
type UpdateAttendanceRequest struct {
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	Status        string  `json:"status" binding:"required,attendance_status"`
	OvertimeHours float64 `json:"overtime_hours" binding:"gte=0,lte=24"`
}

// BulkAttendanceRequest represents the payload for marking everyone present.
type BulkAttendanceRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

// MarkAttendance handles recording a worker's attendance for a date.
// Marking the same worker and date again replaces the earlier entry.
// @Summary     Mark attendance
// @Tags        attendance
// @Accept      json
// @Produce     json
// @Param       request body MarkAttendanceRequest true "Attendance entry"
// @Success     201 {object} models.Attendance "Attendance marked"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Worker not found"
// @Router      /attendance [post]
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.attendanceService.MarkAttendance(&models.Attendance{
		LabourID:      models.ID(req.LabourID),
		Date:          req.Date,
		Status:        models.AttendanceStatus(req.Status),
		OvertimeHours: req.OvertimeHours,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attendance": entry})
}

// MarkAllPresent handles marking every worker present for a date.
// @Summary     Mark all present
// @Description Mark every worker on the roster Present for the given date
// @Tags        attendance
// @Accept      json
// @Produce     json
// @Param       request body BulkAttendanceRequest true "Date"
// @Success     201 {array} models.Attendance "Entries created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /attendance/bulk [post]
func (h *AttendanceHandler) MarkAllPresent(c *gin.Context) {
	var req BulkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entries, err := h.attendanceService.MarkAllPresent(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attendance": entries})
}

// GetAttendance handles listing attendance entries.
// @Summary     List attendance
// @Tags        attendance
// @Produce     json
// @Param       labour_id query string false "Filter by worker"
// @Param       date query string false "Filter by date (YYYY-MM-DD)"
// @Success     200 {array} models.Attendance "Entries"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /attendance [get]
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	labourID := models.ID(c.Query("labour_id"))
	date := c.Query("date")

	entries, err := h.attendanceService.GetAttendance(labourID, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendance": entries})
}

// UpdateAttendance handles editing a single attendance entry.
// @Summary     Update an attendance entry
// @Tags        attendance
// @Accept      json
// @Produce     json
// @Param       id path string true "Attendance ID"
// @Param       request body UpdateAttendanceRequest true "Attendance entry"
// @Success     200 {object} models.Attendance "Updated entry"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /attendance/{id} [put]
func (h *AttendanceHandler) UpdateAttendance(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.attendanceService.UpdateAttendance(id, &models.Attendance{
		Date:          req.Date,
		Status:        models.AttendanceStatus(req.Status),
		OvertimeHours: req.OvertimeHours,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendance": entry})
}

// DeleteAttendance handles removing an attendance entry.
// @Summary     Delete an attendance entry
// @Tags        attendance
// @Produce     json
// @Param       id path string true "Attendance ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /attendance/{id} [delete]
func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.attendanceService.DeleteAttendance(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Attendance deleted"})
}
