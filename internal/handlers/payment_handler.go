package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
	"sitekhata/internal/services"
)

// PaymentHandler handles wage payout requests.
type PaymentHandler struct {
	paymentService services.PaymentServicer
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService services.PaymentServicer) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentRequest represents the payload for recording a payout.
type CreatePaymentRequest struct {
	LabourID string  `json:"labour_id" binding:"required"`
	Date     string  `json:"date" binding:"required,datetime=2006-01-02"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Type     string  `json:"type" binding:"required,payment_type"`
	Mode     string  `json:"mode" binding:"required,payment_mode"`
}

// UpdatePaymentRequest represents the payload for editing a payout. The
// worker it belongs to cannot be changed.
type UpdatePaymentRequest struct {
	Date   string  `json:"date" binding:"required,datetime=2006-01-02"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Type   string  `json:"type" binding:"required,payment_type"`
	Mode   string  `json:"mode" binding:"required,payment_mode"`
}

// CreatePayment handles recording a wage payout.
// @Summary     Record a payout
// @Tags        payments
// @Accept      json
// @Produce     json
// @Param       request body CreatePaymentRequest true "Payout details"
// @Success     201 {object} models.LabourPayment "Payout created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Worker not found"
// @Router      /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	payment, err := h.paymentService.CreatePayment(&models.LabourPayment{
		LabourID: models.ID(req.LabourID),
		Date:     req.Date,
		Amount:   req.Amount,
		Type:     models.PaymentType(req.Type),
		Mode:     models.PaymentMode(req.Mode),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// GetPayments handles listing payouts.
// @Summary     List payouts
// @Tags        payments
// @Produce     json
// @Param       labour_id query string false "Filter by worker"
// @Success     200 {array} models.LabourPayment "Payouts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payments [get]
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	labourID := models.ID(c.Query("labour_id"))

	payments, err := h.paymentService.GetPayments(labourID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// GetPayment handles retrieving a single payout.
// @Summary     Get a payout
// @Tags        payments
// @Produce     json
// @Param       id path string true "Payment ID"
// @Success     200 {object} models.LabourPayment "Payout"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	payment, err := h.paymentService.GetPaymentByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// UpdatePayment handles editing a payout.
// @Summary     Update a payout
// @Tags        payments
// @Accept      json
// @Produce     json
// @Param       id path string true "Payment ID"
// @Param       request body UpdatePaymentRequest true "Payout details"
// @Success     200 {object} models.LabourPayment "Updated payout"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /payments/{id} [put]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	payment, err := h.paymentService.UpdatePayment(id, &models.LabourPayment{
		Date:   req.Date,
		Amount: req.Amount,
		Type:   models.PaymentType(req.Type),
		Mode:   models.PaymentMode(req.Mode),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// DeletePayment handles removing a payout.
// @Summary     Delete a payout
// @Tags        payments
// @Produce     json
// @Param       id path string true "Payment ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.paymentService.DeletePayment(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}
