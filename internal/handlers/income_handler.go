package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
	"sitekhata/internal/pagination"
	"sitekhata/internal/services"
)

// IncomeHandler handles partner income requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// IncomeRequest represents the payload for creating or updating an income.
type IncomeRequest struct {
	Date    string  `json:"date" binding:"required,datetime=2006-01-02"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Source  string  `json:"source" binding:"required,income_source"`
	PaidBy  string  `json:"paid_by" binding:"required,min=1,max=100"`
	Mode    string  `json:"mode" binding:"required,payment_mode"`
	Remarks string  `json:"remarks" binding:"max=500"`
}

func (r *IncomeRequest) toModel() *models.Income {
	return &models.Income{
		Date:    r.Date,
		Amount:  r.Amount,
		Source:  models.IncomeSource(r.Source),
		PaidBy:  r.PaidBy,
		Mode:    models.PaymentMode(r.Mode),
		Remarks: r.Remarks,
	}
}

// CreateIncome handles the creation of a new income record.
// @Summary     Record an income
// @Description Record a partner contribution or other incoming funds
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Param       request body IncomeRequest true "Income details"
// @Success     201 {object} models.Income "Income created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	income, err := h.incomeService.CreateIncome(req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"income": income})
}

// GetIncomes handles listing income records.
// @Summary     List incomes
// @Description List income records newest first
// @Tags        incomes
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Income] "Incomes"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes [get]
func (h *IncomeHandler) GetIncomes(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.incomeService.GetIncomes(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetIncome handles retrieving a single income record.
// @Summary     Get an income
// @Tags        incomes
// @Produce     json
// @Param       id path string true "Income ID"
// @Success     200 {object} models.Income "Income"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /incomes/{id} [get]
func (h *IncomeHandler) GetIncome(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.GetIncomeByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// UpdateIncome handles updating an income record.
// @Summary     Update an income
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Param       id path string true "Income ID"
// @Param       request body IncomeRequest true "Income details"
// @Success     200 {object} models.Income "Updated income"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /incomes/{id} [put]
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	income, err := h.incomeService.UpdateIncome(id, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// DeleteIncome handles deleting an income record.
// @Summary     Delete an income
// @Tags        incomes
// @Produce     json
// @Param       id path string true "Income ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /incomes/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.incomeService.DeleteIncome(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted"})
}
