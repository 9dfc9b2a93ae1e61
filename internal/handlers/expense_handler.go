package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
	"sitekhata/internal/pagination"
	"sitekhata/internal/services"
)

// ExpenseHandler handles direct expense requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents the payload for creating or updating an expense.
// PaidTo may be omitted when a vendor is linked; the vendor's name is used.
type ExpenseRequest struct {
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,expense_category"`
	SubCategory string  `json:"sub_category" binding:"max=100"`
	PaidTo      string  `json:"paid_to" binding:"max=100"`
	VendorID    string  `json:"vendor_id" binding:"max=64"`
	Mode        string  `json:"mode" binding:"required,payment_mode"`
	Notes       string  `json:"notes" binding:"max=500"`
}

func (r *ExpenseRequest) toModel() *models.Expense {
	return &models.Expense{
		Date:        r.Date,
		Amount:      r.Amount,
		Category:    models.ExpenseCategory(r.Category),
		SubCategory: r.SubCategory,
		PaidTo:      r.PaidTo,
		VendorID:    models.ID(r.VendorID),
		Mode:        models.PaymentMode(r.Mode),
		Notes:       r.Notes,
	}
}

// CreateExpense handles the creation of a new expense record.
// @Summary     Record an expense
// @Description Record a direct project expense, optionally linked to a vendor
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Vendor not found"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenses handles listing expense records.
// @Summary     List expenses
// @Description List expense records newest first
// @Tags        expenses
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Expenses"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.expenseService.GetExpenses(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetExpense handles retrieving a single expense record.
// @Summary     Get an expense
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.Expense "Expense"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles updating an expense record.
// @Summary     Update an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id path string true "Expense ID"
// @Param       request body ExpenseRequest true "Expense details"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.UpdateExpense(id, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles deleting an expense record.
// @Summary     Delete an expense
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}
