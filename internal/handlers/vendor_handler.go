package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
	"sitekhata/internal/services"
)

// VendorHandler handles vendor directory requests.
type VendorHandler struct {
	vendorService services.VendorServicer
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendorService services.VendorServicer) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// VendorRequest represents the payload for creating or updating a vendor.
type VendorRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Category string `json:"category" binding:"required,expense_category"`
	Mobile   string `json:"mobile" binding:"max=20"`
}

func (r *VendorRequest) toModel() *models.Vendor {
	return &models.Vendor{
		Name:     r.Name,
		Category: models.ExpenseCategory(r.Category),
		Mobile:   r.Mobile,
	}
}

// CreateVendor handles adding a vendor to the directory.
// @Summary     Add a vendor
// @Tags        vendors
// @Accept      json
// @Produce     json
// @Param       request body VendorRequest true "Vendor details"
// @Success     201 {object} models.Vendor "Vendor created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	vendor, err := h.vendorService.CreateVendor(req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vendor": vendor})
}

// GetVendors handles listing the vendor directory.
// @Summary     List vendors
// @Tags        vendors
// @Produce     json
// @Param       category query string false "Filter by category"
// @Success     200 {array} models.Vendor "Vendors"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /vendors [get]
func (h *VendorHandler) GetVendors(c *gin.Context) {
	vendors, err := h.vendorService.GetVendors(models.ExpenseCategory(c.Query("category")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

// GetVendor handles retrieving a single vendor.
// @Summary     Get a vendor
// @Tags        vendors
// @Produce     json
// @Param       id path string true "Vendor ID"
// @Success     200 {object} models.Vendor "Vendor"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /vendors/{id} [get]
func (h *VendorHandler) GetVendor(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	vendor, err := h.vendorService.GetVendorByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

// UpdateVendor handles updating a vendor.
// @Summary     Update a vendor
// @Tags        vendors
// @Accept      json
// @Produce     json
// @Param       id path string true "Vendor ID"
// @Param       request body VendorRequest true "Vendor details"
// @Success     200 {object} models.Vendor "Updated vendor"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /vendors/{id} [put]
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	vendor, err := h.vendorService.UpdateVendor(id, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

// DeleteVendor handles removing a vendor from the directory.
// @Summary     Delete a vendor
// @Tags        vendors
// @Produce     json
// @Param       id path string true "Vendor ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /vendors/{id} [delete]
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.vendorService.DeleteVendor(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted"})
}
