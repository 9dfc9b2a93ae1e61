package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
	"sitekhata/internal/services"
)

// SettingsHandler handles the settings singleton.
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SettingsRequest represents the payload for replacing the settings.
type SettingsRequest struct {
	ProjectName string  `json:"project_name" binding:"required,min=1,max=100"`
	Location    string  `json:"location" binding:"max=100"`
	Budget      float64 `json:"budget" binding:"gte=0"`
	Language    string  `json:"language" binding:"required,app_language"`
	AutoSync    bool    `json:"auto_sync"`
	SyncEmail   string  `json:"sync_email" binding:"omitempty,email"`
	SheetURL    string  `json:"sheet_url" binding:"omitempty,url"`
	SheetLink   string  `json:"sheet_link" binding:"omitempty,url"`
}

// GetSettings handles reading the settings.
// @Summary     Get settings
// @Description Read the settings singleton, created with defaults on first use
// @Tags        settings
// @Produce     json
// @Success     200 {object} models.AppSettings "Settings"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings handles replacing the settings wholesale.
// @Summary     Update settings
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       request body SettingsRequest true "Settings"
// @Success     200 {object} models.AppSettings "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.settingsService.UpdateSettings(&models.AppSettings{
		ProjectName: req.ProjectName,
		Location:    req.Location,
		Budget:      req.Budget,
		Language:    req.Language,
		AutoSync:    req.AutoSync,
		SyncEmail:   req.SyncEmail,
		SheetURL:    req.SheetURL,
		SheetLink:   req.SheetLink,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
