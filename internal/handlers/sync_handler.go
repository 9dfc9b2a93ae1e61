package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitekhata/internal/services"
)

// SyncHandler handles the one-way spreadsheet push.
type SyncHandler struct {
	syncService services.SyncServicer
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(syncService services.SyncServicer) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// Push handles pushing the current collections to the configured sheet URL.
// @Summary     Push to sheet
// @Description Post the record collections to the configured sheet endpoint
// @Tags        sync
// @Produce     json
// @Success     200 {object} map[string]string "Pushed"
// @Failure     400 {object} ErrorResponse "Sync not configured"
// @Failure     502 {object} ErrorResponse "Push failed"
// @Router      /sync [post]
func (h *SyncHandler) Push(c *gin.Context) {
	if err := h.syncService.Push(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sync pushed"})
}
