package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/services"
)

// SnapshotHandler handles whole-store backup, restore, and reset.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// ExportSnapshot handles downloading the full store as JSON.
// @Summary     Export backup
// @Description Download every collection plus settings as one JSON document
// @Tags        snapshot
// @Produce     json
// @Success     200 {object} services.Snapshot "Snapshot"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /snapshot [get]
func (h *SnapshotHandler) ExportSnapshot(c *gin.Context) {
	snap, err := h.snapshotService.Export()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="backup.json"`)
	c.JSON(http.StatusOK, snap)
}

// ImportSnapshot handles restoring the store from a backup document.
// @Summary     Import backup
// @Description Replace collections from a backup document; all-or-nothing
// @Tags        snapshot
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]string "Imported"
// @Failure     400 {object} ErrorResponse "Invalid snapshot"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /snapshot [post]
func (h *SnapshotHandler) ImportSnapshot(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidSnapshot, err))
		return
	}

	if err := h.snapshotService.Import(raw); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Snapshot imported"})
}

// ResetStore handles wiping every collection.
// @Summary     Reset all data
// @Description Wipe every collection and restore default settings
// @Tags        snapshot
// @Produce     json
// @Success     200 {object} map[string]string "Reset"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /snapshot [delete]
func (h *SnapshotHandler) ResetStore(c *gin.Context) {
	if err := h.snapshotService.Reset(); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All data reset"})
}
