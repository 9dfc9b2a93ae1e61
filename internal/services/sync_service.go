package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/logger"
	"sitekhata/internal/models"
)

// syncPayload is the document pushed to the configured sheet endpoint. The
// receiver lays rows out itself, so worker profiles and settings stay local;
// payments carry enough to be rendered without them.
type syncPayload struct {
	SheetName string    `json:"sheetName"`
	Timestamp time.Time `json:"timestamp"`
	Data      syncData  `json:"data"`
}

type syncData struct {
	Incomes    []models.Income        `json:"incomes"`
	Expenses   []models.Expense       `json:"expenses"`
	Payments   []models.LabourPayment `json:"payments"`
	Attendance []models.Attendance    `json:"attendance"`
	Vendors    []models.Vendor        `json:"vendors"`
}

// syncService pushes the record collections to an external sheet endpoint.
// The push is one-way and fire-and-forget: a completed HTTP round trip
// counts as success regardless of what the receiver answers.
type syncService struct {
	db       *gorm.DB
	settings SettingsServicer
	client   *http.Client
}

// NewSyncService creates a new SyncServicer with the given request timeout.
func NewSyncService(db *gorm.DB, settings SettingsServicer, timeout time.Duration) SyncServicer {
	return &syncService{
		db:       db,
		settings: settings,
		client:   &http.Client{Timeout: timeout},
	}
}

// Push sends the current collections to the configured sheet URL.
func (s *syncService) Push(ctx context.Context) error {
	settings, err := s.settings.GetSettings()
	if err != nil {
		return err
	}
	if settings.SheetURL == "" {
		return apperrors.ErrSyncNotConfigured
	}

	payload := syncPayload{
		SheetName: settings.ProjectName,
		Timestamp: time.Now().UTC(),
	}

	steps := []error{
		s.db.Order("created_at ASC").Find(&payload.Data.Incomes).Error,
		s.db.Order("created_at ASC").Find(&payload.Data.Expenses).Error,
		s.db.Order("created_at ASC").Find(&payload.Data.Payments).Error,
		s.db.Order("created_at ASC").Find(&payload.Data.Attendance).Error,
		s.db.Order("created_at ASC").Find(&payload.Data.Vendors).Error,
	}
	for _, err := range steps {
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, settings.SheetURL, bytes.NewReader(body))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrSyncFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrSyncFailed, err)
	}
	defer resp.Body.Close()

	logger.Get().Infow("sheet sync pushed",
		"sheet_name", payload.SheetName,
		"status", resp.StatusCode,
		"incomes", len(payload.Data.Incomes),
		"expenses", len(payload.Data.Expenses),
		"payments", len(payload.Data.Payments),
	)
	return nil
}
