package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
)

// settingsService handles the settings singleton.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings returns the settings record, creating it with defaults on
// first read so callers never see a missing row.
func (s *settingsService) GetSettings() (*models.AppSettings, error) {
	var settings models.AppSettings
	err := s.db.First(&settings, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := models.DefaultSettings()
		if err := s.db.Create(defaults).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return defaults, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// UpdateSettings replaces the settings record wholesale.
func (s *settingsService) UpdateSettings(settings *models.AppSettings) (*models.AppSettings, error) {
	if _, err := s.GetSettings(); err != nil {
		return nil, err
	}

	settings.ID = 1
	if err := s.db.Save(settings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return settings, nil
}
