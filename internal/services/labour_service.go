package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
)

// labourService handles the worker roster.
type labourService struct {
	db *gorm.DB
}

// NewLabourService creates a new LabourServicer.
func NewLabourService(db *gorm.DB) LabourServicer {
	return &labourService{db: db}
}

// CreateLabour stores a new worker profile.
func (s *labourService) CreateLabour(labour *models.LabourProfile) (*models.LabourProfile, error) {
	if err := s.db.Create(labour).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return labour, nil
}

// GetLabours retrieves the full roster, sorted by name.
func (s *labourService) GetLabours() ([]models.LabourProfile, error) {
	var labours []models.LabourProfile
	if err := s.db.Order("name ASC").Find(&labours).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return labours, nil
}

// GetLabourByID retrieves a single worker profile.
func (s *labourService) GetLabourByID(id models.ID) (*models.LabourProfile, error) {
	var labour models.LabourProfile
	if err := s.db.Where("id = ?", id).First(&labour).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLabourNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &labour, nil
}

// UpdateLabour replaces the mutable fields of a worker profile. Changing the
// daily wage reprices all of the worker's history, past and future.
func (s *labourService) UpdateLabour(id models.ID, labour *models.LabourProfile) (*models.LabourProfile, error) {
	existing, err := s.GetLabourByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = labour.Name
	existing.Mobile = labour.Mobile
	existing.WorkType = labour.WorkType
	existing.DailyWage = labour.DailyWage

	if err := s.db.Save(existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return existing, nil
}

// DeleteLabour removes a worker and everything recorded against them.
// The profile, its attendance, and its payments go together or not at all.
func (s *labourService) DeleteLabour(id models.ID) error {
	if _, err := s.GetLabourByID(id); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("labour_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("labour_id = ?", id).Delete(&models.LabourPayment{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.LabourProfile{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	return err
}
