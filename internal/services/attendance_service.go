package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
)

// attendanceService handles daily attendance entries.
type attendanceService struct {
	db *gorm.DB
}

// NewAttendanceService creates a new AttendanceServicer.
func NewAttendanceService(db *gorm.DB) AttendanceServicer {
	return &attendanceService{db: db}
}

func (s *attendanceService) requireLabour(tx *gorm.DB, labourID models.ID) error {
	var labour models.LabourProfile
	if err := tx.Where("id = ?", labourID).First(&labour).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLabourNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// MarkAttendance records a worker's attendance for a date. Marking the same
// worker and date again replaces the earlier entry, so each pair has at most
// one row.
func (s *attendanceService) MarkAttendance(entry *models.Attendance) (*models.Attendance, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.requireLabour(tx, entry.LabourID); err != nil {
			return err
		}
		if err := tx.Where("labour_id = ? AND date = ?", entry.LabourID, entry.Date).
			Delete(&models.Attendance{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// MarkAllPresent marks every worker on the roster Present for the given
// date, replacing whatever was recorded for that date before.
func (s *attendanceService) MarkAllPresent(date string) ([]models.Attendance, error) {
	var entries []models.Attendance
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var labours []models.LabourProfile
		if err := tx.Order("name ASC").Find(&labours).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		for _, l := range labours {
			if err := tx.Where("labour_id = ? AND date = ?", l.ID, date).
				Delete(&models.Attendance{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			entry := models.Attendance{
				LabourID: l.ID,
				Date:     date,
				Status:   models.StatusPresent,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.Attendance{}
	}
	return entries, nil
}

// GetAttendance retrieves attendance entries, optionally filtered by worker
// and/or date, newest first.
func (s *attendanceService) GetAttendance(labourID models.ID, date string) ([]models.Attendance, error) {
	query := s.db.Order("date DESC, created_at DESC")
	if labourID != "" {
		query = query.Where("labour_id = ?", labourID)
	}
	if date != "" {
		query = query.Where("date = ?", date)
	}

	var entries []models.Attendance
	if err := query.Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}

// UpdateAttendance replaces the mutable fields of an attendance entry by ID.
// Unlike MarkAttendance it does not collapse duplicates; it edits one row.
func (s *attendanceService) UpdateAttendance(id models.ID, entry *models.Attendance) (*models.Attendance, error) {
	var existing models.Attendance
	if err := s.db.Where("id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	existing.Date = entry.Date
	existing.Status = entry.Status
	existing.OvertimeHours = entry.OvertimeHours

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &existing, nil
}

// DeleteAttendance removes an attendance entry.
func (s *attendanceService) DeleteAttendance(id models.ID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Attendance{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}
