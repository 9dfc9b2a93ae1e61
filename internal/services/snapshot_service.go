package services

import (
	"encoding/json"

	"gorm.io/gorm"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
)

// SnapshotVersion is the format tag written into every export and accepted
// back on import. Older exports without structural changes import fine; the
// tag exists so a future breaking change can be detected.
const SnapshotVersion = "1.2"

// Snapshot is the full portable state of the store: every collection plus
// the settings singleton. Collection keys absent from an imported document
// leave the corresponding collection untouched; an empty array replaces it.
type Snapshot struct {
	Version    string                 `json:"version"`
	Incomes    []models.Income        `json:"incomes"`
	Expenses   []models.Expense       `json:"expenses"`
	Labours    []models.LabourProfile `json:"labours"`
	Attendance []models.Attendance    `json:"attendance"`
	Payments   []models.LabourPayment `json:"payments"`
	Vendors    []models.Vendor        `json:"vendors"`
	Settings   *models.AppSettings    `json:"settings,omitempty"`
}

// snapshotService handles whole-store export, import, and reset.
type snapshotService struct {
	db *gorm.DB
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB) SnapshotServicer {
	return &snapshotService{db: db}
}

// Export reads every collection into a Snapshot. Slices come back non-nil so
// the JSON document always carries every key.
func (s *snapshotService) Export() (*Snapshot, error) {
	snap := &Snapshot{
		Version:    SnapshotVersion,
		Incomes:    []models.Income{},
		Expenses:   []models.Expense{},
		Labours:    []models.LabourProfile{},
		Attendance: []models.Attendance{},
		Payments:   []models.LabourPayment{},
		Vendors:    []models.Vendor{},
	}

	steps := []error{
		s.db.Order("created_at ASC").Find(&snap.Incomes).Error,
		s.db.Order("created_at ASC").Find(&snap.Expenses).Error,
		s.db.Order("created_at ASC").Find(&snap.Labours).Error,
		s.db.Order("created_at ASC").Find(&snap.Attendance).Error,
		s.db.Order("created_at ASC").Find(&snap.Payments).Error,
		s.db.Order("created_at ASC").Find(&snap.Vendors).Error,
	}
	for _, err := range steps {
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	var settings models.AppSettings
	if err := s.db.First(&settings, 1).Error; err == nil {
		snap.Settings = &settings
	} else if err != gorm.ErrRecordNotFound {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return snap, nil
}

// importDoc mirrors Snapshot but keeps slices nil when the key is absent,
// which is how "leave this collection alone" is distinguished from "replace
// it with nothing".
type importDoc struct {
	Version    string                 `json:"version"`
	Incomes    []models.Income        `json:"incomes"`
	Expenses   []models.Expense       `json:"expenses"`
	Labours    []models.LabourProfile `json:"labours"`
	Attendance []models.Attendance    `json:"attendance"`
	Payments   []models.LabourPayment `json:"payments"`
	Vendors    []models.Vendor        `json:"vendors"`
	Settings   *models.AppSettings    `json:"settings"`
}

// Import restores collections from a backup document inside one
// transaction: either the whole document applies or nothing changes.
func (s *snapshotService) Import(raw []byte) error {
	var doc importDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidSnapshot, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if doc.Incomes != nil {
			if err := replaceCollection(tx, &models.Income{}, doc.Incomes); err != nil {
				return err
			}
		}
		if doc.Expenses != nil {
			if err := replaceCollection(tx, &models.Expense{}, doc.Expenses); err != nil {
				return err
			}
		}
		if doc.Labours != nil {
			if err := replaceCollection(tx, &models.LabourProfile{}, doc.Labours); err != nil {
				return err
			}
		}
		if doc.Attendance != nil {
			if err := replaceCollection(tx, &models.Attendance{}, doc.Attendance); err != nil {
				return err
			}
		}
		if doc.Payments != nil {
			if err := replaceCollection(tx, &models.LabourPayment{}, doc.Payments); err != nil {
				return err
			}
		}
		if doc.Vendors != nil {
			if err := replaceCollection(tx, &models.Vendor{}, doc.Vendors); err != nil {
				return err
			}
		}
		if doc.Settings != nil {
			doc.Settings.ID = 1
			if err := tx.Save(doc.Settings).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
}

// replaceCollection wipes a table (soft-deleted rows included) and inserts
// the imported rows in its place.
func replaceCollection[T any](tx *gorm.DB, model *T, rows []T) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().Delete(model).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Reset wipes every collection and restores default settings.
func (s *snapshotService) Reset() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range models.All() {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
				Unscoped().Delete(model).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if err := tx.Create(models.DefaultSettings()).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
