package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
)

// vendorService handles the saved vendor directory.
type vendorService struct {
	db *gorm.DB
}

// NewVendorService creates a new VendorServicer.
func NewVendorService(db *gorm.DB) VendorServicer {
	return &vendorService{db: db}
}

// CreateVendor stores a new vendor.
func (s *vendorService) CreateVendor(vendor *models.Vendor) (*models.Vendor, error) {
	if err := s.db.Create(vendor).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return vendor, nil
}

// GetVendors retrieves the vendor directory sorted by name, optionally
// narrowed to one category for the vendor-selection list. The directory
// stays small enough that pagination is not worth the ceremony.
func (s *vendorService) GetVendors(category models.ExpenseCategory) ([]models.Vendor, error) {
	query := s.db.Order("name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var vendors []models.Vendor
	if err := query.Find(&vendors).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return vendors, nil
}

// GetVendorByID retrieves a single vendor.
func (s *vendorService) GetVendorByID(id models.ID) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.Where("id = ?", id).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &vendor, nil
}

// UpdateVendor replaces the mutable fields of a vendor.
func (s *vendorService) UpdateVendor(id models.ID, vendor *models.Vendor) (*models.Vendor, error) {
	existing, err := s.GetVendorByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = vendor.Name
	existing.Category = vendor.Category
	existing.Mobile = vendor.Mobile

	if err := s.db.Save(existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return existing, nil
}

// DeleteVendor removes a vendor. Expenses that referenced it keep their
// stored payee name; the reference simply stops resolving.
func (s *vendorService) DeleteVendor(id models.ID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Vendor{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrVendorNotFound
	}
	return nil
}
