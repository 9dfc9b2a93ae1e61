package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
	"sitekhata/internal/pagination"
)

// incomeService handles partner income records.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncome stores a new income record.
func (s *incomeService) CreateIncome(income *models.Income) (*models.Income, error) {
	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// GetIncomes retrieves income records newest first.
func (s *incomeService) GetIncomes(page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Income{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := s.db.Order("date DESC, created_at DESC").
		Scopes(pagination.Scope(page)).
		Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetIncomeByID retrieves a single income record.
func (s *incomeService) GetIncomeByID(id models.ID) (*models.Income, error) {
	var income models.Income
	if err := s.db.Where("id = ?", id).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// UpdateIncome replaces the mutable fields of an income record.
func (s *incomeService) UpdateIncome(id models.ID, income *models.Income) (*models.Income, error) {
	existing, err := s.GetIncomeByID(id)
	if err != nil {
		return nil, err
	}

	existing.Date = income.Date
	existing.Amount = income.Amount
	existing.Source = income.Source
	existing.PaidBy = income.PaidBy
	existing.Mode = income.Mode
	existing.Remarks = income.Remarks

	if err := s.db.Save(existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return existing, nil
}

// DeleteIncome removes an income record.
func (s *incomeService) DeleteIncome(id models.ID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Income{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrIncomeNotFound
	}
	return nil
}
