package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
	"sitekhata/internal/pagination"
)

// expenseService handles direct expense records.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// resolveVendor fills PaidTo from the linked vendor when a vendor is set and
// no explicit payee was given. A dangling vendor reference is an input error.
func (s *expenseService) resolveVendor(expense *models.Expense) error {
	if expense.VendorID == "" {
		return nil
	}

	var vendor models.Vendor
	if err := s.db.Where("id = ?", expense.VendorID).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVendorNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if expense.PaidTo == "" {
		expense.PaidTo = vendor.Name
	}
	return nil
}

// CreateExpense stores a new expense record.
func (s *expenseService) CreateExpense(expense *models.Expense) (*models.Expense, error) {
	if err := s.resolveVendor(expense); err != nil {
		return nil, err
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// GetExpenses retrieves expense records newest first.
func (s *expenseService) GetExpenses(page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Expense{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := s.db.Order("date DESC, created_at DESC").
		Scopes(pagination.Scope(page)).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpenseByID retrieves a single expense record.
func (s *expenseService) GetExpenseByID(id models.ID) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense replaces the mutable fields of an expense record.
func (s *expenseService) UpdateExpense(id models.ID, expense *models.Expense) (*models.Expense, error) {
	existing, err := s.GetExpenseByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.resolveVendor(expense); err != nil {
		return nil, err
	}

	existing.Date = expense.Date
	existing.Amount = expense.Amount
	existing.Category = expense.Category
	existing.SubCategory = expense.SubCategory
	existing.PaidTo = expense.PaidTo
	existing.VendorID = expense.VendorID
	existing.Mode = expense.Mode
	existing.Notes = expense.Notes

	if err := s.db.Save(existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return existing, nil
}

// DeleteExpense removes an expense record.
func (s *expenseService) DeleteExpense(id models.ID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}
