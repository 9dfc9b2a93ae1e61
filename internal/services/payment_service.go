package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
)

// paymentService handles wage payouts.
type paymentService struct {
	db *gorm.DB
}

// NewPaymentService creates a new PaymentServicer.
func NewPaymentService(db *gorm.DB) PaymentServicer {
	return &paymentService{db: db}
}

func (s *paymentService) requireLabour(labourID models.ID) error {
	var labour models.LabourProfile
	if err := s.db.Where("id = ?", labourID).First(&labour).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLabourNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// CreatePayment records a wage payout against an existing worker.
func (s *paymentService) CreatePayment(payment *models.LabourPayment) (*models.LabourPayment, error) {
	if err := s.requireLabour(payment.LabourID); err != nil {
		return nil, err
	}
	if err := s.db.Create(payment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return payment, nil
}

// GetPayments retrieves payouts, optionally filtered by worker, newest first.
func (s *paymentService) GetPayments(labourID models.ID) ([]models.LabourPayment, error) {
	query := s.db.Order("date DESC, created_at DESC")
	if labourID != "" {
		query = query.Where("labour_id = ?", labourID)
	}

	var payments []models.LabourPayment
	if err := query.Find(&payments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return payments, nil
}

// GetPaymentByID retrieves a single payout.
func (s *paymentService) GetPaymentByID(id models.ID) (*models.LabourPayment, error) {
	var payment models.LabourPayment
	if err := s.db.Where("id = ?", id).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &payment, nil
}

// UpdatePayment replaces the mutable fields of a payout. The worker it
// belongs to is fixed at creation.
func (s *paymentService) UpdatePayment(id models.ID, payment *models.LabourPayment) (*models.LabourPayment, error) {
	existing, err := s.GetPaymentByID(id)
	if err != nil {
		return nil, err
	}

	existing.Date = payment.Date
	existing.Amount = payment.Amount
	existing.Type = payment.Type
	existing.Mode = payment.Mode

	if err := s.db.Save(existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return existing, nil
}

// DeletePayment removes a payout.
func (s *paymentService) DeletePayment(id models.ID) error {
	result := s.db.Where("id = ?", id).Delete(&models.LabourPayment{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}
