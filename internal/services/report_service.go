package services

import (
	"gorm.io/gorm"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
	"sitekhata/internal/report"
)

// reportService serves derived read-only views. It loads the collections it
// needs and hands the arithmetic to the report package; nothing here writes.
type reportService struct {
	db       *gorm.DB
	settings SettingsServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, settings SettingsServicer) ReportServicer {
	return &reportService{db: db, settings: settings}
}

func (s *reportService) loadWorkforce() ([]models.LabourProfile, []models.Attendance, []models.LabourPayment, error) {
	var labours []models.LabourProfile
	var attendance []models.Attendance
	var payments []models.LabourPayment

	if err := s.db.Order("name ASC").Find(&labours).Error; err != nil {
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Find(&attendance).Error; err != nil {
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Find(&payments).Error; err != nil {
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return labours, attendance, payments, nil
}

// Dashboard builds the project-level view: balance sheet, partner shares,
// workforce totals, and budget usage.
func (s *reportService) Dashboard() (*Dashboard, error) {
	var incomes []models.Income
	if err := s.db.Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var expenses []models.Expense
	if err := s.db.Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	labours, attendance, payments, err := s.loadWorkforce()
	if err != nil {
		return nil, err
	}
	_, totals := report.ComputeLabourStats(labours, attendance, payments)

	settings, err := s.settings.GetSettings()
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{
		Summary:       report.ComputeFinancialSummary(incomes, expenses, totals),
		PartnerShares: report.ComputePartnerShares(incomes),
		LabourTotals:  totals,
		Budget:        settings.Budget,
	}
	if settings.Budget > 0 {
		dash.BudgetUsedPct = dash.Summary.TotalExpense / settings.Budget * 100
	}
	return dash, nil
}

// LabourStats builds the per-worker wage positions.
func (s *reportService) LabourStats() ([]report.LabourStat, report.LabourTotals, error) {
	labours, attendance, payments, err := s.loadWorkforce()
	if err != nil {
		return nil, report.LabourTotals{}, err
	}
	stats, totals := report.ComputeLabourStats(labours, attendance, payments)
	return stats, totals, nil
}

// Ledger builds the unified outflow ledger.
func (s *reportService) Ledger(filter report.LedgerFilter) ([]report.LedgerEntry, error) {
	var expenses []models.Expense
	if err := s.db.Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var vendors []models.Vendor
	if err := s.db.Find(&vendors).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	labours, _, payments, err := s.loadWorkforce()
	if err != nil {
		return nil, err
	}

	return report.BuildLedger(expenses, payments, vendors, labours, filter), nil
}
