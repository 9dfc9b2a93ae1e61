// Package services contains the business logic over the record store.
// Handlers depend on the interfaces defined here, never on the concrete
// types, so tests can substitute mocks.
package services

import (
	"context"
	"io"

	"github.com/xuri/excelize/v2"

	"sitekhata/internal/models"
	"sitekhata/internal/pagination"
	"sitekhata/internal/report"
)

// IncomeServicer defines the contract for partner income operations.
type IncomeServicer interface {
	CreateIncome(income *models.Income) (*models.Income, error)
	GetIncomes(page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
	GetIncomeByID(id models.ID) (*models.Income, error)
	UpdateIncome(id models.ID, income *models.Income) (*models.Income, error)
	DeleteIncome(id models.ID) error
}

// ExpenseServicer defines the contract for direct expense operations.
type ExpenseServicer interface {
	CreateExpense(expense *models.Expense) (*models.Expense, error)
	GetExpenses(page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(id models.ID) (*models.Expense, error)
	UpdateExpense(id models.ID, expense *models.Expense) (*models.Expense, error)
	DeleteExpense(id models.ID) error
}

// VendorServicer defines the contract for vendor directory operations.
type VendorServicer interface {
	CreateVendor(vendor *models.Vendor) (*models.Vendor, error)
	GetVendors(category models.ExpenseCategory) ([]models.Vendor, error)
	GetVendorByID(id models.ID) (*models.Vendor, error)
	UpdateVendor(id models.ID, vendor *models.Vendor) (*models.Vendor, error)
	DeleteVendor(id models.ID) error
}

// LabourServicer defines the contract for worker roster operations.
// DeleteLabour cascades to the worker's attendance and payments.
type LabourServicer interface {
	CreateLabour(labour *models.LabourProfile) (*models.LabourProfile, error)
	GetLabours() ([]models.LabourProfile, error)
	GetLabourByID(id models.ID) (*models.LabourProfile, error)
	UpdateLabour(id models.ID, labour *models.LabourProfile) (*models.LabourProfile, error)
	DeleteLabour(id models.ID) error
}

// AttendanceServicer defines the contract for attendance operations.
type AttendanceServicer interface {
	MarkAttendance(entry *models.Attendance) (*models.Attendance, error)
	MarkAllPresent(date string) ([]models.Attendance, error)
	GetAttendance(labourID models.ID, date string) ([]models.Attendance, error)
	UpdateAttendance(id models.ID, entry *models.Attendance) (*models.Attendance, error)
	DeleteAttendance(id models.ID) error
}

// PaymentServicer defines the contract for wage payout operations.
type PaymentServicer interface {
	CreatePayment(payment *models.LabourPayment) (*models.LabourPayment, error)
	GetPayments(labourID models.ID) ([]models.LabourPayment, error)
	GetPaymentByID(id models.ID) (*models.LabourPayment, error)
	UpdatePayment(id models.ID, payment *models.LabourPayment) (*models.LabourPayment, error)
	DeletePayment(id models.ID) error
}

// SettingsServicer defines the contract for the settings singleton.
type SettingsServicer interface {
	GetSettings() (*models.AppSettings, error)
	UpdateSettings(settings *models.AppSettings) (*models.AppSettings, error)
}

// Dashboard is the aggregate view the dashboard endpoint serves.
type Dashboard struct {
	Summary       report.FinancialSummary `json:"summary"`
	PartnerShares []report.PartnerShare   `json:"partner_shares"`
	LabourTotals  report.LabourTotals     `json:"labour_totals"`
	Budget        float64                 `json:"budget"`
	BudgetUsedPct float64                 `json:"budget_used_pct"`
}

// ReportServicer defines the contract for derived read-only views.
type ReportServicer interface {
	Dashboard() (*Dashboard, error)
	LabourStats() ([]report.LabourStat, report.LabourTotals, error)
	Ledger(filter report.LedgerFilter) ([]report.LedgerEntry, error)
}

// SnapshotServicer defines the contract for whole-store backup and restore.
type SnapshotServicer interface {
	Export() (*Snapshot, error)
	Import(raw []byte) error
	Reset() error
}

// SyncServicer defines the contract for the one-way spreadsheet push.
type SyncServicer interface {
	Push(ctx context.Context) error
}

// ExportServicer defines the contract for downloadable report files.
type ExportServicer interface {
	WriteCSV(w io.Writer) error
	BuildXLSX() (*excelize.File, error)
}
