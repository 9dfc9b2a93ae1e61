package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"sitekhata/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestLabour creates a worker with the given daily wage.
func CreateTestLabour(t *testing.T, db *gorm.DB, dailyWage float64) *models.LabourProfile {
	t.Helper()

	labour := &models.LabourProfile{
		Name:      fmt.Sprintf("Test Worker %d", nextID()),
		WorkType:  "Mason",
		DailyWage: dailyWage,
	}
	if err := db.Create(labour).Error; err != nil {
		t.Fatalf("failed to create test labour: %v", err)
	}
	return labour
}

// CreateTestAttendance creates an attendance entry for a worker.
func CreateTestAttendance(t *testing.T, db *gorm.DB, labourID models.ID, date string, status models.AttendanceStatus, overtime float64) *models.Attendance {
	t.Helper()

	entry := &models.Attendance{
		LabourID:      labourID,
		Date:          date,
		Status:        status,
		OvertimeHours: overtime,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test attendance: %v", err)
	}
	return entry
}

// CreateTestPayment creates a wage payout for a worker.
func CreateTestPayment(t *testing.T, db *gorm.DB, labourID models.ID, date string, amount float64) *models.LabourPayment {
	t.Helper()

	payment := &models.LabourPayment{
		LabourID: labourID,
		Date:     date,
		Amount:   amount,
		Type:     models.PaymentTypeAdvance,
		Mode:     models.PaymentModeCash,
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return payment
}

// CreateTestIncome creates an income record for a partner.
func CreateTestIncome(t *testing.T, db *gorm.DB, paidBy string, amount float64) *models.Income {
	t.Helper()

	income := &models.Income{
		Date:   "2026-01-15",
		Amount: amount,
		Source: models.IncomeSourceInvestment,
		PaidBy: paidBy,
		Mode:   models.PaymentModeBank,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestExpense creates an expense record in the given category.
func CreateTestExpense(t *testing.T, db *gorm.DB, category models.ExpenseCategory, amount float64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Date:     "2026-01-20",
		Amount:   amount,
		Category: category,
		PaidTo:   fmt.Sprintf("Test Payee %d", nextID()),
		Mode:     models.PaymentModeCash,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestVendor creates a vendor in the given category.
func CreateTestVendor(t *testing.T, db *gorm.DB, category models.ExpenseCategory) *models.Vendor {
	t.Helper()

	vendor := &models.Vendor{
		Name:     fmt.Sprintf("Test Vendor %d", nextID()),
		Category: category,
	}
	if err := db.Create(vendor).Error; err != nil {
		t.Fatalf("failed to create test vendor: %v", err)
	}
	return vendor
}
