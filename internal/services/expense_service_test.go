package services

import (
	"testing"

	"sitekhata/internal/models"
	"sitekhata/internal/pagination"
	"sitekhata/internal/testutil"
)

func TestCreateExpense(t *testing.T) {
	t.Run("vendor_name_fills_payee", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		vendor := testutil.CreateTestVendor(t, db, models.CategoryMaterial)

		expense, err := svc.CreateExpense(&models.Expense{
			Date:     "2026-01-20",
			Amount:   2500,
			Category: models.CategoryMaterial,
			VendorID: vendor.ID,
			Mode:     models.PaymentModeCash,
		})
		testutil.AssertNoError(t, err)

		if expense.PaidTo != vendor.Name {
			t.Errorf("expected payee %q from vendor, got %q", vendor.Name, expense.PaidTo)
		}
	})

	t.Run("explicit_payee_wins", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		vendor := testutil.CreateTestVendor(t, db, models.CategoryMaterial)

		expense, err := svc.CreateExpense(&models.Expense{
			Date:     "2026-01-20",
			Amount:   2500,
			Category: models.CategoryMaterial,
			PaidTo:   "Site office",
			VendorID: vendor.ID,
			Mode:     models.PaymentModeCash,
		})
		testutil.AssertNoError(t, err)

		if expense.PaidTo != "Site office" {
			t.Errorf("expected explicit payee kept, got %q", expense.PaidTo)
		}
	})

	t.Run("dangling_vendor_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		_, err := svc.CreateExpense(&models.Expense{
			Date:     "2026-01-20",
			Amount:   2500,
			Category: models.CategoryMaterial,
			VendorID: "ghost",
			Mode:     models.PaymentModeCash,
		})
		testutil.AssertAppError(t, err, "VENDOR_NOT_FOUND")
	})
}

func TestGetExpenses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db)

	for i := 0; i < 3; i++ {
		testutil.CreateTestExpense(t, db, models.CategoryFood, float64(100*(i+1)))
	}

	result, err := svc.GetExpenses(pagination.PageRequest{Page: 1, PageSize: 2})
	testutil.AssertNoError(t, err)

	if result.TotalItems != 3 {
		t.Errorf("expected 3 total, got %d", result.TotalItems)
	}
	if len(result.Data) != 2 {
		t.Errorf("expected 2 on first page, got %d", len(result.Data))
	}
	if result.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", result.TotalPages)
	}
}

func TestDeleteExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db)

	expense := testutil.CreateTestExpense(t, db, models.CategoryFood, 300)

	testutil.AssertNoError(t, svc.DeleteExpense(expense.ID))
	_, err := svc.GetExpenseByID(expense.ID)
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")

	testutil.AssertAppError(t, svc.DeleteExpense(expense.ID), "EXPENSE_NOT_FOUND")
}
