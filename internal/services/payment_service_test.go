package services

import (
	"testing"

	"sitekhata/internal/models"
	"sitekhata/internal/testutil"
)

func TestCreatePayment(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentService(db)

		labour := testutil.CreateTestLabour(t, db, 500)

		payment, err := svc.CreatePayment(&models.LabourPayment{
			LabourID: labour.ID,
			Date:     "2026-01-05",
			Amount:   750,
			Type:     models.PaymentTypeFull,
			Mode:     models.PaymentModeUPI,
		})
		testutil.AssertNoError(t, err)

		if payment.ID == "" {
			t.Fatal("expected generated payment ID")
		}
		if payment.Type != models.PaymentTypeFull {
			t.Errorf("expected Full Payment, got %s", payment.Type)
		}
	})

	t.Run("missing_labour", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentService(db)

		_, err := svc.CreatePayment(&models.LabourPayment{
			LabourID: "ghost",
			Date:     "2026-01-05",
			Amount:   750,
			Type:     models.PaymentTypeAdvance,
			Mode:     models.PaymentModeCash,
		})
		testutil.AssertAppError(t, err, "LABOUR_NOT_FOUND")
	})
}

func TestGetPaymentsFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPaymentService(db)

	w1 := testutil.CreateTestLabour(t, db, 500)
	w2 := testutil.CreateTestLabour(t, db, 400)
	testutil.CreateTestPayment(t, db, w1.ID, "2026-01-05", 300)
	testutil.CreateTestPayment(t, db, w1.ID, "2026-01-06", 200)
	testutil.CreateTestPayment(t, db, w2.ID, "2026-01-05", 100)

	all, err := svc.GetPayments("")
	testutil.AssertNoError(t, err)
	if len(all) != 3 {
		t.Errorf("expected 3 payments, got %d", len(all))
	}

	filtered, err := svc.GetPayments(w1.ID)
	testutil.AssertNoError(t, err)
	if len(filtered) != 2 {
		t.Errorf("expected 2 payments for worker, got %d", len(filtered))
	}
}

func TestUpdatePaymentKeepsWorker(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPaymentService(db)

	labour := testutil.CreateTestLabour(t, db, 500)
	payment := testutil.CreateTestPayment(t, db, labour.ID, "2026-01-05", 300)

	updated, err := svc.UpdatePayment(payment.ID, &models.LabourPayment{
		Date:   "2026-01-06",
		Amount: 450,
		Type:   models.PaymentTypeFull,
		Mode:   models.PaymentModeBank,
	})
	testutil.AssertNoError(t, err)

	if updated.LabourID != labour.ID {
		t.Errorf("expected worker unchanged, got %s", updated.LabourID)
	}
	if updated.Amount != 450 || updated.Date != "2026-01-06" {
		t.Errorf("unexpected update result: %+v", updated)
	}
}
