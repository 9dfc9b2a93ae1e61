package services

import (
	"bytes"
	"strings"
	"testing"

	"sitekhata/internal/models"
	"sitekhata/internal/testutil"
)

func TestWriteCSVSections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExportService(db, NewSettingsService(db))

	testutil.CreateTestIncome(t, db, "Ramesh", 10000)
	testutil.CreateTestExpense(t, db, models.CategoryMaterial, 3000)
	labour := testutil.CreateTestLabour(t, db, 500)
	testutil.CreateTestPayment(t, db, labour.ID, "2026-02-01", 600)

	var buf bytes.Buffer
	testutil.AssertNoError(t, svc.WriteCSV(&buf))

	out := buf.String()
	if !strings.HasPrefix(out, "\xEF\xBB\xBF") {
		t.Error("expected UTF-8 BOM prefix")
	}
	for _, want := range []string{
		"INCOME", "EXPENSES", "LABOUR PAYMENTS", "GRAND SUMMARY",
		"Total Income,10000.00",
		"Total Expense,3600.00",
		"Net Balance,6400.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected report to contain %q", want)
		}
	}
}

func TestWriteCSVCountsUnmatchedPayments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExportService(db, NewSettingsService(db))

	labour := testutil.CreateTestLabour(t, db, 500)
	testutil.CreateTestPayment(t, db, labour.ID, "2026-02-01", 600)
	// A restored backup can carry a payment whose worker is gone.
	orphan := &models.LabourPayment{
		LabourID: "ghost",
		Date:     "2026-02-02",
		Amount:   400,
		Type:     models.PaymentTypeAdvance,
		Mode:     models.PaymentModeCash,
	}
	if err := db.Create(orphan).Error; err != nil {
		t.Fatalf("failed to create orphan payment: %v", err)
	}

	var buf bytes.Buffer
	testutil.AssertNoError(t, svc.WriteCSV(&buf))

	out := buf.String()
	if !strings.Contains(out, "400.00") {
		t.Fatal("expected the orphan payment row in the report")
	}
	// Both listed payments count toward the section total and the summary.
	for _, want := range []string{
		"TOTAL,,,,1000.00",
		"Total Expense,1000.00",
		"Net Balance,-1000.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected report to contain %q", want)
		}
	}
}

func TestBuildXLSXCountsUnmatchedPayments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExportService(db, NewSettingsService(db))

	labour := testutil.CreateTestLabour(t, db, 500)
	testutil.CreateTestPayment(t, db, labour.ID, "2026-02-01", 600)
	orphan := &models.LabourPayment{
		LabourID: "ghost",
		Date:     "2026-02-02",
		Amount:   400,
		Type:     models.PaymentTypeAdvance,
		Mode:     models.PaymentModeCash,
	}
	if err := db.Create(orphan).Error; err != nil {
		t.Fatalf("failed to create orphan payment: %v", err)
	}

	f, err := svc.BuildXLSX()
	testutil.AssertNoError(t, err)

	// Header, two payment rows, then the section total.
	worker, err := f.GetCellValue("Labour Payments", "B3")
	testutil.AssertNoError(t, err)
	if worker != "Labourer" {
		t.Errorf("expected orphan row fallback name, got %q", worker)
	}
	total, err := f.GetCellValue("Labour Payments", "E4")
	testutil.AssertNoError(t, err)
	if total != "1000" {
		t.Errorf("expected payments total 1000, got %q", total)
	}
	expense, err := f.GetCellValue("Summary", "B6")
	testutil.AssertNoError(t, err)
	if expense != "1000" {
		t.Errorf("expected summary total expense 1000, got %q", expense)
	}
}
