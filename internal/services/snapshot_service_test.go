package services

import (
	"encoding/json"
	"testing"

	"sitekhata/internal/models"
	"sitekhata/internal/testutil"
)

func TestSnapshotExportImportRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSnapshotService(db)

	labour := testutil.CreateTestLabour(t, db, 500)
	testutil.CreateTestAttendance(t, db, labour.ID, "2026-01-01", models.StatusPresent, 2)
	testutil.CreateTestPayment(t, db, labour.ID, "2026-01-02", 600)
	testutil.CreateTestIncome(t, db, "Asha", 10000)
	testutil.CreateTestExpense(t, db, models.CategoryMaterial, 3000)
	testutil.CreateTestVendor(t, db, models.CategoryMaterial)

	exported, err := svc.Export()
	testutil.AssertNoError(t, err)
	if exported.Version != SnapshotVersion {
		t.Errorf("expected version %s, got %s", SnapshotVersion, exported.Version)
	}

	raw, err := json.Marshal(exported)
	testutil.AssertNoError(t, err)

	// Pollute the store, then restore the backup.
	testutil.CreateTestIncome(t, db, "Intruder", 99999)
	testutil.AssertNoError(t, svc.Import(raw))

	restored, err := svc.Export()
	testutil.AssertNoError(t, err)

	rawAgain, err := json.Marshal(restored)
	testutil.AssertNoError(t, err)
	if string(raw) != string(rawAgain) {
		t.Errorf("round trip mismatch:\nfirst:  %s\nsecond: %s", raw, rawAgain)
	}
}

func TestSnapshotImport(t *testing.T) {
	t.Run("malformed_document_changes_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSnapshotService(db)

		testutil.CreateTestIncome(t, db, "Asha", 10000)

		err := svc.Import([]byte(`{"incomes": [{`))
		testutil.AssertAppError(t, err, "INVALID_SNAPSHOT")

		var count int64
		db.Model(&models.Income{}).Count(&count)
		if count != 1 {
			t.Errorf("expected store untouched, got %d incomes", count)
		}
	})

	t.Run("absent_key_leaves_collection_untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSnapshotService(db)

		testutil.CreateTestIncome(t, db, "Asha", 10000)
		testutil.CreateTestVendor(t, db, models.CategoryMaterial)

		// Only vendors present; incomes key missing entirely.
		testutil.AssertNoError(t, svc.Import([]byte(`{"version":"1.2","vendors":[]}`)))

		var incomeCount, vendorCount int64
		db.Model(&models.Income{}).Count(&incomeCount)
		db.Model(&models.Vendor{}).Count(&vendorCount)
		if incomeCount != 1 {
			t.Errorf("expected incomes untouched, got %d", incomeCount)
		}
		if vendorCount != 0 {
			t.Errorf("expected vendors replaced by empty set, got %d", vendorCount)
		}
	})

	t.Run("numeric_identifiers_normalized", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSnapshotService(db)

		doc := `{"version":"1.2","incomes":[{"id":1718900000001,"date":"2026-01-01","amount":5000,"source":"Loan","paid_by":"Binod","mode":"Cash"}]}`
		testutil.AssertNoError(t, svc.Import([]byte(doc)))

		var income models.Income
		testutil.AssertNoError(t, db.First(&income).Error)
		if income.ID != "1718900000001" {
			t.Errorf("expected numeric id stored as string, got %q", income.ID)
		}
	})
}

func TestSnapshotReset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSnapshotService(db)
	settingsSvc := NewSettingsService(db)

	labour := testutil.CreateTestLabour(t, db, 500)
	testutil.CreateTestAttendance(t, db, labour.ID, "2026-01-01", models.StatusPresent, 0)
	testutil.CreateTestIncome(t, db, "Asha", 10000)

	// Customize settings so we can see them reset.
	_, err := settingsSvc.UpdateSettings(&models.AppSettings{
		ProjectName: "Custom",
		Language:    "hi",
		Budget:      123,
	})
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.Reset())

	for _, model := range []interface{}{&models.Income{}, &models.LabourProfile{}, &models.Attendance{}} {
		var count int64
		db.Model(model).Count(&count)
		if count != 0 {
			t.Errorf("expected %T wiped, got %d rows", model, count)
		}
	}

	settings, err := settingsSvc.GetSettings()
	testutil.AssertNoError(t, err)
	if settings.ProjectName != "New Site" || settings.Budget != 5000000 {
		t.Errorf("expected default settings after reset, got %+v", settings)
	}
}
