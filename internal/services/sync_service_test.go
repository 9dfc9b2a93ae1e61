package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sitekhata/internal/models"
	"sitekhata/internal/testutil"
)

func configureSheetURL(t *testing.T, svc SettingsServicer, url string) {
	t.Helper()
	_, err := svc.UpdateSettings(&models.AppSettings{
		ProjectName: "Riverside House",
		Language:    "en",
		SheetURL:    url,
	})
	testutil.AssertNoError(t, err)
}

func TestSyncPush(t *testing.T) {
	t.Run("posts_expected_payload", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		settingsSvc := NewSettingsService(db)

		labour := testutil.CreateTestLabour(t, db, 500)
		testutil.CreateTestAttendance(t, db, labour.ID, "2026-01-01", models.StatusPresent, 0)
		testutil.CreateTestPayment(t, db, labour.ID, "2026-01-02", 600)
		testutil.CreateTestIncome(t, db, "Asha", 10000)
		testutil.CreateTestExpense(t, db, models.CategoryMaterial, 3000)
		testutil.CreateTestVendor(t, db, models.CategoryMaterial)

		var got map[string]json.RawMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected JSON content type, got %s", ct)
			}
			body, _ := io.ReadAll(r.Body)
			if err := json.Unmarshal(body, &got); err != nil {
				t.Errorf("invalid payload: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		configureSheetURL(t, settingsSvc, server.URL)
		svc := NewSyncService(db, settingsSvc, 5*time.Second)

		testutil.AssertNoError(t, svc.Push(context.Background()))

		var sheetName string
		testutil.AssertNoError(t, json.Unmarshal(got["sheetName"], &sheetName))
		if sheetName != "Riverside House" {
			t.Errorf("expected project name as sheet name, got %q", sheetName)
		}

		var data map[string]json.RawMessage
		testutil.AssertNoError(t, json.Unmarshal(got["data"], &data))
		for _, key := range []string{"incomes", "expenses", "payments", "attendance", "vendors"} {
			if _, ok := data[key]; !ok {
				t.Errorf("expected %q in payload data", key)
			}
		}
		// Worker profiles and settings stay local.
		if _, ok := data["labours"]; ok {
			t.Error("labours should not be pushed")
		}
		if _, ok := data["settings"]; ok {
			t.Error("settings should not be pushed")
		}
	})

	t.Run("receiver_errors_are_ignored", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		settingsSvc := NewSettingsService(db)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		configureSheetURL(t, settingsSvc, server.URL)
		svc := NewSyncService(db, settingsSvc, 5*time.Second)

		// The round trip completed; the status code is the receiver's business.
		testutil.AssertNoError(t, svc.Push(context.Background()))
	})

	t.Run("transport_failure", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		settingsSvc := NewSettingsService(db)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // nothing listening anymore

		configureSheetURL(t, settingsSvc, server.URL)
		svc := NewSyncService(db, settingsSvc, time.Second)

		testutil.AssertAppError(t, svc.Push(context.Background()), "SYNC_FAILED")
	})

	t.Run("not_configured", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		settingsSvc := NewSettingsService(db)
		svc := NewSyncService(db, settingsSvc, time.Second)

		testutil.AssertAppError(t, svc.Push(context.Background()), "SYNC_NOT_CONFIGURED")
	})
}
