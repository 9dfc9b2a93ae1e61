package services

import (
	"testing"

	"sitekhata/internal/models"
	"sitekhata/internal/testutil"
)

func TestGetSettings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSettingsService(db)

	settings, err := svc.GetSettings()
	testutil.AssertNoError(t, err)

	if settings.ProjectName != "New Site" {
		t.Errorf("expected default project name, got %q", settings.ProjectName)
	}
	if settings.Budget != 5000000 {
		t.Errorf("expected default budget 5000000, got %v", settings.Budget)
	}
	if settings.Language != "en" {
		t.Errorf("expected default language en, got %q", settings.Language)
	}
	if settings.AutoSync {
		t.Error("expected auto sync off by default")
	}

	// Second read returns the same singleton, not a new row.
	again, err := svc.GetSettings()
	testutil.AssertNoError(t, err)
	if again.ID != settings.ID {
		t.Errorf("expected the same settings row, got %d and %d", settings.ID, again.ID)
	}

	var count int64
	db.Model(&models.AppSettings{}).Count(&count)
	if count != 1 {
		t.Errorf("expected a single settings row, got %d", count)
	}
}

func TestUpdateSettings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSettingsService(db)

	updated, err := svc.UpdateSettings(&models.AppSettings{
		ProjectName: "Riverside House",
		Location:    "Pune",
		Budget:      7500000,
		Language:    "hi",
		AutoSync:    true,
		SheetURL:    "https://example.com/hook",
	})
	testutil.AssertNoError(t, err)

	if updated.ID != 1 {
		t.Errorf("expected singleton id 1, got %d", updated.ID)
	}

	settings, err := svc.GetSettings()
	testutil.AssertNoError(t, err)
	if settings.ProjectName != "Riverside House" || settings.Budget != 7500000 {
		t.Errorf("update not persisted: %+v", settings)
	}

	var count int64
	db.Model(&models.AppSettings{}).Count(&count)
	if count != 1 {
		t.Errorf("expected a single settings row, got %d", count)
	}
}
