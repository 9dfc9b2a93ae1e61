package services

import (
	"testing"

	"sitekhata/internal/models"
	"sitekhata/internal/testutil"
)

func TestMarkAttendance(t *testing.T) {
	t.Run("remark_replaces_earlier_entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAttendanceService(db)

		labour := testutil.CreateTestLabour(t, db, 500)

		first, err := svc.MarkAttendance(&models.Attendance{
			LabourID: labour.ID,
			Date:     "2026-01-10",
			Status:   models.StatusPresent,
		})
		testutil.AssertNoError(t, err)

		second, err := svc.MarkAttendance(&models.Attendance{
			LabourID:      labour.ID,
			Date:          "2026-01-10",
			Status:        models.StatusHalfDay,
			OvertimeHours: 1,
		})
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Attendance{}).
			Where("labour_id = ? AND date = ?", labour.ID, "2026-01-10").
			Count(&count)
		if count != 1 {
			t.Fatalf("expected 1 entry per (worker, date), got %d", count)
		}

		var entry models.Attendance
		db.Where("labour_id = ? AND date = ?", labour.ID, "2026-01-10").First(&entry)
		if entry.Status != models.StatusHalfDay {
			t.Errorf("expected the later mark to win, got %s", entry.Status)
		}
		if entry.ID == first.ID {
			t.Error("expected a fresh entry, not the first one")
		}
		if entry.ID != second.ID {
			t.Errorf("expected entry %s, got %s", second.ID, entry.ID)
		}
	})

	t.Run("different_dates_coexist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAttendanceService(db)

		labour := testutil.CreateTestLabour(t, db, 500)
		for _, date := range []string{"2026-01-10", "2026-01-11"} {
			_, err := svc.MarkAttendance(&models.Attendance{
				LabourID: labour.ID,
				Date:     date,
				Status:   models.StatusPresent,
			})
			testutil.AssertNoError(t, err)
		}

		var count int64
		db.Model(&models.Attendance{}).Where("labour_id = ?", labour.ID).Count(&count)
		if count != 2 {
			t.Errorf("expected 2 entries, got %d", count)
		}
	})

	t.Run("missing_labour", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAttendanceService(db)

		_, err := svc.MarkAttendance(&models.Attendance{
			LabourID: "ghost",
			Date:     "2026-01-10",
			Status:   models.StatusPresent,
		})
		testutil.AssertAppError(t, err, "LABOUR_NOT_FOUND")
	})
}

func TestMarkAllPresent(t *testing.T) {
	t.Run("covers_whole_roster", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAttendanceService(db)

		testutil.CreateTestLabour(t, db, 500)
		testutil.CreateTestLabour(t, db, 400)
		testutil.CreateTestLabour(t, db, 450)

		entries, err := svc.MarkAllPresent("2026-01-12")
		testutil.AssertNoError(t, err)

		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		for _, e := range entries {
			if e.Status != models.StatusPresent {
				t.Errorf("expected Present, got %s", e.Status)
			}
			if e.Date != "2026-01-12" {
				t.Errorf("expected date 2026-01-12, got %s", e.Date)
			}
		}
	})

	t.Run("replaces_existing_marks_for_the_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAttendanceService(db)

		labour := testutil.CreateTestLabour(t, db, 500)
		testutil.CreateTestAttendance(t, db, labour.ID, "2026-01-12", models.StatusAbsent, 0)

		_, err := svc.MarkAllPresent("2026-01-12")
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Attendance{}).
			Where("labour_id = ? AND date = ?", labour.ID, "2026-01-12").
			Count(&count)
		if count != 1 {
			t.Fatalf("expected 1 entry, got %d", count)
		}

		var entry models.Attendance
		db.Where("labour_id = ? AND date = ?", labour.ID, "2026-01-12").First(&entry)
		if entry.Status != models.StatusPresent {
			t.Errorf("expected Absent replaced by Present, got %s", entry.Status)
		}
	})

	t.Run("empty_roster", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAttendanceService(db)

		entries, err := svc.MarkAllPresent("2026-01-12")
		testutil.AssertNoError(t, err)
		if len(entries) != 0 {
			t.Errorf("expected no entries, got %d", len(entries))
		}
	})
}

func TestGetAttendanceFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAttendanceService(db)

	w1 := testutil.CreateTestLabour(t, db, 500)
	w2 := testutil.CreateTestLabour(t, db, 400)
	testutil.CreateTestAttendance(t, db, w1.ID, "2026-01-10", models.StatusPresent, 0)
	testutil.CreateTestAttendance(t, db, w1.ID, "2026-01-11", models.StatusPresent, 0)
	testutil.CreateTestAttendance(t, db, w2.ID, "2026-01-10", models.StatusHalfDay, 0)

	byWorker, err := svc.GetAttendance(w1.ID, "")
	testutil.AssertNoError(t, err)
	if len(byWorker) != 2 {
		t.Errorf("expected 2 entries for worker, got %d", len(byWorker))
	}

	byDate, err := svc.GetAttendance("", "2026-01-10")
	testutil.AssertNoError(t, err)
	if len(byDate) != 2 {
		t.Errorf("expected 2 entries for date, got %d", len(byDate))
	}

	both, err := svc.GetAttendance(w2.ID, "2026-01-10")
	testutil.AssertNoError(t, err)
	if len(both) != 1 || both[0].Status != models.StatusHalfDay {
		t.Errorf("expected w2's half day, got %+v", both)
	}
}
