package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
	"sitekhata/internal/report"
	"sitekhata/internal/services"
)

// --- mock labour service ---

type mockLabourService struct {
	createLabourFn  func(labour *models.LabourProfile) (*models.LabourProfile, error)
	getLaboursFn    func() ([]models.LabourProfile, error)
	getLabourByIDFn func(id models.ID) (*models.LabourProfile, error)
	updateLabourFn  func(id models.ID, labour *models.LabourProfile) (*models.LabourProfile, error)
	deleteLabourFn  func(id models.ID) error
}

func (m *mockLabourService) CreateLabour(labour *models.LabourProfile) (*models.LabourProfile, error) {
	if m.createLabourFn != nil {
		return m.createLabourFn(labour)
	}
	return labour, nil
}

func (m *mockLabourService) GetLabours() ([]models.LabourProfile, error) {
	if m.getLaboursFn != nil {
		return m.getLaboursFn()
	}
	return []models.LabourProfile{}, nil
}

func (m *mockLabourService) GetLabourByID(id models.ID) (*models.LabourProfile, error) {
	if m.getLabourByIDFn != nil {
		return m.getLabourByIDFn(id)
	}
	return &models.LabourProfile{}, nil
}

func (m *mockLabourService) UpdateLabour(id models.ID, labour *models.LabourProfile) (*models.LabourProfile, error) {
	if m.updateLabourFn != nil {
		return m.updateLabourFn(id, labour)
	}
	return labour, nil
}

func (m *mockLabourService) DeleteLabour(id models.ID) error {
	if m.deleteLabourFn != nil {
		return m.deleteLabourFn(id)
	}
	return nil
}

var _ services.LabourServicer = (*mockLabourService)(nil)

// --- mock report service ---

type mockReportService struct {
	dashboardFn   func() (*services.Dashboard, error)
	labourStatsFn func() ([]report.LabourStat, report.LabourTotals, error)
	ledgerFn      func(filter report.LedgerFilter) ([]report.LedgerEntry, error)
}

func (m *mockReportService) Dashboard() (*services.Dashboard, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn()
	}
	return &services.Dashboard{}, nil
}

func (m *mockReportService) LabourStats() ([]report.LabourStat, report.LabourTotals, error) {
	if m.labourStatsFn != nil {
		return m.labourStatsFn()
	}
	return []report.LabourStat{}, report.LabourTotals{}, nil
}

func (m *mockReportService) Ledger(filter report.LedgerFilter) ([]report.LedgerEntry, error) {
	if m.ledgerFn != nil {
		return m.ledgerFn(filter)
	}
	return []report.LedgerEntry{}, nil
}

var _ services.ReportServicer = (*mockReportService)(nil)

func setupLabourRouter(handler *LabourHandler) *gin.Engine {
	r := gin.New()
	r.POST("/labours", handler.CreateLabour)
	r.GET("/labours", handler.GetLabours)
	r.GET("/labours/stats", handler.GetLabourStats)
	r.GET("/labours/:id", handler.GetLabour)
	r.PUT("/labours/:id", handler.UpdateLabour)
	r.DELETE("/labours/:id", handler.DeleteLabour)
	return r
}

func TestLabourHandler_CreateLabour(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockLabourService{
			createLabourFn: func(labour *models.LabourProfile) (*models.LabourProfile, error) {
				labour.ID = "w1"
				return labour, nil
			},
		}
		handler := NewLabourHandler(svc, &mockReportService{})
		r := setupLabourRouter(handler)

		rec := doRequest(r, "POST", "/labours",
			`{"name":"Ravi","work_type":"Mason","daily_wage":500}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		labour := result["labour"].(map[string]interface{})
		if labour["name"] != "Ravi" {
			t.Errorf("expected Ravi, got %v", labour["name"])
		}
		if labour["daily_wage"] != 500.0 {
			t.Errorf("expected wage 500, got %v", labour["daily_wage"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := NewLabourHandler(&mockLabourService{}, &mockReportService{})
		r := setupLabourRouter(handler)

		rec := doRequest(r, "POST", "/labours", `{"work_type":"Mason","daily_wage":500}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on zero wage", func(t *testing.T) {
		handler := NewLabourHandler(&mockLabourService{}, &mockReportService{})
		r := setupLabourRouter(handler)

		rec := doRequest(r, "POST", "/labours", `{"name":"Ravi","work_type":"Mason","daily_wage":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestLabourHandler_DeleteLabour(t *testing.T) {
	t.Run("returns 404 for unknown worker", func(t *testing.T) {
		svc := &mockLabourService{
			deleteLabourFn: func(id models.ID) error {
				return apperrors.ErrLabourNotFound
			},
		}
		handler := NewLabourHandler(svc, &mockReportService{})
		r := setupLabourRouter(handler)

		rec := doRequest(r, "DELETE", "/labours/ghost", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "LABOUR_NOT_FOUND")
	})

	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewLabourHandler(&mockLabourService{}, &mockReportService{})
		r := setupLabourRouter(handler)

		rec := doRequest(r, "DELETE", "/labours/w1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}

func TestLabourHandler_GetLabourStats(t *testing.T) {
	svc := &mockReportService{
		labourStatsFn: func() ([]report.LabourStat, report.LabourTotals, error) {
			return []report.LabourStat{
					{LabourID: "w1", Name: "Ravi", TotalDays: 2.5, Earned: 1375, Paid: 600, Outstanding: 775},
				},
				report.LabourTotals{Earnings: 1375, Payments: 600, Outstanding: 775},
				nil
		},
	}
	handler := NewLabourHandler(&mockLabourService{}, svc)
	r := setupLabourRouter(handler)

	rec := doRequest(r, "GET", "/labours/stats", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	totals := result["totals"].(map[string]interface{})
	if totals["outstanding"] != 775.0 {
		t.Errorf("expected outstanding 775, got %v", totals["outstanding"])
	}
}
