package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	apperrors "sitekhata/internal/errors"
	"sitekhata/internal/models"
	"sitekhata/internal/report"
)

// exportService renders downloadable report files (CSV and XLSX) from the
// current collections.
type exportService struct {
	db       *gorm.DB
	settings SettingsServicer
}

// NewExportService creates a new ExportServicer.
func NewExportService(db *gorm.DB, settings SettingsServicer) ExportServicer {
	return &exportService{db: db, settings: settings}
}

// exportData is everything a rendered report needs, loaded once. The report
// totals sum the listed rows directly, so a payment whose worker no longer
// exists still counts toward its section and the grand summary; the engine
// totals in labour cover matched payments only and feed the wage columns.
type exportData struct {
	settings     *models.AppSettings
	incomes      []models.Income
	expenses     []models.Expense
	payments     []models.LabourPayment
	vendors      map[models.ID]string
	labours      map[models.ID]string
	summary      report.FinancialSummary
	labour       report.LabourTotals
	expenseTotal float64
	paymentTotal float64
}

func (d *exportData) totalExpense() float64 {
	return d.expenseTotal + d.paymentTotal
}

func (d *exportData) netBalance() float64 {
	return d.summary.TotalIncome - d.totalExpense()
}

func (s *exportService) load() (*exportData, error) {
	settings, err := s.settings.GetSettings()
	if err != nil {
		return nil, err
	}

	data := &exportData{
		settings: settings,
		vendors:  make(map[models.ID]string),
		labours:  make(map[models.ID]string),
	}

	if err := s.db.Order("date ASC, created_at ASC").Find(&data.incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Order("date ASC, created_at ASC").Find(&data.expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Order("date ASC, created_at ASC").Find(&data.payments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, e := range data.expenses {
		data.expenseTotal += e.Amount
	}
	for _, p := range data.payments {
		data.paymentTotal += p.Amount
	}

	var vendors []models.Vendor
	if err := s.db.Find(&vendors).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, v := range vendors {
		data.vendors[v.ID] = v.Name
	}

	var labours []models.LabourProfile
	if err := s.db.Find(&labours).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, l := range labours {
		data.labours[l.ID] = l.Name
	}

	var attendance []models.Attendance
	if err := s.db.Find(&attendance).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	_, data.labour = report.ComputeLabourStats(labours, attendance, data.payments)
	data.summary = report.ComputeFinancialSummary(data.incomes, data.expenses, data.labour)

	return data, nil
}

func (d *exportData) vendorName(e models.Expense) string {
	if e.VendorID != "" {
		if name, ok := d.vendors[e.VendorID]; ok {
			return name
		}
	}
	return e.PaidTo
}

func (d *exportData) labourName(p models.LabourPayment) string {
	if name, ok := d.labours[p.LabourID]; ok {
		return name
	}
	return "Labourer"
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// WriteCSV renders the sectioned project report as CSV. A UTF-8 BOM is
// written first so spreadsheet apps pick the right encoding.
func (s *exportService) WriteCSV(w io.Writer) error {
	data, err := s.load()
	if err != nil {
		return err
	}

	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	rows := [][]string{
		{"PROJECT REPORT"},
		{"Project", data.settings.ProjectName},
		{"Location", data.settings.Location},
		{"Generated", time.Now().Format("2006-01-02")},
		{},
		{"INCOME"},
		{"Date", "Source", "Paid By", "Mode", "Amount", "Remarks"},
	}
	for _, i := range data.incomes {
		rows = append(rows, []string{i.Date, string(i.Source), i.PaidBy, string(i.Mode), money(i.Amount), i.Remarks})
	}
	rows = append(rows,
		[]string{"TOTAL", "", "", "", money(data.summary.TotalIncome), ""},
		[]string{},
		[]string{"EXPENSES"},
		[]string{"Date", "Category", "Paid To", "Mode", "Amount", "Notes"},
	)
	for _, e := range data.expenses {
		rows = append(rows, []string{e.Date, string(e.Category), data.vendorName(e), string(e.Mode), money(e.Amount), e.Notes})
	}
	rows = append(rows,
		[]string{"TOTAL", "", "", "", money(data.expenseTotal), ""},
		[]string{},
		[]string{"LABOUR PAYMENTS"},
		[]string{"Date", "Worker", "Type", "Mode", "Amount"},
	)
	for _, p := range data.payments {
		rows = append(rows, []string{p.Date, data.labourName(p), string(p.Type), string(p.Mode), money(p.Amount)})
	}
	rows = append(rows,
		[]string{"TOTAL", "", "", "", money(data.paymentTotal)},
		[]string{},
		[]string{"GRAND SUMMARY"},
		[]string{"Total Income", money(data.summary.TotalIncome)},
		[]string{"Total Expense", money(data.totalExpense())},
		[]string{"Net Balance", money(data.netBalance())},
	)

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

// BuildXLSX renders the project report as a workbook with one sheet per
// section plus a summary sheet.
func (s *exportService) BuildXLSX() (*excelize.File, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	if err := s.writeIncomeSheet(f, data); err != nil {
		return nil, err
	}
	if err := s.writeExpenseSheet(f, data); err != nil {
		return nil, err
	}
	if err := s.writePaymentSheet(f, data); err != nil {
		return nil, err
	}
	if err := s.writeSummarySheet(f, data); err != nil {
		return nil, err
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

func (s *exportService) writeIncomeSheet(f *excelize.File, data *exportData) error {
	const sheet = "Income"
	if _, err := f.NewSheet(sheet); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := setRow(f, sheet, 1, []interface{}{"Date", "Source", "Paid By", "Mode", "Amount", "Remarks"}); err != nil {
		return err
	}
	row := 2
	for _, i := range data.incomes {
		if err := setRow(f, sheet, row, []interface{}{i.Date, string(i.Source), i.PaidBy, string(i.Mode), i.Amount, i.Remarks}); err != nil {
			return err
		}
		row++
	}
	if err := setRow(f, sheet, row, []interface{}{"TOTAL", "", "", "", data.summary.TotalIncome}); err != nil {
		return err
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "D", 14)
	f.SetColWidth(sheet, "E", "E", 12)
	f.SetColWidth(sheet, "F", "F", 30)
	return nil
}

func (s *exportService) writeExpenseSheet(f *excelize.File, data *exportData) error {
	const sheet = "Expenses"
	if _, err := f.NewSheet(sheet); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := setRow(f, sheet, 1, []interface{}{"Date", "Category", "Paid To", "Mode", "Amount", "Notes"}); err != nil {
		return err
	}
	row := 2
	for _, e := range data.expenses {
		if err := setRow(f, sheet, row, []interface{}{e.Date, string(e.Category), data.vendorName(e), string(e.Mode), e.Amount, e.Notes}); err != nil {
			return err
		}
		row++
	}
	if err := setRow(f, sheet, row, []interface{}{"TOTAL", "", "", "", data.expenseTotal}); err != nil {
		return err
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "D", 16)
	f.SetColWidth(sheet, "E", "E", 12)
	f.SetColWidth(sheet, "F", "F", 30)
	return nil
}

func (s *exportService) writePaymentSheet(f *excelize.File, data *exportData) error {
	const sheet = "Labour Payments"
	if _, err := f.NewSheet(sheet); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := setRow(f, sheet, 1, []interface{}{"Date", "Worker", "Type", "Mode", "Amount"}); err != nil {
		return err
	}
	row := 2
	for _, p := range data.payments {
		if err := setRow(f, sheet, row, []interface{}{p.Date, data.labourName(p), string(p.Type), string(p.Mode), p.Amount}); err != nil {
			return err
		}
		row++
	}
	if err := setRow(f, sheet, row, []interface{}{"TOTAL", "", "", "", data.paymentTotal}); err != nil {
		return err
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 20)
	f.SetColWidth(sheet, "C", "D", 14)
	f.SetColWidth(sheet, "E", "E", 12)
	return nil
}

func (s *exportService) writeSummarySheet(f *excelize.File, data *exportData) error {
	const sheet = "Summary"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	f.SetActiveSheet(index)

	rows := [][]interface{}{
		{"Project", data.settings.ProjectName},
		{"Location", data.settings.Location},
		{"Generated", time.Now().Format("2006-01-02")},
		{},
		{"Total Income", data.summary.TotalIncome},
		{"Total Expense", data.totalExpense()},
		{"Labour Payments", data.paymentTotal},
		{"Labour Outstanding", data.labour.Outstanding},
		{"Net Balance", data.netBalance()},
		{"Budget", data.settings.Budget},
	}
	for i, r := range rows {
		if err := setRow(f, sheet, i+1, r); err != nil {
			return err
		}
	}

	f.SetColWidth(sheet, "A", "A", 20)
	f.SetColWidth(sheet, "B", "B", 24)
	return nil
}

// ReportFilename builds the attachment name for a rendered report.
func ReportFilename(ext string) string {
	return fmt.Sprintf("report_%s.%s", time.Now().Format("20060102"), ext)
}
