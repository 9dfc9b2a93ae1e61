// Package report derives read-only financial summaries from a snapshot of
// the record collections. Every function is pure: the same snapshot always
// produces the same numbers, nothing is mutated, and no store access happens
// here. Input is not validated; non-finite amounts propagate into the
// results.
package report

import (
	"sort"

	"sitekhata/internal/models"
)

// hoursPerDay is the implied length of a working day. Overtime is paid at
// dailyWage / hoursPerDay per hour; this is a fixed policy, not a setting.
const hoursPerDay = 8

// LabourStat holds the derived wage position for a single worker.
type LabourStat struct {
	LabourID      models.ID `json:"labour_id"`
	Name          string    `json:"name"`
	WorkType      string    `json:"work_type"`
	DailyWage     float64   `json:"daily_wage"`
	TotalDays     float64   `json:"total_days"`
	OvertimeHours float64   `json:"overtime_hours"`
	Earned        float64   `json:"earned"`
	Paid          float64   `json:"paid"`
	Outstanding   float64   `json:"outstanding"`
}

// LabourTotals aggregates the wage position across the whole workforce.
type LabourTotals struct {
	Earnings    float64 `json:"earnings"`
	Payments    float64 `json:"payments"`
	Outstanding float64 `json:"outstanding"`
}

// FinancialSummary is the project-level balance sheet.
type FinancialSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetBalance   float64 `json:"net_balance"`
}

// PartnerShare is one partner's contribution and its share of the total.
type PartnerShare struct {
	Partner    string  `json:"partner"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

func dayValue(status models.AttendanceStatus) float64 {
	switch status {
	case models.StatusPresent:
		return 1
	case models.StatusHalfDay:
		return 0.5
	default:
		return 0
	}
}

// ComputeLabourStats derives per-worker earnings, payouts, and outstanding
// dues from the attendance and payment collections. Attendance and payments
// whose labour_id matches no profile are ignored; outstanding may be
// negative (overpayment) and is never clamped.
func ComputeLabourStats(
	labours []models.LabourProfile,
	attendance []models.Attendance,
	payments []models.LabourPayment,
) ([]LabourStat, LabourTotals) {
	days := make(map[models.ID]float64, len(labours))
	overtime := make(map[models.ID]float64, len(labours))
	paid := make(map[models.ID]float64, len(labours))

	for _, a := range attendance {
		days[a.LabourID] += dayValue(a.Status)
		overtime[a.LabourID] += a.OvertimeHours
	}
	for _, p := range payments {
		paid[p.LabourID] += p.Amount
	}

	stats := make([]LabourStat, 0, len(labours))
	var totals LabourTotals
	for _, l := range labours {
		earned := days[l.ID]*l.DailyWage + overtime[l.ID]*(l.DailyWage/hoursPerDay)
		stat := LabourStat{
			LabourID:      l.ID,
			Name:          l.Name,
			WorkType:      l.WorkType,
			DailyWage:     l.DailyWage,
			TotalDays:     days[l.ID],
			OvertimeHours: overtime[l.ID],
			Earned:        earned,
			Paid:          paid[l.ID],
			Outstanding:   earned - paid[l.ID],
		}
		stats = append(stats, stat)
		totals.Earnings += stat.Earned
		totals.Payments += stat.Paid
	}
	totals.Outstanding = totals.Earnings - totals.Payments

	return stats, totals
}

// ComputeFinancialSummary derives the project balance. Labour payouts count
// as expense even though they live in their own collection, so total expense
// is direct expenses plus the workforce payments total.
func ComputeFinancialSummary(
	incomes []models.Income,
	expenses []models.Expense,
	labour LabourTotals,
) FinancialSummary {
	var summary FinancialSummary
	for _, i := range incomes {
		summary.TotalIncome += i.Amount
	}
	for _, e := range expenses {
		summary.TotalExpense += e.Amount
	}
	summary.TotalExpense += labour.Payments
	summary.NetBalance = summary.TotalIncome - summary.TotalExpense
	return summary
}

// ComputePartnerShares groups income contributions by the paid_by label and
// derives each partner's percentage of the total. When the total is not
// positive every percentage is zero.
func ComputePartnerShares(incomes []models.Income) []PartnerShare {
	byPartner := make(map[string]float64)
	var total float64
	for _, i := range incomes {
		byPartner[i.PaidBy] += i.Amount
		total += i.Amount
	}

	shares := make([]PartnerShare, 0, len(byPartner))
	for partner, amount := range byPartner {
		share := PartnerShare{Partner: partner, Amount: amount}
		if total > 0 {
			share.Percentage = amount / total * 100
		}
		shares = append(shares, share)
	}

	// Largest contribution first; label breaks ties so output is stable.
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount != shares[j].Amount {
			return shares[i].Amount > shares[j].Amount
		}
		return shares[i].Partner < shares[j].Partner
	})

	return shares
}
