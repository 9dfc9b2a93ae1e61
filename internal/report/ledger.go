package report

import (
	"sort"
	"strings"
	"time"

	"sitekhata/internal/models"
)

// LedgerEntry is one row of the unified outflow ledger. Direct expenses keep
// their stored fields; labour payments are projected into the same shape
// under the Labour category so the two streams read as a single history.
type LedgerEntry struct {
	ID          models.ID              `json:"id"`
	Date        string                 `json:"date"`
	Amount      float64                `json:"amount"`
	Category    models.ExpenseCategory `json:"category"`
	SubCategory string                 `json:"sub_category,omitempty"`
	PaidTo      string                 `json:"paid_to"`
	VendorName  string                 `json:"vendor_name,omitempty"`
	Mode        models.PaymentMode     `json:"mode"`
	Notes       string                 `json:"notes,omitempty"`
	FromPayment bool                   `json:"from_payment"`
	CreatedAt   time.Time              `json:"created_at"`
}

// LedgerFilter narrows the ledger. Category is an exact match; Search is a
// case-insensitive substring match over payee, vendor name, and notes. Zero
// values mean no filtering.
type LedgerFilter struct {
	Category models.ExpenseCategory
	Search   string
}

// BuildLedger merges direct expenses and labour payments into one list,
// newest first. Vendor and worker names are resolved against the supplied
// collections; a payment whose worker no longer resolves falls back to the
// generic "Labourer" payee rather than being dropped.
func BuildLedger(
	expenses []models.Expense,
	payments []models.LabourPayment,
	vendors []models.Vendor,
	labours []models.LabourProfile,
	filter LedgerFilter,
) []LedgerEntry {
	vendorNames := make(map[models.ID]string, len(vendors))
	for _, v := range vendors {
		vendorNames[v.ID] = v.Name
	}
	labourByID := make(map[models.ID]models.LabourProfile, len(labours))
	for _, l := range labours {
		labourByID[l.ID] = l
	}

	entries := make([]LedgerEntry, 0, len(expenses)+len(payments))

	for _, e := range expenses {
		entry := LedgerEntry{
			ID:          e.ID,
			Date:        e.Date,
			Amount:      e.Amount,
			Category:    e.Category,
			SubCategory: e.SubCategory,
			PaidTo:      e.PaidTo,
			Mode:        e.Mode,
			Notes:       e.Notes,
			CreatedAt:   e.CreatedAt,
		}
		if e.VendorID != "" {
			entry.VendorName = vendorNames[e.VendorID]
		}
		entries = append(entries, entry)
	}

	for _, p := range payments {
		entry := LedgerEntry{
			ID:          p.ID,
			Date:        p.Date,
			Amount:      p.Amount,
			Category:    models.CategoryLabour,
			SubCategory: "Labour",
			PaidTo:      "Labourer",
			Mode:        p.Mode,
			Notes:       string(p.Type),
			FromPayment: true,
			CreatedAt:   p.CreatedAt,
		}
		if l, ok := labourByID[p.LabourID]; ok {
			entry.PaidTo = l.Name
			if l.WorkType != "" {
				entry.SubCategory = l.WorkType
			}
		}
		entries = append(entries, entry)
	}

	if filter.Category != "" || filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		kept := entries[:0]
		for _, e := range entries {
			if filter.Category != "" && e.Category != filter.Category {
				continue
			}
			if needle != "" && !matchesSearch(e, needle) {
				continue
			}
			kept = append(kept, e)
		}
		entries = kept
	}

	// Dates are ISO strings, so string order is chronological order.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID > entries[j].ID
	})

	return entries
}

func matchesSearch(e LedgerEntry, needle string) bool {
	return strings.Contains(strings.ToLower(e.PaidTo), needle) ||
		strings.Contains(strings.ToLower(e.VendorName), needle) ||
		strings.Contains(strings.ToLower(e.Notes), needle)
}
