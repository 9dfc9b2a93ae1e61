package models

// ExpenseCategory represents the spending category of an expense.
type ExpenseCategory string

const (
	CategoryMaterial   ExpenseCategory = "Material"
	CategoryLabour     ExpenseCategory = "Labour"
	CategoryFood       ExpenseCategory = "Food"
	CategoryTransport  ExpenseCategory = "Transport"
	CategoryUtility    ExpenseCategory = "Utility"
	CategoryContractor ExpenseCategory = "Contractor"
	CategoryOther      ExpenseCategory = "Other"
)

// Expense represents a direct project expense, optionally tied to a saved
// vendor. VendorID is a weak reference: the vendor may have been deleted
// since, in which case reporting falls back to the stored PaidTo name.
type Expense struct {
	Base
	Date        string          `gorm:"not null;index" json:"date"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Category    ExpenseCategory `gorm:"not null;index" json:"category"`
	SubCategory string          `json:"sub_category,omitempty"`
	PaidTo      string          `json:"paid_to"`
	VendorID    ID              `gorm:"type:text;index" json:"vendor_id,omitempty"`
	Mode        PaymentMode     `gorm:"not null" json:"mode"`
	Notes       string          `json:"notes"`
}
