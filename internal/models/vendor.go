package models

// Vendor represents a saved shop or supplier. Vendors are referenced weakly
// by expenses; deleting a vendor leaves those references dangling on purpose.
type Vendor struct {
	Base
	Name     string          `gorm:"not null" json:"name"`
	Category ExpenseCategory `gorm:"not null;index" json:"category"`
	Mobile   string          `json:"mobile,omitempty"`
}
