package models

// AttendanceStatus represents a day's attendance outcome.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
	StatusHalfDay AttendanceStatus = "Half-Day"
)

// PaymentType classifies a wage payout. It is informational only and does
// not change any arithmetic.
type PaymentType string

const (
	PaymentTypeAdvance PaymentType = "Advance"
	PaymentTypeFull    PaymentType = "Full Payment"
)

// LabourProfile represents a worker on the site roster. DailyWage is the
// base rate for a full day; the overtime hourly rate is derived from it.
type LabourProfile struct {
	Base
	Name      string  `gorm:"not null" json:"name"`
	Mobile    string  `json:"mobile"`
	WorkType  string  `gorm:"not null" json:"work_type"`
	DailyWage float64 `gorm:"not null" json:"daily_wage"`
}

// Attendance represents one worker's attendance for one date. The mark
// operation keeps at most one entry per (labour, date) pair; the table
// itself does not enforce that.
type Attendance struct {
	Base
	LabourID      ID               `gorm:"type:text;not null;index" json:"labour_id"`
	Date          string           `gorm:"not null;index" json:"date"`
	Status        AttendanceStatus `gorm:"not null" json:"status"`
	OvertimeHours float64          `json:"overtime_hours"`
}

// LabourPayment represents a wage payout to a worker.
type LabourPayment struct {
	Base
	LabourID ID          `gorm:"type:text;not null;index" json:"labour_id"`
	Date     string      `gorm:"not null;index" json:"date"`
	Amount   float64     `gorm:"not null" json:"amount"`
	Type     PaymentType `gorm:"not null" json:"type"`
	Mode     PaymentMode `gorm:"not null" json:"mode"`
}
