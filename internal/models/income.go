package models

// PaymentMode represents how money changed hands.
type PaymentMode string

const (
	PaymentModeCash  PaymentMode = "Cash"
	PaymentModeBank  PaymentMode = "Bank"
	PaymentModeUPI   PaymentMode = "UPI"
	PaymentModeCheck PaymentMode = "Check"
)

// IncomeSource classifies where a contribution came from.
type IncomeSource string

const (
	IncomeSourceInvestment IncomeSource = "Investment"
	IncomeSourceLoan       IncomeSource = "Loan"
	IncomeSourceDonation   IncomeSource = "Donation"
	IncomeSourceOther      IncomeSource = "Other"
)

// Income represents a contribution from a project partner.
type Income struct {
	Base
	Date    string       `gorm:"not null;index" json:"date"`
	Amount  float64      `gorm:"not null" json:"amount"`
	Source  IncomeSource `gorm:"not null" json:"source"`
	PaidBy  string       `gorm:"not null;index" json:"paid_by"`
	Mode    PaymentMode  `gorm:"not null" json:"mode"`
	Remarks string       `json:"remarks"`
}
