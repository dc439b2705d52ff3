package loan

import "time"

type Status string

const (
	StatusApproved Status = "Approved"
	StatusDeclined Status = "Declined"
)

// Table: loans. Rows are append-only: one per processed request, approved or
// declined, never updated or deleted afterwards. Account-identifying fields
// are copied in (not referenced) so history stays stable even if the account
// record changes later.
type Application struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	Name          string    `gorm:"column:name;size:120" json:"name"`
	Email         string    `gorm:"column:email;size:120;index:idx_loans_email" json:"email"`
	AccountType   string    `gorm:"column:account_type;size:32" json:"account_type"`
	AccountNumber string    `gorm:"column:account_number;size:32" json:"account_number"`
	GovtIDType    string    `gorm:"column:govt_id_type;size:32" json:"govt_id_type"`
	GovtIDNumber  string    `gorm:"column:govt_id_number;size:64" json:"govt_id_number"`
	LoanType      string    `gorm:"column:loan_type;size:32" json:"loan_type"`
	LoanAmount    float64   `gorm:"column:loan_amount;type:decimal(18,2)" json:"loan_amount"`
	InterestRate  float64   `gorm:"column:interest_rate;type:decimal(6,4)" json:"interest_rate"`
	TimePeriod    string    `gorm:"column:time_period;size:64" json:"time_period"`
	Status        Status    `gorm:"column:status;size:16" json:"status"`
	Timestamp     time.Time `gorm:"column:timestamp" json:"timestamp"`
}

func (Application) TableName() string { return "loans" }
