package account

import "errors"

var (
	ErrNotFound = errors.New("account not found")
	// ErrVersionConflict is returned by version-checked balance updates when
	// another writer touched the row in between.
	ErrVersionConflict = errors.New("account version conflict")
)

// Table: accounts. Accounts are created outside this service (the seeder is
// the local stand-in); the loan workflow only ever rewrites the balance.
type Account struct {
	ID            uint64  `gorm:"primaryKey;column:id" json:"-"`
	AccountNumber string  `gorm:"column:account_number;size:32;index:idx_accounts_number" json:"account_number"`
	EmailID       string  `gorm:"column:email_id;size:120;index:idx_accounts_email" json:"email_id"`
	Balance       float64 `gorm:"column:balance;type:decimal(18,2)" json:"balance"`
	Name          string  `gorm:"column:name;size:120" json:"name"`
	AccountType   string  `gorm:"column:account_type;size:32" json:"account_type"`
	// Bumped on every version-checked balance update; untouched otherwise.
	Version uint64 `gorm:"column:version;default:0" json:"-"`
}

func (Account) TableName() string { return "accounts" }
