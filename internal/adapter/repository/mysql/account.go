package mysql

import (
	"context"
	"errors"

	"martianbank/internal/domain/account"

	"gorm.io/gorm"
)

// LookupStrategy decides how FindByNumber resolves an account number to a
// row. The legacy behavior is a full scan of the accounts table in primary
// key order, kept as the default for fidelity with the original service;
// IndexedLookup is the opt-in fixed version.
type LookupStrategy interface {
	FindByNumber(ctx context.Context, db *gorm.DB, accountNumber string) (*account.Account, error)
}

// ScanLookup loads every account and picks the first matching number.
type ScanLookup struct{}

func (ScanLookup) FindByNumber(ctx context.Context, db *gorm.DB, accountNumber string) (*account.Account, error) {
	var all []account.Account
	if err := db.WithContext(ctx).Order("id ASC").Find(&all).Error; err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].AccountNumber == accountNumber {
			return &all[i], nil
		}
	}
	return nil, account.ErrNotFound
}

// IndexedLookup queries by account number directly.
type IndexedLookup struct{}

func (IndexedLookup) FindByNumber(ctx context.Context, db *gorm.DB, accountNumber string) (*account.Account, error) {
	var out account.Account
	res := db.WithContext(ctx).Where("account_number = ?", accountNumber).Order("id ASC").First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, account.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

// AccountOptions tune the repository away from legacy defaults.
type AccountOptions struct {
	// Lookup overrides the FindByNumber strategy; nil means ScanLookup.
	Lookup LookupStrategy
	// OptimisticLocking makes UpdateBalance version-checked: the update only
	// lands if the row still carries the version read in the same call, and
	// a lost race surfaces as account.ErrVersionConflict.
	OptimisticLocking bool
}

type AccountRepository struct {
	db     *gorm.DB
	lookup LookupStrategy
	occ    bool
}

func NewAccountRepository(db *gorm.DB, opts AccountOptions) *AccountRepository {
	lookup := opts.Lookup
	if lookup == nil {
		lookup = ScanLookup{}
	}
	return &AccountRepository{db: db, lookup: lookup, occ: opts.OptimisticLocking}
}

func (r *AccountRepository) CountByOwner(ctx context.Context, email, accountNumber string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&account.Account{}).
		Where("email_id = ? AND account_number = ?", email, accountNumber).
		Count(&n).Error
	return n, err
}

func (r *AccountRepository) FindByNumber(ctx context.Context, accountNumber string) (*account.Account, error) {
	return r.lookup.FindByNumber(ctx, r.db, accountNumber)
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, accountNumber string, balance float64) error {
	if r.occ {
		return r.updateBalanceVersioned(ctx, accountNumber, balance)
	}
	// Unconditional overwrite; zero matched rows is not an error.
	return r.db.WithContext(ctx).Model(&account.Account{}).
		Where("account_number = ?", accountNumber).
		Update("balance", balance).Error
}

func (r *AccountRepository) updateBalanceVersioned(ctx context.Context, accountNumber string, balance float64) error {
	acct, err := r.lookup.FindByNumber(ctx, r.db, accountNumber)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil // match the unconditional path: missing account is a no-op
		}
		return err
	}
	res := r.db.WithContext(ctx).Model(&account.Account{}).
		Where("account_number = ? AND version = ?", accountNumber, acct.Version).
		Updates(map[string]any{"balance": balance, "version": acct.Version + 1})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return account.ErrVersionConflict
	}
	return nil
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}
