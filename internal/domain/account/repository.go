package account

import "context"

type Repository interface {
	// CountByOwner counts accounts whose email AND account number both match.
	// The workflow treats 0 as "requester does not own this account".
	CountByOwner(ctx context.Context, email, accountNumber string) (int64, error)

	// FindByNumber returns the first account matching the number, or
	// ErrNotFound. Which row is "first" is a store-level lookup strategy.
	FindByNumber(ctx context.Context, accountNumber string) (*Account, error)

	// UpdateBalance overwrites the balance of the matching account. A missing
	// account is a silent no-op, not an error.
	UpdateBalance(ctx context.Context, accountNumber string, balance float64) error

	// Create is used by the seeder and tests only.
	Create(ctx context.Context, a *Account) error
}
