package loan

import "context"

type Repository interface {
	// Insert durably appends one application record.
	Insert(ctx context.Context, a *Application) error
	// FindByEmail returns every record for the email in insertion order.
	// No records is an empty slice, not an error.
	FindByEmail(ctx context.Context, email string) ([]Application, error)
}
