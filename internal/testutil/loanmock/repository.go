package loanmock

import (
	"context"

	domain "martianbank/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	InsertFn      func(ctx context.Context, a *domain.Application) error
	FindByEmailFn func(ctx context.Context, email string) ([]domain.Application, error)
}

func (m *Repo) Insert(ctx context.Context, a *domain.Application) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, a)
	}
	return nil
}

func (m *Repo) FindByEmail(ctx context.Context, email string) ([]domain.Application, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(ctx, email)
	}
	return []domain.Application{}, nil
}
