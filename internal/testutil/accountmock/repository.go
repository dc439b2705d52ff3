package accountmock

import (
	"context"
	"errors"

	domain "martianbank/internal/domain/account"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CountByOwnerFn  func(ctx context.Context, email, accountNumber string) (int64, error)
	FindByNumberFn  func(ctx context.Context, accountNumber string) (*domain.Account, error)
	UpdateBalanceFn func(ctx context.Context, accountNumber string, balance float64) error
	CreateFn        func(ctx context.Context, a *domain.Account) error
}

func (m *Repo) CountByOwner(ctx context.Context, email, accountNumber string) (int64, error) {
	if m.CountByOwnerFn != nil {
		return m.CountByOwnerFn(ctx, email, accountNumber)
	}
	return 0, errors.New("not implemented")
}

func (m *Repo) FindByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	if m.FindByNumberFn != nil {
		return m.FindByNumberFn(ctx, accountNumber)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) UpdateBalance(ctx context.Context, accountNumber string, balance float64) error {
	if m.UpdateBalanceFn != nil {
		return m.UpdateBalanceFn(ctx, accountNumber, balance)
	}
	return nil
}

func (m *Repo) Create(ctx context.Context, a *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}
