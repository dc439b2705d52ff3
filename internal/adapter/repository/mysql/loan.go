package mysql

import (
	"context"

	loanDomain "martianbank/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Insert(ctx context.Context, a *loanDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LoanRepository) FindByEmail(ctx context.Context, email string) ([]loanDomain.Application, error) {
	out := make([]loanDomain.Application, 0)
	res := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
