package loan

import (
	"context"
	"errors"
	"time"

	"martianbank/internal/domain/account"
	domainLoan "martianbank/internal/domain/loan"
	"martianbank/internal/usecase/approval"
)

const (
	MsgApproved      = "Loan Approved"
	MsgRejected      = "Loan Rejected"
	MsgOwnerNotFound = "Email or Account number not found."

	timestampLayout = "2006-01-02T15:04:05"
)

type Usecase struct {
	accounts account.Repository
	loans    domainLoan.Repository
	now      func() time.Time
}

func NewUsecase(accounts account.Repository, loans domainLoan.Repository) *Usecase {
	return &Usecase{accounts: accounts, loans: loans, now: time.Now}
}

// Process runs the loan workflow for one request:
//
//  1. identity check: (email, account number) must jointly match a stored
//     account, otherwise respond immediately and record nothing
//  2. fetch the account by number — deliberately a second, separate lookup
//  3. decide via the approval engine
//  4. on approval, overwrite the account balance
//  5. append the audit record, approved or declined
//
// Steps are not transactional: a store failure between 4 and 5 leaves the
// balance mutated without an audit row. That window is part of the contract.
func (u *Usecase) Process(ctx context.Context, in Request) (*Decision, error) {
	count, err := u.accounts.CountByOwner(ctx, in.Email, in.AccountNumber)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return &Decision{Approved: false, Message: MsgOwnerNotFound}, nil
	}

	acct, err := u.accounts.FindByNumber(ctx, in.AccountNumber)
	if err != nil {
		if !errors.Is(err, account.ErrNotFound) {
			return nil, err
		}
		// count said yes, fetch said no: the engine declines a nil account.
		acct = nil
	}

	approved, newBalance := approval.Evaluate(acct, in.LoanAmount)
	if approved {
		if err := u.accounts.UpdateBalance(ctx, in.AccountNumber, newBalance); err != nil {
			return nil, err
		}
	}

	status := domainLoan.StatusDeclined
	msg := MsgRejected
	if approved {
		status = domainLoan.StatusApproved
		msg = MsgApproved
	}
	rec := &domainLoan.Application{
		Name:          in.Name,
		Email:         in.Email,
		AccountType:   in.AccountType,
		AccountNumber: in.AccountNumber,
		GovtIDType:    in.GovtIDType,
		GovtIDNumber:  in.GovtIDNumber,
		LoanType:      in.LoanType,
		LoanAmount:    in.LoanAmount,
		InterestRate:  in.InterestRate,
		TimePeriod:    in.TimePeriod,
		Status:        status,
		Timestamp:     u.now().UTC(),
	}
	if err := u.loans.Insert(ctx, rec); err != nil {
		return nil, err
	}

	return &Decision{Approved: approved, Message: msg}, nil
}

// History returns every application the email has filed, oldest first.
func (u *Usecase) History(ctx context.Context, email string) ([]ApplicationDTO, error) {
	recs, err := u.loans.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationDTO, 0, len(recs))
	for i := range recs {
		out = append(out, toDTO(&recs[i]))
	}
	return out, nil
}

func toDTO(a *domainLoan.Application) ApplicationDTO {
	return ApplicationDTO{
		Name:          a.Name,
		Email:         a.Email,
		AccountType:   a.AccountType,
		AccountNumber: a.AccountNumber,
		GovtIDType:    a.GovtIDType,
		GovtIDNumber:  a.GovtIDNumber,
		LoanType:      a.LoanType,
		LoanAmount:    a.LoanAmount,
		InterestRate:  a.InterestRate,
		TimePeriod:    a.TimePeriod,
		Status:        string(a.Status),
		Timestamp:     a.Timestamp.Format(timestampLayout),
	}
}
