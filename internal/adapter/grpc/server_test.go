package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	domainAccount "martianbank/internal/domain/account"
	domainLoan "martianbank/internal/domain/loan"
	"martianbank/internal/testutil/accountmock"
	"martianbank/internal/testutil/loanmock"
	loanuc "martianbank/internal/usecase/loan"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func ownedStore() *accountmock.Repo {
	return &accountmock.Repo{
		CountByOwnerFn: func(ctx context.Context, email, number string) (int64, error) {
			if email == "john@test.com" && number == "12345" {
				return 1, nil
			}
			return 0, nil
		},
		FindByNumberFn: func(ctx context.Context, number string) (*domainAccount.Account, error) {
			return &domainAccount.Account{AccountNumber: "12345", EmailID: "john@test.com", Balance: 1000.0}, nil
		},
	}
}

func TestProcessLoanRequest_MapsDecision(t *testing.T) {
	srv := &Server{uc: loanuc.NewUsecase(ownedStore(), &loanmock.Repo{})}

	resp, err := srv.ProcessLoanRequest(context.Background(), &LoanRequest{
		Name: "John Carter", Email: "john@test.com", AccountType: "Checking",
		AccountNumber: "12345", GovtIDType: "passport", GovtIDNumber: "X-99812",
		LoanType: "personal", LoanAmount: 5000.0, InterestRate: 4.5, TimePeriod: "24 months",
	})
	if err != nil {
		t.Fatalf("ProcessLoanRequest: %v", err)
	}
	if !resp.Approved || resp.Message != "Loan Approved" {
		t.Fatalf("resp = %+v", resp)
	}
}

// Business declines are OK responses over RPC too, never error statuses.
func TestProcessLoanRequest_DeclineIsNotAStatusError(t *testing.T) {
	srv := &Server{uc: loanuc.NewUsecase(ownedStore(), &loanmock.Repo{})}

	resp, err := srv.ProcessLoanRequest(context.Background(), &LoanRequest{
		Email: "wrong@test.com", AccountNumber: "12345", LoanAmount: 5000.0,
	})
	if err != nil {
		t.Fatalf("decline must not be an error: %v", err)
	}
	if resp.Approved || resp.Message != "Email or Account number not found." {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestProcessLoanRequest_StoreFailureIsInternal(t *testing.T) {
	accounts := &accountmock.Repo{
		CountByOwnerFn: func(ctx context.Context, email, number string) (int64, error) {
			return 0, errors.New("store unreachable")
		},
	}
	srv := &Server{uc: loanuc.NewUsecase(accounts, &loanmock.Repo{})}

	_, err := srv.ProcessLoanRequest(context.Background(), &LoanRequest{
		Email: "john@test.com", AccountNumber: "12345", LoanAmount: 5000.0,
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("code = %v, want Internal", status.Code(err))
	}
}

func TestGetLoanHistory(t *testing.T) {
	when := time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC)
	loans := &loanmock.Repo{
		FindByEmailFn: func(ctx context.Context, email string) ([]domainLoan.Application, error) {
			return []domainLoan.Application{
				{Email: email, LoanAmount: 5000.0, Status: domainLoan.StatusApproved, Timestamp: when},
			}, nil
		},
	}
	srv := &Server{uc: loanuc.NewUsecase(&accountmock.Repo{}, loans)}

	resp, err := srv.GetLoanHistory(context.Background(), &LoansHistoryRequest{Email: "john@test.com"})
	if err != nil {
		t.Fatalf("GetLoanHistory: %v", err)
	}
	if len(resp.Loans) != 1 || resp.Loans[0].Status != "Approved" {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Loans[0].Timestamp != "2024-05-01T10:15:00" {
		t.Fatalf("timestamp = %q", resp.Loans[0].Timestamp)
	}
}

func TestJSONCodecRoundTrip(t *testing.T) {
	in := &LoanRequest{Email: "john@test.com", AccountNumber: "12345", LoanAmount: 5000.0}
	b, err := jsonCodec{}.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out LoanRequest
	if err := (jsonCodec{}).Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != *in {
		t.Fatalf("round trip = %+v", out)
	}
}
