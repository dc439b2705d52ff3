package approval

import (
	"testing"

	"martianbank/internal/domain/account"
)

func acct(balance float64) *account.Account {
	return &account.Account{
		AccountNumber: "12345",
		EmailID:       "john@test.com",
		Balance:       balance,
		Name:          "John Carter",
		AccountType:   "Checking",
	}
}

func TestEvaluate_ApprovesAndCreditsBalance(t *testing.T) {
	approved, newBalance := Evaluate(acct(1000.0), 5000.0)
	if !approved {
		t.Fatal("want approved")
	}
	if newBalance != 6000.0 {
		t.Fatalf("newBalance = %v, want 6000", newBalance)
	}
}

func TestEvaluate_AmountBoundary(t *testing.T) {
	cases := []struct {
		name     string
		amount   float64
		approved bool
	}{
		{"exactly one approves", 1.0, true},
		{"just below one declines", 0.999, false},
		{"zero declines", 0, false},
		{"negative declines", -50, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			approved, newBalance := Evaluate(acct(1000.0), tc.amount)
			if approved != tc.approved {
				t.Fatalf("approved = %v, want %v", approved, tc.approved)
			}
			if !tc.approved && newBalance != 1000.0 {
				t.Fatalf("declined request changed balance: %v", newBalance)
			}
			if tc.approved && newBalance != 1000.0+tc.amount {
				t.Fatalf("newBalance = %v", newBalance)
			}
		})
	}
}

func TestEvaluate_NilAccountDeclines(t *testing.T) {
	approved, _ := Evaluate(nil, 5000.0)
	if approved {
		t.Fatal("nil account must decline")
	}
}
