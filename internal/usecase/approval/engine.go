package approval

import "martianbank/internal/domain/account"

// Anything below this requested amount is declined outright; exactly this
// amount is enough to approve.
const minimumAmount = 1.0

// Evaluate decides a loan request against the fetched account. It is a pure
// function: no store access, no clock, no randomness.
//
// A nil account declines (the workflow's identity check normally prevents
// this, but the two lookups are allowed to disagree). An approval credits the
// requested amount to the balance, modeling disbursement into the account;
// this is a documented simplification, not a risk decision.
func Evaluate(acct *account.Account, requestedAmount float64) (approved bool, newBalance float64) {
	if acct == nil {
		return false, 0
	}
	if requestedAmount < minimumAmount {
		return false, acct.Balance
	}
	return true, acct.Balance + requestedAmount
}
