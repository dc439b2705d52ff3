package atm

import (
	"context"

	"martianbank/internal/domain/atm"
)

// Provider supplies the locator data set. The default is the static fixture
// set below; tests and future backends swap in their own.
type Provider interface {
	ATMs(ctx context.Context) ([]atm.ATM, error)
}

type Usecase struct{ provider Provider }

func NewUsecase(p Provider) *Usecase { return &Usecase{provider: p} }

func (u *Usecase) Locate(ctx context.Context, f atm.Filter) ([]atm.ATM, error) {
	all, err := u.provider.ATMs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]atm.ATM, 0, len(all))
	for _, a := range all {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out, nil
}
