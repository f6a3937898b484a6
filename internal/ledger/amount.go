package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"
	"github.com/jazzy1902/Monad-BlockHackers/internal/txbuilder"
)

// Decimals is the number of decimals of the token.
const Decimals = 18

var unit = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// Amount is a token quantity in raw units together with its whole-token
// value, truncated.
type Amount struct {
	Raw    *big.Int
	Tokens *big.Int
}

// NewAmount derives the whole-token value of raw.
func NewAmount(raw *big.Int) Amount {
	return Amount{
		Raw:    new(big.Int).Set(raw),
		Tokens: new(big.Int).Quo(raw, unit),
	}
}

func (s *service) Balance(ctx context.Context, account string) (Amount, error) {
	call, err := txbuilder.BalanceOf(account)
	if err != nil {
		return Amount{}, err
	}

	return s.readAmount(ctx, call)
}

func (s *service) TotalSupply(ctx context.Context) (Amount, error) {
	return s.readAmount(ctx, txbuilder.TotalSupply())
}

func (s *service) Network(ctx context.Context) (NetworkInfo, error) {
	return s.reader.NetworkInfo(ctx)
}

// readAmount runs a call expected to return a single uint256.
func (s *service) readAmount(ctx context.Context, call txbuilder.Call) (Amount, error) {
	out, err := s.reader.Call(ctx, call)
	if err != nil {
		return Amount{}, err
	}

	if len(out) != 1 {
		return Amount{}, fault.Wrap(fault.ErrChain, fmt.Errorf("%s returned %d values, expected 1", call.Function, len(out)))
	}

	raw, ok := out[0].(*big.Int)
	if !ok || raw == nil {
		return Amount{}, fault.Wrap(fault.ErrChain, fmt.Errorf("%s returned %T, expected uint256", call.Function, out[0]))
	}

	return NewAmount(raw), nil
}
