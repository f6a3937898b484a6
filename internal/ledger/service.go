package ledger

import (
	"context"
	"math/big"

	"github.com/jazzy1902/Monad-BlockHackers/internal/txbuilder"
)

// Service defines the read side of the token: balances, supply and the node
// the service is connected to.
type Service interface {
	// Balance returns the token balance of account.
	//
	// Returns:
	//   - fault.ErrInvalidArgument if account is not a valid address.
	//   - fault.ErrChain if the node call fails.
	Balance(ctx context.Context, account string) (Amount, error)

	// TotalSupply returns the token supply.
	TotalSupply(ctx context.Context) (Amount, error)

	// Network describes the connected node.
	Network(ctx context.Context) (NetworkInfo, error)
}

// TokenReader is the chain port used for reads.
type TokenReader interface {
	// Call runs a read-only contract call and returns its decoded outputs.
	Call(ctx context.Context, call txbuilder.Call) ([]any, error)

	// NetworkInfo reports the node version and chain id.
	NetworkInfo(ctx context.Context) (NetworkInfo, error)
}

// NetworkInfo describes the node behind the chain client.
type NetworkInfo struct {
	ClientVersion string
	ChainID       *big.Int
}

type service struct {
	reader TokenReader
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

func New(reader TokenReader) *service {
	return &service{
		reader: reader,
	}
}
