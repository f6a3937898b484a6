package ethereum

import (
	"context"
	"fmt"

	"github.com/jazzy1902/Monad-BlockHackers/internal/ledger"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"
	"github.com/jazzy1902/Monad-BlockHackers/internal/txbuilder"

	geth "github.com/ethereum/go-ethereum"
)

// Ensure client implements the ledger.TokenReader interface at compile time.
var _ ledger.TokenReader = (*client)(nil)

// Call runs a read-only contract call against the latest block and returns
// its decoded outputs.
func (c *client) Call(ctx context.Context, call txbuilder.Call) ([]any, error) {
	data, err := c.abi.Pack(call.Function, call.Args...)
	if err != nil {
		return nil, fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("encode %s call: %w", call.Function, err))
	}

	ctx, cancel := c.withCallTimeout(ctx)
	defer cancel()

	out, err := c.backend.CallContract(ctx, geth.CallMsg{From: c.from, To: &c.contract, Data: data}, nil)
	if err != nil {
		return nil, fault.Wrap(fault.ErrChain, err)
	}

	values, err := c.abi.Unpack(call.Function, out)
	if err != nil {
		return nil, fault.Wrap(fault.ErrChain, fmt.Errorf("decode %s result: %w", call.Function, err))
	}

	return values, nil
}

// NetworkInfo reports the node software version and the chain id the client
// signs for.
func (c *client) NetworkInfo(ctx context.Context) (ledger.NetworkInfo, error) {
	ctx, cancel := c.withCallTimeout(ctx)
	defer cancel()

	version, err := c.backend.ClientVersion(ctx)
	if err != nil {
		return ledger.NetworkInfo{}, fault.Wrap(fault.ErrChain, err)
	}

	return ledger.NetworkInfo{
		ClientVersion: version,
		ChainID:       c.ChainID(),
	}, nil
}
