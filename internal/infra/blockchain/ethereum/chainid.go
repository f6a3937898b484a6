package ethereum

import (
	"context"
	"math/big"

	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/resilience/retry"
)

// ResolveChainID returns configured when it is non-zero. Otherwise it asks
// the node for its chain id, retrying with r while the node is unreachable.
func ResolveChainID(ctx context.Context, backend Backend, configured uint64, r retry.Retry) (*big.Int, error) {
	if configured != 0 {
		return new(big.Int).SetUint64(configured), nil
	}

	var chainID *big.Int
	err := r.Execute(ctx, func() error {
		id, err := backend.ChainID(ctx)
		if err != nil {
			return err
		}

		chainID = id
		return nil
	})
	if err != nil {
		return nil, fault.Wrap(fault.ErrChain, err)
	}

	return chainID, nil
}
