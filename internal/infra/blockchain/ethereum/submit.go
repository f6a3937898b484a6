package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/logger"
	"github.com/jazzy1902/Monad-BlockHackers/internal/txbuilder"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
)

// Pricing policy.
const (
	fallbackGasLimit     uint64 = 300_000
	gasMarginNumerator   uint64 = 12
	gasMarginDenominator uint64 = 10
	baseFeeMultiplier           = 2
)

var (
	priorityFee    = big.NewInt(params.GWei)
	legacyGasPrice = big.NewInt(params.GWei)
)

// feeQuote is the pricing of one transaction: either the EIP-1559 caps or
// a legacy gas price.
type feeQuote struct {
	gasFeeCap *big.Int
	gasTipCap *big.Int
	gasPrice  *big.Int
}

// quoteFees prices a transaction from the latest base fee. Without one, it
// falls back to a legacy 1 gwei gas price.
func quoteFees(baseFee *big.Int, ok bool) feeQuote {
	if !ok {
		return feeQuote{gasPrice: new(big.Int).Set(legacyGasPrice)}
	}

	feeCap := new(big.Int).Mul(baseFee, big.NewInt(baseFeeMultiplier))
	if feeCap.Cmp(priorityFee) < 0 {
		feeCap.Set(priorityFee)
	}

	return feeQuote{
		gasFeeCap: feeCap,
		gasTipCap: new(big.Int).Set(priorityFee),
	}
}

func (q feeQuote) dynamic() bool {
	return q.gasFeeCap != nil
}

func (q feeQuote) callMsg(from, to common.Address, data []byte) geth.CallMsg {
	return geth.CallMsg{
		From:      from,
		To:        &to,
		Data:      data,
		GasPrice:  q.gasPrice,
		GasFeeCap: q.gasFeeCap,
		GasTipCap: q.gasTipCap,
	}
}

func (q feeQuote) newTx(chainID *big.Int, nonce, gas uint64, to common.Address, data []byte) *types.Transaction {
	if q.dynamic() {
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     nonce,
			GasTipCap: q.gasTipCap,
			GasFeeCap: q.gasFeeCap,
			Gas:       gas,
			To:        &to,
			Data:      data,
		})
	}

	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: q.gasPrice,
		Gas:      gas,
		To:       &to,
		Data:     data,
	})
}

// latestBaseFee reports the base fee of the next block, if the node exposes
// one through eth_feeHistory.
func (c *client) latestBaseFee(ctx context.Context) (*big.Int, bool) {
	ctx, cancel := c.withCallTimeout(ctx)
	defer cancel()

	history, err := c.backend.FeeHistory(ctx, 1, nil, nil)
	if err != nil {
		logger.Debug(ctx, "fee history unavailable, using legacy pricing", "error", err)
		return nil, false
	}

	if history == nil || len(history.BaseFee) == 0 {
		return nil, false
	}

	baseFee := history.BaseFee[len(history.BaseFee)-1]
	if baseFee == nil || baseFee.Sign() <= 0 {
		return nil, false
	}

	return baseFee, true
}

// estimateGas reports the node's gas estimate for msg.
func (c *client) estimateGas(ctx context.Context, msg geth.CallMsg) (uint64, bool) {
	ctx, cancel := c.withCallTimeout(ctx)
	defer cancel()

	gas, err := c.backend.EstimateGas(ctx, msg)
	if err != nil {
		logger.Debug(ctx, "gas estimation failed, using fallback limit", "error", err)
		return 0, false
	}

	if gas == 0 {
		return 0, false
	}

	return gas, true
}

// gasLimit adds a 20% margin to an estimate, or returns the fallback limit.
func gasLimit(estimate uint64, ok bool) uint64 {
	if !ok {
		return fallbackGasLimit
	}

	return estimate * gasMarginNumerator / gasMarginDenominator
}

// resolveNonce returns the nonce for the next transaction: the node's
// pending nonce, unless the last accepted broadcast is not reflected there yet.
func (c *client) resolveNonce(ctx context.Context) (uint64, error) {
	ctx, cancel := c.withCallTimeout(ctx)
	defer cancel()

	pending, err := c.backend.PendingNonceAt(ctx, c.from)
	if err != nil {
		return 0, err
	}

	if c.nextNonce != nil && *c.nextNonce > pending {
		return *c.nextNonce, nil
	}

	return pending, nil
}

func (c *client) broadcast(ctx context.Context, tx *types.Transaction) error {
	ctx, cancel := c.withCallTimeout(ctx)
	defer cancel()

	return c.backend.SendTransaction(ctx, tx)
}

// submit encodes, prices, signs and broadcasts tx. It must only run on the
// submission loop.
func (c *client) submit(ctx context.Context, tx txbuilder.PendingTransaction) (string, error) {
	if tx.From != c.from {
		return "", fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("cannot sign for %s, client account is %s", tx.From.Hex(), c.from.Hex()))
	}

	data, err := c.abi.Pack(tx.Function, tx.Args...)
	if err != nil {
		return "", fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("encode %s call: %w", tx.Function, err))
	}

	nonce, err := c.resolveNonce(ctx)
	if err != nil {
		return "", fault.Wrap(fault.ErrChain, err)
	}

	fees := quoteFees(c.latestBaseFee(ctx))

	gas := tx.Gas
	if gas == 0 {
		gas = gasLimit(c.estimateGas(ctx, fees.callMsg(c.from, c.contract, data)))
	}

	signed, err := types.SignTx(fees.newTx(c.chainID, nonce, gas, c.contract, data), c.signer, c.key)
	if err != nil {
		return "", fault.Wrap(fault.ErrChain, err)
	}

	if err := c.broadcast(ctx, signed); err != nil {
		c.nextNonce = nil
		logger.Warn(ctx, "transaction broadcast failed",
			"tx.function", tx.Function,
			"tx.nonce", nonce,
			"error", err,
		)
		return "", fault.Wrap(fault.ErrChain, err)
	}

	next := nonce + 1
	c.nextNonce = &next

	hash := signed.Hash().Hex()
	logger.Info(ctx, "transaction broadcast",
		"tx.hash", hash,
		"tx.function", tx.Function,
		"tx.nonce", nonce,
		"tx.gas", gas,
		"tx.type", signed.Type(),
	)

	return hash, nil
}
