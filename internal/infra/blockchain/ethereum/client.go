// Package ethereum implements the chain client of the service for EVM
// networks: it prices, signs and broadcasts contract transactions from the
// backend account and reads token state through eth_call.
package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/x/chflow"
	"github.com/jazzy1902/Monad-BlockHackers/internal/txbuilder"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrClientAlreadyStarted = errors.New("chain client already started")
	ErrClientNotStarted     = errors.New("chain client not started")
)

const defaultCallTimeout = 15 * time.Second

type closeFunc func()

// submitRequest carries one transaction to the submission loop.
type submitRequest struct {
	ctx   context.Context
	tx    txbuilder.PendingTransaction
	reply chan<- submitResult
}

type submitResult struct {
	hash string
	err  error
}

// client sends transactions to one contract from one account. Submissions
// are handed to a single goroutine so that nonce selection, signing and
// broadcast never interleave between requests.
type client struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc
	loopCtx   context.Context

	backend     Backend
	key         *ecdsa.PrivateKey
	from        common.Address
	contract    common.Address
	abi         abi.ABI
	chainID     *big.Int
	signer      types.Signer
	callTimeout time.Duration

	queue chan submitRequest

	// nextNonce is the nonce following the last accepted broadcast, or nil
	// when unknown. Only the submission loop reads or writes it.
	nextNonce *uint64
}

type config struct {
	callTimeout time.Duration
}

type Option func(*config)

// WithCallTimeout bounds every node call made by the client.
func WithCallTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.callTimeout = d
		}
	}
}

// NewClient creates a client sending transactions to contract, signed by key
// for the chain identified by chainID.
func NewClient(backend Backend, key *ecdsa.PrivateKey, contract common.Address, contractABI abi.ABI, chainID *big.Int, opts ...Option) *client {
	cfg := config{
		callTimeout: defaultCallTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		backend:     backend,
		key:         key,
		from:        crypto.PubkeyToAddress(key.PublicKey),
		contract:    contract,
		abi:         contractABI,
		chainID:     new(big.Int).Set(chainID),
		signer:      types.LatestSignerForChainID(chainID),
		callTimeout: cfg.callTimeout,
		queue:       make(chan submitRequest),
	}
}

// Address returns the account the client signs with.
func (c *client) Address() common.Address {
	return c.from
}

// ChainID returns the chain id transactions are signed for.
func (c *client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// Start launches the submission loop. It runs until ctx is done or Close is
// called.
func (c *client) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isStarted {
		return ErrClientAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		c.runSubmissionLoop(ctx)
	}()

	c.closeFunc = func() {
		cancel()
		<-done
	}
	c.loopCtx = ctx
	c.isStarted = true

	return nil
}

// Close stops the submission loop and waits for it to exit. Submissions
// waiting in line fail with a context error.
func (c *client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closeFunc != nil {
		c.closeFunc()
	}
	c.isStarted = false
	c.closeFunc = nil
	c.loopCtx = nil
}

func (c *client) runSubmissionLoop(ctx context.Context) {
	for {
		req, ok := chflow.Receive(ctx, c.queue)
		if !ok {
			return
		}

		// The caller stopped waiting while the request was in line.
		if err := req.ctx.Err(); err != nil {
			req.reply <- submitResult{err: fault.Wrap(fault.ErrChain, err)}
			continue
		}

		hash, err := c.submit(req.ctx, req.tx)
		req.reply <- submitResult{hash: hash, err: err}
	}
}

// Submit queues tx for submission and waits for the node to accept or
// reject it. It returns the transaction hash on mempool acceptance; it does
// not wait for the transaction to be mined.
func (c *client) Submit(ctx context.Context, tx txbuilder.PendingTransaction) (string, error) {
	c.mu.Lock()
	loopCtx := c.loopCtx
	c.mu.Unlock()

	if loopCtx == nil {
		return "", fault.Wrap(fault.ErrChain, ErrClientNotStarted)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := context.AfterFunc(loopCtx, cancel)
	defer stop()

	reply := make(chan submitResult, 1)
	res, err := chflow.Request(ctx, c.queue, submitRequest{ctx: ctx, tx: tx, reply: reply}, reply)
	if err != nil {
		return "", fault.Wrap(fault.ErrChain, err)
	}

	return res.hash, res.err
}

// withCallTimeout derives the context of a single node call.
func (c *client) withCallTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.callTimeout)
}
