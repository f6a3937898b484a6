// Command greenchain runs the energy ledger: it stores energy production
// events and mirrors them on the token contract.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jazzy1902/Monad-BlockHackers/internal/config"
	"github.com/jazzy1902/Monad-BlockHackers/internal/energylog"
	"github.com/jazzy1902/Monad-BlockHackers/internal/handlers/cli"
	"github.com/jazzy1902/Monad-BlockHackers/internal/handlers/httpapi"
	"github.com/jazzy1902/Monad-BlockHackers/internal/infra/blockchain/ethereum"
	"github.com/jazzy1902/Monad-BlockHackers/internal/infra/storage/redis"
	"github.com/jazzy1902/Monad-BlockHackers/internal/infra/storage/sqldb"
	"github.com/jazzy1902/Monad-BlockHackers/internal/ledger"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/logger"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/resilience/retry"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/telemetry"
	transporthttp "github.com/jazzy1902/Monad-BlockHackers/internal/pkg/transport/http"
	"github.com/jazzy1902/Monad-BlockHackers/internal/submission"
	"github.com/jazzy1902/Monad-BlockHackers/internal/txbuilder"

	"github.com/ethereum/go-ethereum/common"
)

type store interface {
	energylog.Storage
	Ping(ctx context.Context) error
	Close() error
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(ctx, cfg); err != nil {
		logger.Error(ctx, "greenchain stopped", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	_ = logger.Sync()
}

func run(ctx context.Context, cfg config.Config) error {
	shutdown := telemetry.ShutdownFunc(telemetry.NopShutdown)
	if cfg.TelemetryEnabled {
		var err error
		if shutdown, err = telemetry.Init(ctx, cfg.ServiceName); err != nil {
			return err
		}
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	deps := newDependencies(cfg)
	defer deps.Close()

	return cli.Run(ctx, deps)
}

// dependencies builds the service graph on first use. Commands run one at a
// time, so no locking is needed.
type dependencies struct {
	cfg     config.Config
	startup retry.Retry

	chain  chainClient
	logs   energylog.Service
	tokens ledger.Service

	closers []func()
}

type chainClient interface {
	submission.Submitter
	ledger.TokenReader
	Address() common.Address
}

var _ cli.Dependencies = (*dependencies)(nil)

func newDependencies(cfg config.Config) *dependencies {
	return &dependencies{
		cfg: cfg,
		startup: retry.New(
			retry.WithAttempts(5),
			retry.WithDelay(500*time.Millisecond),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(context.Background(), "startup check failed, retrying", "retry.attempt", attempt+1, "error", err)
			}),
		),
	}
}

// Close releases everything that was built, in reverse order.
func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}

func (d *dependencies) EnergyLogs(ctx context.Context) (energylog.Service, error) {
	if d.logs != nil {
		return d.logs, nil
	}

	storage, err := openStore(ctx, d.cfg, d.startup)
	if err != nil {
		return nil, fault.Wrap(fault.ErrStorage, err)
	}
	d.closers = append(d.closers, func() { _ = storage.Close() })

	d.logs = energylog.New(storage)
	return d.logs, nil
}

func (d *dependencies) Ledger(ctx context.Context) (ledger.Service, error) {
	if d.tokens != nil {
		return d.tokens, nil
	}

	chain, err := d.dialChain(ctx)
	if err != nil {
		return nil, err
	}

	d.tokens = ledger.New(chain)
	return d.tokens, nil
}

func (d *dependencies) Server(ctx context.Context) (cli.Server, error) {
	logs, err := d.EnergyLogs(ctx)
	if err != nil {
		return nil, err
	}

	tokens, err := d.Ledger(ctx)
	if err != nil {
		return nil, err
	}

	builder := txbuilder.New(d.chain.Address(),
		txbuilder.WithMintPerUnit(d.cfg.MintPerUnit),
		txbuilder.WithTokenURI(d.cfg.TokenURI),
	)
	submissions := submission.New(logs, builder, d.chain)

	return &http.Server{
		Addr: d.cfg.HTTPAddr,
		Handler: httpapi.New(submissions, logs, tokens, httpapi.Config{
			CORSOrigins:            d.cfg.CORSOrigins,
			LogEnergyRatePerMinute: d.cfg.LogEnergyRatePerMinute,
			LogEnergyBurst:         d.cfg.LogEnergyBurst,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// dialChain dials the node, resolves the chain id and starts the
// submission loop.
func (d *dependencies) dialChain(ctx context.Context) (chainClient, error) {
	if d.chain != nil {
		return d.chain, nil
	}

	key, err := d.cfg.SigningKey()
	if err != nil {
		return nil, err
	}

	contractABI, err := ethereum.LoadABI(d.cfg.ContractABIPath)
	if err != nil {
		return nil, fault.Wrap(fault.ErrConfig, err)
	}

	httpClient := transporthttp.NewStandardClient(
		transporthttp.WithTimeout(d.cfg.RPCTimeout),
		transporthttp.WithRetryMax(d.cfg.RPCRetryMax),
	)

	node, err := ethereum.Dial(ctx, d.cfg.NodeRPC, httpClient)
	if err != nil {
		return nil, fault.Wrap(fault.ErrChain, err)
	}
	d.closers = append(d.closers, node.Close)

	chainID, err := ethereum.ResolveChainID(ctx, node, d.cfg.ChainID, d.startup)
	if err != nil {
		return nil, err
	}

	chain := ethereum.NewClient(node, key, d.cfg.Contract(), contractABI, chainID,
		ethereum.WithCallTimeout(d.cfg.RPCTimeout),
	)
	if err := chain.Start(context.WithoutCancel(ctx)); err != nil {
		return nil, err
	}
	d.closers = append(d.closers, chain.Close)

	logger.Info(ctx, "chain client ready",
		"chain.id", chainID.String(),
		"chain.sender", chain.Address().Hex(),
		"chain.contract", d.cfg.ContractAddress,
	)

	d.chain = chain
	return chain, nil
}

func openStore(ctx context.Context, cfg config.Config, startup retry.Retry) (store, error) {
	var (
		storage store
		err     error
	)

	switch cfg.StorageDriver {
	case config.StorageRedis:
		err = startup.Execute(ctx, func() error {
			storage, err = redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, string(cfg.RedisPassword), cfg.RedisDB)
			return err
		})
	case config.StorageSQLite, config.StoragePostgres:
		err = startup.Execute(ctx, func() error {
			storage, err = sqldb.Open(ctx, cfg.StorageDriver, cfg.DatabaseDSN)
			return err
		})
	default:
		err = errors.New("unknown storage driver " + cfg.StorageDriver)
	}
	if err != nil {
		return nil, err
	}

	if err := storage.Ping(ctx); err != nil {
		_ = storage.Close()
		return nil, err
	}

	return storage, nil
}
