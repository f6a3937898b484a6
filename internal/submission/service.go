package submission

import (
	"context"

	"github.com/jazzy1902/Monad-BlockHackers/internal/energylog"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/telemetry"
	"github.com/jazzy1902/Monad-BlockHackers/internal/txbuilder"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Service defines the state-changing operations of the token: crediting
// energy production and the administrative mint, transfer and burn.
type Service interface {
	// LogEnergy records an energy event and submits the matching logEnergy
	// transaction.
	//
	// The event is durably stored before the chain is contacted. A chain
	// failure does not undo the write: it is reported as a ChainFailed
	// outcome with a nil error.
	//
	// Returns:
	//   - fault.ErrInvalidArgument if the request is malformed. Nothing is stored.
	//   - fault.ErrStorage if the event could not be stored. The chain is not contacted.
	LogEnergy(ctx context.Context, req EnergyEventRequest) (Receipt, error)

	// Mint credits a wallet with newly minted raw token units and returns the
	// transaction hash.
	Mint(ctx context.Context, req MintRequest) (string, error)

	// Transfer moves raw token units from the backend account to a receiver
	// and returns the transaction hash.
	Transfer(ctx context.Context, req TransferRequest) (string, error)

	// Burn destroys raw token units held by a wallet and returns the
	// transaction hash.
	Burn(ctx context.Context, req BurnRequest) (string, error)
}

// EventLog is the durable store of energy events.
type EventLog interface {
	Append(ctx context.Context, event energylog.EnergyEvent) (energylog.LogRecord, error)
}

// Submitter sends a transaction to the chain and returns its hash once the
// node accepts it.
type Submitter interface {
	Submit(ctx context.Context, tx txbuilder.PendingTransaction) (string, error)
}

type service struct {
	events  EventLog
	builder *txbuilder.Builder
	chain   Submitter

	energyEvents metric.Int64Counter
	adminTxs     metric.Int64Counter
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates the submission service. Transactions are built by builder and
// sent through chain; energy events are stored in events first.
func New(events EventLog, builder *txbuilder.Builder, chain Submitter) *service {
	meter := telemetry.Meter()

	energyEvents, err := meter.Int64Counter("greenchain.energy_events",
		metric.WithDescription("Energy events received, by outcome."),
	)
	if err != nil {
		energyEvents = noop.Int64Counter{}
	}

	adminTxs, err := meter.Int64Counter("greenchain.admin_transactions",
		metric.WithDescription("Administrative token transactions, by action and result."),
	)
	if err != nil {
		adminTxs = noop.Int64Counter{}
	}

	return &service{
		events:       events,
		builder:      builder,
		chain:        chain,
		energyEvents: energyEvents,
		adminTxs:     adminTxs,
	}
}
