package energylog

import "context"

// Service defines the entry point for recording energy-production events and
// reading them back per wallet.
//
// Implementations canonicalize wallets, stamp the server receipt time and
// delegate persistence to the configured Storage.
type Service interface {
	// Append durably records an accepted event.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - event: the event to store. Its wallet is lowercased before persistence.
	//
	// Returns:
	//   - The stored record, carrying its sequential id and receipt time.
	//   - An error classified as fault.ErrStorage if the write fails.
	Append(ctx context.Context, event EnergyEvent) (LogRecord, error)

	// ListByWallet returns the records of a wallet, newest first.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - wallet: the wallet to query, matched case-insensitively.
	//   - offset: number of matching records to skip.
	//   - limit: maximum number of records to return.
	//
	// Returns:
	//   - The matching page of records, possibly empty.
	//   - An error classified as fault.ErrInvalidArgument for a negative offset or
	//     a non-positive limit, or fault.ErrStorage if the read fails.
	ListByWallet(ctx context.Context, wallet string, offset, limit int) ([]LogRecord, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage Storage
	clock   *monotonicClock
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates the energylog service on top of the given Storage.
func New(storage Storage, opts ...Option) *service {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		storage: storage,
		clock:   newMonotonicClock(cfg.now),
	}
}
