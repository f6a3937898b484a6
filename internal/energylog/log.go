package energylog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"
)

// EnergyEvent is a single energy-production report received from a device.
type EnergyEvent struct {
	Wallet          string  // EVM address credited for the production
	Units           float64 // produced energy units, strictly positive
	DeviceID        *string // optional identifier of the reporting device
	DeviceTimestamp *string // optional device-side timestamp, stored as received
}

// LogRecord is an EnergyEvent as persisted by the store. Records are written
// once and never updated.
type LogRecord struct {
	ID              uint64
	Wallet          string
	Units           float64
	DeviceID        *string
	DeviceTimestamp *string
	ReceivedAt      time.Time

	// Reserved for correlating a record with its on-chain effect. Nothing
	// writes them yet.
	TxHash   *string
	TokenID  *uint64
	TokenURI *string
}

// Storage defines the persistence port of the event log.
//
// Implementations must assign ids atomically, so concurrent appends receive
// distinct, increasing ids.
type Storage interface {
	// AppendLog assigns the next sequential id to record, persists it and
	// returns the stored copy.
	AppendLog(ctx context.Context, record LogRecord) (LogRecord, error)

	// ListLogsByWallet returns the records whose wallet equals wallet exactly,
	// ordered by descending id, after skipping offset records and returning at
	// most limit. An empty slice is returned when nothing matches.
	ListLogsByWallet(ctx context.Context, wallet string, offset, limit int) ([]LogRecord, error)
}

// NormalizeWallet returns the canonical form under which wallets are stored
// and queried.
func NormalizeWallet(wallet string) string {
	return strings.ToLower(strings.TrimSpace(wallet))
}

// Append stamps the event with the next receipt time and stores it under its
// canonical wallet.
func (s *service) Append(ctx context.Context, event EnergyEvent) (LogRecord, error) {
	record := LogRecord{
		Wallet:          NormalizeWallet(event.Wallet),
		Units:           event.Units,
		DeviceID:        event.DeviceID,
		DeviceTimestamp: event.DeviceTimestamp,
		ReceivedAt:      s.clock.Now(),
	}

	stored, err := s.storage.AppendLog(ctx, record)
	if err != nil {
		return LogRecord{}, fault.Wrap(fault.ErrStorage, err)
	}

	return stored, nil
}

// ListByWallet pages through the records of wallet, newest first.
func (s *service) ListByWallet(ctx context.Context, wallet string, offset, limit int) ([]LogRecord, error) {
	if offset < 0 {
		return nil, fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("offset must not be negative, got %d", offset))
	}

	if limit <= 0 {
		return nil, fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("limit must be positive, got %d", limit))
	}

	records, err := s.storage.ListLogsByWallet(ctx, NormalizeWallet(wallet), offset, limit)
	if err != nil {
		return nil, fault.Wrap(fault.ErrStorage, err)
	}

	if records == nil {
		records = []LogRecord{}
	}

	return records, nil
}
