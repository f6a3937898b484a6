package submission

import (
	"context"
	"strings"

	"github.com/jazzy1902/Monad-BlockHackers/internal/energylog"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/logger"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/telemetry"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/validator"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Outcome labels of the energy event counter.
const (
	outcomeRejected      = "rejected"
	outcomeStorageFailed = "storage_failed"
	outcomeSubmitted     = "submitted"
	outcomeChainFailed   = "chain_failed"
)

func (s *service) countEnergyEvent(ctx context.Context, outcome string) {
	s.energyEvents.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// LogEnergy runs the ingestion pipeline: validate, store, build, submit.
func (s *service) LogEnergy(ctx context.Context, req EnergyEventRequest) (Receipt, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "submission.LogEnergy")
	defer span.End()

	if err := validator.Validate(req); err != nil {
		s.countEnergyEvent(ctx, outcomeRejected)
		span.SetStatus(codes.Error, "invalid request")
		return Receipt{}, fault.Wrap(fault.ErrInvalidArgument, err)
	}

	record, err := s.events.Append(ctx, energylog.EnergyEvent{
		Wallet:          req.Wallet,
		Units:           req.Units,
		DeviceID:        req.DeviceID,
		DeviceTimestamp: req.DeviceTimestamp,
	})
	if err != nil {
		s.countEnergyEvent(ctx, outcomeStorageFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "storage failed")
		logger.Error(ctx, "energy event not stored", "wallet", strings.ToLower(req.Wallet), "error", err)
		return Receipt{}, fault.Wrap(fault.ErrStorage, err)
	}

	span.SetAttributes(attribute.Int64("energylog.id", int64(record.ID)))
	ctx = logger.Derive(ctx, "energylog.id", record.ID, "wallet", record.Wallet)
	logger.Debug(ctx, "energy event stored")

	receipt := Receipt{Record: record}

	tx, tokenUnits, err := s.builder.LogEnergy(record.Wallet, record.Units)
	if err != nil {
		return s.chainFailed(ctx, span, receipt, err), nil
	}
	receipt.TokenUnits = tokenUnits

	hash, err := s.chain.Submit(ctx, tx)
	if err != nil {
		return s.chainFailed(ctx, span, receipt, err), nil
	}

	receipt.Outcome = Submitted{TxHash: hash}
	s.countEnergyEvent(ctx, outcomeSubmitted)
	span.SetAttributes(attribute.String("tx.hash", hash))
	logger.Info(ctx, "energy event submitted", "tx.hash", hash, "token_units", tokenUnits.String())

	return receipt, nil
}

// chainFailed completes receipt for a chain leg that did not succeed. The
// stored record is kept.
func (s *service) chainFailed(ctx context.Context, span trace.Span, receipt Receipt, err error) Receipt {
	receipt.Outcome = ChainFailed{Detail: err.Error()}

	s.countEnergyEvent(ctx, outcomeChainFailed)
	span.RecordError(err)
	span.SetStatus(codes.Error, "chain submission failed")
	logger.Warn(ctx, "energy event stored but chain submission failed", "error", err)

	return receipt
}
