package submission

import (
	"context"

	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/logger"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/telemetry"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/validator"
	"github.com/jazzy1902/Monad-BlockHackers/internal/txbuilder"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

// Admin actions, used as span names and metric labels.
const (
	actionMint     = "mint"
	actionTransfer = "transfer"
	actionBurn     = "burn"
)

func (s *service) Mint(ctx context.Context, req MintRequest) (string, error) {
	if err := validator.Validate(req); err != nil {
		return "", fault.Wrap(fault.ErrInvalidArgument, err)
	}

	return s.submitAdmin(ctx, actionMint, func() (txbuilder.PendingTransaction, error) {
		return s.builder.Mint(req.Wallet, req.Amount)
	})
}

func (s *service) Transfer(ctx context.Context, req TransferRequest) (string, error) {
	if err := validator.Validate(req); err != nil {
		return "", fault.Wrap(fault.ErrInvalidArgument, err)
	}

	if req.Sender != "" && common.HexToAddress(req.Sender) != s.builder.Sender() {
		logger.Warn(ctx, "transfer sender ignored, sending from the backend account",
			"sender", req.Sender,
			"backend", s.builder.Sender().Hex(),
		)
	}

	return s.submitAdmin(ctx, actionTransfer, func() (txbuilder.PendingTransaction, error) {
		return s.builder.Transfer(req.Receiver, req.Amount)
	})
}

func (s *service) Burn(ctx context.Context, req BurnRequest) (string, error) {
	if err := validator.Validate(req); err != nil {
		return "", fault.Wrap(fault.ErrInvalidArgument, err)
	}

	return s.submitAdmin(ctx, actionBurn, func() (txbuilder.PendingTransaction, error) {
		return s.builder.Burn(req.Wallet, req.Amount)
	})
}

// submitAdmin builds and submits an administrative transaction. Failures
// are returned to the caller.
func (s *service) submitAdmin(ctx context.Context, action string, build func() (txbuilder.PendingTransaction, error)) (string, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "submission."+action)
	defer span.End()

	result := "ok"
	defer func() {
		s.adminTxs.Add(ctx, 1, metric.WithAttributes(
			attribute.String("action", action),
			attribute.String("result", result),
		))
	}()

	tx, err := build()
	if err != nil {
		result = "rejected"
		span.SetStatus(codes.Error, "invalid request")
		return "", err
	}

	hash, err := s.chain.Submit(ctx, tx)
	if err != nil {
		result = "chain_failed"
		span.RecordError(err)
		span.SetStatus(codes.Error, "chain submission failed")
		logger.Warn(ctx, "admin transaction failed", "action", action, "error", err)
		if fault.Kind(err) == nil {
			err = fault.Wrap(fault.ErrChain, err)
		}
		return "", err
	}

	span.SetAttributes(attribute.String("tx.hash", hash))
	logger.Info(ctx, "admin transaction submitted", "action", action, "tx.hash", hash)

	return hash, nil
}
