package httpapi

import (
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/jazzy1902/Monad-BlockHackers/internal/energylog"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"
	"github.com/jazzy1902/Monad-BlockHackers/internal/submission"
)

// Paging bounds of getEnergyLogs.
const (
	defaultLimit = 100
	maxLimit     = 1000
)

const partialMsg = "Logged locally but on-chain call failed"

type logEnergyResponse struct {
	Status           string    `json:"status"`
	Msg              string    `json:"msg,omitempty"`
	DBID             uint64    `json:"db_id"`
	TxHash           string    `json:"tx_hash,omitempty"`
	Error            string    `json:"error,omitempty"`
	Wallet           string    `json:"wallet"`
	Units            float64   `json:"units"`
	TokenUnitsMinted *big.Int  `json:"token_units_minted"`
	ReceivedAt       time.Time `json:"received_at"`
}

func (h *handler) logEnergy(w http.ResponseWriter, r *http.Request) {
	var req submission.EnergyEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	receipt, err := h.submissions.LogEnergy(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := logEnergyResponse{
		DBID:             receipt.Record.ID,
		Wallet:           receipt.Record.Wallet,
		Units:            receipt.Record.Units,
		TokenUnitsMinted: receipt.TokenUnits,
		ReceivedAt:       receipt.Record.ReceivedAt,
	}

	switch outcome := receipt.Outcome.(type) {
	case submission.Submitted:
		resp.Status = "ok"
		resp.TxHash = outcome.TxHash
	case submission.ChainFailed:
		resp.Status = "partial"
		resp.Msg = partialMsg
		resp.Error = outcome.Detail
	}

	writeJSON(w, http.StatusOK, resp)
}

type energyLogEntry struct {
	ID              uint64    `json:"id"`
	DeviceID        *string   `json:"device_id"`
	Units           float64   `json:"units"`
	DeviceTimestamp *string   `json:"device_timestamp"`
	ReceivedAt      time.Time `json:"received_at"`
}

type energyLogsResponse struct {
	Wallet string           `json:"wallet"`
	Count  int              `json:"count"`
	Logs   []energyLogEntry `json:"logs"`
}

func (h *handler) getEnergyLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	wallet := query.Get("wallet")
	if wallet == "" {
		writeError(w, r, fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("query parameter 'wallet' is required")))
		return
	}

	skip, err := intParam(query.Get("skip"), "skip", 0, 0, -1)
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit, err := intParam(query.Get("limit"), "limit", defaultLimit, 1, maxLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.logs.ListByWallet(r.Context(), wallet, skip, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := energyLogsResponse{
		Wallet: energylog.NormalizeWallet(wallet),
		Count:  len(records),
		Logs:   make([]energyLogEntry, 0, len(records)),
	}
	for _, record := range records {
		resp.Logs = append(resp.Logs, energyLogEntry{
			ID:              record.ID,
			DeviceID:        record.DeviceID,
			Units:           record.Units,
			DeviceTimestamp: record.DeviceTimestamp,
			ReceivedAt:      record.ReceivedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// intParam parses an integer query parameter, applying def when it is
// absent. A negative hi means no upper bound.
func intParam(raw, name string, def, lo, hi int) (int, error) {
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("query parameter '%s' must be an integer", name))
	}

	switch {
	case hi >= 0 && (v < lo || v > hi):
		return 0, fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("query parameter '%s' must be between %d and %d", name, lo, hi))
	case v < lo:
		return 0, fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("query parameter '%s' must be at least %d", name, lo))
	}

	return v, nil
}
