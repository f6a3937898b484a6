package httpapi

import (
	"fmt"
	"net/http"

	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"
	"github.com/jazzy1902/Monad-BlockHackers/internal/submission"
)

type txResponse struct {
	Status string `json:"status"`
	Tx     string `json:"tx"`
}

func (h *handler) mint(w http.ResponseWriter, r *http.Request) {
	var req submission.MintRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	hash, err := h.submissions.Mint(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, txResponse{Status: "ok", Tx: hash})
}

func (h *handler) transfer(w http.ResponseWriter, r *http.Request) {
	var req submission.TransferRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	hash, err := h.submissions.Transfer(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, txResponse{Status: "ok", Tx: hash})
}

func (h *handler) burn(w http.ResponseWriter, r *http.Request) {
	var req submission.BurnRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	hash, err := h.submissions.Burn(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, txResponse{Status: "ok", Tx: hash})
}

type balanceResponse struct {
	Account       string `json:"account"`
	BalanceRaw    string `json:"balance_raw"`
	BalanceTokens string `json:"balance_tokens"`
}

func (h *handler) balance(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	if account == "" {
		writeError(w, r, fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("query parameter 'account' is required")))
		return
	}

	amount, err := h.ledger.Balance(r.Context(), account)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceResponse{
		Account:       account,
		BalanceRaw:    amount.Raw.String(),
		BalanceTokens: amount.Tokens.String(),
	})
}

type totalSupplyResponse struct {
	TotalSupplyRaw    string `json:"totalSupply_raw"`
	TotalSupplyTokens string `json:"totalSupply_tokens"`
}

func (h *handler) totalSupply(w http.ResponseWriter, r *http.Request) {
	amount, err := h.ledger.TotalSupply(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, totalSupplyResponse{
		TotalSupplyRaw:    amount.Raw.String(),
		TotalSupplyTokens: amount.Tokens.String(),
	})
}

type pingResponse struct {
	OK      bool   `json:"ok"`
	Network string `json:"network"`
	ChainID string `json:"chain_id"`
}

func (h *handler) ping(w http.ResponseWriter, r *http.Request) {
	info, err := h.ledger.Network(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := pingResponse{OK: true, Network: info.ClientVersion}
	if info.ChainID != nil {
		resp.ChainID = info.ChainID.String()
	}

	writeJSON(w, http.StatusOK, resp)
}
