package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/logger"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch fault.Kind(err) {
	case fault.ErrInvalidArgument:
		return http.StatusBadRequest
	case fault.ErrChain:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports err with the status of its kind. The message of the
// cause is passed through unchanged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", "http.status", status, "error", err)
	}

	writeDetail(w, status, err.Error())
}

// decodeJSON reads a single JSON object from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("request body is empty")
		}
		return fault.Wrap(fault.ErrInvalidArgument, fmt.Errorf("invalid JSON body: %w", err))
	}

	return nil
}
