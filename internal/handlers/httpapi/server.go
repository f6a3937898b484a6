// Package httpapi exposes the service over HTTP. All endpoints are mounted
// under /api and exchange JSON; errors are reported as {"detail": "..."}.
package httpapi

import (
	"net/http"

	"github.com/jazzy1902/Monad-BlockHackers/internal/energylog"
	"github.com/jazzy1902/Monad-BlockHackers/internal/ledger"
	"github.com/jazzy1902/Monad-BlockHackers/internal/submission"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Config holds the HTTP-level settings.
type Config struct {
	// CORSOrigins lists the origins allowed to call the API from a browser.
	// CORS handling is disabled when empty.
	CORSOrigins []string

	// LogEnergyRatePerMinute limits logEnergy calls per client address.
	// Zero disables the limit.
	LogEnergyRatePerMinute float64
	LogEnergyBurst         int
}

type handler struct {
	submissions submission.Service
	logs        energylog.Service
	ledger      ledger.Service
}

// New builds the HTTP handler of the service.
func New(submissions submission.Service, logs energylog.Service, lg ledger.Service, cfg Config) http.Handler {
	h := &handler{
		submissions: submissions,
		logs:        logs,
		ledger:      lg,
	}

	obs := newObservability()
	limiter := newRateLimiter(cfg.LogEnergyRatePerMinute, cfg.LogEnergyBurst)

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(obs.middleware)
	r.Use(chimiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Handle("/metrics", obs.metricsHandler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.ping)

		r.With(limiter.middleware).Post("/logEnergy", h.logEnergy)
		r.Get("/getEnergyLogs", h.getEnergyLogs)

		r.Post("/mint", h.mint)
		r.Post("/transfer", h.transfer)
		r.Post("/burn", h.burn)
		r.Get("/balance", h.balance)
		r.Get("/totalSupply", h.totalSupply)
	})

	if len(cfg.CORSOrigins) == 0 {
		return r
	}

	return cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(r)
}
