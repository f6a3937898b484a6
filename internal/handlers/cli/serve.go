package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// shutdownTimeout bounds the wait for in-flight requests on shutdown.
const shutdownTimeout = 10 * time.Second

// Server is the HTTP server run by the serve command. *http.Server satisfies it.
type Server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// serveCommand returns a CLI command that runs the HTTP API.
//
// Usage example:
//
//	greenchain serve
//
// The server runs until it receives SIGINT or SIGTERM, then drains in-flight
// requests before returning.
func serveCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Runs the HTTP API that ingests energy events and exposes the token.",
		Usage:       "Starts the HTTP server. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv, err := deps.Server(ctx)
			if err != nil {
				return err
			}

			return serve(ctx, srv)
		},
	}
}

func serve(ctx context.Context, srv Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info(ctx, "http server started")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info(ctx, "shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
