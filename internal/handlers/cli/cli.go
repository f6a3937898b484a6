package cli

import (
	"context"
	"os"

	"github.com/jazzy1902/Monad-BlockHackers/internal/energylog"
	"github.com/jazzy1902/Monad-BlockHackers/internal/ledger"

	"github.com/urfave/cli/v3"
)

// Dependencies builds what a command needs when the command runs, so each
// command only opens the resources it uses.
type Dependencies interface {
	// Server returns the HTTP server with the full service behind it.
	Server(ctx context.Context) (Server, error)

	// EnergyLogs returns the event store. It does not contact the chain.
	EnergyLogs(ctx context.Context) (energylog.Service, error)

	// Ledger returns the token reads.
	Ledger(ctx context.Context) (ledger.Service, error)
}

// Run initializes and executes the greenchain CLI application.
//
// It registers all available commands:
//
//   - `serve`: Runs the HTTP API until interrupted. This is the default.
//   - `logs`: Prints the stored energy events of a wallet.
//   - `balance`: Prints the token balance of an account.
func Run(ctx context.Context, deps Dependencies) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "greenchain",
		Description:           "Energy production ledger backed by an ERC-20 token contract.",
		Usage:                 "greenchain [command] [flags]",
		DefaultCommand:        "serve",
		Commands: []*cli.Command{
			serveCommand(deps),
			logsCommand(deps),
			balanceCommand(deps),
		},
	}

	return app.Run(ctx, os.Args)
}
