package cli

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jazzy1902/Monad-BlockHackers/internal/energylog"

	"github.com/urfave/cli/v3"
)

// logsCommand returns a CLI command that prints the stored energy events of
// a wallet, newest first, as JSON.
//
// Usage example:
//
//	greenchain logs --wallet 0xABC123... --limit 20
func logsCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "logs",
		Description: "Print the stored energy events of a wallet, newest first.",
		Usage:       "Lists energy events. Must provide the wallet address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "wallet",
				Usage:    "Wallet address whose events are listed",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "skip",
				Usage: "Number of newest events to skip",
				Value: 0,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of events to print",
				Value: 100,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logs, err := deps.EnergyLogs(ctx)
			if err != nil {
				return err
			}

			records, err := logs.ListByWallet(ctx, c.String("wallet"), c.Int("skip"), c.Int("limit"))
			if err != nil {
				return err
			}

			return printJSON(c, newLogsOutput(c.String("wallet"), records))
		},
	}
}

type logEntry struct {
	ID              uint64    `json:"id"`
	DeviceID        *string   `json:"device_id"`
	Units           float64   `json:"units"`
	DeviceTimestamp *string   `json:"device_timestamp"`
	ReceivedAt      time.Time `json:"received_at"`
}

type logsOutput struct {
	Wallet string     `json:"wallet"`
	Count  int        `json:"count"`
	Logs   []logEntry `json:"logs"`
}

// newLogsOutput renders records in the shape served by GET /api/getEnergyLogs.
func newLogsOutput(wallet string, records []energylog.LogRecord) logsOutput {
	out := logsOutput{
		Wallet: energylog.NormalizeWallet(wallet),
		Count:  len(records),
		Logs:   make([]logEntry, 0, len(records)),
	}
	for _, record := range records {
		out.Logs = append(out.Logs, logEntry{
			ID:              record.ID,
			DeviceID:        record.DeviceID,
			Units:           record.Units,
			DeviceTimestamp: record.DeviceTimestamp,
			ReceivedAt:      record.ReceivedAt,
		})
	}

	return out
}

type balanceOutput struct {
	Account string `json:"account"`
	Raw     string `json:"balance_raw"`
	Tokens  string `json:"balance_tokens"`
}

// balanceCommand returns a CLI command that prints the token balance of an
// account.
//
// Usage example:
//
//	greenchain balance --account 0xABC123...
func balanceCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Print the token balance of an account.",
		Usage:       "Reads balanceOf from the token contract. Must provide the account address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "account",
				Usage:    "Account address to query",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			lg, err := deps.Ledger(ctx)
			if err != nil {
				return err
			}

			account := c.String("account")
			amount, err := lg.Balance(ctx, account)
			if err != nil {
				return err
			}

			return printJSON(c, balanceOutput{
				Account: account,
				Raw:     amount.Raw.String(),
				Tokens:  amount.Tokens.String(),
			})
		},
	}
}

func printJSON(c *cli.Command, v any) error {
	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
