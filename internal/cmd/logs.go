package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MNThomson/datadog-cli/internal/api"
	"github.com/MNThomson/datadog-cli/internal/model"
	"github.com/MNThomson/datadog-cli/internal/timeexpr"
)

var (
	logsFrom  string
	logsTo    string
	logsLimit int
)

var logsCmd = &cobra.Command{
	Use:   "logs <query>",
	Short: "Search Datadog logs",
	Long: `Search logs using Datadog query syntax and print matching entries.

Time ranges accept relative expressions (now, now-15m, now-30d), epoch
milliseconds, or RFC 3339 timestamps. Entries stream to the terminal page
by page as the API returns them.

Examples:
  datadog logs "service:payments status:error"
  datadog logs "env:prod" --from now-2h --limit 500
  datadog logs "*" --from now-7d --to now-1d --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().StringVar(&logsFrom, "from", "now-15m", "start of the time range")
	logsCmd.Flags().StringVar(&logsTo, "to", "now", "end of the time range")
	logsCmd.Flags().IntVar(&logsLimit, "limit", 100, "maximum entries to retrieve (0 = no limit)")

	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return searchLogs(ctx, args[0], logsFrom, logsTo, logsLimit)
}

// searchLogs resolves the time range, runs the paginated search, and
// renders each page as it arrives. Shared with the open command.
func searchLogs(ctx context.Context, query, fromExpr, toExpr string, limit int) error {
	now := time.Now()

	from, err := timeexpr.Resolve(fromExpr, now)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	to, err := timeexpr.Resolve(toExpr, now)
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}

	renderer, err := newRenderer()
	if err != nil {
		return err
	}
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	q := api.LogsQuery{Query: query, From: from, To: to, Limit: limit}
	total, err := client.SearchLogs(ctx, q, func(page []model.LogEntry) error {
		for _, entry := range page {
			if err := renderer.RenderLog(entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if total == 0 {
		fmt.Printf("No logs found for query: %s\n", query)
	}
	return nil
}
