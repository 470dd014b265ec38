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
	"github.com/MNThomson/datadog-cli/internal/timeexpr"
)

var (
	eventsFrom  string
	eventsTo    string
	eventsLimit int
)

var eventsCmd = &cobra.Command{
	Use:   "events <query>",
	Short: "Search Datadog events",
	Long: `Search the event stream (deploys, monitor transitions, custom events)
and print matching entries.

Examples:
  datadog events "source:github"
  datadog events "tags:team-platform" --from now-1d`,
	Args: cobra.ExactArgs(1),
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().StringVar(&eventsFrom, "from", "now-15m", "start of the time range")
	eventsCmd.Flags().StringVar(&eventsTo, "to", "now", "end of the time range")
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 100, "maximum entries to retrieve (0 = no limit)")

	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return searchEvents(ctx, args[0], eventsFrom, eventsTo, eventsLimit)
}

// searchEvents resolves the time range, runs the search, and renders the
// accumulated results. Shared with the open command.
func searchEvents(ctx context.Context, query, fromExpr, toExpr string, limit int) error {
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

	events, err := client.SearchEvents(ctx, api.EventsQuery{Query: query, From: from, To: to, Limit: limit})
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Printf("No events found for query: %s\n", query)
		return nil
	}

	for _, entry := range events {
		if err := renderer.RenderEvent(entry); err != nil {
			return err
		}
	}
	return nil
}
