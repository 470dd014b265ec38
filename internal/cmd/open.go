package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MNThomson/datadog-cli/internal/ddurl"
)

var openCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Run the search behind a Datadog web URL",
	Long: `Translate a browser URL copied from the Datadog app into the
equivalent API search and print the results.

Supported pages: /logs and /event/explorer.

Examples:
  datadog open "https://app.datadoghq.com/logs?query=service%3Apayments"
  datadog open "https://app.datadoghq.com/event/explorer?query=source%3Agithub"`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	res, err := ddurl.Parse(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if res.Kind == ddurl.KindEvents {
		return searchEvents(ctx, res.Query, res.From, res.To, res.Limit)
	}
	return searchLogs(ctx, res.Query, res.From, res.To, res.Limit)
}
