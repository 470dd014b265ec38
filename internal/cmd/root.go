package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MNThomson/datadog-cli/internal/api"
	"github.com/MNThomson/datadog-cli/internal/logging"
	"github.com/MNThomson/datadog-cli/internal/output"
)

var (
	cfgFile   string
	outputFmt string
	site      string
	verbose   bool
	noColor   bool
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "datadog",
	Short: "Datadog — query logs and events from your terminal",
	Long: `Datadog is a command-line client for the Datadog search APIs.
It translates search queries and time-range shorthand into API requests,
pages through the results, and prints each entry to your terminal.

Credentials come from the DD_API_KEY and DD_APP_KEY environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.datadog.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format: text, json")
	rootCmd.PersistentFlags().StringVar(&site, "site", "", "Datadog site domain (default: datadoghq.com, env: DD_SITE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log request details to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized output")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".datadog")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("site", api.DefaultSite)
	_ = viper.BindEnv("site", "DD_SITE")

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	// The flag wins over config file and environment.
	if site != "" {
		viper.Set("site", site)
	}
}

// newAPIClient builds a client from the environment and configured site.
func newAPIClient() (*api.Client, error) {
	return api.NewClientFromEnv(viper.GetString("site"), logging.New(verbose))
}

// newRenderer picks the renderer for the --output flag.
func newRenderer() (output.Renderer, error) {
	switch strings.ToLower(outputFmt) {
	case "", "text":
		return output.NewTextRenderer(os.Stdout, !noColor), nil
	case "json":
		return output.NewJSONRenderer(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or json)", outputFmt)
	}
}
