// Package cli defines the cobra command tree for hbnb.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/hbnb/internal/client"
	"github.com/evcraddock/hbnb/internal/config"
)

var (
	flagFormat  string
	flagConfig  string
	flagEnvFile string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hbnb",
		Short:         "Property rental catalog",
		Long:          "A property rental catalog. Serve the HTTP API for users, places, amenities and reviews, or browse a running server from the CLI.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.config/hbnb/config.yaml)")
	root.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "dotenv file with HBNB_* variables")

	root.AddCommand(
		newServeCmd(),
		newPlacesCmd(),
		newPlaceCmd(),
		newAmenitiesCmd(),
		newReviewsCmd(),
		newVersionCmd(),
	)

	return root
}

// loadConfig reads settings using the --config and --env-file flags.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig, flagEnvFile)
}

// newAPIClient creates an HTTP client for the configured server.
func newAPIClient() (*client.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return client.New(cfg.ServerURL), nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
