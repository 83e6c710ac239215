// Package cmd is the dootrec command line: serving the site and running the
// genre auto-tag flow by hand.
package cmd

import (
	"fmt"
	"os"
	"time"

	"dootrec/internal/autotag"
	"dootrec/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	port       string

	config *utils.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dootrec",
	Short: "DootRec - movie and show review discovery",
	Long: `DootRec serves a review discovery site: home feed carousels, search,
genres, profiles, a community directory, a watchlist and a review form with
AI genre suggestions. All content is static fixture data.

Run without arguments to start the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = utils.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if port != "" {
			config.App.Port = port
		}

		logger, err = utils.InitLogger(config.App.LogPath, config.App.Debug)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the env config file (default: .env)")
	rootCmd.PersistentFlags().StringVarP(&port, "port", "p", "", "HTTP port, overrides PORT")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(suggestCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func taggerConfig(cfg *utils.Config) autotag.Config {
	return autotag.Config{
		APIKey:  cfg.AutoTag.APIKey,
		Model:   cfg.AutoTag.Model,
		Timeout: time.Duration(cfg.AutoTag.TimeoutSeconds) * time.Second,
	}
}
