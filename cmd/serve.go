package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"dootrec/internal/autotag"
	"dootrec/internal/data/fixture"
	"dootrec/internal/data/repository"
	"dootrec/internal/wire"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the site and JSON API. SIGINT or SIGTERM shuts the server down gracefully.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("viewer_id", config.Viewer.ID),
	)

	data := fixture.Default()
	repos := repository.NewRepository(data, logger)
	logger.Info("Catalogue loaded",
		zap.Int("users", len(data.Users)),
		zap.Int("reviews", len(data.Reviews)),
		zap.Int("watchlist_items", len(data.Watchlist)),
	)

	tagger, err := autotag.New(ctx, taggerConfig(config), logger)
	if err != nil {
		return fmt.Errorf("failed to create genre tagger: %w", err)
	}

	app, err := wire.Wiring(repos, tagger, config, logger)
	if err != nil {
		return fmt.Errorf("failed to wire application: %w", err)
	}
	defer app.Close()

	shutdownTimeout := time.Duration(config.Shutdown.TimeoutSeconds) * time.Second
	return APIServer(ctx, app.Router, config.App.Port, shutdownTimeout, logger)
}
