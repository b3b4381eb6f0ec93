package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ev-tools/charge-atlas/pkg/observability/metrics"
	"github.com/ev-tools/charge-atlas/pkg/server"
	"github.com/ev-tools/charge-atlas/pkg/services/config"
	"github.com/ev-tools/charge-atlas/pkg/services/dataset"
	"github.com/ev-tools/charge-atlas/pkg/services/ingest"
	"github.com/ev-tools/charge-atlas/pkg/services/session"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Charge Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "charge-atlas.yaml",
		"Path to the configuration profile")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	metrics.Init()

	// A failed load is not fatal: the server starts in the "no dataset"
	// state and serves zero KPIs until an upload succeeds.
	ds := dataset.Empty()
	var stats ingest.Stats
	start := time.Now()
	sessions, stats, err := ingest.LoadFirst(cfg.DataPaths...)
	if err != nil {
		metrics.ObserveLoad(metrics.ResultError, time.Since(start))
		logger.Warn().Err(err).Msg("no dataset loaded, starting empty")
	} else {
		metrics.ObserveLoad(metrics.ResultSuccess, time.Since(start))
		ds = dataset.New(sessions)
		logger.Info().
			Int("rows", stats.Rows).
			Int("bad_timestamps", stats.BadTimestamps).
			Int("bad_durations", stats.BadDurations).
			Msg("dataset loaded")
	}

	manager := session.NewManager()
	defaultSession := manager.Create(ds, stats)
	logger.Info().Str("session", defaultSession.ID).Msg("default session ready")

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: cfg.Addr,
		Dependencies: server.Dependencies{
			Sessions:         manager,
			DefaultSessionID: defaultSession.ID,
		},
	})

	return api.Start()
}
