package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cosmic-missions/config"
	"github.com/cosmic-missions/database"
	"github.com/cosmic-missions/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	dbURL      string
)

var rootCmd = &cobra.Command{
	Use:   "cosmic-missions",
	Short: "Scientists, planets and the missions between them over HTTP",
	Long: `cosmic-missions serves a small JSON API for scientists, planets and
missions backed by postgres or sqlite.

Without a subcommand it runs the HTTP server.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database URL (overrides config and DATABASE_URL)")
}

// loadConfig resolves configuration and builds the application logger.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, err
	}
	if dbURL != "" {
		cfg.Database.URL = dbURL
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
	})
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// openDatabase connects and migrates the configured database.
func openDatabase(cfg config.Config, logger *slog.Logger) (*database.DBConnection, error) {
	conn, err := database.Connect("primary", cfg.Database.URL, logger)
	if err != nil {
		return nil, err
	}
	if err := conn.Migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}
