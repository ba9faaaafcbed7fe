// Package cli implements the command-line interface for minicube.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/minicube/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	appConfig = config.Default()
	logger    = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "minicube",
	Short: "Corner-only cube simulator",
	Long: `minicube - simulate the 8 corners of a 3x3 cube.

Apply move sequences in standard notation (R, U', F2), check whether the
corners are solved, replay the scramble/solve demo, and keep a local history
of runs.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.minicube/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "History database path (default: ~/.minicube/history.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads the config file and builds the logger. Flags win over the file.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	appConfig = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration loaded", "path", path, "db", cfg.DBPath, "record_history", cfg.RecordHistory)

	return nil
}
