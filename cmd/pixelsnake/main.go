// pixelsnake runs the snake firmware on a simulated board.
//
// Usage:
//
//	pixelsnake run              - Boot the firmware in a frontend
//	pixelsnake frontends        - List available frontends
//	pixelsnake apples           - Print the apple sequence for a seed
//	pixelsnake config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Firmware YAML (default: search path, then embedded)
//	--seed <value>      - Override the generator seed
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-snake/internal/config"

	// Import frontends to register them
	_ "github.com/vovakirdan/pixel-snake/internal/platform/headless"
	_ "github.com/vovakirdan/pixel-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     uint32
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelsnake",
	Short: "Pixel Snake - the snake firmware on a simulated board",
	Long: `Pixel Snake runs the snake game firmware against a simulated board:
a 320x240 framebuffer, a push button, ten slide switches, a periodic
timer and a seven-digit score display.

Available commands:
  run        - Boot the firmware in a frontend
  frontends  - List available frontends
  apples     - Print the deterministic apple sequence
  config     - Print the effective configuration

Examples:
  pixelsnake run
  pixelsnake run --frontend headless --script start,tick:30,left,until-over
  pixelsnake apples --count 10 --seed 42
  pixelsnake config > configs/firmware.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom firmware config YAML")
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "Generator seed (default: from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(applesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.RNG.Seed = flagSeed
	}
	return cfg, nil
}

// newLogger builds the process logger. When quiet is set and no log file
// was given, logs are discarded so they do not tear the terminal UI.
// The returned close function must be called on exit.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pixelsnake",
		Level:           level,
	})
	return logger, closeFn, nil
}
