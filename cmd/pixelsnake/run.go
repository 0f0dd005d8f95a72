package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-snake/internal/registry"
)

var (
	flagFrontend string
	flagDuration time.Duration
	flagScript   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Boot the firmware in a frontend",
	Long: `Boot the firmware on a simulated board and hand it to a frontend.

The default frontend is "tui" when stdout is a terminal and "headless"
otherwise.

TUI controls:
  Space/Enter  - Press the button (starts a game, or turns by switch 0)
  Left/L       - Set switch 0 and press: turn left
  Right/R      - Clear switch 0 and press: turn right
  0-9          - Toggle a slide switch
  Q/Ctrl+C     - Quit

Headless scripts are comma-separated steps:
  start, press   - Press the button
  left, right    - Set switch 0 for the turn and press
  tick[:n]       - Advance n game ticks (default 1)
  until-over     - Tick until the game ends

Examples:
  pixelsnake run
  pixelsnake run --frontend tui --duration 2m
  pixelsnake run --frontend headless --seed 7 --script start,tick:12,left,tick:4`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagFrontend, "frontend", "", "Frontend to use (default: tui on a terminal, else headless)")
	runCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Stop after this long (0 = until quit)")
	runCmd.Flags().StringVar(&flagScript, "script", "", "Headless step script")
}

func runRun(cmd *cobra.Command, args []string) error {
	name := flagFrontend
	if name == "" {
		name = defaultFrontend()
	}
	if !registry.Exists(name) {
		return fmt.Errorf("unknown frontend %q (run 'pixelsnake frontends' to see available ones)", name)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(name == "tui")
	if err != nil {
		return err
	}
	defer closeLog()

	frontend, err := registry.Create(name)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flagDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagDuration)
		defer cancel()
	}

	env := registry.Env{
		Config: cfg,
		Logger: logger,
		Args:   map[string]string{"script": flagScript},
	}

	logger.Debug("starting frontend", "frontend", name, "seed", cfg.RNG.Seed)
	return frontend.Run(ctx, env)
}

// defaultFrontend picks the terminal UI only when there is a terminal.
func defaultFrontend() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "tui"
	}
	return "headless"
}
