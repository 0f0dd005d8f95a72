package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-snake/internal/snake"
)

var flagCount int

var applesCmd = &cobra.Command{
	Use:   "apples",
	Short: "Print the deterministic apple sequence",
	Long: `Prints where apples appear for the configured seed and screen, in order.
Each apple consumes two generator draws (x, then y). The sequence ignores
the snake body, which is exactly what the allow_overlap policy does.

Examples:
  pixelsnake apples
  pixelsnake apples --count 20 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runApples,
}

func init() {
	applesCmd.Flags().IntVar(&flagCount, "count", 10, "Number of apples to print")
}

func runApples(cmd *cobra.Command, args []string) error {
	if flagCount < 0 {
		return fmt.Errorf("--count must not be negative, got %d", flagCount)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	geom := cfg.Geometry()
	cell := geom.CellSize
	for i, p := range snake.AppleSequence(geom, cfg.RNG.Seed, flagCount) {
		fmt.Fprintf(out, "%4d  x=%-4d y=%-4d cell=(%d,%d)\n", i+1, p.X, p.Y, p.X/cell, p.Y/cell)
	}
	return nil
}
