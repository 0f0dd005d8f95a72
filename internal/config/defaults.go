package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/pixel-snake/internal/hal"
	"github.com/vovakirdan/pixel-snake/internal/rng"
	"github.com/vovakirdan/pixel-snake/internal/scheduler"
	"github.com/vovakirdan/pixel-snake/internal/snake"
)

//go:embed defaults/firmware.yaml
var defaultFirmwareYAML []byte

// Default returns the built-in firmware configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:    320,
			Height:   240,
			CellSize: 8,
		},
		Snake: SnakeConfig{
			InitialLength: snake.DefaultInitialLength,
		},
		Timer: TimerConfig{
			ClockHz:     hal.DefaultClockHz,
			Interval:    50 * time.Millisecond,
			TickDivider: scheduler.DefaultDivider,
		},
		RNG: RNGConfig{
			Seed: rng.DefaultSeed,
		},
		Apple: AppleConfig{
			Policy: string(snake.AppleAllowOverlap),
		},
		Palette: PaletteConfig{
			Background: 0x10,
			Snake:      0x03,
			Apple:      0xE0,
			GameOver:   0x00,
		},
		Input: InputConfig{
			PollInterval: 5 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFirmwareYAML
}
