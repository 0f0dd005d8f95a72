// Package config provides YAML-based firmware configuration loading with
// embedded defaults.
package config

import (
	"time"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/hal"
	"github.com/vovakirdan/pixel-snake/internal/snake"
)

// Config is the complete firmware configuration.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Snake   SnakeConfig   `yaml:"snake"`
	Timer   TimerConfig   `yaml:"timer"`
	RNG     RNGConfig     `yaml:"rng"`
	Apple   AppleConfig   `yaml:"apple"`
	Palette PaletteConfig `yaml:"palette"`
	Input   InputConfig   `yaml:"input"`
}

// ScreenConfig describes the pixel surface and grid.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SnakeConfig defines the body parameters.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// TimerConfig defines the interrupt source and tick rate.
type TimerConfig struct {
	ClockHz     uint32        `yaml:"clock_hz"`
	Interval    time.Duration `yaml:"interval"`     // Time between interrupts
	TickDivider int           `yaml:"tick_divider"` // Interrupts per game tick
}

// RNGConfig defines the apple generator.
type RNGConfig struct {
	Seed uint32 `yaml:"seed"`
}

// AppleConfig selects the apple overlap policy.
type AppleConfig struct {
	Policy string `yaml:"policy"` // "allow_overlap" or "retry_until_free"
}

// PaletteConfig holds RGB332 color bytes.
type PaletteConfig struct {
	Background uint8 `yaml:"background"`
	Snake      uint8 `yaml:"snake"`
	Apple      uint8 `yaml:"apple"`
	GameOver   uint8 `yaml:"game_over"`
}

// InputConfig defines the polling loop.
type InputConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

// Geometry returns the screen section as a core.Geometry.
func (c Config) Geometry() core.Geometry {
	return core.Geometry{
		ScreenW:  c.Screen.Width,
		ScreenH:  c.Screen.Height,
		CellSize: c.Screen.CellSize,
	}
}

// TimerPeriod returns the timer period register value.
func (c Config) TimerPeriod() uint32 {
	return hal.PeriodTicks(c.Timer.ClockHz, c.Timer.Interval)
}

// TickInterval returns the wall time between game ticks.
func (c Config) TickInterval() time.Duration {
	return c.Timer.Interval * time.Duration(c.Timer.TickDivider)
}

// SnakeOptions converts the config into session options.
// Call Validate first; an unknown apple policy falls back to allow_overlap.
func (c Config) SnakeOptions() snake.Options {
	policy, err := snake.ParseApplePolicy(c.Apple.Policy)
	if err != nil {
		policy = snake.AppleAllowOverlap
	}
	return snake.Options{
		Geometry:      c.Geometry(),
		InitialLength: c.Snake.InitialLength,
		Palette: snake.Palette{
			Background: core.Color(c.Palette.Background),
			Snake:      core.Color(c.Palette.Snake),
			Apple:      core.Color(c.Palette.Apple),
			GameOver:   core.Color(c.Palette.GameOver),
		},
		Seed:        c.RNG.Seed,
		ApplePolicy: policy,
	}
}
