package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pixel-snake/internal/snake"
)

// FileName is the configuration file looked up in the search path.
const FileName = "firmware.yaml"

// Load loads the firmware configuration.
// Search order: customPath -> ~/.pixelsnake/firmware.yaml -> ./configs/firmware.yaml -> embedded default
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFirmwareYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pixelsnake", filename)
}

// Validate checks that the configuration describes a playable board.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	s := c.Screen

	if s.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("config: cell_size must be positive, got %d", s.CellSize))
	} else {
		if s.Width <= 0 || s.Width%(2*s.CellSize) != 0 {
			errs = append(errs, fmt.Errorf("config: width %d must be a positive multiple of twice the cell size", s.Width))
		}
		if s.Height <= 0 || s.Height%(2*s.CellSize) != 0 {
			errs = append(errs, fmt.Errorf("config: height %d must be a positive multiple of twice the cell size", s.Height))
		}
		if n := c.Snake.InitialLength; n < 1 || n > snake.MaxLength {
			errs = append(errs, fmt.Errorf("config: initial_length %d must be in [1, %d]", n, snake.MaxLength))
		} else if s.Width > 0 && (n-1)*s.CellSize > s.Width/2 {
			errs = append(errs, fmt.Errorf("config: initial_length %d does not fit left of the screen center", n))
		}
	}

	if c.Timer.ClockHz == 0 {
		errs = append(errs, errors.New("config: timer clock_hz must be positive"))
	}
	if c.Timer.Interval <= 0 {
		errs = append(errs, fmt.Errorf("config: timer interval must be positive, got %s", c.Timer.Interval))
	} else if c.Timer.ClockHz != 0 && c.TimerPeriod() == 0 {
		errs = append(errs, fmt.Errorf("config: timer interval %s is shorter than one clock tick", c.Timer.Interval))
	}
	if c.Timer.TickDivider < 1 {
		errs = append(errs, fmt.Errorf("config: tick_divider must be at least 1, got %d", c.Timer.TickDivider))
	}
	if _, err := snake.ParseApplePolicy(c.Apple.Policy); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if c.Input.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("config: poll_interval must be positive, got %s", c.Input.PollInterval))
	}

	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func Marshal(c Config) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
