package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "match3.yaml"

// Load loads the match-3 configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml -> ./configs/match3.yaml -> embedded default.
// Values missing from a file keep their defaults. A custom path that cannot be
// read, parsed or validated is an error; the other locations are skipped.
func Load(customPath string) (Match3Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultMatch3Config(), err
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultMatch3YAML)
	if err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile(path string) (Match3Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Match3Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Match3Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
func Parse(data []byte) (Match3Config, error) {
	cfg := DefaultMatch3Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Match3Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate reports every setting the game cannot run with.
func (c Match3Config) Validate() error {
	var errs []error
	if c.Board.Width < 3 || c.Board.Height < 3 {
		errs = append(errs, fmt.Errorf("board must be at least 3x3, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Board.PowerChance < 0 || c.Board.PowerChance > 1 {
		errs = append(errs, fmt.Errorf("power_chance %v outside [0,1]", c.Board.PowerChance))
	}
	if c.Scoring.BaseScore < 0 || c.Scoring.PowerScore < 0 || c.Scoring.TimeBonusSecs < 0 {
		errs = append(errs, errors.New("scores and time bonus must not be negative"))
	}
	if c.Scoring.BaseGoal <= 0 {
		errs = append(errs, fmt.Errorf("base_goal must be positive, got %d", c.Scoring.BaseGoal))
	}
	if c.Scoring.GoalScale < 1 {
		errs = append(errs, fmt.Errorf("goal_scale must be at least 1, got %v", c.Scoring.GoalScale))
	}
	if c.Timer.MaxSecs <= 0 {
		errs = append(errs, fmt.Errorf("max_secs must be positive, got %d", c.Timer.MaxSecs))
	}
	if c.Timer.LowTimeSecs < 0 {
		errs = append(errs, fmt.Errorf("low_time_secs must not be negative, got %d", c.Timer.LowTimeSecs))
	}
	a := c.Animation
	for name, ms := range map[string]int{
		"swap_ms": a.SwapMs, "fall_ms": a.FallMs, "refill_ms": a.RefillMs,
		"flash_ms": a.FlashMs, "hint_ms": a.HintMs, "fade_ms": a.FadeMs,
		"label_slide_ms": a.LabelSlideMs, "label_hold_ms": a.LabelHoldMs,
		"title_color_ms": a.TitleColorMs, "start_fade_ms": a.StartFadeMs,
	} {
		if ms < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, ms))
		}
	}
	if a.AutoSwapMs <= 0 {
		errs = append(errs, fmt.Errorf("auto_swap_ms must be positive, got %d", a.AutoSwapMs))
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "level":
	default:
		errs = append(errs, fmt.Errorf("unknown progression type %q", c.Difficulty.Progression.Type))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}
