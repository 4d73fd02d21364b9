package config

import "math"

// DifficultyManager calculates per-level game parameters.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type == "level"
}

// Level returns the difficulty (0.0 to 1.0) for a game level, counted from 1.
func (d *DifficultyManager) Level(gameLevel int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 1 {
		return 1.0
	}

	// Clamp progress to [0, 1]
	progress := clampF(float64(gameLevel-1)/(maxAt-1), 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MaxTime returns the countdown length in seconds for a game level.
func (d *DifficultyManager) MaxTime(baseSecs int, gameLevel int) int {
	level := d.Level(gameLevel)
	reduction := int(math.Round(level * float64(d.cfg.Scaling.TimeReductionSecs)))
	result := baseSecs - reduction
	if result < 10 { // Minimum playable countdown
		result = 10
	}
	if result > baseSecs {
		result = baseSecs
	}
	return result
}

// PowerChance returns the power tile probability for a game level.
func (d *DifficultyManager) PowerChance(base float64, gameLevel int) float64 {
	level := d.Level(gameLevel)
	return clampF(base-level*d.cfg.Scaling.PowerChanceReduction, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
