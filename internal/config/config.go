// Package config provides YAML-based configuration loading and difficulty
// management for the match-3 game.
package config

import "time"

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board      Match3Board      `yaml:"board"`
	Scoring    Match3Scoring    `yaml:"scoring"`
	Timer      Match3Timer      `yaml:"timer"`
	Animation  Match3Animation  `yaml:"animation"`
	Rules      Match3Rules      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Match3Board defines the grid and tile generation.
type Match3Board struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	PowerChance float64 `yaml:"power_chance"` // Probability that a new tile is a power tile
}

// Match3Scoring defines points, time bonuses and level goals.
type Match3Scoring struct {
	BaseScore     int     `yaml:"base_score"`      // Points per ordinary tile in a match
	PowerScore    int     `yaml:"power_score"`     // Points per power tile in a match
	TimeBonusSecs int     `yaml:"time_bonus_secs"` // Seconds added per matched tile
	BaseGoal      int     `yaml:"base_goal"`       // Goal of level 1
	GoalScale     float64 `yaml:"goal_scale"`      // goal = previous * floor(level * goal_scale)
}

// Match3Timer defines the level countdown.
type Match3Timer struct {
	MaxSecs     int `yaml:"max_secs"`
	LowTimeSecs int `yaml:"low_time_secs"` // Warning cue at or below this many seconds
}

// Match3Animation defines the pacing of animations, in milliseconds.
type Match3Animation struct {
	SwapMs           int  `yaml:"swap_ms"`
	FallMs           int  `yaml:"fall_ms"`
	RefillMs         int  `yaml:"refill_ms"`
	FlashMs          int  `yaml:"flash_ms"`
	FlashCount       int  `yaml:"flash_count"`
	HintMs           int  `yaml:"hint_ms"`
	FadeMs           int  `yaml:"fade_ms"`
	LabelSlideMs     int  `yaml:"label_slide_ms"`
	LabelHoldMs      int  `yaml:"label_hold_ms"`
	AutoSwapMs       int  `yaml:"auto_swap_ms"`
	TitleColorMs     int  `yaml:"title_color_ms"`
	StartFadeMs      int  `yaml:"start_fade_ms"`
	SequentialRefill bool `yaml:"sequential_refill"` // Refilled tiles enter one at a time
}

// Match3Rules defines swap policy.
type Match3Rules struct {
	// RevertUnproductive swaps tiles back when a swap makes no match.
	// When false every adjacent swap is kept.
	RevertUnproductive bool `yaml:"revert_unproductive"`
}

// Ms converts a millisecond setting to a duration.
func Ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines what changes at max difficulty.
type ScalingConfig struct {
	TimeReductionSecs    int     `yaml:"time_reduction_secs"`    // Countdown seconds removed at max difficulty
	PowerChanceReduction float64 `yaml:"power_chance_reduction"` // Power chance removed at max difficulty
}

// DifficultyPreset represents predefined difficulty settings.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values return "" and false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the starting difficulty level for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Match3Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "level"
	}

	switch preset {
	case DifficultyEasy:
		cfg.Timer.MaxSecs = 90
		cfg.Board.PowerChance = 0.08
	case DifficultyHard:
		cfg.Timer.MaxSecs = 45
		cfg.Board.PowerChance = 0.03
		cfg.Scoring.GoalScale = 1.5
	}
}
