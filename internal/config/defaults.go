package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: Match3Board{
			Width:       8,
			Height:      8,
			PowerChance: 0.05,
		},
		Scoring: Match3Scoring{
			BaseScore:     5,
			PowerScore:    25,
			TimeBonusSecs: 1,
			BaseGoal:      250,
			GoalScale:     1.25,
		},
		Timer: Match3Timer{
			MaxSecs:     60,
			LowTimeSecs: 5,
		},
		Animation: Match3Animation{
			SwapMs:           200,
			FallMs:           250,
			RefillMs:         100,
			FlashMs:          80,
			FlashCount:       4,
			HintMs:           1500,
			FadeMs:           1000,
			LabelSlideMs:     500,
			LabelHoldMs:      1250,
			AutoSwapMs:       300,
			TitleColorMs:     500,
			StartFadeMs:      1000,
			SequentialRefill: true,
		},
		Rules: Match3Rules{
			RevertUnproductive: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				TimeReductionSecs:    20,
				PowerChanceReduction: 0.03,
			},
		},
	}
}
