package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledUsesInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultMatch3Config().Difficulty)

	if d.IsEnabled() {
		t.Error("default difficulty should be disabled")
	}
	for _, level := range []int{1, 5, 50} {
		if got := d.MaxTime(60, level); got != 60 {
			t.Errorf("MaxTime(60, %d) = %d, expected 60", level, got)
		}
		if got := d.PowerChance(0.05, level); got != 0.05 {
			t.Errorf("PowerChance(0.05, %d) = %v, expected 0.05", level, got)
		}
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 5},
		Scaling:      ScalingConfig{TimeReductionSecs: 20, PowerChanceReduction: 0.04},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		gameLevel int
		expected  float64
	}{
		{1, 0.0},
		{3, 0.5},
		{5, 1.0},
		{9, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.gameLevel); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.gameLevel, got, tc.expected)
		}
	}

	if got := d.MaxTime(60, 3); got != 50 {
		t.Errorf("MaxTime(60, 3) = %d, expected 50", got)
	}
	if got := d.MaxTime(60, 5); got != 40 {
		t.Errorf("MaxTime(60, 5) = %d, expected 40", got)
	}
	if got := d.MaxTime(15, 5); got != 10 {
		t.Errorf("MaxTime(15, 5) = %d, expected the 10 second floor", got)
	}
	if got := d.PowerChance(0.02, 5); got != 0 {
		t.Errorf("PowerChance(0.02, 5) = %v, expected 0", got)
	}
}
