package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMatch3Config()) {
		t.Errorf("embedded config = %+v\nexpected %+v", cfg, DefaultMatch3Config())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("timer:\n  max_secs: 30\nanimation:\n  sequential_refill: false\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Timer.MaxSecs != 30 {
		t.Errorf("MaxSecs = %d, expected 30", cfg.Timer.MaxSecs)
	}
	if cfg.Animation.SequentialRefill {
		t.Error("SequentialRefill should be overridden to false")
	}
	if cfg.Scoring.BaseGoal != 250 || cfg.Board.Width != 8 {
		t.Error("unspecified values should keep their defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Match3Config)
		wantErr string
	}{
		{"defaults are valid", func(*Match3Config) {}, ""},
		{"board too narrow", func(c *Match3Config) { c.Board.Width = 2 }, "at least 3x3"},
		{"power chance above one", func(c *Match3Config) { c.Board.PowerChance = 1.5 }, "power_chance"},
		{"zero countdown", func(c *Match3Config) { c.Timer.MaxSecs = 0 }, "max_secs"},
		{"zero goal", func(c *Match3Config) { c.Scoring.BaseGoal = 0 }, "base_goal"},
		{"shrinking goals", func(c *Match3Config) { c.Scoring.GoalScale = 0.5 }, "goal_scale"},
		{"negative animation", func(c *Match3Config) { c.Animation.FallMs = -1 }, "fall_ms"},
		{"zero auto swap", func(c *Match3Config) { c.Animation.AutoSwapMs = 0 }, "auto_swap_ms"},
		{"unknown progression", func(c *Match3Config) { c.Difficulty.Progression.Type = "score" }, "progression"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 6\n  height: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Board.Width != 6 || cfg.Board.Height != 7 {
		t.Errorf("board = %dx%d, expected 6x7", cfg.Board.Width, cfg.Board.Height)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [not, a, map]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("Load(bad) = %v, expected config: error", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timer:\n  max_secs: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error")
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".match3", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("scoring:\n  base_goal: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Scoring.BaseGoal != 100 {
		t.Errorf("BaseGoal = %d, expected 100 from user config", cfg.Scoring.BaseGoal)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMatch3Config()) {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultMatch3Config()
	cfg.Board.Width = 10
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		initial     float64
		maxSecs     int
		goalScale   float64
		progression string
	}{
		{DifficultyEasy, true, 0.0, 90, 1.25, "level"},
		{DifficultyNormal, true, 0.3, 60, 1.25, "level"},
		{DifficultyHard, true, 0.7, 45, 1.5, "level"},
		{DifficultyFixed, false, 0.0, 60, 1.25, "none"},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMatch3Config()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initial)
			}
			if cfg.Timer.MaxSecs != tc.maxSecs {
				t.Errorf("MaxSecs = %d, expected %d", cfg.Timer.MaxSecs, tc.maxSecs)
			}
			if cfg.Scoring.GoalScale != tc.goalScale {
				t.Errorf("GoalScale = %v, expected %v", cfg.Scoring.GoalScale, tc.goalScale)
			}
			if cfg.Difficulty.Progression.Type != tc.progression {
				t.Errorf("Progression = %q, expected %q", cfg.Difficulty.Progression.Type, tc.progression)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
}
