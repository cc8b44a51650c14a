package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigsAreValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("default runner config should validate: %v", err)
	}
	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("default snake config should validate: %v", err)
	}
}

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var runner RunnerConfig
	if err := yaml.Unmarshal(GetDefaultYAML("runner"), &runner); err != nil {
		t.Fatalf("embedded runner yaml should parse: %v", err)
	}
	if err := runner.Validate(); err != nil {
		t.Fatalf("embedded runner yaml should validate: %v", err)
	}
	if runner.Physics.BaseSpeed != DefaultRunnerConfig().Physics.BaseSpeed {
		t.Errorf("embedded base_speed %v differs from code default %v",
			runner.Physics.BaseSpeed, DefaultRunnerConfig().Physics.BaseSpeed)
	}
	if len(runner.Obstacles) != len(DefaultRunnerConfig().Obstacles) {
		t.Errorf("embedded obstacle count %d differs from code default %d",
			len(runner.Obstacles), len(DefaultRunnerConfig().Obstacles))
	}

	var snake SnakeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("snake"), &snake); err != nil {
		t.Fatalf("embedded snake yaml should parse: %v", err)
	}
	if err := snake.Validate(); err != nil {
		t.Fatalf("embedded snake yaml should validate: %v", err)
	}
	if !snake.Wraparound {
		t.Error("embedded snake default should enable wraparound")
	}

	if GetDefaultYAML("nope") != nil {
		t.Error("unknown game ID should have no default yaml")
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	if err := os.WriteFile(path, GetDefaultYAML("runner"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if len(cfg.Obstacles) == 0 {
		t.Error("loaded config should carry obstacle types")
	}

	// Missing custom path is an error, not a silent fallback
	if _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	// Malformed custom file is a startup error
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not a map]"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(bad); err == nil {
		t.Error("malformed config should fail to load")
	}
}

func TestRunnerValidationRejectsContradictions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero gravity", func(c *RunnerConfig) { c.Physics.Gravity = 0 }},
		{"upward gravity jump", func(c *RunnerConfig) { c.Physics.JumpImpulse = 1 }},
		{"max below base speed", func(c *RunnerConfig) { c.Physics.MaxSpeed = c.Physics.BaseSpeed - 0.1 }},
		{"no obstacle types", func(c *RunnerConfig) { c.Obstacles = nil }},
		{"zero duplicate cap", func(c *RunnerConfig) { c.Spawner.MaxDuplication = 0 }},
		{"zero retry budget", func(c *RunnerConfig) { c.Spawner.MaxAttempts = 0 }},
		{"duplicate type name", func(c *RunnerConfig) {
			c.Obstacles = append(c.Obstacles, c.Obstacles[0])
		}},
		{"box outside outline", func(c *RunnerConfig) {
			c.Obstacles[0].Boxes = []BoxDef{{X: 0, Y: 0, W: c.Obstacles[0].Width + 1, H: 1}}
		}},
		{"no type usable at base speed", func(c *RunnerConfig) {
			for i := range c.Obstacles {
				c.Obstacles[i].MinSpeed = c.Physics.MaxSpeed + 1
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSnakeValidation(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.MoveEveryTicks = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero move interval should fail validation")
	}

	cfg = DefaultSnakeConfig()
	cfg.Grid = SnakeGrid{Width: 3, Height: 3}
	if err := cfg.Validate(); err == nil {
		t.Error("tiny explicit grid should fail validation")
	}

	cfg = DefaultSnakeConfig()
	cfg.MinMoveTicks = cfg.MoveEveryTicks + 1
	if err := cfg.Validate(); err == nil {
		t.Error("min interval above base interval should fail validation")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	base := DefaultRunnerConfig()

	fixed := DefaultRunnerConfig()
	ApplyRunnerPreset(&fixed, DifficultyFixed)
	if fixed.Physics.Acceleration != 0 {
		t.Error("fixed preset should disable the speed ramp")
	}
	if fixed.Physics.MaxSpeed != fixed.Physics.BaseSpeed {
		t.Error("fixed preset should pin max speed to base speed")
	}
	if err := fixed.Validate(); err != nil {
		t.Errorf("fixed preset should stay valid: %v", err)
	}

	hard := DefaultRunnerConfig()
	ApplyRunnerPreset(&hard, DifficultyHard)
	if hard.Physics.BaseSpeed <= base.Physics.BaseSpeed {
		t.Error("hard preset should raise base speed")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	easy := DefaultRunnerConfig()
	ApplyRunnerPreset(&easy, DifficultyEasy)
	if easy.Physics.Acceleration >= base.Physics.Acceleration {
		t.Error("easy preset should slow the ramp")
	}
}

func TestApplySnakePreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyHard)
	if cfg.MoveEveryTicks < cfg.MinMoveTicks {
		t.Error("hard preset must not drop below the minimum step interval")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	cfg = DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyFixed)
	if cfg.SpeedUpEvery != 0 {
		t.Error("fixed preset should disable speedups")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("easy should parse")
	}
	if ParsePreset("bogus") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
