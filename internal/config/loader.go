package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration and validates it.
// Search order: customPath -> ~/.runcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	var cfg RunnerConfig
	if err := loadYAML("runner.yaml", customPath, defaultRunnerYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("runner config: %w", err)
	}
	return cfg, nil
}

// LoadSnake loads the snake configuration and validates it.
// Search order: customPath -> ~/.runcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig
	if err := loadYAML("snake.yaml", customPath, defaultSnakeYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("snake config: %w", err)
	}
	return cfg, nil
}

// loadYAML resolves the config search order shared by all games.
func loadYAML(filename, customPath string, embedded []byte, out any) error {
	// A custom path is authoritative: failures there are reported, not skipped.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Fall back to the embedded default
	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("embedded default %s is invalid: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runcade", "configs", filename)
}

// Validate checks the runner configuration for contradictions that would
// otherwise surface as runtime misbehavior (or a spawner that can never
// produce a valid obstacle).
func (c RunnerConfig) Validate() error {
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("physics.jump_impulse must be negative (up), got %v", c.Physics.JumpImpulse)
	}
	if c.Physics.BaseSpeed <= 0 {
		return fmt.Errorf("physics.base_speed must be positive, got %v", c.Physics.BaseSpeed)
	}
	if c.Physics.MaxSpeed < c.Physics.BaseSpeed {
		return fmt.Errorf("physics.max_speed %v below base_speed %v", c.Physics.MaxSpeed, c.Physics.BaseSpeed)
	}
	if c.Physics.Acceleration < 0 {
		return fmt.Errorf("physics.acceleration must not be negative, got %v", c.Physics.Acceleration)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player dimensions must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	}
	if c.Player.DuckHeight <= 0 || c.Player.DuckHeight > c.Player.Height {
		return fmt.Errorf("player.duck_height must be in [1, height], got %d", c.Player.DuckHeight)
	}
	if c.Spawner.GapCoefficient <= 0 {
		return fmt.Errorf("spawner.gap_coefficient must be positive, got %v", c.Spawner.GapCoefficient)
	}
	if c.Spawner.MaxDuplication < 1 {
		return fmt.Errorf("spawner.max_duplication must be at least 1, got %d", c.Spawner.MaxDuplication)
	}
	if c.Spawner.MaxAttempts < 1 {
		return fmt.Errorf("spawner.max_attempts must be at least 1, got %d", c.Spawner.MaxAttempts)
	}
	if c.Spawner.MaxActive < 1 {
		return fmt.Errorf("spawner.max_active must be at least 1, got %d", c.Spawner.MaxActive)
	}
	if len(c.Obstacles) == 0 {
		return fmt.Errorf("at least one obstacle type is required")
	}

	seen := make(map[string]bool, len(c.Obstacles))
	usableAtBase := false
	for i, o := range c.Obstacles {
		if o.Name == "" {
			return fmt.Errorf("obstacle %d has no name", i)
		}
		if seen[o.Name] {
			return fmt.Errorf("duplicate obstacle type %q", o.Name)
		}
		seen[o.Name] = true
		if o.Width <= 0 || o.Height <= 0 {
			return fmt.Errorf("obstacle %q dimensions must be positive, got %dx%d", o.Name, o.Width, o.Height)
		}
		if o.MinGap <= 0 {
			return fmt.Errorf("obstacle %q min_gap must be positive, got %d", o.Name, o.MinGap)
		}
		for j, b := range o.Boxes {
			if b.W <= 0 || b.H <= 0 {
				return fmt.Errorf("obstacle %q box %d has non-positive size", o.Name, j)
			}
			if b.X < 0 || b.Y < 0 || b.X+b.W > o.Width || b.Y+b.H > o.Height {
				return fmt.Errorf("obstacle %q box %d exceeds the %dx%d outline", o.Name, j, o.Width, o.Height)
			}
		}
		if !o.Collectible && o.MinSpeed <= c.Physics.BaseSpeed {
			usableAtBase = true
		}
	}
	// Without this the spawner could exhaust its retry budget forever.
	if !usableAtBase {
		return fmt.Errorf("no non-collectible obstacle type is usable at base speed %v", c.Physics.BaseSpeed)
	}
	if c.AchievementEvery < 0 {
		return fmt.Errorf("achievement_every must not be negative, got %d", c.AchievementEvery)
	}
	return nil
}

// Validate checks the snake configuration.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("grid dimensions must not be negative, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if (c.Grid.Width > 0 && c.Grid.Width < 5) || (c.Grid.Height > 0 && c.Grid.Height < 5) {
		return fmt.Errorf("explicit grid must be at least 5x5, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.MoveEveryTicks < 1 {
		return fmt.Errorf("move_every_ticks must be at least 1, got %d", c.MoveEveryTicks)
	}
	if c.MinMoveTicks < 1 || c.MinMoveTicks > c.MoveEveryTicks {
		return fmt.Errorf("min_move_ticks must be in [1, move_every_ticks], got %d", c.MinMoveTicks)
	}
	if c.SpeedUpEvery < 0 {
		return fmt.Errorf("speed_up_every must not be negative, got %d", c.SpeedUpEvery)
	}
	if c.SpawnAttempts < 1 {
		return fmt.Errorf("spawn_attempts must be at least 1, got %d", c.SpawnAttempts)
	}
	if c.StartLength < 1 {
		return fmt.Errorf("start_length must be at least 1, got %d", c.StartLength)
	}
	return nil
}
