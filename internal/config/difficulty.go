package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings map to empty,
// which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy", "normal", "hard", "fixed":
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyRunnerPreset adjusts the runner config for a difficulty preset.
// The runner's difficulty is its intrinsic speed ramp, so presets scale the
// ramp rather than drive a separate progression curve.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Acceleration *= 0.5
		cfg.Spawner.GapCoefficient *= 1.2
	case DifficultyHard:
		cfg.Physics.BaseSpeed *= 1.25
		cfg.Physics.Acceleration *= 1.5
		cfg.Spawner.GapCoefficient *= 0.85
	case DifficultyFixed:
		// No ramp: the game stays at base speed forever.
		cfg.Physics.Acceleration = 0
		cfg.Physics.MaxSpeed = cfg.Physics.BaseSpeed
	}
}

// ApplySnakePreset adjusts the snake config for a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.MoveEveryTicks += 2
		cfg.SpeedUpEvery *= 2
	case DifficultyHard:
		if cfg.MoveEveryTicks > cfg.MinMoveTicks+1 {
			cfg.MoveEveryTicks -= 2
		}
	case DifficultyFixed:
		cfg.SpeedUpEvery = 0
	}
}
