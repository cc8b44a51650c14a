package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:      0.3,
			JumpImpulse:  -2.5,
			MaxFallSpeed: 4.0,
			DropBoost:    0.6,
			BaseSpeed:    0.6,
			Acceleration: 0.001,
			MaxSpeed:     1.3,
		},
		Player: RunnerPlayer{
			X:            6,
			Width:        4,
			Height:       3,
			DuckHeight:   2,
			GroundOffset: 2,
		},
		Spawner: SpawnerConfig{
			GapCoefficient: 0.6,
			MaxDuplication: 2,
			MaxAttempts:    100,
			MaxActive:      6,
		},
		// Outlines stay at least 3 cells per side so the collision inset
		// never collapses them to zero area.
		Obstacles: []ObstacleDef{
			{
				Name:   "cactus_small",
				Width:  3,
				Height: 3,
				MinGap: 24,
			},
			{
				Name:   "cactus_large",
				Width:  4,
				Height: 3,
				MinGap: 24,
				// Trunk plus two lower arms, like the sprite outline
				Boxes: []BoxDef{
					{X: 1, Y: 0, W: 2, H: 3},
					{X: 0, Y: 1, W: 1, H: 2},
					{X: 3, Y: 1, W: 1, H: 2},
				},
				MinSpeed: 0.75,
			},
			{
				Name:    "pterodactyl",
				Width:   4,
				Height:  3,
				MinGap:  30,
				YOffset: 3,
				Boxes: []BoxDef{
					{X: 0, Y: 1, W: 4, H: 1},
					{X: 1, Y: 0, W: 2, H: 1},
				},
				MinSpeed: 1.0,
			},
			{
				Name:        "coin",
				Width:       3,
				Height:      3,
				MinGap:      24,
				YOffset:     1,
				Collectible: true,
			},
		},
		Collectibles: CollectibleConfig{
			Enabled: false,
			Value:   10,
		},
		AchievementEvery: 100,
	}
}

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:           SnakeGrid{}, // Derived from screen size
		Wraparound:     true,
		MoveEveryTicks: 6,
		MinMoveTicks:   2,
		SpeedUpEvery:   5,
		SpawnAttempts:  100,
		StartLength:    3,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runner":
		return defaultRunnerYAML
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
