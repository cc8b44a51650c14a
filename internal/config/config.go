// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the arcade platform.
package config

// RunnerConfig contains all configuration for the endless runner game.
type RunnerConfig struct {
	Physics      RunnerPhysics     `yaml:"physics"`
	Player       RunnerPlayer      `yaml:"player"`
	Spawner      SpawnerConfig     `yaml:"spawner"`
	Obstacles    []ObstacleDef     `yaml:"obstacles"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	// AchievementEvery is the score interval between achievement cues.
	AchievementEvery int `yaml:"achievement_every"`
}

// RunnerPhysics defines movement parameters for the runner.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`        // Added to vertical velocity each airborne tick
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Initial vertical velocity on jump (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal fall velocity
	DropBoost    float64 `yaml:"drop_boost"`     // Extra gravity while ducking mid-air
	BaseSpeed    float64 `yaml:"base_speed"`     // Horizontal world speed at start, cells per tick
	Acceleration float64 `yaml:"acceleration"`   // Speed gained per tick
	MaxSpeed     float64 `yaml:"max_speed"`      // Speed ramp cap
}

// RunnerPlayer defines the player's placement and collision dimensions.
type RunnerPlayer struct {
	X            int `yaml:"x"`             // Fixed horizontal position
	Width        int `yaml:"width"`         // Running pose width
	Height       int `yaml:"height"`        // Running pose height
	DuckHeight   int `yaml:"duck_height"`   // Height while ducking
	GroundOffset int `yaml:"ground_offset"` // Ground line distance from screen bottom
}

// SpawnerConfig tunes obstacle generation.
type SpawnerConfig struct {
	GapCoefficient float64 `yaml:"gap_coefficient"` // Scales per-type min gap into the gap formula
	MaxDuplication int     `yaml:"max_duplication"` // Max consecutive obstacles of one type
	MaxAttempts    int     `yaml:"max_attempts"`    // Retry bound when picking a valid type
	MaxActive      int     `yaml:"max_active"`      // Cap on simultaneously live obstacles
}

// BoxDef is a collision sub-box relative to its owner's top-left corner.
type BoxDef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// ObstacleDef describes one obstacle type available to the spawner.
type ObstacleDef struct {
	Name        string   `yaml:"name"`
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	MinGap      int      `yaml:"min_gap"`   // Base trailing gap before the next obstacle
	MinSpeed    float64  `yaml:"min_speed"` // Type is skipped below this world speed
	YOffset     int      `yaml:"y_offset"`  // Cells above the ground line (0 = grounded)
	Collectible bool     `yaml:"collectible"`
	Boxes       []BoxDef `yaml:"boxes"` // Fine collision boxes; empty means the full outline
}

// CollectibleConfig gates collectible obstacle types behind a feature flag.
type CollectibleConfig struct {
	Enabled bool `yaml:"enabled"`
	Value   int  `yaml:"value"` // Score bonus per collect
}

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid           SnakeGrid `yaml:"grid"`
	Wraparound     bool      `yaml:"wraparound"`       // Out-of-bounds wraps via modulo instead of crashing
	MoveEveryTicks int       `yaml:"move_every_ticks"` // Ticks between grid steps
	MinMoveTicks   int       `yaml:"min_move_ticks"`   // Fastest allowed step interval
	SpeedUpEvery   int       `yaml:"speed_up_every"`   // Food eaten per interval reduction (0 = never)
	SpawnAttempts  int       `yaml:"spawn_attempts"`   // Rejection-sampling bound for food placement
	StartLength    int       `yaml:"start_length"`
}

// SnakeGrid sets the playfield size. Zero values derive the grid from the
// screen dimensions at reset.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}
