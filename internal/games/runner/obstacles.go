package runner

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/okulov/runcade/internal/config"
	"github.com/okulov/runcade/internal/core"
)

// maxGapFactor stretches the minimum gap into the upper bound of the
// randomized gap range.
const maxGapFactor = 1.5

// ObstacleType describes one kind of obstacle the spawner can produce.
type ObstacleType struct {
	Name        string
	Width       int
	Height      int
	MinGap      int     // Base trailing gap before the next obstacle
	MinSpeed    float64 // Type is unavailable below this world speed
	YOffset     int     // Cells above the ground line (0 = grounded)
	Collectible bool
	Boxes       []core.Rect // Fine collision boxes relative to the outline
}

// TypesFromConfig converts obstacle definitions into spawnable types.
func TypesFromConfig(defs []config.ObstacleDef) []ObstacleType {
	types := make([]ObstacleType, 0, len(defs))
	for _, d := range defs {
		t := ObstacleType{
			Name:        d.Name,
			Width:       d.Width,
			Height:      d.Height,
			MinGap:      d.MinGap,
			MinSpeed:    d.MinSpeed,
			YOffset:     d.YOffset,
			Collectible: d.Collectible,
		}
		for _, b := range d.Boxes {
			t.Boxes = append(t.Boxes, core.NewRect(b.X, b.Y, b.W, b.H))
		}
		types = append(types, t)
	}
	return types
}

// Obstacle is a live obstacle scrolling toward the player.
type Obstacle struct {
	Type ObstacleType
	X    float64 // Left edge; fractional during scroll
	Gap  int     // Trailing space reserved after this obstacle
}

// Outer returns the obstacle's outline in screen coordinates.
func (o Obstacle) Outer(groundY int) core.Rect {
	y := groundY - o.Type.Height - o.Type.YOffset
	return core.NewRect(int(o.X), y, o.Type.Width, o.Type.Height)
}

// FineBoxes returns the obstacle's collision sub-boxes relative to its
// outline. Types without explicit boxes collide on the full outline.
func (o Obstacle) FineBoxes() []core.Rect {
	if len(o.Type.Boxes) > 0 {
		return o.Type.Boxes
	}
	return []core.Rect{core.NewRect(0, 0, o.Type.Width, o.Type.Height)}
}

// MinimumGap computes the smallest acceptable trailing gap for a type at the
// given speed: round(width*speed + minGap*gapCoefficient). Larger gaps at
// higher speed keep reaction time roughly constant.
func MinimumGap(t ObstacleType, speed, gapCoefficient float64) int {
	return int(math.Round(float64(t.Width)*speed + float64(t.MinGap)*gapCoefficient))
}

// MaximumGap computes the upper bound of the gap range for a minimum gap.
func MaximumGap(minGap int) int {
	return int(math.Round(float64(minGap) * maxGapFactor))
}

// Spawner produces obstacles honoring speed gates, the duplicate-run cap and
// the speed-scaled gap range. It owns the active obstacle list.
type Spawner struct {
	rng          *rand.Rand
	types        []ObstacleType
	cfg          config.SpawnerConfig
	collectibles bool
	screenW      int
	obstacles    []Obstacle
	history      []string // Most recent type names, bounded by the duplicate cap
}

// NewSpawner creates a spawner. A type set with no non-collectible type
// usable at baseSpeed would exhaust the retry budget on every spawn, so it is
// rejected here as a configuration error.
func NewSpawner(seed int64, screenW int, types []ObstacleType, cfg config.SpawnerConfig, collectibles bool, baseSpeed float64) (*Spawner, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("runner: no obstacle types configured")
	}
	usable := false
	for _, t := range types {
		if !t.Collectible && t.MinSpeed <= baseSpeed {
			usable = true
			break
		}
	}
	if !usable {
		return nil, fmt.Errorf("runner: no obstacle type usable at base speed %v", baseSpeed)
	}

	s := &Spawner{
		types:        types,
		cfg:          cfg,
		collectibles: collectibles,
		screenW:      screenW,
	}
	s.Reset(seed)
	return s, nil
}

// Reset clears all obstacles and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.obstacles = s.obstacles[:0]
	s.history = s.history[:0]
}

// Obstacles returns the active obstacle list, nearest first.
func (s *Spawner) Obstacles() []Obstacle {
	return s.obstacles
}

// Remove drops the obstacle at index i (collectible consumed).
func (s *Spawner) Remove(i int) {
	if i < 0 || i >= len(s.obstacles) {
		return
	}
	s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
}

// Update advances all obstacles by the current speed, culls the ones that
// scrolled fully off-screen, and spawns a new obstacle once the newest one
// has cleared its reserved gap.
func (s *Spawner) Update(speed float64) {
	for i := range s.obstacles {
		s.obstacles[i].X -= speed
	}

	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X+float64(o.Type.Width) > 0 {
			live = append(live, o)
		}
	}
	s.obstacles = live

	if len(s.obstacles) >= s.cfg.MaxActive {
		return
	}
	if len(s.obstacles) == 0 {
		s.spawn(speed)
		return
	}
	last := s.obstacles[len(s.obstacles)-1]
	if last.X+float64(last.Type.Width+last.Gap) <= float64(s.screenW) {
		s.spawn(speed)
	}
}

// spawn appends a new obstacle at the right screen edge.
func (s *Spawner) spawn(speed float64) {
	t := s.pickType(speed)

	minGap := MinimumGap(t, speed, s.cfg.GapCoefficient)
	maxGap := MaximumGap(minGap)
	gap := minGap
	if maxGap > minGap {
		gap = minGap + s.rng.Intn(maxGap-minGap+1)
	}

	s.obstacles = append(s.obstacles, Obstacle{
		Type: t,
		X:    float64(s.screenW),
		Gap:  gap,
	})
	s.pushHistory(t.Name)
}

// pickType selects a type uniformly at random, rejecting candidates that are
// gated by speed, the collectible feature flag, or the duplicate-run cap.
// The retry loop is bounded; if the budget runs out the duplicate constraint
// is relaxed, and as a last resort the first eligible type is taken in order.
// Construction guarantees at least one such type exists.
func (s *Spawner) pickType(speed float64) ObstacleType {
	for attempt := 0; attempt < s.cfg.MaxAttempts; attempt++ {
		t := s.types[s.rng.Intn(len(s.types))]
		if !s.eligible(t, speed) {
			continue
		}
		if s.runLength(t.Name) >= s.cfg.MaxDuplication {
			continue
		}
		return t
	}

	for attempt := 0; attempt < s.cfg.MaxAttempts; attempt++ {
		t := s.types[s.rng.Intn(len(s.types))]
		if s.eligible(t, speed) {
			return t
		}
	}

	for _, t := range s.types {
		if s.eligible(t, speed) {
			return t
		}
	}
	return s.types[0]
}

// eligible applies the speed gate and the collectible feature flag.
func (s *Spawner) eligible(t ObstacleType, speed float64) bool {
	if t.Collectible && !s.collectibles {
		return false
	}
	return speed >= t.MinSpeed
}

// runLength counts how many of the most recent spawns used this type.
func (s *Spawner) runLength(name string) int {
	run := 0
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i] != name {
			break
		}
		run++
	}
	return run
}

// pushHistory records a spawned type, keeping only enough entries to answer
// the duplicate-run check.
func (s *Spawner) pushHistory(name string) {
	s.history = append(s.history, name)
	if len(s.history) > s.cfg.MaxDuplication {
		s.history = s.history[len(s.history)-s.cfg.MaxDuplication:]
	}
}
