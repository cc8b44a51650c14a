package runner

import (
	"github.com/okulov/runcade/internal/config"
	"github.com/okulov/runcade/internal/core"
)

// Pose identifies the player's current body shape.
type Pose int

const (
	PoseRunning Pose = iota
	PoseJumping
	PoseDucking
)

// duckHoldTicks keeps the duck pose alive for a short window after the key
// fires. Terminals deliver key presses, not key-up events.
const duckHoldTicks = 6

// Player holds the runner's vertical physics state and pose. The horizontal
// position is fixed; the world scrolls instead.
type Player struct {
	cfg  config.RunnerPlayer
	phys config.RunnerPhysics

	y         float64 // Relative to ground, negative = above
	vel       float64
	grounded  bool
	duckTicks int
}

// NewPlayer creates a player from its placement and physics configuration.
func NewPlayer(cfg config.RunnerPlayer, phys config.RunnerPhysics) *Player {
	p := &Player{cfg: cfg, phys: phys}
	p.Reset()
	return p
}

// Reset puts the player back on the ground at rest.
func (p *Player) Reset() {
	p.y = 0
	p.vel = 0
	p.grounded = true
	p.duckTicks = 0
}

// Jump launches the player if grounded. Returns true when a jump started.
func (p *Player) Jump() bool {
	if !p.grounded {
		return false
	}
	p.vel = p.phys.JumpImpulse
	p.grounded = false
	p.duckTicks = 0
	return true
}

// Duck starts or extends the duck window. While airborne it instead speeds
// up the fall (drop boost), handled in Step.
func (p *Player) Duck() {
	p.duckTicks = duckHoldTicks
}

// Step integrates one tick of vertical physics.
func (p *Player) Step() {
	if p.duckTicks > 0 {
		p.duckTicks--
	}

	if p.grounded {
		return
	}

	p.vel += p.phys.Gravity
	if p.duckTicks > 0 {
		p.vel += p.phys.DropBoost
	}
	if p.vel > p.phys.MaxFallSpeed {
		p.vel = p.phys.MaxFallSpeed
	}
	p.y += p.vel

	if p.y >= 0 {
		p.y = 0
		p.vel = 0
		p.grounded = true
	}
}

// Pose returns the current body shape.
func (p *Player) Pose() Pose {
	if !p.grounded {
		return PoseJumping
	}
	if p.duckTicks > 0 {
		return PoseDucking
	}
	return PoseRunning
}

// Grounded reports whether the player is on the ground.
func (p *Player) Grounded() bool {
	return p.grounded
}

// Y returns the vertical offset relative to the ground (negative = above).
func (p *Player) Y() float64 {
	return p.y
}

// height returns the outline height for the current pose.
func (p *Player) height() int {
	if p.Pose() == PoseDucking {
		return p.cfg.DuckHeight
	}
	return p.cfg.Height
}

// Outer returns the player's outline in screen coordinates.
func (p *Player) Outer(groundY int) core.Rect {
	h := p.height()
	return core.NewRect(p.cfg.X, groundY-h+int(p.y), p.cfg.Width, h)
}

// Boxes returns the fine collision boxes for the current pose, relative to
// the outline. Running and jumping share a tall body with a narrow head;
// ducking flattens into a single low box.
func (p *Player) Boxes() []core.Rect {
	w := p.cfg.Width
	if p.Pose() == PoseDucking {
		return []core.Rect{core.NewRect(0, 0, w, p.cfg.DuckHeight)}
	}
	return []core.Rect{
		core.NewRect(0, 1, w, p.cfg.Height-1), // Body
		core.NewRect(w/2, 0, w-w/2, 1),        // Head
	}
}
