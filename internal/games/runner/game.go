// Package runner implements an endless runner: the player jumps and ducks
// over typed obstacles scrolling in from the right while the world speeds up.
package runner

import (
	"github.com/okulov/runcade/internal/config"
	"github.com/okulov/runcade/internal/core"
	"github.com/okulov/runcade/internal/locale"
	"github.com/okulov/runcade/internal/registry"
)

// Visual characters for rendering
const (
	RunnerBody = '█'
	RunnerHead = '◆'
	RunnerLeg1 = '╱'
	RunnerLeg2 = '╲'
	GroundChar = '═'
	FlyerChar  = 'w'
	CoinChar   = 'o'
)

// flashDuration is how long the achievement highlight stays on screen, in ticks.
const flashDuration = 30

// Phase is the runner's lifecycle state.
type Phase int

const (
	PhaseWaiting Phase = iota // Idle on the ground until the first jump
	PhaseRunning
	PhaseCrashed
)

// Game implements the endless runner game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig

	player  *Player
	spawner *Spawner

	phase     Phase
	speed     float64 // Horizontal world speed, cells per tick
	distance  float64 // Total distance traveled
	bonus     int     // Score from collectibles
	paused    bool
	tickCount int
	groundY   int
	legFrame  int // Animation frame for running legs

	nextAchievement int
	flashTicks      int

	pinned bool  // Config fixed by NewWithConfig; skip the loader on Reset
	cfgErr error // Unusable configuration; reported instead of playing
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a runner that loads its config at Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a runner pinned to the given config, bypassing the
// loader. Used by tests and tools.
func NewWithConfig(cfg config.RunnerConfig) *Game {
	g := &Game{cfg: cfg, pinned: true}
	g.cfgErr = cfg.Validate()
	return g
}

func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return locale.T("runner.title")
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// A config pinned by NewWithConfig is kept across resets.
	if !g.pinned {
		cfg, err := config.LoadRunner(configPath)
		if err != nil {
			cfg = config.DefaultRunnerConfig()
		}
		if difficultyPreset != "" {
			config.ApplyRunnerPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.cfgErr = cfg.Validate()
	}

	g.groundY = runtime.ScreenH - g.cfg.Player.GroundOffset
	g.phase = PhaseWaiting
	g.speed = g.cfg.Physics.BaseSpeed
	g.distance = 0
	g.bonus = 0
	g.paused = false
	g.tickCount = 0
	g.legFrame = 0
	g.nextAchievement = g.cfg.AchievementEvery
	g.flashTicks = 0

	g.player = NewPlayer(g.cfg.Player, g.cfg.Physics)

	if g.cfgErr != nil {
		return
	}

	// Rebuilt on every reset since the config may have been reloaded.
	s, err := NewSpawner(runtime.Seed, runtime.ScreenW,
		TypesFromConfig(g.cfg.Obstacles), g.cfg.Spawner,
		g.cfg.Collectibles.Enabled, g.cfg.Physics.BaseSpeed)
	if err != nil {
		g.cfgErr = err
		return
	}
	g.spawner = s
}

// nextSpeed advances the speed ramp by one tick, capped at max.
func nextSpeed(cur, accel, max float64) float64 {
	cur += accel
	if cur > max {
		cur = max
	}
	return cur
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var cues []core.Cue

	if g.cfgErr != nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.phase == PhaseCrashed {
		g.Reset(core.RuntimeConfig{
			Seed:     g.runtime.Seed + int64(g.tickCount) + 1,
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if g.phase == PhaseCrashed {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.phase == PhaseRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Waiting phase: the world stands still until the first jump.
	if g.phase == PhaseWaiting {
		if in.Has(core.ActionJump) || in.Has(core.ActionUp) {
			g.phase = PhaseRunning
			if g.player.Jump() {
				cues = append(cues, core.CueJump)
			}
		}
		return core.StepResult{State: g.State(), Cues: cues}
	}

	g.tickCount++
	g.legFrame = (g.legFrame + 1) % 10 // Animation cycle
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if in.Has(core.ActionJump) || in.Has(core.ActionUp) {
		if g.player.Jump() {
			cues = append(cues, core.CueJump)
		}
	}
	if in.Has(core.ActionDuck) || in.Has(core.ActionDown) {
		g.player.Duck()
	}

	g.player.Step()
	g.spawner.Update(g.speed)

	cues = append(cues, g.resolveCollisions()...)
	if g.phase == PhaseCrashed {
		return core.StepResult{State: g.State(), Cues: cues}
	}

	g.distance += g.speed

	if g.cfg.AchievementEvery > 0 && g.score() >= g.nextAchievement {
		cues = append(cues, core.CueAchievement)
		g.flashTicks = flashDuration
		g.nextAchievement += g.cfg.AchievementEvery
	}

	g.speed = nextSpeed(g.speed, g.cfg.Physics.Acceleration, g.cfg.Physics.MaxSpeed)

	return core.StepResult{State: g.State(), Cues: cues}
}

// resolveCollisions checks the player against every live obstacle. A hit on
// a collectible consumes it for a score bonus; anything else is a crash.
func (g *Game) resolveCollisions() []core.Cue {
	playerOuter := g.player.Outer(g.groundY)
	playerBoxes := g.player.Boxes()

	for i, o := range g.spawner.Obstacles() {
		if !Collides(playerOuter, playerBoxes, o.Outer(g.groundY), o.FineBoxes()) {
			continue
		}
		if o.Type.Collectible {
			g.spawner.Remove(i)
			g.bonus += g.cfg.Collectibles.Value
			return []core.Cue{core.CueCollect}
		}
		g.phase = PhaseCrashed
		return []core.Cue{core.CueCrash}
	}
	return nil
}

// score is distance traveled plus collectible bonuses.
func (g *Game) score() int {
	return int(g.distance) + g.bonus
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.cfgErr != nil {
		dst.DrawTextCentered(dst.Height()/2, "Config error:")
		dst.DrawTextCentered(dst.Height()/2+1, g.cfgErr.Error())
		return
	}

	// Draw ground
	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar)

	// Draw obstacles
	for _, o := range g.spawner.Obstacles() {
		g.drawObstacle(dst, o)
	}

	g.drawPlayer(dst)
	g.drawHUD(dst)

	switch {
	case g.phase == PhaseWaiting:
		g.drawCenteredMessage(dst, locale.T("runner.title"), locale.T("runner.start_hint"))
	case g.phase == PhaseCrashed:
		g.drawCenteredMessage(dst, locale.T("common.game_over"), locale.Tf("runner.crashed", g.score()))
	case g.paused:
		g.drawCenteredMessage(dst, locale.T("common.paused"), locale.T("common.resume_hint"))
	}
}

// drawHUD draws the score line, highlighted briefly after an achievement.
func (g *Game) drawHUD(dst *core.Screen) {
	color := core.ColorDefault
	if g.flashTicks > 0 {
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored(2, 0, " "+locale.Tf("common.score", g.score())+" ", color)

	spd := locale.Tf("runner.speed", g.speed)
	dst.DrawText(dst.Width()-len(spd)-2, 0, spd)
}

// drawPlayer renders the runner sprite for the current pose.
func (g *Game) drawPlayer(dst *core.Screen) {
	outer := g.player.Outer(g.groundY)

	switch g.player.Pose() {
	case PoseDucking:
		dst.DrawRectColored(outer, RunnerBody, core.ColorBrightCyan)
		dst.SetColored(outer.Right()-1, outer.Y, RunnerHead, core.ColorBrightCyan)
	case PoseJumping:
		g.drawBodyAndHead(dst, outer)
		dst.Set(outer.X, outer.Bottom()-1, RunnerLeg1)
		dst.Set(outer.X+1, outer.Bottom()-1, RunnerLeg2)
	default:
		g.drawBodyAndHead(dst, outer)
		// Alternate leg positions while running
		if g.legFrame < 5 {
			dst.Set(outer.X, outer.Bottom()-1, RunnerLeg1)
			dst.Set(outer.Right()-1, outer.Bottom()-1, RunnerLeg2)
		} else {
			dst.Set(outer.X+1, outer.Bottom()-1, RunnerLeg1)
			dst.Set(outer.Right()-1, outer.Bottom()-1, RunnerLeg2)
		}
	}
}

func (g *Game) drawBodyAndHead(dst *core.Screen, outer core.Rect) {
	body := core.NewRect(outer.X, outer.Y+1, outer.W, outer.H-2)
	dst.DrawRectColored(body, RunnerBody, core.ColorBrightCyan)
	dst.SetColored(outer.X+outer.W/2, outer.Y, RunnerHead, core.ColorBrightCyan)
}

// drawObstacle renders one obstacle with a per-type look.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	outer := o.Outer(g.groundY)
	switch {
	case o.Type.Collectible:
		dst.SetColored(outer.X+outer.W/2, outer.Y+outer.H/2, CoinChar, core.ColorBrightYellow)
	case o.Type.YOffset > 0:
		// Airborne obstacle
		dst.DrawRectColored(outer, FlyerChar, core.ColorMagenta)
	default:
		for _, b := range o.FineBoxes() {
			dst.DrawRectColored(b.Translate(outer.X, outer.Y), '▓', core.ColorGreen)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.phase == PhaseCrashed,
		Paused:   g.paused,
	}
}
