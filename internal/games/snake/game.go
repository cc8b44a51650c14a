// Package snake implements a grid snake: the snake moves on a fixed-interval
// grid, grows by eating food, and by default wraps around the playfield edges.
package snake

import (
	"math/rand"

	"github.com/okulov/runcade/internal/config"
	"github.com/okulov/runcade/internal/core"
	"github.com/okulov/runcade/internal/locale"
	"github.com/okulov/runcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Point represents a 2D grid coordinate.
type Point struct {
	X, Y int
}

// hudHeight is the number of screen rows reserved above the playfield.
const hudHeight = 2

// Game implements the Snake game.
type Game struct {
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	tick           uint64
	score          int
	foodEaten      int
	moveEveryTicks int
	moveTicker     int // Counts ticks until next move

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move
	growing   bool      // If true, don't remove tail on next move

	// Playfield
	gridW   int
	gridH   int
	food    Point
	offsetX int
	offsetY int

	gameOver bool
	paused   bool
	tooSmall bool

	pinned bool  // Config fixed by NewWithConfig; skip the loader on Reset
	cfgErr error // Unusable configuration; reported instead of playing

	stepCues []core.Cue // Cues raised during the current Step
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

// New creates a snake game that loads its config at Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a snake game pinned to the given config, bypassing
// the loader. Used by tests and tools.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	g := &Game{cfg: cfg, pinned: true}
	g.cfgErr = cfg.Validate()
	return g
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return locale.T("snake.title")
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.pinned {
		cfg, err := config.LoadSnake(configPath)
		if err != nil {
			cfg = config.DefaultSnakeConfig()
		}
		if difficultyPreset != "" {
			config.ApplySnakePreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.cfgErr = cfg.Validate()
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.score = 0
	g.foodEaten = 0
	g.moveEveryTicks = g.cfg.MoveEveryTicks
	g.moveTicker = 0
	g.gameOver = false
	g.paused = false
	g.stepCues = nil

	if g.cfgErr != nil {
		return
	}

	g.layoutGrid()
	if g.tooSmall {
		return
	}

	g.initSnake()
	g.spawnFood()
}

// layoutGrid sizes the playfield from the config, or derives it from the
// screen when no explicit grid is set, and centers it below the HUD.
func (g *Game) layoutGrid() {
	if g.cfg.Grid.Width > 0 && g.cfg.Grid.Height > 0 {
		g.gridW = g.cfg.Grid.Width
		g.gridH = g.cfg.Grid.Height
	} else {
		// Leave room for the border frame
		g.gridW = g.runtime.ScreenW - 2
		g.gridH = g.runtime.ScreenH - hudHeight - 2
	}

	requiredW := g.gridW + 2
	requiredH := g.gridH + hudHeight + 2
	if g.runtime.ScreenW < requiredW || g.runtime.ScreenH < requiredH ||
		g.gridW < 5 || g.gridH < 5 {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.offsetX = (g.runtime.ScreenW - g.gridW) / 2
	g.offsetY = hudHeight + 1
}

// initSnake lays the snake out horizontally at the grid center, head leading
// to the right.
func (g *Game) initSnake() {
	head := Point{X: g.gridW / 2, Y: g.gridH / 2}

	length := g.cfg.StartLength
	if length < 1 {
		length = 1
	}
	g.snake = make([]Point, 0, length)
	for i := 0; i < length; i++ {
		g.snake = append(g.snake, Point{X: core.WrapMod(head.X-i, g.gridW), Y: head.Y})
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.growing = false
}

// spawnFood places food on a random free cell. Rejection sampling is bounded;
// on a crowded grid it falls back to scanning for free cells.
func (g *Game) spawnFood() {
	attempts := g.cfg.SpawnAttempts
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		p := Point{X: g.rng.Intn(g.gridW), Y: g.rng.Intn(g.gridH)}
		if !g.isSnakeAt(p) {
			g.food = p
			return
		}
	}

	var free []Point
	for y := 0; y < g.gridH; y++ {
		for x := 0; x < g.gridW; x++ {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		// Snake fills the grid; nothing left to eat
		g.food = Point{X: -1, Y: -1}
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.stepCues = nil

	if g.cfgErr != nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.processInput(input)

	// Move snake on tick interval
	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.moveSnake()
	}

	return core.StepResult{State: g.State(), Cues: g.stepCues}
}

// processInput handles direction changes.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	// Prevent instant reversal
	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake moves the snake one cell in the current direction.
func (g *Game) moveSnake() {
	if len(g.snake) == 0 {
		return
	}

	// Apply buffered direction
	g.direction = g.nextDir

	head := g.snake[0]
	var newHead Point
	switch g.direction {
	case DirUp:
		newHead = Point{X: head.X, Y: head.Y - 1}
	case DirDown:
		newHead = Point{X: head.X, Y: head.Y + 1}
	case DirLeft:
		newHead = Point{X: head.X - 1, Y: head.Y}
	case DirRight:
		newHead = Point{X: head.X + 1, Y: head.Y}
	}

	if g.cfg.Wraparound {
		newHead.X = core.WrapMod(newHead.X, g.gridW)
		newHead.Y = core.WrapMod(newHead.Y, g.gridH)
	} else if newHead.X < 0 || newHead.X >= g.gridW ||
		newHead.Y < 0 || newHead.Y >= g.gridH {
		g.gameOver = true
		g.stepCues = append(g.stepCues, core.CueCrash)
		return
	}

	// Self collision is always terminal, wraparound or not.
	// The tail cell is exempt unless growing, since it moves away this turn.
	checkLen := len(g.snake)
	if !g.growing && checkLen > 0 {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.snake[i] == newHead {
			g.gameOver = true
			g.stepCues = append(g.stepCues, core.CueCrash)
			return
		}
	}

	// Move snake: add new head
	g.snake = append([]Point{newHead}, g.snake...)

	if newHead == g.food {
		g.score++
		g.foodEaten++
		g.growing = true // Don't remove tail this move
		g.stepCues = append(g.stepCues, core.CueEat)
		g.speedUp()
		g.spawnFood()
	}

	// Remove tail unless growing
	if g.growing {
		g.growing = false
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// speedUp tightens the move interval after the configured amount of food,
// never dropping below the minimum interval.
func (g *Game) speedUp() {
	if g.cfg.SpeedUpEvery <= 0 || g.foodEaten%g.cfg.SpeedUpEvery != 0 {
		return
	}
	if g.moveEveryTicks > g.cfg.MinMoveTicks {
		g.moveEveryTicks--
	}
}

// speedLevel is the display value for the HUD: how many speedups have applied.
func (g *Game) speedLevel() int {
	return g.cfg.MoveEveryTicks - g.moveEveryTicks + 1
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.cfgErr != nil {
		dst.DrawTextCentered(dst.Height()/2, "Config error:")
		dst.DrawTextCentered(dst.Height()/2+1, g.cfgErr.Error())
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Border frame around the playfield
	dst.DrawBox(core.NewRect(g.offsetX-1, g.offsetY-1, g.gridW+2, g.gridH+2))

	// Food
	if g.food.X >= 0 && g.food.Y >= 0 {
		dst.SetColored(g.offsetX+g.food.X, g.offsetY+g.food.Y, '*', core.ColorBrightRed)
	}

	// Snake
	for i, seg := range g.snake {
		ch := 'o'
		if i == 0 {
			ch = 'O'
		}
		dst.SetColored(g.offsetX+seg.X, g.offsetY+seg.Y, ch, core.ColorBrightGreen)
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst, locale.T("common.game_over"), locale.T("common.restart_hint"))
	case g.paused:
		g.renderOverlay(dst, locale.T("common.paused"), locale.T("common.resume_hint"))
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " " + locale.T("snake.title") +
		"  |  " + locale.Tf("common.score", g.score) +
		"  " + locale.Tf("snake.speed", g.speedLevel())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
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
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
