package snake

import (
	"strings"
	"testing"

	"github.com/okulov/runcade/internal/config"
	"github.com/okulov/runcade/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     42,
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 60,
	}
}

// newTestGame builds a game on an explicit 20x20 grid that moves every tick,
// so grid steps line up with simulation ticks.
func newTestGame(t *testing.T, mutate func(*config.SnakeConfig)) *Game {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	cfg.Grid = config.SnakeGrid{Width: 20, Height: 20}
	cfg.MoveEveryTicks = 1
	cfg.MinMoveTicks = 1
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(testRuntime())
	if g.cfgErr != nil {
		t.Fatalf("test config should be usable: %v", g.cfgErr)
	}
	if g.tooSmall {
		t.Fatal("test screen should fit the grid")
	}
	return g
}

func TestBasicMove(t *testing.T) {
	g := newTestGame(t, nil)
	g.food = Point{X: 0, Y: 0} // Out of the snake's immediate path

	head := g.snake[0]
	if head != (Point{X: 10, Y: 10}) {
		t.Fatalf("head should start at the grid center, got %+v", head)
	}
	lengthBefore := len(g.snake)

	g.Step(core.NewInputFrame())

	if got := g.snake[0]; got != (Point{X: 11, Y: 10}) {
		t.Errorf("head = %+v, want {11 10} after one step right", got)
	}
	if len(g.snake) != lengthBefore {
		t.Errorf("length changed without food: %d vs %d", len(g.snake), lengthBefore)
	}
}

func TestWraparound(t *testing.T) {
	g := newTestGame(t, nil)
	g.food = Point{X: 0, Y: 5}

	// Head on the right edge moving right wraps to column 0.
	g.snake = []Point{{X: 19, Y: 10}, {X: 18, Y: 10}, {X: 17, Y: 10}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.moveSnake()

	if g.gameOver {
		t.Fatal("wraparound should not end the game")
	}
	if got := g.snake[0]; got != (Point{X: 0, Y: 10}) {
		t.Errorf("head = %+v, want {0 10} after wrapping the right edge", got)
	}

	// Head on the top edge moving up wraps to the bottom row.
	g.snake = []Point{{X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}}
	g.direction = DirUp
	g.nextDir = DirUp
	g.moveSnake()

	if got := g.snake[0]; got != (Point{X: 5, Y: 19}) {
		t.Errorf("head = %+v, want {5 19} after wrapping the top edge", got)
	}
}

func TestWallsTerminalWithoutWraparound(t *testing.T) {
	g := newTestGame(t, func(c *config.SnakeConfig) {
		c.Wraparound = false
	})
	g.food = Point{X: 0, Y: 5}

	g.snake = []Point{{X: 19, Y: 10}, {X: 18, Y: 10}, {X: 17, Y: 10}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.moveSnake()

	if !g.gameOver {
		t.Error("leaving the grid should end the game when wraparound is off")
	}
}

func TestSelfCollisionTerminal(t *testing.T) {
	g := newTestGame(t, nil)
	g.food = Point{X: 0, Y: 0}

	// Tight loop: moving right puts the head onto its own body.
	g.snake = []Point{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.moveSnake()

	if !g.gameOver {
		t.Error("self collision should end the game")
	}
}

func TestTailCellIsSafe(t *testing.T) {
	g := newTestGame(t, nil)
	g.food = Point{X: 0, Y: 0}

	// A 2x2 loop chasing its own tail: the tail moves away in the same turn,
	// so stepping onto its old cell is legal.
	g.snake = []Point{
		{X: 5, Y: 5},
		{X: 6, Y: 5},
		{X: 6, Y: 6},
		{X: 5, Y: 6}, // Tail, about to vacate
	}
	g.direction = DirDown
	g.nextDir = DirDown
	g.moveSnake()

	if g.gameOver {
		t.Error("moving onto the vacating tail cell should be legal")
	}
}

func TestEatGrowsAndSpeedsUp(t *testing.T) {
	g := newTestGame(t, func(c *config.SnakeConfig) {
		c.MoveEveryTicks = 4
		c.MinMoveTicks = 2
		c.SpeedUpEvery = 1
	})

	lengthBefore := len(g.snake)
	head := g.snake[0]
	g.food = Point{X: head.X + 1, Y: head.Y}

	g.moveSnake()

	if len(g.snake) != lengthBefore+1 {
		t.Errorf("length = %d, want %d after eating", len(g.snake), lengthBefore+1)
	}
	if g.score != 1 {
		t.Errorf("score = %d, want 1", g.score)
	}
	if g.moveEveryTicks != 3 {
		t.Errorf("move interval = %d, want 3 after the first speedup", g.moveEveryTicks)
	}

	// The interval bottoms out at min_move_ticks.
	for i := 0; i < 10; i++ {
		head = g.snake[0]
		g.food = Point{X: core.WrapMod(head.X+1, g.gridW), Y: head.Y}
		g.moveSnake()
		if g.gameOver {
			t.Fatal("feeding run should not crash")
		}
	}
	if g.moveEveryTicks != 2 {
		t.Errorf("move interval = %d, should floor at 2", g.moveEveryTicks)
	}
}

func TestEatEmitsCue(t *testing.T) {
	g := newTestGame(t, nil)
	head := g.snake[0]
	g.food = Point{X: head.X + 1, Y: head.Y}

	res := g.Step(core.NewInputFrame())

	found := false
	for _, c := range res.Cues {
		if c == core.CueEat {
			found = true
		}
	}
	if !found {
		t.Error("eating should emit an eat cue")
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	g := newTestGame(t, nil)

	for i := 0; i < 200; i++ {
		g.spawnFood()
		if g.isSnakeAt(g.food) {
			t.Fatalf("food spawned on the snake at %+v", g.food)
		}
		if g.food.X < 0 || g.food.X >= g.gridW || g.food.Y < 0 || g.food.Y >= g.gridH {
			t.Fatalf("food out of bounds at %+v", g.food)
		}
	}
}

func TestFoodFallbackOnCrowdedGrid(t *testing.T) {
	g := newTestGame(t, func(c *config.SnakeConfig) {
		c.Grid = config.SnakeGrid{Width: 5, Height: 5}
		c.SpawnAttempts = 3 // Tiny budget forces the scan fallback
	})

	// Fill all but one cell with snake.
	g.snake = g.snake[:0]
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if x == 4 && y == 4 {
				continue
			}
			g.snake = append(g.snake, Point{X: x, Y: y})
		}
	}

	g.spawnFood()
	if g.food != (Point{X: 4, Y: 4}) {
		t.Errorf("food = %+v, want the only free cell {4 4}", g.food)
	}

	// Completely full grid: no placement possible.
	g.snake = append(g.snake, Point{X: 4, Y: 4})
	g.spawnFood()
	if g.food.X != -1 {
		t.Errorf("full grid should park the food off-grid, got %+v", g.food)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(t, nil)

	if g.direction != DirRight {
		t.Fatalf("expected initial direction right, got %v", g.direction)
	}

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.processInput(input)
	if g.nextDir == DirLeft {
		t.Error("should not allow immediate reversal from right to left")
	}

	input.Clear()
	input.Set(core.ActionDown)
	g.processInput(input)
	if g.nextDir != DirDown {
		t.Errorf("expected buffered direction down, got %v", g.nextDir)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, func(c *config.SnakeConfig) {
		c.Wraparound = false
	})
	g.food = Point{X: 0, Y: 0}

	g.snake = []Point{{X: 19, Y: 10}, {X: 18, Y: 10}, {X: 17, Y: 10}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.moveSnake()
	if !g.gameOver {
		t.Fatal("expected game over at the wall")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	snap := g.Snapshot()
	if snap.GameOver || snap.Score != 0 || snap.SnakeLen != g.cfg.StartLength {
		t.Errorf("restart should produce a fresh game: %+v", snap)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		cfg := config.DefaultSnakeConfig()
		cfg.Grid = config.SnakeGrid{Width: 20, Height: 20}
		g := NewWithConfig(cfg)
		g.Reset(testRuntime())

		input := core.NewInputFrame()
		for i := 0; i < 400; i++ {
			input.Clear()
			if i%60 == 20 {
				input.Set(core.ActionDown)
			}
			if i%60 == 50 {
				input.Set(core.ActionRight)
			}
			g.Step(input)
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("snapshots diverged:\n%+v\n%+v", a, b)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid = config.SnakeGrid{Width: 20, Height: 20}
	g := NewWithConfig(cfg)

	g.Reset(testRuntime())
	once := g.Snapshot()

	g.Reset(testRuntime())
	if twice := g.Snapshot(); twice != once {
		t.Errorf("double reset differs from single: %+v vs %+v", twice, once)
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := NewWithConfig(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 8, ScreenH: 5, TickRate: 60})

	if !g.tooSmall {
		t.Fatal("tiny screen should be detected")
	}

	// Steps are inert and rendering shows the notice instead of panicking.
	g.Step(core.NewInputFrame())
	screen := core.NewScreen(8, 5)
	g.Render(screen)
}

func TestRenderShowsHUD(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(80, 30)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Snake") {
		t.Error("HUD should contain the title")
	}
	if !strings.Contains(content, "Score") {
		t.Error("HUD should contain the score")
	}
	if !strings.Contains(content, "*") {
		t.Error("food should be drawn")
	}
}
