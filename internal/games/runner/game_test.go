package runner

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
		ScreenH:  24,
		TickRate: 60,
	}
}

func newTestGame(t *testing.T, mutate func(*config.RunnerConfig)) *Game {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(testRuntime())
	if g.cfgErr != nil {
		t.Fatalf("test config should be usable: %v", g.cfgErr)
	}
	return g
}

// startGame leaves the waiting phase and lands the player.
func startGame(t *testing.T, g *Game) {
	t.Helper()
	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump)
	if g.phase != PhaseRunning {
		t.Fatal("first jump should start the run")
	}

	none := core.NewInputFrame()
	for i := 0; i < 200 && !g.player.Grounded(); i++ {
		g.Step(none)
	}
	if !g.player.Grounded() {
		t.Fatal("player never landed after the starting jump")
	}
}

func TestSpeedRamp(t *testing.T) {
	speed := 6.0
	for i := 0; i < 1000; i++ {
		speed = nextSpeed(speed, 0.001, 13.0)
	}
	if speed > 13.0 {
		t.Errorf("speed %v exceeded the cap", speed)
	}
	if speed < 6.9 || speed > 7.1 {
		t.Errorf("speed after 1000 ticks = %v, want ~7.0", speed)
	}

	speed = 6.0
	for i := 0; i < 1000; i++ {
		speed = nextSpeed(speed, 0.01, 6.5)
	}
	if speed != 6.5 {
		t.Errorf("capped speed = %v, want exactly 6.5", speed)
	}
}

func TestWaitingUntilFirstJump(t *testing.T) {
	g := newTestGame(t, nil)

	// The world stands still until the player jumps.
	none := core.NewInputFrame()
	for i := 0; i < 50; i++ {
		g.Step(none)
	}
	snap := g.Snapshot()
	if snap.Phase != PhaseWaiting || snap.Tick != 0 || snap.Obstacles != 0 {
		t.Errorf("idle steps should not advance the world: %+v", snap)
	}

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	res := g.Step(jump)

	if g.phase != PhaseRunning {
		t.Error("jump should move the game into the running phase")
	}
	if !hasCue(res.Cues, core.CueJump) {
		t.Error("starting jump should emit a jump cue")
	}
}

func TestCrashIsTerminal(t *testing.T) {
	g := newTestGame(t, nil)
	startGame(t, g)

	cactus := ObstacleType{Name: "cactus_small", Width: 3, Height: 3, MinGap: 24}
	g.spawner.obstacles = []Obstacle{{Type: cactus, X: 7}}

	none := core.NewInputFrame()
	res := g.Step(none)

	if g.phase != PhaseCrashed {
		t.Fatal("running into a cactus should crash")
	}
	if !hasCue(res.Cues, core.CueCrash) {
		t.Error("crash should emit a crash cue")
	}
	if !g.State().GameOver {
		t.Error("crashed game should report game over")
	}

	// Frozen after the crash: no ticks, no score.
	before := g.Snapshot()
	for i := 0; i < 20; i++ {
		g.Step(none)
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("state advanced after crash: %+v vs %+v", after, before)
	}
}

func TestRestartAfterCrash(t *testing.T) {
	g := newTestGame(t, nil)
	startGame(t, g)

	cactus := ObstacleType{Name: "cactus_small", Width: 3, Height: 3, MinGap: 24}
	g.spawner.obstacles = []Obstacle{{Type: cactus, X: 7}}
	g.Step(core.NewInputFrame())
	if g.phase != PhaseCrashed {
		t.Fatal("expected a crash")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	snap := g.Snapshot()
	if snap.Phase != PhaseWaiting || snap.Score != 0 || snap.Obstacles != 0 {
		t.Errorf("restart should return to a fresh waiting state: %+v", snap)
	}
}

func TestCollectibleConsumedForBonus(t *testing.T) {
	g := newTestGame(t, func(c *config.RunnerConfig) {
		c.Collectibles.Enabled = true
		c.Collectibles.Value = 10
	})
	startGame(t, g)

	scoreBefore := g.score()
	coin := ObstacleType{Name: "coin", Width: 3, Height: 3, MinGap: 24, Collectible: true}
	g.spawner.obstacles = []Obstacle{{Type: coin, X: 7}}

	res := g.Step(core.NewInputFrame())

	if g.phase != PhaseRunning {
		t.Fatal("touching a collectible must not crash")
	}
	if !hasCue(res.Cues, core.CueCollect) {
		t.Error("collect should emit a collect cue")
	}
	if g.bonus != 10 {
		t.Errorf("bonus = %d, want 10", g.bonus)
	}
	if g.score() <= scoreBefore {
		t.Error("collect should raise the score")
	}
	for _, o := range g.spawner.Obstacles() {
		if o.Type.Collectible {
			t.Error("consumed collectible should be removed")
		}
	}
}

func TestAchievementCue(t *testing.T) {
	g := newTestGame(t, func(c *config.RunnerConfig) {
		c.AchievementEvery = 5
	})
	startGame(t, g)

	none := core.NewInputFrame()
	seen := false
	for i := 0; i < 30 && !seen; i++ {
		res := g.Step(none)
		seen = hasCue(res.Cues, core.CueAchievement)
	}
	if !seen {
		t.Fatal("achievement cue never fired")
	}
	if g.flashTicks == 0 {
		t.Error("achievement should start the score flash")
	}
	if g.nextAchievement <= g.score() {
		t.Errorf("next milestone %d should lie ahead of score %d", g.nextAchievement, g.score())
	}
	if g.nextAchievement%5 != 0 {
		t.Errorf("milestones should step by the configured interval, got %d", g.nextAchievement)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, nil)
	startGame(t, g)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.paused {
		t.Fatal("pause action should pause a running game")
	}

	before := g.Snapshot()
	none := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(none)
	}
	after := g.Snapshot()
	if after.Tick != before.Tick || after.Score != before.Score {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.paused {
		t.Error("second pause action should resume")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should stay identical.
	run := func() Snapshot {
		g := NewWithConfig(config.DefaultRunnerConfig())
		g.Reset(testRuntime())

		input := core.NewInputFrame()
		for i := 0; i < 300; i++ {
			input.Clear()
			if i == 0 || i%47 == 0 {
				input.Set(core.ActionJump)
			}
			if i%83 == 0 {
				input.Set(core.ActionDuck)
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
	g := NewWithConfig(config.DefaultRunnerConfig())
	g.Reset(testRuntime())
	once := g.Snapshot()

	g.Reset(testRuntime())
	if twice := g.Snapshot(); twice != once {
		t.Errorf("double reset differs from single: %+v vs %+v", twice, once)
	}
}

func TestInvalidConfigReported(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Physics.Gravity = 0

	g := NewWithConfig(cfg)
	g.Reset(testRuntime())
	if g.cfgErr == nil {
		t.Fatal("broken config should be flagged")
	}

	// No panic, no simulation.
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Config error") {
		t.Error("render should surface the configuration error")
	}
}

func TestRenderShowsHUD(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Score") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(content, string(GroundChar)) {
		t.Error("ground line should be drawn")
	}
}

func hasCue(cues []core.Cue, want core.Cue) bool {
	for _, c := range cues {
		if c == want {
			return true
		}
	}
	return false
}
