package runner

import (
	"testing"

	"github.com/okulov/runcade/internal/config"
)

func testSpawnerConfig() config.SpawnerConfig {
	return config.SpawnerConfig{
		GapCoefficient: 0.6,
		MaxDuplication: 2,
		MaxAttempts:    100,
		MaxActive:      6,
	}
}

func newTestSpawner(t *testing.T, seed int64, collectibles bool) *Spawner {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	s, err := NewSpawner(seed, 80, TypesFromConfig(cfg.Obstacles), cfg.Spawner,
		collectibles, cfg.Physics.BaseSpeed)
	if err != nil {
		t.Fatalf("NewSpawner() failed: %v", err)
	}
	return s
}

func TestGapFormula(t *testing.T) {
	// round(width*speed + minGap*coefficient), upper bound 1.5x
	wide := ObstacleType{Name: "wide", Width: 17, Height: 10, MinGap: 120}

	minGap := MinimumGap(wide, 6.0, 0.6)
	if minGap != 174 {
		t.Errorf("MinimumGap = %d, want 174", minGap)
	}
	if maxGap := MaximumGap(minGap); maxGap != 261 {
		t.Errorf("MaximumGap(174) = %d, want 261", maxGap)
	}

	// Gap scales with speed: faster world, wider gaps
	if slow, fast := MinimumGap(wide, 1.0, 0.6), MinimumGap(wide, 6.0, 0.6); fast <= slow {
		t.Errorf("gap should grow with speed: %d at 1.0 vs %d at 6.0", slow, fast)
	}
}

func TestSpawnedGapsWithinRange(t *testing.T) {
	s := newTestSpawner(t, 42, false)

	for _, speed := range []float64{0.6, 0.9, 1.3} {
		s.Reset(42)
		for i := 0; i < 200; i++ {
			s.spawn(speed)
		}
		for _, o := range s.Obstacles() {
			lo := MinimumGap(o.Type, speed, s.cfg.GapCoefficient)
			hi := MaximumGap(lo)
			if o.Gap < lo || o.Gap > hi {
				t.Fatalf("speed %v: gap %d for %q outside [%d, %d]",
					speed, o.Gap, o.Type.Name, lo, hi)
			}
		}
	}
}

func TestDuplicateRunCap(t *testing.T) {
	s := newTestSpawner(t, 7, false)

	// At max speed all non-collectible types are eligible, so the duplicate
	// cap is the only constraint in play.
	var names []string
	for i := 0; i < 500; i++ {
		s.spawn(1.3)
		obs := s.Obstacles()
		names = append(names, obs[len(obs)-1].Type.Name)
	}

	run := 1
	for i := 1; i < len(names); i++ {
		if names[i] == names[i-1] {
			run++
		} else {
			run = 1
		}
		if run > s.cfg.MaxDuplication {
			t.Fatalf("%d consecutive %q spawns, cap is %d", run, names[i], s.cfg.MaxDuplication)
		}
	}
}

func TestSpeedGateHoldsBackTypes(t *testing.T) {
	s := newTestSpawner(t, 3, false)

	// At base speed only cactus_small qualifies.
	for i := 0; i < 50; i++ {
		s.spawn(0.6)
	}
	for _, o := range s.Obstacles() {
		if o.Type.Name != "cactus_small" {
			t.Fatalf("type %q spawned below its minimum speed", o.Type.Name)
		}
	}
}

func TestCollectiblesGatedByFlag(t *testing.T) {
	off := newTestSpawner(t, 11, false)
	for i := 0; i < 300; i++ {
		off.spawn(1.3)
	}
	for _, o := range off.Obstacles() {
		if o.Type.Collectible {
			t.Fatal("collectible spawned with the feature disabled")
		}
	}

	on := newTestSpawner(t, 11, true)
	seen := false
	for i := 0; i < 300; i++ {
		on.spawn(1.3)
	}
	for _, o := range on.Obstacles() {
		if o.Type.Collectible {
			seen = true
			break
		}
	}
	if !seen {
		t.Error("collectible never spawned with the feature enabled")
	}
}

func TestSingleTypeRelaxesDuplicateCap(t *testing.T) {
	// With one type every spawn is a duplicate; the bounded retry must
	// relax the cap instead of spinning forever.
	types := []ObstacleType{{Name: "only", Width: 3, Height: 3, MinGap: 24}}
	cfg := testSpawnerConfig()
	cfg.MaxDuplication = 1

	s, err := NewSpawner(1, 80, types, cfg, false, 0.6)
	if err != nil {
		t.Fatalf("NewSpawner() failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		s.spawn(0.6)
	}
	if len(s.Obstacles()) != 10 {
		t.Errorf("expected 10 spawns, got %d", len(s.Obstacles()))
	}
}

func TestUnusableTypeSetRejected(t *testing.T) {
	tests := []struct {
		name  string
		types []ObstacleType
	}{
		{"empty", nil},
		{"only collectibles", []ObstacleType{
			{Name: "coin", Width: 3, Height: 3, MinGap: 24, Collectible: true},
		}},
		{"all gated above base speed", []ObstacleType{
			{Name: "fast", Width: 3, Height: 3, MinGap: 24, MinSpeed: 5.0},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSpawner(1, 80, tc.types, testSpawnerConfig(), false, 0.6); err == nil {
				t.Error("expected construction error, got nil")
			}
		})
	}
}

func TestUpdateScrollsSpawnsAndCulls(t *testing.T) {
	s := newTestSpawner(t, 99, false)
	speed := 0.8

	for tick := 0; tick < 2000; tick++ {
		s.Update(speed)

		obs := s.Obstacles()
		if len(obs) > s.cfg.MaxActive {
			t.Fatalf("tick %d: %d obstacles exceed max_active %d", tick, len(obs), s.cfg.MaxActive)
		}
		for i, o := range obs {
			if o.X+float64(o.Type.Width) <= 0 {
				t.Fatalf("tick %d: off-screen obstacle not culled (x=%v)", tick, o.X)
			}
			if i > 0 {
				prev := obs[i-1]
				spacing := o.X - (prev.X + float64(prev.Type.Width))
				if spacing < float64(prev.Gap)-1e-9 {
					t.Fatalf("tick %d: spacing %.2f below reserved gap %d", tick, spacing, prev.Gap)
				}
			}
		}
	}

	if len(s.Obstacles()) == 0 {
		t.Error("expected live obstacles after a long run")
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	a := newTestSpawner(t, 1234, false)
	b := newTestSpawner(t, 1234, false)

	for i := 0; i < 500; i++ {
		a.Update(1.0)
		b.Update(1.0)
	}

	oa, ob := a.Obstacles(), b.Obstacles()
	if len(oa) != len(ob) {
		t.Fatalf("obstacle count mismatch: %d vs %d", len(oa), len(ob))
	}
	for i := range oa {
		if oa[i].Type.Name != ob[i].Type.Name || oa[i].X != ob[i].X || oa[i].Gap != ob[i].Gap {
			t.Errorf("obstacle %d mismatch: %+v vs %+v", i, oa[i], ob[i])
		}
	}
}
