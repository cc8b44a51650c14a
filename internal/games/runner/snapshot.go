package runner

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      int
	Phase     Phase
	Score     int
	Speed     float64
	Distance  float64
	Bonus     int
	PlayerY   float64
	Grounded  bool
	Pose      Pose
	Obstacles int
	FirstX    float64 // X of the nearest obstacle, 0 when none
	FirstType string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tickCount,
		Phase:    g.phase,
		Score:    g.score(),
		Speed:    g.speed,
		Distance: g.distance,
		Bonus:    g.bonus,
	}
	if g.player != nil {
		s.PlayerY = g.player.Y()
		s.Grounded = g.player.Grounded()
		s.Pose = g.player.Pose()
	}
	if g.spawner != nil {
		obs := g.spawner.Obstacles()
		s.Obstacles = len(obs)
		if len(obs) > 0 {
			s.FirstX = obs[0].X
			s.FirstType = obs[0].Type.Name
		}
	}
	return s
}
