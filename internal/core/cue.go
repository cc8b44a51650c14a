package core

// Cue is a discrete feedback event emitted by a game step. Games only report
// that something happened; the platform decides how to present it (terminal
// bell, flash, nothing). No data flows back into the simulation.
type Cue int

const (
	CueNone Cue = iota
	CueJump             // player left the ground
	CueCollect          // collectible consumed
	CueEat              // snake ate food
	CueAchievement      // score milestone reached
	CueCrash            // terminal collision
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCollect:
		return "collect"
	case CueEat:
		return "eat"
	case CueAchievement:
		return "achievement"
	case CueCrash:
		return "crash"
	default:
		return "none"
	}
}
