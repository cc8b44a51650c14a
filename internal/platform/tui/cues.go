package tui

import (
	"io"
	"os"

	"github.com/okulov/runcade/internal/core"
)

// CueSink receives feedback cues emitted by a game step. Implementations
// decide how a cue is surfaced to the player (bell, nothing, etc).
type CueSink interface {
	Play(cue core.Cue)
}

// NopSink discards all cues. Used for SSH sessions, where writing to the
// server's stdout would not reach the player's terminal.
type NopSink struct{}

// Play implements CueSink.
func (NopSink) Play(core.Cue) {}

// BellSink rings the terminal bell for the cues that warrant immediate
// player feedback. Quieter cues (jumps, plain collects) stay silent so the
// bell keeps meaning something.
type BellSink struct {
	w io.Writer
}

// NewBellSink creates a bell sink writing to stdout.
func NewBellSink() *BellSink {
	return &BellSink{w: os.Stdout}
}

// Play implements CueSink.
func (b *BellSink) Play(cue core.Cue) {
	switch cue {
	case core.CueCrash, core.CueAchievement:
		//nolint:errcheck // Best-effort bell, game continues regardless
		b.w.Write([]byte("\a"))
	}
}
