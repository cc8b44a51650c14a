package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/okulov/runcade/internal/core"
	"github.com/okulov/runcade/internal/storage"

	// Register games so the menu has entries
	_ "github.com/okulov/runcade/internal/games/runner"
	_ "github.com/okulov/runcade/internal/games/snake"
)

func TestMenuShowsHighScoreFromStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := store.SaveScore("runner", 123); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	view := m.View()

	// The per-game best comes from the shared strings table
	if !strings.Contains(view, "Best: 123") {
		t.Errorf("menu should show the stored high score, got:\n%s", view)
	}
}

func TestMenuWithoutStoreOmitsHighScores(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if strings.Contains(m.View(), "Best:") {
		t.Error("menu without a store should not render best scores")
	}
}
