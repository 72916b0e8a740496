package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

func scoreStore(t *testing.T, entries ...storage.ScoreEntry) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	return store
}

func boardUpdate(m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestScoreboardOpensOnGame(t *testing.T) {
	store := scoreStore(t,
		storage.ScoreEntry{GameID: "stub", Level: "easy", Score: 40},
		storage.ScoreEntry{GameID: "stub", Level: "hard", Score: 70},
	)

	m := NewScoreboardModel(store, "stub", 100, 30)
	if m.games[m.game].ID != "stub" {
		t.Fatalf("opened on %q, want stub", m.games[m.game].ID)
	}
	if len(m.scores) != 2 {
		t.Fatalf("scores = %d, want 2", len(m.scores))
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Stub (all levels)", "#1", "Level"} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q:\n%s", want, view)
		}
	}
}

func TestScoreboardLevelFilter(t *testing.T) {
	store := scoreStore(t,
		storage.ScoreEntry{GameID: "stub", Level: "easy", Score: 40},
		storage.ScoreEntry{GameID: "stub", Level: "hard", Score: 70},
		storage.ScoreEntry{GameID: "stub", Level: "hard", Score: 20},
	)
	m := NewScoreboardModel(store, "stub", 100, 30)

	want := map[core.Level]int{core.LevelEasy: 1, core.LevelMedium: 0, core.LevelHard: 2, "": 3}
	for range scoreLevels {
		m = boardUpdate(m, keyMsg("d"))
		level := scoreLevels[m.level]
		if len(m.scores) != want[level] {
			t.Errorf("level %q: %d scores, want %d", level, len(m.scores), want[level])
		}
	}
	if m.level != 0 {
		t.Errorf("level filter did not wrap, index %d", m.level)
	}

	m = boardUpdate(m, keyMsg("d"))
	m = boardUpdate(m, keyMsg("d"))
	m = boardUpdate(m, keyMsg("d"))
	if !strings.Contains(m.View(), "(hard)") {
		t.Errorf("title misses the level:\n%s", m.View())
	}
}

func TestScoreboardEmptyAndQuit(t *testing.T) {
	m := NewScoreboardModel(scoreStore(t), "stub", 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Errorf("empty board:\n%s", m.View())
	}

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not return tea.Quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestScoreboardShowsLoadError(t *testing.T) {
	store := scoreStore(t)
	m := NewScoreboardModel(store, "stub", 80, 24)
	m.err = errors.New("disk on fire")
	if !strings.Contains(m.View(), "disk on fire") {
		t.Errorf("error not shown:\n%s", m.View())
	}
}

func TestScoreboardResize(t *testing.T) {
	m := NewScoreboardModel(nil, "stub", 80, 24)
	m = boardUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
	if m.err != nil || len(m.scores) != 0 {
		t.Errorf("nil store should load nothing: %v, %d", m.err, len(m.scores))
	}
}
