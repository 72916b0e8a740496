package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

func TestRenderHubCards(t *testing.T) {
	records := []registry.Record{
		{ID: "stub", Title: "Stub", Description: "A test game.", Category: "test"},
		{ID: "missing", Title: "Missing", Description: "Not registered.", Category: "test"},
	}

	out := RenderHub(records, 100, nil)
	for _, want := range []string{"ARCADE HUB", "Stub", "A test game.", "arcade play stub", "Missing", "not installed"} {
		if !strings.Contains(out, want) {
			t.Errorf("hub misses %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "arcade play missing") {
		t.Error("unregistered game offered a play command")
	}
}

func TestRenderHubEmbeddedCatalog(t *testing.T) {
	records, err := registry.LoadCatalog("")
	if err != nil {
		t.Fatal(err)
	}
	out := RenderHub(records, 40, nil)
	for _, r := range records {
		if !strings.Contains(out, r.Title) {
			t.Errorf("hub misses %q", r.Title)
		}
	}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		code string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"s", core.ActionDown},
		{"left", core.ActionLeft},
		{"d", core.ActionRight},
		{" ", core.ActionFire},
		{"enter", core.ActionConfirm},
		{"esc", core.ActionPause},
		{"r", core.ActionRestart},
		{"b", core.ActionBack},
		{"tab", core.ActionNone},
		{"q", core.ActionNone},
		{"x", core.ActionNone},
	}
	for _, tt := range tests {
		if got := km.Action(tt.code); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}

	if level, ok := km.Level("3"); !ok || level != core.LevelHard {
		t.Errorf("Level(3) = %s, %v", level, ok)
	}
	if _, ok := km.Level("4"); ok {
		t.Error("Level(4) should not select a level")
	}
}

func TestRendererKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "red", core.ColorRed)
	s.DrawText(4, 0, "plain")
	s.DrawTextColored(0, 1, "row2", core.ColorOrange)

	out := NewRenderer(nil).Screen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, want := range []string{"red", "plain", "row2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q", want)
		}
	}
}
