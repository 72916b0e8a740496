package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

type stubGame struct {
	core.Session
	id string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             { g.Idle() }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return g.Result(-1, -1) }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return g.Session.State(-1, -1) }
func (g *stubGame) ScoreOrder() core.ScoreOrder          { return core.LowerIsBetter }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game does not exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	info, ok := Info("zz_stub")
	if !ok || info.Title != "Stub zz_stub" || info.Order != core.LowerIsBetter {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	found := false
	for _, gi := range List() {
		if gi.ID == "zz_stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() does not include the registered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
}
