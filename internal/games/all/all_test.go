package all

import (
	"errors"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// boarded is implemented by every game that lays out a board.
type boarded interface {
	Board() core.Rect
	TooSmall() bool
}

func newGame(t *testing.T, id string, w, h int) registry.Game {
	t.Helper()
	g, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%q): %v", id, err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, FrameRate: 60, Seed: 42, Difficulty: core.Medium})
	return g
}

func TestAllGamesRegistered(t *testing.T) {
	for _, id := range IDs {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
		info, _ := registry.Info(id)
		if info.Title == "" {
			t.Errorf("game %q has no title", id)
		}
	}
	if got := len(registry.List()); got != len(IDs) {
		t.Errorf("registry has %d games, want %d", got, len(IDs))
	}
}

func TestGamesStartIdle(t *testing.T) {
	for _, id := range IDs {
		t.Run(id, func(t *testing.T) {
			g := newGame(t, id, 80, 24)
			st := g.State()
			if st.Phase != core.PhaseIdle || st.Score != 0 {
				t.Errorf("state after Reset = %+v, want idle with zero score", st)
			}

			// Steps without a start input do not leave idle
			in := core.NewInputFrame()
			in.Set(core.ActionLeft)
			for i := 0; i < 30; i++ {
				g.Step(in)
			}
			if g.State().Phase != core.PhaseIdle {
				t.Errorf("phase = %v, want idle", g.State().Phase)
			}
		})
	}
}

func TestBoardFitsScreen(t *testing.T) {
	for _, id := range IDs {
		for w := 40; w <= 120; w += 8 {
			g := newGame(t, id, w, 24)
			b, ok := g.(boarded)
			if !ok {
				t.Fatalf("%s does not report its board", id)
			}
			if b.TooSmall() {
				t.Errorf("%s: %dx24 reported too small", id, w)
				continue
			}
			play := core.NewRect(0, hud.Height, w, 24-hud.Height)
			if !b.Board().Inside(play) {
				t.Errorf("%s: board %+v overflows %+v at width %d", id, b.Board(), play, w)
			}
		}
	}
}

func TestTinyScreenShowsError(t *testing.T) {
	for _, id := range IDs {
		t.Run(id, func(t *testing.T) {
			g := newGame(t, id, 12, 6)
			b := g.(boarded)
			if !b.TooSmall() {
				t.Fatal("expected too small")
			}
			screen := core.NewScreen(12, 6)
			g.Render(screen)

			in := core.NewInputFrame()
			in.Set(core.ActionConfirm)
			g.Step(in)
			if g.State().Phase != core.PhaseIdle {
				t.Error("too-small game must not start")
			}
		})
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	for _, id := range IDs {
		t.Run(id, func(t *testing.T) {
			g := newGame(t, id, 80, 24)
			in := core.NewInputFrame()
			in.Set(core.ActionConfirm)
			g.Step(in)
			in.Clear()
			for i := 0; i < 90; i++ {
				g.Step(in)
			}

			before := g.State()
			a := core.NewScreen(80, 24)
			b := core.NewScreen(80, 24)
			g.Render(a)
			g.Render(b)

			if a.String() != b.String() {
				t.Error("two renders of the same state differ")
			}
			if g.State() != before {
				t.Error("Render changed the game state")
			}
		})
	}
}

func TestLifecycle(t *testing.T) {
	for _, id := range IDs {
		t.Run(id, func(t *testing.T) {
			g := newGame(t, id, 80, 24)
			in := core.NewInputFrame()
			in.Set(core.ActionConfirm)
			res := g.Step(in)
			if res.State.Phase != core.PhasePlaying {
				t.Fatalf("phase = %v, want playing", res.State.Phase)
			}
			if len(res.Sounds) == 0 || res.Sounds[0] != core.SoundStart {
				t.Errorf("sounds = %v, want start cue first", res.Sounds)
			}

			if err := g.SetDifficulty(config.Lookup("hard")); !errors.Is(err, core.ErrDifficultyLocked) {
				t.Errorf("SetDifficulty while playing = %v, want ErrDifficultyLocked", err)
			}

			in.Clear()
			in.Set(core.ActionPause)
			g.Step(in)
			if !g.State().Paused() {
				t.Fatal("expected paused")
			}
			paused := g.State()
			in.Clear()
			for i := 0; i < 120; i++ {
				g.Step(in)
			}
			if g.State() != paused {
				t.Errorf("state changed while paused: %+v -> %+v", paused, g.State())
			}

			in.Set(core.ActionPause)
			g.Step(in)
			if g.State().Phase != core.PhasePlaying {
				t.Error("expected playing after resume")
			}
		})
	}
}

func TestRunsToCompletionWithoutPanic(t *testing.T) {
	for _, id := range IDs {
		t.Run(id, func(t *testing.T) {
			g := newGame(t, id, 80, 24)
			in := core.NewInputFrame()
			in.Set(core.ActionConfirm)
			g.Step(in)

			actions := []core.Action{core.ActionLeft, core.ActionFire, core.ActionUp, core.ActionRight, core.ActionDown, core.ActionConfirm}
			screen := core.NewScreen(80, 24)
			for i := 0; i < 20000 && !g.State().GameOver(); i++ {
				in.Clear()
				in.Set(actions[i%len(actions)])
				g.Step(in)
				if i%500 == 0 {
					g.Render(screen)
				}
			}
			g.Render(screen)
		})
	}
}
