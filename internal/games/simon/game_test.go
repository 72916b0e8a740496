package simon

import (
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{Seed: 8, ScreenW: 80, ScreenH: 24, Difficulty: core.Medium}
}

func newStarted(t *testing.T, rt core.RuntimeConfig) *Game {
	t.Helper()
	g := New()
	g.Reset(rt)
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	if g.Phase() != core.PhasePlaying {
		t.Fatalf("expected playing, got %v", g.Phase())
	}
	return g
}

// waitForInput steps until the player is on turn.
func waitForInput(t *testing.T, g *Game) {
	t.Helper()
	in := core.NewInputFrame()
	for i := 0; i < 10000 && g.mode != modeInput; i++ {
		g.Step(in)
	}
	if g.mode != modeInput {
		t.Fatal("playback never finished")
	}
}

// repeat presses the whole sequence back.
func repeat(g *Game) {
	for _, pad := range g.sequence {
		in := core.NewInputFrame()
		in.Set(padActions[pad])
		g.Step(in)
	}
}

func TestPlaybackEmitsPadSounds(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	res := g.Step(in)

	want := padSound(g.sequence[0])
	found := false
	for _, s := range res.Sounds {
		if s == want {
			found = true
		}
	}
	if !found {
		t.Errorf("sounds = %v, want %s", res.Sounds, want)
	}
}

func TestCorrectRepeatScoresRound(t *testing.T) {
	g := newStarted(t, testConfig())
	waitForInput(t, g)

	repeat(g)

	if g.Score() != g.cfg.Scoring.Round {
		t.Errorf("Score = %d, want %d", g.Score(), g.cfg.Scoring.Round)
	}
	if g.mode != modeBetween {
		t.Fatalf("mode = %v, want between rounds", g.mode)
	}

	waitForInput(t, g)
	if len(g.sequence) != 2 {
		t.Errorf("sequence length = %d, want 2", len(g.sequence))
	}
}

func TestScoreIsRoundsTimesTen(t *testing.T) {
	g := newStarted(t, testConfig())
	for round := 1; round <= 4; round++ {
		waitForInput(t, g)
		repeat(g)
	}
	if g.Score() != 40 {
		t.Errorf("Score = %d, want 40", g.Score())
	}
}

func TestWrongPadEndsGame(t *testing.T) {
	g := newStarted(t, testConfig())
	waitForInput(t, g)

	wrong := (g.sequence[0] + 1) % numPads
	in := core.NewInputFrame()
	in.Set(padActions[wrong])
	g.Step(in)

	if st := g.State(); !st.GameOver() || st.Won {
		t.Errorf("expected a loss, got %+v", st)
	}
}

func TestInputTimeoutEndsGame(t *testing.T) {
	g := newStarted(t, testConfig())
	waitForInput(t, g)

	in := core.NewInputFrame()
	for i := 0; i < g.timeout; i++ {
		g.Step(in)
	}

	if !g.State().GameOver() {
		t.Error("expected game over after the input timeout")
	}
}

func TestInputIgnoredDuringPlayback(t *testing.T) {
	g := newStarted(t, testConfig())
	if g.mode != modeShowing {
		t.Fatalf("mode = %v, want showing", g.mode)
	}

	wrong := (g.sequence[0] + 1) % numPads
	in := core.NewInputFrame()
	in.Set(padActions[wrong])
	g.Step(in)

	if g.State().GameOver() {
		t.Error("press during playback should be ignored")
	}
}

func TestReachingMaxRoundsWins(t *testing.T) {
	g := newStarted(t, testConfig())
	g.cfg.Scoring.MaxRounds = 2
	for round := 0; round < 2; round++ {
		waitForInput(t, g)
		repeat(g)
	}

	if st := g.State(); !st.GameOver() || !st.Won {
		t.Errorf("expected a win, got %+v", st)
	}
}

func TestDifficultyScalesTiming(t *testing.T) {
	rt := testConfig()
	rt.Difficulty = config.Lookup("hard")
	hard := newStarted(t, rt)
	medium := newStarted(t, testConfig())

	if hard.flashTicks >= medium.flashTicks {
		t.Errorf("hard flash %d should be shorter than medium %d", hard.flashTicks, medium.flashTicks)
	}
	if hard.timeout >= medium.timeout {
		t.Errorf("hard timeout %d should be shorter than medium %d", hard.timeout, medium.timeout)
	}
}
