package whackamole

import (
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{Seed: 4, ScreenW: 80, ScreenH: 24, Difficulty: core.Medium}
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

func TestFiveHitsScoreFifty(t *testing.T) {
	g := newStarted(t, testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	for i := 0; i < 5; i++ {
		g.moles[g.cursor] = g.visibleTicks
		g.Step(in)
	}

	if g.Score() != 50 {
		t.Fatalf("Score = %d, want 50", g.Score())
	}
	if g.hits != 5 {
		t.Errorf("hits = %d, want 5", g.hits)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !screen.Contains("Score: 50") {
		t.Errorf("HUD missing score:\n%s", screen.String())
	}
}

func TestWhackEmptyHoleMisses(t *testing.T) {
	g := newStarted(t, testConfig())
	for i := range g.moles {
		g.moles[i] = 0
	}

	g.whack(0)

	if g.misses != 1 || g.Score() != 0 {
		t.Errorf("misses = %d score = %d, want 1 and 0", g.misses, g.Score())
	}
}

func TestMoleHidesAfterVisibleTicks(t *testing.T) {
	g := newStarted(t, testConfig())
	g.spawnTicks = 1 << 30 // no new moles
	for i := range g.moles {
		g.moles[i] = 0
	}
	g.moles[0] = 3

	in := core.NewInputFrame()
	for i := 0; i < 3; i++ {
		g.Step(in)
	}
	if g.moles[0] != 0 {
		t.Errorf("mole still up after its visible window: %d", g.moles[0])
	}
}

func TestSpawnRespectsMaxMoles(t *testing.T) {
	g := newStarted(t, testConfig())
	for i := 0; i < 20; i++ {
		g.spawn()
	}
	up := 0
	for _, t := range g.moles {
		if t > 0 {
			up++
		}
	}
	if up != g.cfg.Board.MaxMoles {
		t.Errorf("moles up = %d, want %d", up, g.cfg.Board.MaxMoles)
	}
}

func TestRoundTimerEndsGame(t *testing.T) {
	g := newStarted(t, testConfig())
	g.timeLeft = 2

	in := core.NewInputFrame()
	g.Step(in)
	if g.State().GameOver() {
		t.Fatal("game ended early")
	}
	g.Step(in)
	if !g.State().GameOver() {
		t.Fatal("expected game over when the round timer runs out")
	}
}

func TestDifficultyScaling(t *testing.T) {
	tests := []struct {
		level      string
		wantLevel  core.Level
		longerThan bool // round longer than medium
	}{
		{"easy", core.LevelEasy, true},
		{"hard", core.LevelHard, false},
	}

	medium := newStarted(t, testConfig())
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			rt := testConfig()
			rt.Difficulty = config.Lookup(tt.level)
			g := newStarted(t, rt)

			if g.Difficulty().Level != tt.wantLevel {
				t.Errorf("Level = %s, want %s", g.Difficulty().Level, tt.wantLevel)
			}
			if longer := g.timeLeft > medium.timeLeft; longer != tt.longerThan {
				t.Errorf("timeLeft = %d vs medium %d", g.timeLeft, medium.timeLeft)
			}
		})
	}
}

func TestUnknownDifficultyFallsBackToMedium(t *testing.T) {
	rt := testConfig()
	rt.Difficulty = config.Lookup("nightmare")
	g := newStarted(t, rt)

	if g.Difficulty() != core.Medium {
		t.Errorf("Difficulty = %+v, want medium", g.Difficulty())
	}
	if g.spawnTicks != g.cfg.Timing.SpawnTicks {
		t.Errorf("spawnTicks = %d, want base %d", g.spawnTicks, g.cfg.Timing.SpawnTicks)
	}
}

func TestPausedTimerFrozen(t *testing.T) {
	g := newStarted(t, testConfig())
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	left := g.timeLeft

	in.Clear()
	for i := 0; i < 100; i++ {
		g.Step(in)
	}
	if g.timeLeft != left {
		t.Errorf("timeLeft changed while paused: %d -> %d", left, g.timeLeft)
	}
}
