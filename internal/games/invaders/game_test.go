package invaders

import (
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{Seed: 3, ScreenW: 80, ScreenH: 24, Difficulty: core.Medium}
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

func TestShotDestroysInvader(t *testing.T) {
	g := newStarted(t, testConfig())
	r, c := g.cfg.Formation.Rows-1, 0
	p := g.invaderPos(r, c)
	g.shot = &Shot{X: p.X + 1, Y: p.Y + 1}
	g.shot.timer = g.cfg.Player.ShotTicks - 1

	g.updatePlayerShot()

	if g.alive[r][c] {
		t.Fatal("invader should be destroyed")
	}
	if want := g.cfg.Scoring.Rows[r]; g.Score() != want {
		t.Errorf("Score = %d, want %d", g.Score(), want)
	}
	if g.shot != nil {
		t.Error("shot should be consumed")
	}
}

func TestClearingWaveSpawnsFasterWave(t *testing.T) {
	g := newStarted(t, testConfig())
	before := g.marchTicks
	for r := range g.alive {
		for c := range g.alive[r] {
			g.alive[r][c] = false
		}
	}
	g.alive[0][0] = true
	p := g.invaderPos(0, 0)
	g.shot = &Shot{X: p.X, Y: p.Y}

	g.checkShotHit()

	if g.wave != 1 {
		t.Fatalf("wave = %d, want 1", g.wave)
	}
	if g.remaining() != g.total() {
		t.Errorf("new wave has %d invaders, want %d", g.remaining(), g.total())
	}
	if g.marchTicks >= before {
		t.Errorf("march interval %d should be shorter than %d", g.marchTicks, before)
	}
	want := g.cfg.Scoring.Rows[0] + g.cfg.Scoring.WaveBonus
	if g.Score() != want {
		t.Errorf("Score = %d, want %d", g.Score(), want)
	}
}

func TestEnemyShotCostsLife(t *testing.T) {
	g := newStarted(t, testConfig())
	lives := g.lives
	g.enemyShots = []*Shot{{X: g.playerX, Y: g.playerY()}}

	g.updateEnemyShots()

	if g.lives != lives-1 {
		t.Errorf("lives = %d, want %d", g.lives, lives-1)
	}
	if g.invulnerable == 0 {
		t.Error("expected invulnerability after a hit")
	}

	// A second hit while invulnerable is ignored
	g.enemyShots = []*Shot{{X: g.playerX, Y: g.playerY()}}
	g.updateEnemyShots()
	if g.lives != lives-1 {
		t.Errorf("lives = %d after invulnerable hit, want %d", g.lives, lives-1)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g := newStarted(t, testConfig())
	g.lives = 1
	g.enemyShots = []*Shot{{X: g.playerX, Y: g.playerY()}}

	g.updateEnemyShots()

	if !g.State().GameOver() {
		t.Fatal("expected game over")
	}
}

func TestFormationReachingGroundEndsGame(t *testing.T) {
	g := newStarted(t, testConfig())
	g.originY = g.playerY() - (g.cfg.Formation.Rows-1)*g.cfg.Formation.SpacingY - 1
	g.dir = 1
	// Force the next march to step down
	_, right, _ := g.extent()
	g.originX += g.field.W - 2 - right

	g.march()

	if !g.State().GameOver() {
		t.Fatal("formation reached the cannon but game continues")
	}
}

func TestMarchReversesAtEdge(t *testing.T) {
	g := newStarted(t, testConfig())
	y := g.originY
	_, right, _ := g.extent()
	g.originX += g.field.W - 2 - right

	g.march()

	if g.dir != -1 {
		t.Errorf("dir = %d, want -1", g.dir)
	}
	if g.originY != y+1 {
		t.Errorf("originY = %d, want %d", g.originY, y+1)
	}
}

func TestDifficultyScalesMarch(t *testing.T) {
	rt := testConfig()
	rt.Difficulty = config.Lookup("easy")
	easy := newStarted(t, rt)
	medium := newStarted(t, testConfig())

	if easy.marchTicks <= medium.marchTicks {
		t.Errorf("easy march %d should be slower than medium %d", easy.marchTicks, medium.marchTicks)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newStarted(t, testConfig())
	g2 := newStarted(t, testConfig())

	in := core.NewInputFrame()
	for i := 0; i < 900; i++ {
		in.Clear()
		if i%40 == 0 {
			in.Set(core.ActionFire)
		}
		if (i/100)%2 == 0 {
			in.Hold(core.ActionLeft)
		} else {
			in.Hold(core.ActionRight)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", s1, s2)
	}
}
