// Package whackamole implements Whack-a-Mole on a grid of holes.
package whackamole

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// SoundWhack is emitted when a mole is hit.
const SoundWhack core.Sound = "whack"

const (
	holeW = 10
	holeH = 4
)

// Game implements Whack-a-Mole.
type Game struct {
	core.Session

	cfg     config.WhackConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	ramp    config.Ramp

	moles        []int // Ticks each hole's mole stays up, 0 when the hole is empty
	cols, rows   int
	cursor       int
	timeLeft     int
	spawnTicker  int
	spawnTicks   int
	visibleTicks int
	hits         int
	misses       int
	tick         int

	board    core.Rect
	tooSmall bool
}

// New creates a new Whack-a-Mole game.
func New() *Game {
	return &Game{cfg: config.DefaultWhackConfig()}
}

func init() {
	registry.Register("whackamole", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "whackamole"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Whack-a-Mole"
}

// ScoreOrder reports that higher scores are better.
func (g *Game) ScoreOrder() core.ScoreOrder {
	return core.HigherIsBetter
}

// Reset constructs the game in the idle phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadWhack(rt.ConfigPath)
	if err != nil {
		cfg = config.DefaultWhackConfig()
	}
	g.cfg = cfg
	g.ramp = config.NewRamp(cfg.Ramp)
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))

	g.Idle()
	if rt.Difficulty.Level != "" {
		_ = g.SetDifficulty(rt.Difficulty)
	}

	g.cols = max(cfg.Board.Cols, 1)
	g.rows = max(cfg.Board.Rows, 1)
	w := g.cols * holeW
	h := g.rows * holeH
	g.tooSmall = w > rt.ScreenW || h > rt.ScreenH-hud.Height
	g.board = hud.Arena(core.NewRect(0, 0, rt.ScreenW, rt.ScreenH), w, h)

	g.setup()
}

func (g *Game) begin() {
	g.setup()
}

// setup empties the holes and applies the difficulty.
func (g *Game) setup() {
	d := g.Difficulty()
	g.moles = make([]int, g.cols*g.rows)
	g.cursor = len(g.moles) / 2
	g.timeLeft = d.Duration(g.cfg.Timing.RoundTicks)
	g.spawnTicks = d.Interval(g.cfg.Timing.SpawnTicks)
	g.visibleTicks = d.Duration(g.cfg.Timing.VisibleTicks)
	g.spawnTicker = 0
	g.hits = 0
	g.misses = 0
	g.tick = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || !g.Control(in, g.begin) {
		return g.Result(-1, g.timeLeft)
	}

	g.tick++
	g.moveCursor(in)
	if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
		g.whack(g.cursor)
	}

	for i, t := range g.moles {
		if t > 0 {
			g.moles[i] = t - 1
		}
	}

	g.spawnTicker++
	interval := g.ramp.Interval(g.spawnTicks, 1, g.Score(), g.tick)
	if g.spawnTicker >= interval {
		g.spawnTicker = 0
		g.spawn()
	}

	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.End(false)
	}

	return g.Result(-1, g.timeLeft)
}

func (g *Game) moveCursor(in core.InputFrame) {
	x, y := g.cursor%g.cols, g.cursor/g.cols
	switch {
	case in.Has(core.ActionLeft):
		x = max(x-1, 0)
	case in.Has(core.ActionRight):
		x = min(x+1, g.cols-1)
	case in.Has(core.ActionUp):
		y = max(y-1, 0)
	case in.Has(core.ActionDown):
		y = min(y+1, g.rows-1)
	}
	g.cursor = y*g.cols + x
}

// spawn raises a mole in a random empty hole, up to the mole limit.
func (g *Game) spawn() {
	var empty []int
	up := 0
	for i, t := range g.moles {
		if t > 0 {
			up++
		} else {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 || (g.cfg.Board.MaxMoles > 0 && up >= g.cfg.Board.MaxMoles) {
		return
	}
	g.moles[empty[g.rng.Intn(len(empty))]] = g.visibleTicks
}

// whack strikes hole i.
func (g *Game) whack(i int) {
	if g.moles[i] > 0 {
		g.moles[i] = 0
		g.hits++
		g.AddScore(g.cfg.Scoring.Hit)
		g.Emit(SoundWhack)
		return
	}
	g.misses++
	g.SetScore(max(g.Score()-g.cfg.Scoring.Miss, 0))
	g.Emit(core.SoundMiss)
}

// Render draws the holes and moles.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		hud.TooSmall(dst, g.board.W, g.board.H+hud.Height)
		return
	}

	hud.Header(dst, "Whack-a-Mole", g.Score(),
		"Time: "+hud.Seconds(g.timeLeft),
		fmt.Sprintf("Hits: %d", g.hits))

	for i, t := range g.moles {
		x := g.board.X + (i%g.cols)*holeW
		y := g.board.Y + (i/g.cols)*holeH

		if t > 0 {
			dst.DrawTextColored(x+2, y, " ___ ", core.ColorOrange)
			dst.DrawTextColored(x+2, y+1, "(o.o)", core.ColorOrange)
		}
		dst.DrawTextColored(x+1, y+2, "(_____)", core.ColorGray)

		if i == g.cursor && g.Playing() {
			dst.SetColored(x, y+1, '>', core.ColorBrightYellow)
			dst.SetColored(x+holeW-2, y+1, '<', core.ColorBrightYellow)
		}
	}

	hud.Overlay(dst, "Whack-a-Mole", g.State(), g.Difficulty().Level, "Arrows aim  Space whack")
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.Session.State(-1, g.timeLeft)
}

// Board returns the screen rectangle of the holes.
func (g *Game) Board() core.Rect {
	return g.board
}

// TooSmall reports whether the screen cannot fit the holes.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
