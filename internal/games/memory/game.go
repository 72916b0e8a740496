// Package memory implements Memory Match: flip cards two at a time and
// find every pair before the clock runs out.
package memory

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// Sound cues specific to Memory Match.
const (
	SoundFlip  core.Sound = "flip"
	SoundMatch core.Sound = "match"
)

const (
	cardW = 5
	cardH = 3
	gapX  = 1
)

var faces = []rune("ABCDEFGHJKLMNPQRSTUVWXYZ")

// Card is one tile of the board.
type Card struct {
	Face    rune
	Up      bool
	Matched bool
}

// Game implements Memory Match.
type Game struct {
	core.Session

	cfg     config.MemoryConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	cards    []Card
	cols     int
	rows     int
	cursor   int
	first    int // Index of the first face-up card, -1 if none
	locked   bool
	pairs    int
	timeLeft int
	tick     uint64

	board    core.Rect
	tooSmall bool
}

// New creates a new Memory Match game.
func New() *Game {
	return &Game{cfg: config.DefaultMemoryConfig(), first: -1}
}

func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory Match"
}

// ScoreOrder reports that higher scores are better.
func (g *Game) ScoreOrder() core.ScoreOrder {
	return core.HigherIsBetter
}

// Reset constructs the game in the idle phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadMemory(rt.ConfigPath)
	if err != nil {
		cfg = config.DefaultMemoryConfig()
	}
	g.cfg = cfg
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))

	g.Idle()
	if rt.Difficulty.Level != "" {
		_ = g.SetDifficulty(rt.Difficulty)
	}

	g.cols = max(cfg.Board.Cols, 2)
	g.rows = max(cfg.Board.Rows, 1)
	if (g.cols*g.rows)%2 != 0 || g.cols*g.rows/2 > len(faces) {
		g.cols, g.rows = 4, 4
	}

	w := g.cols*(cardW+gapX) - gapX
	h := g.rows * cardH
	g.tooSmall = w > rt.ScreenW || h > rt.ScreenH-hud.Height
	g.board = hud.Arena(core.NewRect(0, 0, rt.ScreenW, rt.ScreenH), w, h)

	g.setup()
}

func (g *Game) begin() {
	g.setup()
}

// setup deals a shuffled board face down and starts the clock.
func (g *Game) setup() {
	n := g.cols * g.rows
	g.cards = make([]Card, n)
	for i := range n {
		g.cards[i] = Card{Face: faces[i/2]}
	}
	g.rng.Shuffle(n, func(i, j int) {
		g.cards[i], g.cards[j] = g.cards[j], g.cards[i]
	})

	g.cursor = 0
	g.first = -1
	g.locked = false
	g.pairs = 0
	g.tick = 0
	g.timeLeft = g.Difficulty().Duration(g.cfg.Timing.TimeLimit)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || !g.Control(in, g.begin) {
		return g.Result(-1, g.timeLeft)
	}

	g.tick++
	g.moveCursor(in)
	if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
		g.flip(g.cursor)
	}
	if !g.Playing() {
		return g.Result(-1, g.timeLeft)
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
		x--
	case in.Has(core.ActionRight):
		x++
	case in.Has(core.ActionUp):
		y--
	case in.Has(core.ActionDown):
		y++
	}
	x = (x + g.cols) % g.cols
	y = (y + g.rows) % g.rows
	g.cursor = y*g.cols + x
}

// flip turns card i face up. The second card of a turn either completes a
// pair or hides both after the mismatch delay; input is locked meanwhile.
func (g *Game) flip(i int) {
	c := &g.cards[i]
	if g.locked || c.Up || c.Matched {
		return
	}
	c.Up = true
	g.Emit(SoundFlip)

	if g.first < 0 {
		g.first = i
		return
	}

	a, b := g.first, i
	g.first = -1
	if g.cards[a].Face == g.cards[b].Face {
		g.cards[a].Matched = true
		g.cards[b].Matched = true
		g.pairs++
		g.AddScore(g.cfg.Scoring.Match)
		g.Emit(SoundMatch)
		if g.pairs == len(g.cards)/2 {
			g.AddScore(g.timeLeft / 60 * g.cfg.Scoring.SecondBonus)
			g.End(true)
		}
		return
	}

	g.locked = true
	g.SetScore(max(g.Score()-g.cfg.Scoring.MismatchPenalty, 0))
	g.Emit(core.SoundMiss)
	g.Timers.After(g.Difficulty().Interval(g.cfg.Timing.MismatchTicks), func() {
		g.cards[a].Up = false
		g.cards[b].Up = false
		g.locked = false
	})
}

// Render draws the card grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		hud.TooSmall(dst, g.board.W, g.board.H+hud.Height)
		return
	}

	hud.Header(dst, "Memory Match", g.Score(),
		"Time: "+hud.Seconds(g.timeLeft),
		fmt.Sprintf("Pairs: %d/%d", g.pairs, len(g.cards)/2))

	for i, c := range g.cards {
		x := g.board.X + (i%g.cols)*(cardW+gapX)
		y := g.board.Y + (i/g.cols)*cardH
		r := core.NewRect(x, y, cardW, cardH)

		border := core.ColorGray
		if i == g.cursor && g.Playing() {
			border = core.ColorBrightYellow
		}
		dst.DrawBoxColored(r, border)

		switch {
		case c.Matched:
			dst.SetColored(x+2, y+1, c.Face, core.ColorGreen)
		case c.Up:
			dst.SetColored(x+2, y+1, c.Face, core.CycleColor(int(c.Face)))
		default:
			dst.DrawTextColored(x+1, y+1, "░░░", core.ColorBlue)
		}
	}

	hud.Overlay(dst, "Memory Match", g.State(), g.Difficulty().Level, "Arrows move  Enter flip")
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.Session.State(-1, g.timeLeft)
}

// Board returns the screen rectangle of the card grid.
func (g *Game) Board() core.Rect {
	return g.board
}

// TooSmall reports whether the screen cannot fit the grid.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
