// Package puzzle implements a drag-drop picture puzzle: pick up a piece and
// drop it on another slot to swap them until every piece is home.
//
// The score is the number of seconds taken to solve the board, so lower
// is better.
package puzzle

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// Sound cues specific to the puzzle.
const (
	SoundPick core.Sound = "pick"
	SoundDrop core.Sound = "drop"
)

const (
	tileW = 7
	tileH = 3
)

// Game implements the drag-drop puzzle.
type Game struct {
	core.Session

	cfg     config.PuzzleConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	slots    []int // slots[i] is the piece in slot i; piece p belongs in slot p
	cols     int
	rows     int
	cursor   int
	held     int // Slot the held piece was picked from, -1 if none
	moves    int
	elapsed  int
	timeLeft int

	board    core.Rect
	tooSmall bool
}

// New creates a new puzzle game.
func New() *Game {
	return &Game{cfg: config.DefaultPuzzleConfig(), held: -1}
}

func init() {
	registry.Register("puzzle", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "puzzle"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Drag & Drop Puzzle"
}

// ScoreOrder reports that fewer seconds are better.
func (g *Game) ScoreOrder() core.ScoreOrder {
	return core.LowerIsBetter
}

// Reset constructs the game in the idle phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadPuzzle(rt.ConfigPath)
	if err != nil {
		cfg = config.DefaultPuzzleConfig()
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
	w := g.cols * tileW
	h := g.rows * tileH
	g.tooSmall = w > rt.ScreenW || h > rt.ScreenH-hud.Height
	g.board = hud.Arena(core.NewRect(0, 0, rt.ScreenW, rt.ScreenH), w, h)

	g.setup()
}

func (g *Game) begin() {
	g.setup()
	g.shuffle()
}

// setup lays the pieces out solved and resets the clock.
func (g *Game) setup() {
	n := g.cols * g.rows
	g.slots = make([]int, n)
	for i := range g.slots {
		g.slots[i] = i
	}
	g.cursor = 0
	g.held = -1
	g.moves = 0
	g.elapsed = 0
	g.timeLeft = g.Difficulty().Duration(g.cfg.Gameplay.TimeLimit)
}

// shuffle scrambles the board with random swaps, never leaving it solved.
func (g *Game) shuffle() {
	n := len(g.slots)
	for range g.cfg.Gameplay.ShuffleSwaps {
		i, j := g.rng.Intn(n), g.rng.Intn(n)
		g.slots[i], g.slots[j] = g.slots[j], g.slots[i]
	}
	if g.solved() {
		g.slots[0], g.slots[1] = g.slots[1], g.slots[0]
	}
}

func (g *Game) solved() bool {
	for i, p := range g.slots {
		if p != i {
			return false
		}
	}
	return true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || !g.Control(in, g.begin) {
		return g.Result(-1, g.timeLeft)
	}

	g.elapsed++
	g.moveCursor(in)
	if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
		g.pickOrDrop()
	}
	if !g.Playing() {
		return g.Result(-1, g.timeLeft)
	}

	g.SetScore(g.seconds())
	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.End(false)
	}

	return g.Result(-1, g.timeLeft)
}

// seconds returns the elapsed time in whole seconds, rounded up.
func (g *Game) seconds() int {
	return (g.elapsed + 59) / 60
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

// pickOrDrop picks up the piece under the cursor, or drops the held piece
// there by swapping the two slots. Dropping on the origin cancels.
func (g *Game) pickOrDrop() {
	if g.held < 0 {
		g.held = g.cursor
		g.Emit(SoundPick)
		return
	}

	from := g.held
	g.held = -1
	if from == g.cursor {
		return
	}
	g.slots[from], g.slots[g.cursor] = g.slots[g.cursor], g.slots[from]
	g.moves++
	g.Emit(SoundDrop)

	if g.solved() {
		g.SetScore(g.seconds())
		g.End(true)
	}
}

// Render draws the puzzle board.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		hud.TooSmall(dst, g.board.W, g.board.H+hud.Height)
		return
	}

	hud.Header(dst, "Puzzle", g.Score(),
		"Left: "+hud.Seconds(g.timeLeft),
		fmt.Sprintf("Moves: %d", g.moves))

	for slot, piece := range g.slots {
		x := g.board.X + (slot%g.cols)*tileW
		y := g.board.Y + (slot/g.cols)*tileH
		r := core.NewRect(x, y, tileW-1, tileH)

		border := core.ColorGray
		switch {
		case slot == g.held:
			border = core.ColorBrightMagenta
		case slot == g.cursor && g.Playing():
			border = core.ColorBrightYellow
		}
		dst.DrawBoxColored(r, border)

		label := fmt.Sprintf("%d", piece+1)
		color := core.CycleColor(piece / g.cols)
		if piece == slot && g.Phase() != core.PhaseIdle {
			color = core.ColorBrightGreen
		}
		dst.DrawTextColored(x+(tileW-1-len(label))/2, y+1, label, color)
	}

	hud.Overlay(dst, "Puzzle", g.State(), g.Difficulty().Level, "Arrows move  Enter pick/drop")
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.Session.State(-1, g.timeLeft)
}

// Board returns the screen rectangle of the puzzle.
func (g *Game) Board() core.Rect {
	return g.board
}

// TooSmall reports whether the screen cannot fit the puzzle.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
