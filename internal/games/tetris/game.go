// Package tetris implements falling-block Tetris with a 7-bag randomizer.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// Sound cues specific to Tetris.
const (
	SoundRotate core.Sound = "rotate"
	SoundLock   core.Sound = "lock"
	SoundLine   core.Sound = "line"
)

const (
	cellW      = 2  // Screen columns per well cell
	minWellH   = 12 // Rows below which the well is unplayable
	sidePanelW = 12
	repeatWait = 12 // Ticks a shift or drop key is held before it repeats
	repeatRate = 4
	softTicks  = 3 // Ticks per row while soft dropping
)

// Game implements Tetris.
type Game struct {
	core.Session

	cfg     config.TetrisConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	bag     bag

	well   [][]Kind // -1 for empty
	wellW  int
	wellH  int
	piece  Piece
	next   Kind
	lines  int
	level  int
	tick   uint64
	locked int

	gravityTicks int
	fallTicker   int
	softHeld     int
	shiftHeld    int

	board    core.Rect // Screen rectangle of the well, border included
	tooSmall bool
}

// New creates a new Tetris game.
func New() *Game {
	return &Game{cfg: config.DefaultTetrisConfig()}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// ScoreOrder reports that higher scores are better.
func (g *Game) ScoreOrder() core.ScoreOrder {
	return core.HigherIsBetter
}

// Reset constructs the game in the idle phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadTetris(rt.ConfigPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	g.cfg = cfg
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.bag = bag{rng: g.rng}

	g.Idle()
	if rt.Difficulty.Level != "" {
		_ = g.SetDifficulty(rt.Difficulty)
	}

	g.wellW = cfg.Well.Width
	g.wellH = min(cfg.Well.Height, rt.ScreenH-hud.Height-2)
	w := g.wellW*cellW + 2
	g.tooSmall = g.wellH < minWellH || w+sidePanelW > rt.ScreenW
	g.board = hud.Arena(core.NewRect(0, 0, rt.ScreenW-sidePanelW, rt.ScreenH), w, g.wellH+2)

	g.setup()
}

func (g *Game) begin() {
	g.setup()
	g.spawn()
}

// setup empties the well and resets progression.
func (g *Game) setup() {
	g.well = make([][]Kind, max(g.wellH, 0))
	for y := range g.well {
		g.well[y] = make([]Kind, g.wellW)
		for x := range g.well[y] {
			g.well[y][x] = -1
		}
	}
	g.lines = 0
	g.level = 1
	g.tick = 0
	g.locked = 0
	g.fallTicker = 0
	g.softHeld = 0
	g.shiftHeld = 0
	g.piece = Piece{Kind: -1}
	g.next = g.bag.next()
	g.updateGravity()
}

// updateGravity recomputes the fall interval from the level and difficulty.
func (g *Game) updateGravity() {
	grav := g.cfg.Gravity
	base := max(grav.BaseTicks-grav.StepPerLevel*(g.level-1), grav.MinTicks)
	g.gravityTicks = max(g.Difficulty().Interval(base), 1)
}

// spawn brings the next piece into the top of the well. A spawn that
// overlaps locked blocks ends the run.
func (g *Game) spawn() {
	g.piece = newPiece(g.next, core.Point{X: g.wellW/2 - 1, Y: 0})
	g.next = g.bag.next()
	g.fallTicker = 0
	if !g.fits(g.piece) {
		g.End(false)
	}
}

// fits reports whether p lies inside the well without overlapping blocks.
func (g *Game) fits(p Piece) bool {
	for _, b := range p.blocks() {
		if b.X < 0 || b.X >= g.wellW || b.Y >= g.wellH {
			return false
		}
		if b.Y >= 0 && g.well[b.Y][b.X] >= 0 {
			return false
		}
	}
	return true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || !g.Control(in, g.begin) {
		return g.Result(-1, -1)
	}

	g.tick++
	g.handleInput(in)
	if !g.Playing() {
		return g.Result(-1, -1)
	}

	g.fallTicker++
	if g.fallTicker >= g.gravityTicks {
		g.fallTicker = 0
		g.fall()
	}

	return g.Result(-1, -1)
}

func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionFire) {
		g.hardDrop()
		return
	}

	if in.Has(core.ActionUp) {
		g.rotate()
	}

	dx := 0
	switch {
	case in.Held(core.ActionLeft):
		dx = -1
	case in.Held(core.ActionRight):
		dx = 1
	}
	if dx == 0 {
		g.shiftHeld = 0
	} else {
		if g.shiftHeld == 0 || (g.shiftHeld >= repeatWait && (g.shiftHeld-repeatWait)%repeatRate == 0) {
			g.shift(dx)
		}
		g.shiftHeld++
	}

	if in.Held(core.ActionDown) {
		if in.Has(core.ActionDown) || (g.softHeld >= repeatWait && (g.softHeld-repeatWait)%softTicks == 0) {
			if g.fall() {
				g.AddScore(g.cfg.Scoring.SoftDrop)
			}
		}
		g.softHeld++
	} else {
		g.softHeld = 0
	}
}

func (g *Game) shift(dx int) {
	if p := g.piece.moved(dx, 0); g.fits(p) {
		g.piece = p
	}
}

// rotate turns the piece clockwise, nudging it sideways when it would
// overlap a wall or blocks.
func (g *Game) rotate() {
	r := g.piece.rotated()
	for _, kick := range []int{0, -1, 1, -2, 2} {
		if p := r.moved(kick, 0); g.fits(p) {
			g.piece = p
			g.Emit(SoundRotate)
			return
		}
	}
}

// fall moves the piece down one row, locking it when it cannot move.
// It reports whether the piece moved.
func (g *Game) fall() bool {
	if p := g.piece.moved(0, 1); g.fits(p) {
		g.piece = p
		return true
	}
	g.lock()
	return false
}

func (g *Game) hardDrop() {
	rows := 0
	for {
		p := g.piece.moved(0, 1)
		if !g.fits(p) {
			break
		}
		g.piece = p
		rows++
	}
	g.AddScore(rows * g.cfg.Scoring.HardDrop)
	g.lock()
}

// lock writes the piece into the well, clears full lines and spawns the
// next piece.
func (g *Game) lock() {
	for _, b := range g.piece.blocks() {
		if b.Y < 0 {
			g.End(false)
			return
		}
		g.well[b.Y][b.X] = g.piece.Kind
	}
	g.locked++
	g.Emit(SoundLock)

	if n := g.clearLines(); n > 0 {
		points := g.cfg.Scoring.Lines
		idx := min(n, len(points)) - 1
		if idx >= 0 {
			g.AddScore(points[idx] * g.level)
		}
		g.lines += n
		if per := g.cfg.Gravity.LinesPerLevel; per > 0 {
			g.level = 1 + g.lines/per
		}
		g.updateGravity()
		g.Emit(SoundLine)
	}

	g.spawn()
}

// clearLines removes full rows and returns how many were cleared.
func (g *Game) clearLines() int {
	kept := make([][]Kind, 0, g.wellH)
	for _, row := range g.well {
		full := true
		for _, c := range row {
			if c < 0 {
				full = false
				break
			}
		}
		if !full {
			kept = append(kept, row)
		}
	}

	cleared := g.wellH - len(kept)
	for range cleared {
		row := make([]Kind, g.wellW)
		for x := range row {
			row[x] = -1
		}
		kept = append([][]Kind{row}, kept...)
	}
	g.well = kept
	return cleared
}

// Render draws the well, the falling piece and the side panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		hud.TooSmall(dst, g.wellW*cellW+2+sidePanelW, minWellH+2+hud.Height)
		return
	}

	hud.Header(dst, "Tetris", g.Score(),
		fmt.Sprintf("Lines: %d", g.lines),
		fmt.Sprintf("Level: %d", g.level))

	dst.DrawBoxColored(g.board, core.ColorGray)
	for y, row := range g.well {
		for x, k := range row {
			if k >= 0 {
				g.drawBlock(dst, x, y, kindColors[k])
			}
		}
	}

	if g.Phase() != core.PhaseIdle && g.piece.Kind >= 0 {
		for _, b := range g.piece.blocks() {
			if b.Y >= 0 {
				g.drawBlock(dst, b.X, b.Y, kindColors[g.piece.Kind])
			}
		}
	}

	px := g.board.Right() + 2
	dst.DrawText(px, g.board.Y+1, "Next:")
	preview := newPiece(g.next, core.Point{X: 1, Y: 0})
	for _, b := range preview.blocks() {
		dst.SetColored(px+b.X*cellW, g.board.Y+3+b.Y, '█', kindColors[g.next])
		dst.SetColored(px+b.X*cellW+1, g.board.Y+3+b.Y, '█', kindColors[g.next])
	}

	hud.Overlay(dst, "Tetris", g.State(), g.Difficulty().Level, "←→ move  ↑ rotate  ↓ soft  Space drop")
}

func (g *Game) drawBlock(dst *core.Screen, x, y int, c core.Color) {
	sx := g.board.X + 1 + x*cellW
	sy := g.board.Y + 1 + y
	dst.SetColored(sx, sy, '█', c)
	dst.SetColored(sx+1, sy, '█', c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.Session.State(-1, -1)
}

// Board returns the screen rectangle of the well.
func (g *Game) Board() core.Rect {
	return g.board
}

// TooSmall reports whether the screen cannot fit the well.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
