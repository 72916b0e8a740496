// Package simon implements Simon Says: watch the pads light up, then repeat
// the sequence. Each round adds one step.
package simon

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

const (
	numPads = 4
	padW    = 12
	padH    = 5
	boardW  = padW*3 + 2
	boardH  = padH*3 + 2
)

// padActions maps each pad to the direction that presses it.
var padActions = [numPads]core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}

var padColors = [numPads]core.Color{core.ColorGreen, core.ColorRed, core.ColorBlue, core.ColorYellow}
var padLit = [numPads]core.Color{core.ColorBrightGreen, core.ColorBrightRed, core.ColorBrightBlue, core.ColorBrightYellow}

// padSound returns the cue for pad i.
func padSound(i int) core.Sound {
	return core.Sound(fmt.Sprintf("pad_%d", i))
}

// mode is the turn state inside a run.
type mode int

const (
	modeShowing mode = iota // Playing back the sequence
	modeInput               // Waiting for the player
	modeBetween             // Short pause after a completed round
)

// Game implements Simon Says.
type Game struct {
	core.Session

	cfg     config.SimonConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	sequence   []int
	mode       mode
	inputPos   int
	lit        int // Pad currently lit, -1 for none
	inputLeft  int
	flashTicks int
	gapTicks   int
	delayTicks int
	timeout    int

	board    core.Rect
	tooSmall bool
}

// New creates a new Simon Says game.
func New() *Game {
	return &Game{cfg: config.DefaultSimonConfig(), lit: -1}
}

func init() {
	registry.Register("simon", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "simon"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Simon Says"
}

// ScoreOrder reports that higher scores are better.
func (g *Game) ScoreOrder() core.ScoreOrder {
	return core.HigherIsBetter
}

// Reset constructs the game in the idle phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadSimon(rt.ConfigPath)
	if err != nil {
		cfg = config.DefaultSimonConfig()
	}
	g.cfg = cfg
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))

	g.Idle()
	if rt.Difficulty.Level != "" {
		_ = g.SetDifficulty(rt.Difficulty)
	}

	g.tooSmall = rt.ScreenW < boardW || rt.ScreenH-hud.Height < boardH
	g.board = hud.Arena(core.NewRect(0, 0, rt.ScreenW, rt.ScreenH), boardW, boardH)

	g.setup()
}

func (g *Game) begin() {
	g.setup()
	g.nextRound()
}

// setup applies the difficulty and clears the sequence.
func (g *Game) setup() {
	d := g.Difficulty()
	t := g.cfg.Timing
	g.flashTicks = d.Interval(t.FlashTicks)
	g.gapTicks = d.Interval(t.GapTicks)
	g.delayTicks = d.Interval(t.RoundDelay)
	g.timeout = d.Duration(t.InputTimeout)

	g.sequence = nil
	g.mode = modeShowing
	g.inputPos = 0
	g.lit = -1
	g.inputLeft = 0
}

// nextRound extends the sequence and plays it back.
func (g *Game) nextRound() {
	g.sequence = append(g.sequence, g.rng.Intn(numPads))
	g.mode = modeShowing
	g.inputPos = 0
	g.playback(0)
}

// playback lights step i of the sequence, then schedules the next one.
// After the last step the player gets control.
func (g *Game) playback(i int) {
	if i >= len(g.sequence) {
		g.lit = -1
		g.mode = modeInput
		g.inputLeft = g.timeout
		return
	}
	pad := g.sequence[i]
	g.lit = pad
	g.Emit(padSound(pad))
	g.Timers.After(g.flashTicks, func() {
		g.lit = -1
		g.Timers.After(g.gapTicks, func() {
			g.playback(i + 1)
		})
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || !g.Control(in, g.begin) {
		return g.Result(-1, g.timeLeft())
	}

	if g.mode != modeInput {
		return g.Result(-1, g.timeLeft())
	}

	for pad, a := range padActions {
		if in.Has(a) {
			g.press(pad)
			return g.Result(-1, g.timeLeft())
		}
	}

	g.inputLeft--
	if g.inputLeft <= 0 {
		g.inputLeft = 0
		g.End(false)
	}
	return g.Result(-1, g.timeLeft())
}

// press handles the player pressing a pad.
func (g *Game) press(pad int) {
	g.lit = pad
	g.Emit(padSound(pad))
	g.Timers.After(g.flashTicks/2, func() {
		if g.mode == modeInput {
			g.lit = -1
		}
	})

	if pad != g.sequence[g.inputPos] {
		g.End(false)
		return
	}

	g.inputPos++
	g.inputLeft = g.timeout
	if g.inputPos < len(g.sequence) {
		return
	}

	// Round complete
	g.AddScore(g.cfg.Scoring.Round)
	g.Emit(core.SoundScore)
	if limit := g.cfg.Scoring.MaxRounds; limit > 0 && len(g.sequence) >= limit {
		g.End(true)
		return
	}
	g.mode = modeBetween
	g.Timers.After(g.delayTicks, func() {
		g.lit = -1
		g.nextRound()
	})
}

// timeLeft reports the input window while the player is on turn.
func (g *Game) timeLeft() int {
	if g.Playing() && g.mode == modeInput {
		return g.inputLeft
	}
	return -1
}

// Render draws the four pads in a diamond.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		hud.TooSmall(dst, boardW, boardH+hud.Height)
		return
	}

	status := "Watch..."
	switch {
	case g.Phase() == core.PhaseIdle:
		status = ""
	case g.mode == modeInput:
		status = "Your turn " + hud.Seconds(g.inputLeft)
	case g.mode == modeBetween:
		status = "Well done!"
	}
	hud.Header(dst, "Simon Says", g.Score(),
		fmt.Sprintf("Round: %d", len(g.sequence)),
		status)

	b := g.board
	origins := [numPads]core.Point{
		{X: b.X + padW + 1, Y: b.Y},              // up
		{X: b.X + 2*padW + 2, Y: b.Y + padH + 1}, // right
		{X: b.X + padW + 1, Y: b.Y + 2*padH + 2}, // down
		{X: b.X, Y: b.Y + padH + 1},              // left
	}
	labels := [numPads]string{"↑", "→", "↓", "←"}

	for i, o := range origins {
		r := core.NewRect(o.X, o.Y, padW, padH)
		if i == g.lit {
			dst.DrawRectColored(r, '█', padLit[i])
		} else {
			dst.DrawBoxColored(r, padColors[i])
			dst.DrawTextColored(o.X+padW/2, o.Y+padH/2, labels[i], padColors[i])
		}
	}

	hud.Overlay(dst, "Simon Says", g.State(), g.Difficulty().Level, "Repeat with the arrow keys")
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.Session.State(-1, g.timeLeft())
}

// Board returns the screen rectangle of the pads.
func (g *Game) Board() core.Rect {
	return g.board
}

// TooSmall reports whether the screen cannot fit the pads.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
