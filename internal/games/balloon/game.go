// Package balloon implements Balloon Pop: balloons drift up the sky and the
// player pops them with a cursor before they escape.
package balloon

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// SoundPop is emitted when a balloon bursts.
const SoundPop core.Sound = "pop"

// Sky limits, border included.
const (
	minFieldW = 24
	minFieldH = 12
)

// Kind is the balloon variety.
type Kind int

const (
	KindNormal Kind = iota
	KindGolden      // Worth extra points
	KindBomb        // Popping it costs a life, letting it escape is free
)

// Balloon is one balloon in field coordinates.
type Balloon struct {
	X, Y  int
	Kind  Kind
	Color core.Color
	timer int
}

// Game implements Balloon Pop.
type Game struct {
	core.Session

	cfg     config.BalloonConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	balloons    []*Balloon
	cursor      core.Point
	lives       int
	timeLeft    int
	spawnTicker int
	spawnTicks  int
	riseTicks   int
	popped      int
	tick        uint64

	field    core.Rect
	tooSmall bool
}

// New creates a new Balloon Pop game.
func New() *Game {
	return &Game{cfg: config.DefaultBalloonConfig()}
}

func init() {
	registry.Register("balloon", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "balloon"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Balloon Pop"
}

// ScoreOrder reports that higher scores are better.
func (g *Game) ScoreOrder() core.ScoreOrder {
	return core.HigherIsBetter
}

// Reset constructs the game in the idle phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadBalloon(rt.ConfigPath)
	if err != nil {
		cfg = config.DefaultBalloonConfig()
	}
	g.cfg = cfg
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))

	g.Idle()
	if rt.Difficulty.Level != "" {
		_ = g.SetDifficulty(rt.Difficulty)
	}

	w := min(cfg.Field.Width, rt.ScreenW)
	h := min(cfg.Field.Height, rt.ScreenH-hud.Height)
	g.tooSmall = w < minFieldW || h < minFieldH
	g.field = hud.Arena(core.NewRect(0, 0, rt.ScreenW, rt.ScreenH), w, h)

	g.setup()
}

func (g *Game) begin() {
	g.setup()
}

// setup clears the sky and applies the difficulty to spawn and timer.
func (g *Game) setup() {
	d := g.Difficulty()
	g.balloons = nil
	g.cursor = core.Point{X: g.field.W / 2, Y: g.field.H / 2}
	g.lives = g.cfg.Gameplay.Lives
	g.timeLeft = d.Duration(g.cfg.Gameplay.RoundTicks)
	g.spawnTicks = d.Interval(g.cfg.Spawn.IntervalTicks)
	g.riseTicks = d.Interval(g.cfg.Spawn.RiseTicks)
	g.spawnTicker = 0
	g.popped = 0
	g.tick = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || !g.Control(in, g.begin) {
		return g.Result(g.lives, g.timeLeft)
	}

	g.tick++
	g.moveCursor(in)
	if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
		g.pop()
	}

	g.spawnTicker++
	if g.spawnTicker >= g.spawnTicks {
		g.spawnTicker = 0
		g.spawn()
	}

	g.rise()
	if !g.Playing() {
		return g.Result(g.lives, g.timeLeft)
	}

	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.End(g.lives > 0)
	}

	return g.Result(g.lives, g.timeLeft)
}

func (g *Game) moveCursor(in core.InputFrame) {
	step := max(g.cfg.Gameplay.CursorStep, 1)
	switch {
	case in.Has(core.ActionLeft):
		g.cursor.X -= step
	case in.Has(core.ActionRight):
		g.cursor.X += step
	case in.Has(core.ActionUp):
		g.cursor.Y--
	case in.Has(core.ActionDown):
		g.cursor.Y++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 1, g.field.W-2)
	g.cursor.Y = core.Clamp(g.cursor.Y, 1, g.field.H-2)
}

// spawn releases a new balloon from the bottom of the sky.
func (g *Game) spawn() {
	b := &Balloon{
		X:     1 + g.rng.Intn(g.field.W-2),
		Y:     g.field.H - 2,
		Kind:  KindNormal,
		Color: core.CycleColor(g.rng.Intn(7)),
	}
	switch roll := g.rng.Float64(); {
	case roll < g.cfg.Spawn.BombChance:
		b.Kind = KindBomb
		b.Color = core.ColorGray
	case roll < g.cfg.Spawn.BombChance+g.cfg.Spawn.GoldenChance:
		b.Kind = KindGolden
		b.Color = core.ColorBrightYellow
	}
	g.balloons = append(g.balloons, b)
}

// rise moves balloons up. A balloon leaving the top escapes and costs a
// life, bombs excepted.
func (g *Game) rise() {
	kept := g.balloons[:0]
	for _, b := range g.balloons {
		b.timer++
		if b.timer >= g.riseTicks {
			b.timer = 0
			b.Y--
		}
		if b.Y >= 1 {
			kept = append(kept, b)
			continue
		}
		if b.Kind != KindBomb {
			g.loseLife()
			if !g.Playing() {
				g.balloons = kept
				return
			}
		}
	}
	g.balloons = kept
}

// pop bursts the balloon under the cursor, if any.
func (g *Game) pop() {
	for i, b := range g.balloons {
		if b.X != g.cursor.X || b.Y != g.cursor.Y {
			continue
		}
		g.balloons = append(g.balloons[:i], g.balloons[i+1:]...)
		g.Emit(SoundPop)
		switch b.Kind {
		case KindBomb:
			g.loseLife()
		case KindGolden:
			g.popped++
			g.AddScore(g.cfg.Scoring.Golden)
		default:
			g.popped++
			g.AddScore(g.cfg.Scoring.Pop)
		}
		return
	}
	g.Emit(core.SoundMiss)
}

func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.End(false)
		return
	}
	g.Emit(core.SoundLifeLost)
}

// Render draws the sky, balloons and cursor.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		hud.TooSmall(dst, minFieldW, minFieldH+hud.Height)
		return
	}

	hud.Header(dst, "Balloon Pop", g.Score(),
		hud.Lives(g.lives),
		"Time: "+hud.Seconds(g.timeLeft),
		fmt.Sprintf("Popped: %d", g.popped))

	f := g.field
	dst.DrawBoxColored(f, core.ColorGray)

	for _, b := range g.balloons {
		glyph := 'O'
		switch b.Kind {
		case KindGolden:
			glyph = '@'
		case KindBomb:
			glyph = '*'
		}
		dst.SetColored(f.X+b.X, f.Y+b.Y, glyph, b.Color)
		if b.Y+1 < f.H-1 {
			dst.SetColored(f.X+b.X, f.Y+b.Y+1, '|', core.ColorGray)
		}
	}

	if g.Playing() {
		cx, cy := f.X+g.cursor.X, f.Y+g.cursor.Y
		if g.balloonAt(g.cursor) == nil {
			dst.SetColored(cx, cy, '+', core.ColorBrightWhite)
		}
		dst.SetColored(cx-1, cy, '[', core.ColorBrightWhite)
		dst.SetColored(cx+1, cy, ']', core.ColorBrightWhite)
	}

	hud.Overlay(dst, "Balloon Pop", g.State(), g.Difficulty().Level, "Arrows aim  Space pop")
}

func (g *Game) balloonAt(p core.Point) *Balloon {
	for _, b := range g.balloons {
		if b.X == p.X && b.Y == p.Y {
			return b
		}
	}
	return nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.Session.State(g.lives, g.timeLeft)
}

// Board returns the screen rectangle of the sky.
func (g *Game) Board() core.Rect {
	return g.field
}

// TooSmall reports whether the screen cannot fit the sky.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
