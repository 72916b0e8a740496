// Package pong implements a classic Pong game with CPU opponent.
// The player controls the left paddle, the CPU controls the right paddle.
package pong

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Sound cues specific to Pong.
const (
	SoundPaddle core.Sound = "paddle"
	SoundWall   core.Sound = "wall"
)

// Court limits, border included.
const (
	minCourtW = 30
	minCourtH = 12
	maxCourtW = 100
	maxCourtH = 30
)

// paddle is one side of the court. x and y are the top-left cell in court
// coordinates.
type paddle struct {
	x, y   float64
	points int
}

// covers reports whether row y lies along a paddle of height h.
func (p *paddle) covers(y float64, h int) bool {
	return y >= p.y && y <= p.y+float64(h)
}

type ball struct {
	x, y   float64
	vx, vy float64 // cells per tick
}

// Game implements the Pong game logic.
type Game struct {
	core.Session

	cfg     config.PongConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	ramp    config.Ramp

	player  paddle // left
	cpu     paddle // right
	ball    ball
	serving bool
	ticks   int

	// after difficulty
	paddleHeight int
	ballSpeed    float64
	maxBallSpeed float64
	paddleSpeed  float64
	cpuSkill     float64 // 0..1, share of paddle speed the CPU uses

	court    core.Rect // border included
	tooSmall bool
}

// New creates a new Pong game instance.
func New() *Game {
	return &Game{cfg: config.DefaultPongConfig()}
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// ScoreOrder reports that more player points are better.
func (g *Game) ScoreOrder() core.ScoreOrder {
	return core.HigherIsBetter
}

// Reset initializes the game in the idle phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadPong(rt.ConfigPath)
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	g.cfg = cfg
	g.ramp = config.NewRamp(cfg.Ramp)
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))

	g.Idle()
	if rt.Difficulty.Level != "" {
		_ = g.SetDifficulty(rt.Difficulty)
	}

	w := min(rt.ScreenW, maxCourtW)
	h := min(rt.ScreenH-hud.Height, maxCourtH)
	g.tooSmall = w < minCourtW || h < minCourtH
	g.court = hud.Arena(core.NewRect(0, 0, rt.ScreenW, rt.ScreenH), w, h)

	// Adjust paddle height based on court size
	g.paddleHeight = core.Clamp(min(cfg.Paddles.Height, h/3), 2, h-2)

	g.setup()
	g.serving = false
}

func (g *Game) begin() {
	g.setup()
}

// setup centers the paddles, zeroes the points and serves to the player.
func (g *Game) setup() {
	d := g.Difficulty()
	g.ballSpeed = d.Speed(g.cfg.Physics.BallSpeed)
	g.maxBallSpeed = d.Speed(g.cfg.Physics.MaxBallSpeed)
	g.paddleSpeed = g.cfg.Physics.PaddleSpeed
	g.cpuSkill = g.cfg.CPU.MinSkill
	g.ticks = 0

	y := float64(g.court.H-g.paddleHeight) / 2
	off, w := g.cfg.Paddles.Offset, g.cfg.Paddles.Width
	g.player = paddle{x: float64(off), y: y}
	g.cpu = paddle{x: float64(g.court.W - off - w), y: y}

	g.serve(true)
}

// serve parks the ball at the center and launches it after the serve delay,
// towards the player or the CPU.
func (g *Game) serve(towardPlayer bool) {
	g.serving = true
	g.ball = ball{x: float64(g.court.W) / 2, y: float64(g.court.H) / 2}

	vx := g.ballSpeed
	if towardPlayer {
		vx = -vx
	}
	vy := g.ballSpeed * (g.rng.Float64() - 0.5) * 0.6

	g.Timers.After(g.cfg.Gameplay.ServeDelay, func() {
		g.serving = false
		g.ball.vx, g.ball.vy = vx, vy
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || !g.Control(in, g.begin) {
		return g.Result(-1, -1)
	}
	g.ticks++

	switch {
	case in.Held(core.ActionUp):
		g.player.y -= g.paddleSpeed
	case in.Held(core.ActionDown):
		g.player.y += g.paddleSpeed
	}
	g.player.y = core.ClampF(g.player.y, 1, g.lowestPaddleY())

	g.trackBall()
	if !g.serving {
		g.updateBall()
	}

	skill := g.cfg.CPU
	g.cpuSkill = skill.MinSkill + (skill.MaxSkill-skill.MinSkill)*g.ramp.Progress(g.player.points, g.ticks)

	return g.Result(-1, -1)
}

func (g *Game) lowestPaddleY() float64 {
	return float64(g.court.H - g.paddleHeight - 1)
}

// trackBall moves the CPU paddle towards the ball while it approaches.
func (g *Game) trackBall() {
	if g.ball.vx > 0 {
		step := g.paddleSpeed * g.cpuSkill
		diff := g.ball.y - float64(g.paddleHeight)/2 - g.cpu.y
		if math.Abs(diff) > step {
			g.cpu.y += math.Copysign(step, diff)
		}
	}
	g.cpu.y = core.ClampF(g.cpu.y, 1, g.lowestPaddleY())
}

// updateBall moves the ball and resolves walls, paddles and points.
func (g *Game) updateBall() {
	b := &g.ball
	b.x += b.vx
	b.y += b.vy

	if y := core.ClampF(b.y, 1, float64(g.court.H-2)); y != b.y {
		b.y = y
		b.vy = -b.vy
		g.Emit(SoundWall)
	}

	pw := float64(g.cfg.Paddles.Width)
	switch {
	case b.vx < 0 && b.x >= g.player.x-1 && b.x <= g.player.x+pw && g.player.covers(b.y, g.paddleHeight):
		b.x = g.player.x + pw
		g.bounce(&g.player)
	case b.vx > 0 && b.x >= g.cpu.x && b.x <= g.cpu.x+pw && g.cpu.covers(b.y, g.paddleHeight):
		b.x = g.cpu.x - 1
		g.bounce(&g.cpu)
	}

	b.vx = core.ClampF(b.vx, -g.maxBallSpeed, g.maxBallSpeed)
	b.vy = core.ClampF(b.vy, -g.maxBallSpeed/2, g.maxBallSpeed/2)

	switch {
	case b.x < 0:
		g.cpu.points++
		g.Emit(core.SoundMiss)
		g.afterPoint(&g.cpu)
	case b.x > float64(g.court.W):
		g.player.points++
		g.AddScore(1)
		g.Emit(core.SoundScore)
		g.afterPoint(&g.player)
	}
}

// bounce sends the ball back, faster, with spin from the hit position.
func (g *Game) bounce(p *paddle) {
	hit := (g.ball.y - p.y) / float64(g.paddleHeight)
	g.ball.vx = -g.ball.vx * g.cfg.Physics.SpeedUp
	g.ball.vy += (hit - 0.5) * g.cfg.Physics.SpinFactor
	g.Emit(SoundPaddle)
}

// afterPoint ends the match at the win score, otherwise the side that
// conceded receives the next serve.
func (g *Game) afterPoint(scorer *paddle) {
	if scorer.points >= g.cfg.Gameplay.WinScore {
		g.End(scorer == &g.player)
		return
	}
	g.serve(scorer == &g.cpu)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		hud.TooSmall(dst, minCourtW, minCourtH+hud.Height)
		return
	}

	hud.Header(dst, "Pong", g.Score(),
		fmt.Sprintf("You %d : %d CPU", g.player.points, g.cpu.points),
		fmt.Sprintf("First to %d", g.cfg.Gameplay.WinScore))

	c := g.court
	dst.DrawBoxColored(c, core.ColorGray)

	// Draw center line (net)
	centerX := c.X + c.W/2
	for y := c.Y + 1; y < c.Bottom()-1; y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	for _, p := range []struct {
		paddle
		color core.Color
	}{{g.player, core.ColorBrightCyan}, {g.cpu, core.ColorBrightRed}} {
		dst.DrawRectColored(core.NewRect(c.X+int(p.x), c.Y+int(p.y), g.cfg.Paddles.Width, g.paddleHeight),
			PaddleChar, p.color)
	}

	bx, by := int(g.ball.x), int(g.ball.y)
	blink := g.serving && (g.ticks/10)%2 == 1
	if bx > 0 && bx < c.W-1 && by > 0 && by < c.H-1 && !blink {
		dst.SetColored(c.X+bx, c.Y+by, BallChar, core.ColorBrightWhite)
	}

	hud.Overlay(dst, "Pong", g.State(), g.Difficulty().Level, "↑↓ move your paddle")
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.Session.State(-1, -1)
}

// Board returns the screen rectangle of the court.
func (g *Game) Board() core.Rect {
	return g.court
}

// TooSmall reports whether the screen cannot fit the court.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
