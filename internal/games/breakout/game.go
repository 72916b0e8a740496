package breakout

import (
	"fmt"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
)

// Brick glyphs by row (cycling through)
var BrickGlyphs = []rune{'█', '▓', '▒', '░', '#', '+', '*', '='}

// HardBrickGlyph marks a hard brick that has not been hit yet.
const HardBrickGlyph = '▓'

// Sound cues specific to Breakout.
const (
	SoundPaddle core.Sound = "paddle"
	SoundBrick  core.Sound = "brick"
)

// Arena limits, border included.
const (
	minBrickW = 2
	minArenaH = 15
	maxArenaH = 24
)

// Game implements the Breakout game logic.
type Game struct {
	core.Session

	paddle *Paddle
	ball   *Ball
	level  *Level

	lives            int
	tickCount        int
	bricksBroken     int
	serveReady       bool  // Serve delay elapsed, Fire launches
	currentBallSpeed Fixed // Base ball speed after difficulty and speed-ups
	maxBallSpeed     Fixed

	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig

	// Layout, in arena coordinates
	arena        core.Rect // Screen rectangle, border included
	brickAreaTop int
	brickHeight  int
	brickWidth   int
	paddleY      int
	tooSmall     bool
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{cfg: config.DefaultBreakoutConfig()}
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// ScoreOrder reports that higher scores are better.
func (g *Game) ScoreOrder() core.ScoreOrder {
	return core.HigherIsBetter
}

// Reset initializes the game in the idle phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt

	cfg, err := config.LoadBreakout(rt.ConfigPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	g.cfg = cfg

	g.Idle()
	if rt.Difficulty.Level != "" {
		_ = g.SetDifficulty(rt.Difficulty)
	}

	g.calculateLayout()
	g.setup()
}

// calculateLayout sizes the arena and bricks to the screen.
func (g *Game) calculateLayout() {
	cols := max(g.cfg.Bricks.Cols, 1)
	g.brickWidth = min(g.cfg.Bricks.Width, (g.runtime.ScreenW-2)/cols)
	g.brickHeight = 1
	g.brickAreaTop = max(g.cfg.Bricks.Top, 1)

	w := cols*g.brickWidth + 2
	h := min(g.runtime.ScreenH-hud.Height, maxArenaH)
	g.tooSmall = g.brickWidth < minBrickW || h < minArenaH ||
		g.cfg.Paddle.Width >= w-2
	g.arena = hud.Arena(core.NewRect(0, 0, g.runtime.ScreenW, g.runtime.ScreenH), w, h)

	// Paddle one row above the bottom border, leaving a row to miss into
	g.paddleY = h - 3
}

func (g *Game) begin() {
	g.setup()
	g.scheduleServe()
}

// setup builds a fresh wall and places the ball on the paddle.
func (g *Game) setup() {
	d := g.Difficulty()
	g.level = NewWall(g.cfg.Bricks.Rows, g.cfg.Bricks.Cols, g.cfg.Bricks.Points)
	g.lives = g.cfg.Gameplay.Lives
	g.tickCount = 0
	g.bricksBroken = 0
	g.serveReady = false
	// The ball may not cross more than one cell per tick or it could pass
	// through a one-row brick.
	g.maxBallSpeed = min(Fixed(d.Speed(float64(g.cfg.Physics.MaxBallSpeed))), Scale)
	g.currentBallSpeed = min(Fixed(d.Speed(float64(g.cfg.Physics.BallSpeed))), g.maxBallSpeed)

	g.paddle = &Paddle{
		X:     ToFixed((g.arena.W - g.cfg.Paddle.Width) / 2),
		Y:     g.paddleY,
		Width: g.cfg.Paddle.Width,
	}
	g.placeBallOnPaddle()
}

// placeBallOnPaddle puts the ball on the paddle, waiting for a serve.
func (g *Game) placeBallOnPaddle() {
	g.ball = &Ball{
		X:     g.paddle.CenterX(),
		Y:     ToFixed(g.paddle.Y - 1),
		Stuck: true,
	}
}

// scheduleServe allows launching once the serve delay has passed.
func (g *Game) scheduleServe() {
	g.serveReady = false
	g.Timers.After(g.cfg.Gameplay.ServeDelay, func() {
		g.serveReady = true
	})
}

// launchBall launches the stuck ball.
func (g *Game) launchBall() {
	speed := g.currentBallSpeed
	// Launch upward with slight horizontal bias
	g.ball.VX = speed / 4
	g.ball.VY = -speed
	g.ball.Stuck = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || !g.Control(in, g.begin) {
		return g.Result(g.lives, -1)
	}

	g.tickCount++
	g.updatePaddle(in)

	if g.ball.Stuck {
		// Stuck ball follows the paddle
		g.ball.X = g.paddle.CenterX()
		g.ball.Y = ToFixed(g.paddle.Y - 1)
		if g.serveReady && (in.Has(core.ActionFire) || in.Has(core.ActionUp)) {
			g.launchBall()
		}
		return g.Result(g.lives, -1)
	}

	g.updateBall()
	return g.Result(g.lives, -1)
}

// updatePaddle handles paddle movement.
func (g *Game) updatePaddle(in core.InputFrame) {
	speed := Fixed(g.cfg.Physics.PaddleSpeed) // Already scaled by 1000 in config

	if in.Held(core.ActionLeft) {
		g.paddle.X -= speed
	}
	if in.Held(core.ActionRight) {
		g.paddle.X += speed
	}

	minX := ToFixed(1)
	maxX := ToFixed(g.arena.W - g.paddle.Width - 1)
	g.paddle.X = ClampFixed(g.paddle.X, minX, maxX)
}

// updateBall handles ball movement and collisions.
func (g *Game) updateBall() {
	ball := g.ball
	ball.Move()

	bounce, fell := WallBounce(ball, g.arena.W, g.arena.H)
	if fell {
		g.handleMiss()
		return
	}
	ball.Apply(bounce)

	if PaddleBounce(ball, g.paddle, g.currentBallSpeed) {
		g.Emit(SoundPaddle)
		return
	}

	if row, col, hit := BrickHit(ball, g.level, g.brickAreaTop, g.brickHeight, g.brickWidth); hit != NoBounce {
		g.hitBrick(&g.level.Bricks[row][col])
		ball.Apply(hit)
	}
}

// hitBrick damages a brick, scoring it when destroyed. Clearing the wall
// wins the game.
func (g *Game) hitBrick(brick *Brick) {
	g.Emit(SoundBrick)
	brick.HP--
	if brick.HP > 0 {
		return
	}

	brick.Alive = false
	g.AddScore(brick.Points)
	g.bricksBroken++

	if n := g.cfg.Gameplay.SpeedUpEveryN; n > 0 && g.bricksBroken%n == 0 {
		g.currentBallSpeed = min(g.currentBallSpeed+Fixed(g.cfg.Gameplay.SpeedUpAmount), g.maxBallSpeed)
	}

	if g.level.CountAlive() == 0 {
		g.End(true)
	}
}

// handleMiss costs a life and serves again, or ends the game.
func (g *Game) handleMiss() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.End(false)
		return
	}

	g.Emit(core.SoundLifeLost)
	g.placeBallOnPaddle()
	g.scheduleServe()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		hud.TooSmall(dst, g.cfg.Bricks.Cols*minBrickW+2, minArenaH+hud.Height)
		return
	}

	hud.Header(dst, "Breakout", g.Score(),
		hud.Lives(g.lives),
		fmt.Sprintf("Bricks: %d", g.level.CountAlive()))

	a := g.arena
	dst.DrawBoxColored(a, core.ColorGray)

	g.renderBricks(dst)

	px := g.paddle.CellX()
	for i := range g.paddle.Width {
		dst.SetColored(a.X+px+i, a.Y+g.paddle.Y, PaddleChar, core.ColorBrightCyan)
	}

	bx, by := g.ball.CellX(), g.ball.CellY()
	if bx > 0 && bx < a.W-1 && by > 0 && by < a.H-1 {
		dst.SetColored(a.X+bx, a.Y+by, BallChar, core.ColorBrightWhite)
	}

	if g.Playing() && g.ball.Stuck {
		msg := "Get ready..."
		if g.serveReady {
			msg = "Press SPACE to launch"
		}
		dst.DrawText(a.X+(a.W-len([]rune(msg)))/2, a.Bottom()-2, msg)
	}

	hud.Overlay(dst, "Breakout", g.State(), g.Difficulty().Level, "←→ move  Space launch")
}

// renderBricks draws all alive bricks.
func (g *Game) renderBricks(dst *core.Screen) {
	for row := range g.level.Height {
		for col := range g.level.Width {
			brick := g.level.Bricks[row][col]
			if !brick.Alive {
				continue
			}

			glyph := BrickGlyphs[row%len(BrickGlyphs)]
			if brick.Type == BrickHard && brick.HP > 1 {
				glyph = HardBrickGlyph
			}

			sx := g.arena.X + 1 + col*g.brickWidth
			sy := g.arena.Y + g.brickAreaTop + row*g.brickHeight
			for dx := range g.brickWidth - 1 {
				dst.SetColored(sx+dx, sy, glyph, core.CycleColor(row))
			}
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.Session.State(g.lives, -1)
}

// Board returns the screen rectangle of the arena.
func (g *Game) Board() core.Rect {
	return g.arena
}

// TooSmall reports whether the screen cannot fit the arena.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
