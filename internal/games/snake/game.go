// Package snake implements the classic Snake game on a bordered arena.
package snake

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// Headings are unit steps in arena coordinates.
var (
	Up    = core.Point{X: 0, Y: -1}
	Down  = core.Point{X: 0, Y: 1}
	Left  = core.Point{X: -1, Y: 0}
	Right = core.Point{X: 1, Y: 0}
)

// steer maps the movement actions to headings, checked in order.
var steer = []struct {
	action  core.Action
	heading core.Point
}{
	{core.ActionUp, Up},
	{core.ActionDown, Down},
	{core.ActionLeft, Left},
	{core.ActionRight, Right},
}

// Sound cues specific to Snake.
const SoundEat core.Sound = "eat"

// Minimum arena size, border included.
const (
	minArenaW = 20
	minArenaH = 10
)

// Game implements the Snake game.
type Game struct {
	core.Session

	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	ramp    config.Ramp

	tick       uint64
	moveTicks  int // Move interval after difficulty, before the ramp
	moveTicker int // Counts ticks until next move
	foodEaten  int

	// arena coordinates; head first
	snake   []core.Point
	heading core.Point
	queued  core.Point // applied on the next move
	growing bool       // keep the tail on the next move
	food    core.Point

	arena    core.Rect // Screen rectangle of the arena, border included
	tooSmall bool
}

// New creates a new Snake game.
func New() *Game {
	return &Game{cfg: config.DefaultSnakeConfig()}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// ScoreOrder reports that higher scores are better.
func (g *Game) ScoreOrder() core.ScoreOrder {
	return core.HigherIsBetter
}

// Reset constructs the game in the idle phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadSnake(rt.ConfigPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	g.cfg = cfg
	g.ramp = config.NewRamp(cfg.Ramp)
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))

	g.Idle()
	if rt.Difficulty.Level != "" {
		_ = g.SetDifficulty(rt.Difficulty)
	}

	w := min(cfg.Arena.Width, rt.ScreenW)
	h := min(cfg.Arena.Height, rt.ScreenH-hud.Height)
	g.tooSmall = w < minArenaW || h < minArenaH
	g.arena = hud.Arena(core.NewRect(0, 0, rt.ScreenW, rt.ScreenH), w, h)

	g.setup()
}

// begin is called when a run starts.
func (g *Game) begin() {
	g.setup()
}

// setup places a fresh snake and food using the current difficulty.
func (g *Game) setup() {
	g.tick = 0
	g.foodEaten = 0
	g.moveTicker = 0
	g.moveTicks = g.Difficulty().Interval(g.cfg.Move.EveryTicks)
	if g.tooSmall {
		return
	}
	g.initSnake()
	g.spawnFood()
}

// initSnake lays the snake out on the middle row, head to the right.
func (g *Game) initSnake() {
	n := max(g.cfg.Arena.InitialLength, 1)
	head := core.Point{X: max(1, g.arena.W/4) + n - 1, Y: g.arena.H / 2}
	head.X = min(head.X, g.arena.W-2)

	g.snake = g.snake[:0]
	for i := range n {
		g.snake = append(g.snake, core.Point{X: max(head.X-i, 1), Y: head.Y})
	}
	g.heading, g.queued = Right, Right
	g.growing = false
}

// inside reports whether p is an interior arena cell.
func (g *Game) inside(p core.Point) bool {
	return p.X >= 1 && p.X < g.arena.W-1 && p.Y >= 1 && p.Y < g.arena.H-1
}

// spawnFood drops food on a random free cell. It returns false when the
// snake fills the arena.
func (g *Game) spawnFood() bool {
	taken := make(map[core.Point]bool, len(g.snake))
	for _, p := range g.snake {
		taken[p] = true
	}
	free := make([]core.Point, 0, (g.arena.W-2)*(g.arena.H-2))
	for y := 1; y < g.arena.H-1; y++ {
		for x := 1; x < g.arena.W-1; x++ {
			if p := (core.Point{X: x, Y: y}); !taken[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = core.Point{X: -1, Y: -1}
		return false
	}
	g.food = free[g.rng.Intn(len(free))]
	return true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || !g.Control(in, g.begin) {
		return g.Result(-1, -1)
	}

	g.tick++
	g.processInput(in)

	g.moveTicker++
	interval := g.ramp.Interval(g.moveTicks, g.cfg.Move.MinTicks, g.Score(), int(g.tick))
	if g.moveTicker >= interval {
		g.moveTicker = 0
		g.moveSnake()
	}

	return g.Result(-1, -1)
}

// processInput queues a turn. Reversing onto the neck is ignored.
func (g *Game) processInput(in core.InputFrame) {
	for _, st := range steer {
		if !in.Has(st.action) {
			continue
		}
		if st.heading.Add(g.heading) != (core.Point{}) {
			g.queued = st.heading
		}
		return
	}
}

// moveSnake advances the head one cell along the queued heading.
func (g *Game) moveSnake() {
	if len(g.snake) == 0 {
		return
	}
	g.heading = g.queued
	next := g.snake[0].Add(g.heading)

	// The tail cell frees up this move unless the snake is growing.
	body := g.snake
	if !g.growing {
		body = body[:len(body)-1]
	}
	if !g.inside(next) || slices.Contains(body, next) {
		g.End(false)
		return
	}

	if g.growing {
		g.snake = append(g.snake, core.Point{})
		g.growing = false
	}
	copy(g.snake[1:], g.snake)
	g.snake[0] = next

	if next != g.food {
		return
	}
	g.AddScore(g.cfg.Scoring.Food)
	g.foodEaten++
	g.growing = true
	g.Emit(SoundEat)
	if !g.spawnFood() {
		g.End(true)
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		hud.TooSmall(dst, minArenaW, minArenaH+hud.Height)
		return
	}

	hud.Header(dst, "Snake", g.Score(),
		fmt.Sprintf("Length: %d", len(g.snake)),
		fmt.Sprintf("Level: %s", g.Difficulty().Level))

	dst.DrawBoxColored(g.arena, core.ColorGray)

	for i, seg := range g.snake {
		ch, color := 'o', core.ColorGreen
		if i == 0 {
			ch, color = 'O', core.ColorBrightGreen
		}
		dst.SetColored(g.arena.X+seg.X, g.arena.Y+seg.Y, ch, color)
	}

	if g.food.X >= 0 {
		dst.SetColored(g.arena.X+g.food.X, g.arena.Y+g.food.Y, '*', core.ColorBrightRed)
	}

	hud.Overlay(dst, "Snake", g.State(), g.Difficulty().Level, "Arrows/WASD to steer")
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.Session.State(-1, -1)
}

// Board returns the screen rectangle of the arena.
func (g *Game) Board() core.Rect {
	return g.arena
}

// TooSmall reports whether the screen cannot fit the arena.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
