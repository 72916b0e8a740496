// Package invaders implements Space Invaders: a marching formation, a
// cannon at the bottom and shots in both directions.
package invaders

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// Sound cues specific to Space Invaders.
const (
	SoundShoot   core.Sound = "shoot"
	SoundExplode core.Sound = "explode"
	SoundMarch   core.Sound = "march"
)

// Field limits, border included.
const (
	minFieldW = 36
	minFieldH = 16
	maxFieldW = 60
	maxFieldH = 22
	invaderW  = 3
)

// Invader sprites by row, two animation frames each.
var sprites = [][2]string{
	{"<o>", ">o<"},
	{"/#\\", "\\#/"},
	{"{@}", "}@{"},
	{"-v-", "=v="},
}

var rowColors = []core.Color{core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorBrightGreen, core.ColorBrightYellow}

// Shot is a projectile in field coordinates.
type Shot struct {
	X, Y  int
	timer int
}

// Game implements Space Invaders.
type Game struct {
	core.Session

	cfg     config.InvadersConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	alive   [][]bool // [row][col]
	originX int      // Field column of the formation's left edge
	originY int
	dir     int // +1 right, -1 left
	frame   int

	playerX      int
	lives        int
	wave         int
	invulnerable int

	shot        *Shot
	shotCool    int
	enemyShots  []*Shot
	marchTicker int
	fireTicker  int
	moveTicker  int
	tick        uint64

	marchTicks int // March interval for the wave, before the remaining-count speed-up
	fireTicks  int

	field    core.Rect // Screen rectangle, border included
	tooSmall bool
}

// New creates a new Space Invaders game.
func New() *Game {
	return &Game{cfg: config.DefaultInvadersConfig()}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Space Invaders"
}

// ScoreOrder reports that higher scores are better.
func (g *Game) ScoreOrder() core.ScoreOrder {
	return core.HigherIsBetter
}

// Reset constructs the game in the idle phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadInvaders(rt.ConfigPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	g.cfg = cfg
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))

	g.Idle()
	if rt.Difficulty.Level != "" {
		_ = g.SetDifficulty(rt.Difficulty)
	}

	w := min(rt.ScreenW, maxFieldW)
	h := min(rt.ScreenH-hud.Height, maxFieldH)
	g.tooSmall = w < minFieldW || h < minFieldH || g.formationWidth() > w-4
	g.field = hud.Arena(core.NewRect(0, 0, rt.ScreenW, rt.ScreenH), w, h)

	g.setup()
}

func (g *Game) begin() {
	g.setup()
}

// setup resets lives and score state and spawns the first wave.
func (g *Game) setup() {
	g.lives = g.cfg.Player.Lives
	g.wave = 0
	g.tick = 0
	g.playerX = g.field.W / 2
	g.invulnerable = 0
	g.spawnWave()
}

// formationWidth returns the width in cells of a full formation.
func (g *Game) formationWidth() int {
	return (g.cfg.Formation.Cols-1)*g.cfg.Formation.SpacingX + invaderW
}

// spawnWave places a fresh formation at the top. Each wave marches faster.
func (g *Game) spawnWave() {
	f := g.cfg.Formation
	g.alive = make([][]bool, f.Rows)
	for r := range g.alive {
		g.alive[r] = make([]bool, f.Cols)
		for c := range g.alive[r] {
			g.alive[r][c] = true
		}
	}
	g.originX = 2
	g.originY = 1
	g.dir = 1
	g.frame = 0

	d := g.Difficulty()
	base := max(f.MarchTicks-f.WaveSpeedUp*g.wave, f.MinMarchTicks)
	g.marchTicks = d.Interval(base)
	g.fireTicks = d.Interval(g.cfg.Enemy.FireInterval)

	g.shot = nil
	g.shotCool = 0
	g.enemyShots = nil
	g.marchTicker = 0
	g.fireTicker = 0
	g.moveTicker = 0
}

func (g *Game) total() int {
	return g.cfg.Formation.Rows * g.cfg.Formation.Cols
}

func (g *Game) remaining() int {
	n := 0
	for _, row := range g.alive {
		for _, a := range row {
			if a {
				n++
			}
		}
	}
	return n
}

// invaderPos returns the field position of the invader at row r, column c.
func (g *Game) invaderPos(r, c int) core.Point {
	f := g.cfg.Formation
	return core.Point{X: g.originX + c*f.SpacingX, Y: g.originY + r*f.SpacingY}
}

// playerY returns the field row of the cannon.
func (g *Game) playerY() int {
	return g.field.H - 2
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || !g.Control(in, g.begin) {
		return g.Result(g.lives, -1)
	}

	g.tick++
	if g.invulnerable > 0 {
		g.invulnerable--
	}

	g.handleInput(in)
	g.updatePlayerShot()
	g.updateEnemyShots()
	if !g.Playing() {
		return g.Result(g.lives, -1)
	}

	g.marchTicker++
	if g.marchTicker >= g.marchInterval() {
		g.marchTicker = 0
		g.march()
	}
	if !g.Playing() {
		return g.Result(g.lives, -1)
	}

	g.fireTicker++
	if g.fireTicker >= g.fireTicks {
		g.fireTicker = 0
		g.enemyFire()
	}

	return g.Result(g.lives, -1)
}

// marchInterval shrinks with the number of invaders left.
func (g *Game) marchInterval() int {
	total := g.total()
	if total == 0 {
		return g.marchTicks
	}
	v := g.marchTicks * max(g.remaining(), 1) / total
	return max(v, g.cfg.Formation.MinMarchTicks, 1)
}

func (g *Game) handleInput(in core.InputFrame) {
	g.moveTicker++
	if g.moveTicker >= g.cfg.Player.MoveTicks {
		switch {
		case in.Held(core.ActionLeft):
			g.playerX--
			g.moveTicker = 0
		case in.Held(core.ActionRight):
			g.playerX++
			g.moveTicker = 0
		}
		g.playerX = core.Clamp(g.playerX, 2, g.field.W-3)
	}

	if g.shotCool > 0 {
		g.shotCool--
	}
	if (in.Has(core.ActionFire) || in.Has(core.ActionUp)) && g.shot == nil && g.shotCool == 0 {
		g.shot = &Shot{X: g.playerX, Y: g.playerY() - 1}
		g.shotCool = g.cfg.Player.ShotCooldown
		g.Emit(SoundShoot)
	}
}

func (g *Game) updatePlayerShot() {
	if g.shot == nil {
		return
	}
	g.shot.timer++
	if g.shot.timer < g.cfg.Player.ShotTicks {
		return
	}
	g.shot.timer = 0
	g.shot.Y--
	if g.shot.Y < 1 {
		g.shot = nil
		return
	}
	g.checkShotHit()
}

// checkShotHit destroys the invader under the player's shot.
func (g *Game) checkShotHit() {
	for r, row := range g.alive {
		for c, a := range row {
			if !a {
				continue
			}
			p := g.invaderPos(r, c)
			if g.shot.Y == p.Y && g.shot.X >= p.X && g.shot.X < p.X+invaderW {
				g.alive[r][c] = false
				g.shot = nil
				g.AddScore(g.rowPoints(r))
				g.Emit(SoundExplode)
				if g.remaining() == 0 {
					g.wave++
					g.AddScore(g.cfg.Scoring.WaveBonus)
					g.Emit(core.SoundScore)
					g.spawnWave()
				}
				return
			}
		}
	}
}

func (g *Game) rowPoints(r int) int {
	pts := g.cfg.Scoring.Rows
	if len(pts) == 0 {
		return 10
	}
	return pts[min(r, len(pts)-1)]
}

func (g *Game) updateEnemyShots() {
	kept := g.enemyShots[:0]
	for _, s := range g.enemyShots {
		s.timer++
		if s.timer >= g.cfg.Enemy.ShotTicks {
			s.timer = 0
			s.Y++
		}
		if s.Y == g.playerY() && s.X >= g.playerX-1 && s.X <= g.playerX+1 {
			g.playerHit()
			if !g.Playing() {
				return
			}
			continue
		}
		if s.Y < g.field.H-1 {
			kept = append(kept, s)
		}
	}
	g.enemyShots = kept
}

// playerHit costs a life unless the cannon is still invulnerable.
func (g *Game) playerHit() {
	if g.invulnerable > 0 {
		return
	}
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.End(false)
		return
	}
	g.Emit(core.SoundLifeLost)
	g.invulnerable = g.cfg.Player.Invulnerable
}

// march moves the formation one step sideways, or down and reversed at
// an edge. Reaching the cannon's row ends the game.
func (g *Game) march() {
	left, right, _ := g.extent()
	if left < 0 {
		return
	}

	if (g.dir > 0 && right+1 >= g.field.W-1) || (g.dir < 0 && left-1 < 1) {
		g.originY++
		g.dir = -g.dir
	} else {
		g.originX += g.dir
	}
	g.frame ^= 1
	g.Emit(SoundMarch)

	if _, _, bottom := g.extent(); bottom >= g.playerY() {
		g.End(false)
	}
}

// extent returns the leftmost and rightmost columns and the bottom row
// covered by live invaders. left is -1 when none are left.
func (g *Game) extent() (left, right, bottom int) {
	left, right, bottom = -1, -1, -1
	for r, row := range g.alive {
		for c, a := range row {
			if !a {
				continue
			}
			p := g.invaderPos(r, c)
			if left < 0 || p.X < left {
				left = p.X
			}
			right = max(right, p.X+invaderW-1)
			bottom = max(bottom, p.Y)
		}
	}
	return left, right, bottom
}

// enemyFire drops a shot from the lowest invader of a random column.
func (g *Game) enemyFire() {
	if len(g.enemyShots) >= g.cfg.Enemy.MaxShots {
		return
	}
	var shooters []core.Point
	for c := 0; c < g.cfg.Formation.Cols; c++ {
		for r := len(g.alive) - 1; r >= 0; r-- {
			if g.alive[r][c] {
				p := g.invaderPos(r, c)
				shooters = append(shooters, core.Point{X: p.X + 1, Y: p.Y + 1})
				break
			}
		}
	}
	if len(shooters) == 0 {
		return
	}
	p := shooters[g.rng.Intn(len(shooters))]
	g.enemyShots = append(g.enemyShots, &Shot{X: p.X, Y: p.Y})
}

// Render draws the formation, shots and cannon.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		hud.TooSmall(dst, max(minFieldW, g.formationWidth()+4), minFieldH+hud.Height)
		return
	}

	hud.Header(dst, "Space Invaders", g.Score(),
		hud.Lives(g.lives),
		fmt.Sprintf("Wave: %d", g.wave+1))

	f := g.field
	dst.DrawBoxColored(f, core.ColorGray)

	for r, row := range g.alive {
		sprite := sprites[r%len(sprites)][g.frame]
		color := rowColors[r%len(rowColors)]
		for c, a := range row {
			if a {
				p := g.invaderPos(r, c)
				dst.DrawTextColored(f.X+p.X, f.Y+p.Y, sprite, color)
			}
		}
	}

	if g.shot != nil {
		dst.SetColored(f.X+g.shot.X, f.Y+g.shot.Y, '|', core.ColorBrightWhite)
	}
	for _, s := range g.enemyShots {
		dst.SetColored(f.X+s.X, f.Y+s.Y, '!', core.ColorBrightRed)
	}

	if g.invulnerable == 0 || (g.invulnerable/6)%2 == 0 {
		dst.DrawTextColored(f.X+g.playerX-1, f.Y+g.playerY(), "/A\\", core.ColorBrightGreen)
	}

	hud.Overlay(dst, "Space Invaders", g.State(), g.Difficulty().Level, "←→ move  Space fire")
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.Session.State(g.lives, -1)
}

// Board returns the screen rectangle of the field.
func (g *Game) Board() core.Rect {
	return g.field
}

// TooSmall reports whether the screen cannot fit the field.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
