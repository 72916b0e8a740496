package pong

// Snapshot contains the state of a Pong game for determinism checks.
// Uses primitive types only so two snapshots compare with ==.
type Snapshot struct {
	Tick     int
	Phase    string
	BallX    int
	BallY    int
	BallVX   int // Velocity scaled by 1000 (for precision)
	BallVY   int // Velocity scaled by 1000
	Paddle1Y int
	Paddle2Y int
	Score1   int
	Score2   int
	Serving  bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.ticks,
		Phase:    g.Phase().String(),
		BallX:    int(g.ball.x),
		BallY:    int(g.ball.y),
		BallVX:   int(g.ball.vx * 1000),
		BallVY:   int(g.ball.vy * 1000),
		Paddle1Y: int(g.player.y),
		Paddle2Y: int(g.cpu.y),
		Score1:   g.player.points,
		Score2:   g.cpu.points,
		Serving:  g.serving,
	}
}
