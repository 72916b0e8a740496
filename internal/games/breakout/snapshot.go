package breakout

// Snapshot contains the game state for replay and determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick            uint64
	Phase           string
	PaddleX         int
	Score           int
	Lives           int
	BricksRemaining int
	BallSpeed       int // Current base ball speed (fixed-point)

	BallX, BallY   int
	BallVX, BallVY int
	BallStuck      bool

	// Brick states (flattened: row*width + col = index), each brick is its HP
	// or 0 when destroyed
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, g.level.Width*g.level.Height)
	for row := range g.level.Height {
		for col := range g.level.Width {
			b := g.level.Bricks[row][col]
			hp := 0
			if b.Alive {
				hp = b.HP
			}
			brickData = append(brickData, hp)
		}
	}

	return Snapshot{
		Tick:            uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:           g.Phase().String(),
		PaddleX:         int(g.paddle.X),
		Score:           g.Score(),
		Lives:           g.lives,
		BricksRemaining: g.level.CountAlive(),
		BallSpeed:       int(g.currentBallSpeed),
		BallX:           int(g.ball.X),
		BallY:           int(g.ball.Y),
		BallVX:          int(g.ball.VX),
		BallVY:          int(g.ball.VY),
		BallStuck:       g.ball.Stuck,
		BrickData:       brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.PaddleX, snap.Score, snap.Lives, snap.BricksRemaining, snap.BallSpeed,
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.BallStuck {
		h = h*31 + 1
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
