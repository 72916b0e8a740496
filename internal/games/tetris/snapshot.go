package tetris

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Phase   string
	Score   int
	Lines   int
	Level   int
	Locked  int
	Piece   Kind
	PieceX  int
	PieceY  int
	Next    Kind
	Gravity int
	Filled  int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	filled := 0
	for _, row := range g.well {
		for _, c := range row {
			if c >= 0 {
				filled++
			}
		}
	}
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.Phase().String(),
		Score:   g.Score(),
		Lines:   g.lines,
		Level:   g.level,
		Locked:  g.locked,
		Piece:   g.piece.Kind,
		PieceX:  g.piece.Pos.X,
		PieceY:  g.piece.Pos.Y,
		Next:    g.next,
		Gravity: g.gravityTicks,
		Filled:  filled,
	}
}
