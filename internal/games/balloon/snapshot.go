package balloon

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Phase    string
	Score    int
	Lives    int
	TimeLeft int
	Balloons int
	Popped   int
	CursorX  int
	CursorY  int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.Phase().String(),
		Score:    g.Score(),
		Lives:    g.lives,
		TimeLeft: g.timeLeft,
		Balloons: len(g.balloons),
		Popped:   g.popped,
		CursorX:  g.cursor.X,
		CursorY:  g.cursor.Y,
	}
}
