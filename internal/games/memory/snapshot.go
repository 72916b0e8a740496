package memory

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Phase    string
	Score    int
	Pairs    int
	Cursor   int
	TimeLeft int
	Locked   bool
	Layout   string // Card faces in board order
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	layout := make([]rune, len(g.cards))
	for i, c := range g.cards {
		layout[i] = c.Face
	}
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.Phase().String(),
		Score:    g.Score(),
		Pairs:    g.pairs,
		Cursor:   g.cursor,
		TimeLeft: g.timeLeft,
		Locked:   g.locked,
		Layout:   string(layout),
	}
}
