package invaders

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Phase      string
	Score      int
	Lives      int
	Wave       int
	Remaining  int
	OriginX    int
	OriginY    int
	PlayerX    int
	EnemyShots int
	HasShot    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Phase:      g.Phase().String(),
		Score:      g.Score(),
		Lives:      g.lives,
		Wave:       g.wave,
		Remaining:  g.remaining(),
		OriginX:    g.originX,
		OriginY:    g.originY,
		PlayerX:    g.playerX,
		EnemyShots: len(g.enemyShots),
		HasShot:    g.shot != nil,
	}
}
