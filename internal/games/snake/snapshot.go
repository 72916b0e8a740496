package snake

import "github.com/vovakirdan/arcade-hub/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Phase     string
	Score     int
	FoodEaten int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Heading   core.Point
	FoodX     int
	FoodY     int
	MoveTicks int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	return Snapshot{
		Tick:      g.tick,
		Phase:     g.Phase().String(),
		Score:     g.Score(),
		FoodEaten: g.foodEaten,
		SnakeLen:  len(g.snake),
		HeadX:     headX,
		HeadY:     headY,
		Heading:   g.heading,
		FoodX:     g.food.X,
		FoodY:     g.food.Y,
		MoveTicks: g.moveTicks,
	}
}
