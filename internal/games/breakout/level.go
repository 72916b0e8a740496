// Package breakout implements a Breakout brick breaker game.
package breakout

// BrickType represents different types of bricks.
type BrickType int

const (
	BrickNormal BrickType = iota // Destroyed in one hit
	BrickHard                    // Requires 2 hits to destroy
)

// Brick represents a single brick in the wall.
type Brick struct {
	Type   BrickType
	Points int  // Points awarded when destroyed
	Alive  bool // Whether brick is still present
	HP     int  // Hit points remaining
}

// Level represents the brick wall.
type Level struct {
	Width  int       // Number of brick columns
	Height int       // Number of brick rows
	Bricks [][]Brick // 2D grid of bricks [row][col]
}

// NewWall builds a rows×cols wall. points holds the value of each row,
// top first; rows beyond it reuse the last value. The top row of a wall
// with more than three rows is made of hard bricks.
func NewWall(rows, cols int, points []int) *Level {
	l := &Level{
		Width:  cols,
		Height: rows,
		Bricks: make([][]Brick, rows),
	}
	for r := range rows {
		p := 10
		if len(points) > 0 {
			p = points[min(r, len(points)-1)]
		}
		l.Bricks[r] = make([]Brick, cols)
		for c := range cols {
			b := Brick{Type: BrickNormal, Points: p, Alive: true, HP: 1}
			if r == 0 && rows > 3 {
				b.Type = BrickHard
				b.HP = 2
			}
			l.Bricks[r][c] = b
		}
	}
	return l
}

// CountAlive returns the number of remaining bricks.
func (l *Level) CountAlive() int {
	count := 0
	for _, row := range l.Bricks {
		for _, b := range row {
			if b.Alive {
				count++
			}
		}
	}
	return count
}

// Clone creates a deep copy of the level.
func (l *Level) Clone() *Level {
	clone := &Level{
		Width:  l.Width,
		Height: l.Height,
		Bricks: make([][]Brick, len(l.Bricks)),
	}
	for i, row := range l.Bricks {
		clone.Bricks[i] = make([]Brick, len(row))
		copy(clone.Bricks[i], row)
	}
	return clone
}
