package breakout

// Scale is the number of fixed-point units per cell. Ball physics runs on
// integers so replays with the same seed and input match exactly.
const Scale = 1000

// Fixed is a coordinate or velocity in 1/Scale cells.
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell truncates to a cell coordinate.
func (f Fixed) ToCell() int {
	return int(f) / Scale
}

// ToCellRounded rounds to the nearest cell, halves away from zero.
func (f Fixed) ToCellRounded() int {
	half := Fixed(Scale / 2)
	if f < 0 {
		half = -half
	}
	return int(f+half) / Scale
}

// Abs returns |f|.
func (f Fixed) Abs() Fixed {
	return max(f, -f)
}

// Sign returns -1, 0 or 1.
func (f Fixed) Sign() int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

// ClampFixed restricts v to [lo, hi].
func ClampFixed(v, lo, hi Fixed) Fixed {
	return min(max(v, lo), hi)
}

// Ball is the ball in arena coordinates.
type Ball struct {
	X, Y   Fixed
	VX, VY Fixed // per tick
	Stuck  bool  // resting on the paddle until served
}

// CellX returns the ball column.
func (b *Ball) CellX() int { return b.X.ToCell() }

// CellY returns the ball row.
func (b *Ball) CellY() int { return b.Y.ToCell() }

// Move advances the ball by one tick of velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Bounce names the velocity component a collision reverses.
type Bounce int

const (
	NoBounce Bounce = iota
	BounceHorizontal
	BounceVertical
)

// Apply reverses the component named by bn.
func (b *Ball) Apply(bn Bounce) {
	switch bn {
	case BounceHorizontal:
		b.VX = -b.VX
	case BounceVertical:
		b.VY = -b.VY
	}
}

// Paddle is the player's paddle. Only X moves.
type Paddle struct {
	X     Fixed // left edge
	Y     int   // row
	Width int   // cells
}

// CellX returns the paddle's left column.
func (p *Paddle) CellX() int { return p.X.ToCell() }

// Left returns the left edge.
func (p *Paddle) Left() Fixed { return p.X }

// Right returns the right edge.
func (p *Paddle) Right() Fixed { return p.X + ToFixed(p.Width) }

// CenterX returns the paddle center.
func (p *Paddle) CenterX() Fixed { return p.X + ToFixed(p.Width)/2 }

// WallBounce keeps the ball inside the border of a w×h arena and reports
// the bounce. fell is true once the ball crosses the bottom row.
func WallBounce(ball *Ball, w, h int) (bn Bounce, fell bool) {
	lo, right, bottom := ToFixed(1), ToFixed(w-1), ToFixed(h-1)
	switch {
	case ball.X < lo:
		ball.X = lo
		return BounceHorizontal, false
	case ball.X >= right:
		ball.X = right - 1
		return BounceHorizontal, false
	case ball.Y < lo:
		ball.Y = lo
		return BounceVertical, false
	case ball.Y >= bottom:
		return NoBounce, true
	}
	return NoBounce, false
}

// PaddleBounce sends a falling ball that reaches the paddle back up. The
// horizontal speed follows the hit offset from the paddle center, from
// -base at the left edge to +base at the right edge.
func PaddleBounce(ball *Ball, p *Paddle, base Fixed) bool {
	if ball.VY <= 0 {
		return false
	}
	if row := ball.CellY(); row != p.Y && row != p.Y-1 {
		return false
	}
	if ball.X < p.Left() || ball.X > p.Right() {
		return false
	}

	half := ToFixed(p.Width) / 2
	offset := Fixed(0)
	if half > 0 {
		offset = (ball.X - p.CenterX()) * Scale / half
	}

	ball.VY = min(-ball.VY.Abs(), -base/2)
	ball.VX = offset * base / Scale
	ball.Y = ToFixed(p.Y - 1)
	return true
}

// BrickHit finds the live brick under the ball. The wall starts at row top
// and one column right of the border; bricks are bw×bh cells. The bounce
// is vertical unless the ball is closer to a side edge and moving mostly
// sideways.
func BrickHit(ball *Ball, lvl *Level, top, bh, bw int) (row, col int, bn Bounce) {
	cx, cy := ball.CellX()-1, ball.CellY()
	if cx < 0 || cy < top {
		return -1, -1, NoBounce
	}
	row, col = (cy-top)/bh, cx/bw
	if row >= lvl.Height || col >= lvl.Width || !lvl.Bricks[row][col].Alive {
		return -1, -1, NoBounce
	}

	left := ToFixed(1 + col*bw)
	upper := ToFixed(top + row*bh)
	dx := min((ball.X - left).Abs(), (ball.X - left - ToFixed(bw)).Abs())
	dy := min((ball.Y - upper).Abs(), (ball.Y - upper - ToFixed(bh)).Abs())

	if ball.VY.Abs() > ball.VX.Abs() || dy <= dx {
		return row, col, BounceVertical
	}
	return row, col, BounceHorizontal
}
