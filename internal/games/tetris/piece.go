package tetris

import (
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Kind identifies a tetromino.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	numKinds
)

// shapes holds each tetromino in its spawn orientation as cell offsets.
var shapes = [numKinds][4]core.Point{
	KindI: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	KindO: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	KindT: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
	KindS: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}},
	KindZ: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	KindJ: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
	KindL: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 1}},
}

var kindColors = [numKinds]core.Color{
	KindI: core.ColorBrightCyan,
	KindO: core.ColorBrightYellow,
	KindT: core.ColorBrightMagenta,
	KindS: core.ColorBrightGreen,
	KindZ: core.ColorBrightRed,
	KindJ: core.ColorBrightBlue,
	KindL: core.ColorOrange,
}

// Piece is the falling tetromino.
type Piece struct {
	Kind  Kind
	Pos   core.Point // Pivot position in well coordinates
	Cells [4]core.Point
}

func newPiece(k Kind, pos core.Point) Piece {
	return Piece{Kind: k, Pos: pos, Cells: shapes[k]}
}

// rotated returns the piece turned a quarter clockwise around its pivot.
func (p Piece) rotated() Piece {
	if p.Kind == KindO {
		return p
	}
	for i, c := range p.Cells {
		p.Cells[i] = core.Point{X: -c.Y, Y: c.X}
	}
	return p
}

func (p Piece) moved(dx, dy int) Piece {
	p.Pos = core.Point{X: p.Pos.X + dx, Y: p.Pos.Y + dy}
	return p
}

// blocks returns the absolute well cells the piece covers.
func (p Piece) blocks() [4]core.Point {
	var out [4]core.Point
	for i, c := range p.Cells {
		out[i] = p.Pos.Add(c)
	}
	return out
}

// bag deals tetrominoes in shuffled groups of seven, so every kind appears
// once per group.
type bag struct {
	rng   *rand.Rand
	queue []Kind
}

func (b *bag) next() Kind {
	if len(b.queue) == 0 {
		b.queue = make([]Kind, numKinds)
		for i := range b.queue {
			b.queue[i] = Kind(i)
		}
		b.rng.Shuffle(len(b.queue), func(i, j int) {
			b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
		})
	}
	k := b.queue[0]
	b.queue = b.queue[1:]
	return k
}
