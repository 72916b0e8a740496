package core

import "testing"

func TestRectIntersects(t *testing.T) {
	base := NewRect(2, 2, 4, 3) // covers x 2..5, y 2..4
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"partial overlap", NewRect(4, 3, 4, 4), true},
		{"inside", NewRect(3, 3, 1, 1), true},
		{"enclosing", NewRect(0, 0, 10, 10), true},
		{"touching right edge", NewRect(6, 2, 2, 2), false},
		{"touching bottom edge", NewRect(2, 5, 2, 2), false},
		{"left of", NewRect(-3, 2, 2, 2), false},
		{"above", NewRect(2, -4, 2, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects is not symmetric for %+v", tt.other)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 3, 2)
	inside := []Point{{1, 1}, {3, 1}, {1, 2}, {3, 2}}
	outside := []Point{{0, 1}, {4, 1}, {1, 0}, {1, 3}}
	for _, p := range inside {
		if !r.ContainsPoint(p) {
			t.Errorf("%+v should be inside %+v", p, r)
		}
	}
	for _, p := range outside {
		if r.Contains(p.X, p.Y) {
			t.Errorf("%+v should be outside %+v", p, r)
		}
	}
}

func TestRectLayout(t *testing.T) {
	outer := NewRect(0, 0, 40, 20)

	box := outer.Centered(10, 4)
	if box != NewRect(15, 8, 10, 4) {
		t.Errorf("Centered = %+v", box)
	}
	if !box.Inside(outer) {
		t.Error("centered box should be inside")
	}
	if cx, cy := box.Center(); cx != 20 || cy != 10 {
		t.Errorf("Center = (%d, %d), want (20, 10)", cx, cy)
	}
	if big := outer.Centered(50, 4); big.Inside(outer) {
		t.Errorf("%+v should overflow", big)
	}
	if box.Right() != 25 || box.Bottom() != 12 {
		t.Errorf("edges = %d, %d", box.Right(), box.Bottom())
	}
}

func TestPointAdd(t *testing.T) {
	if got := (Point{X: 3, Y: -1}).Add(Point{X: -4, Y: 2}); got != (Point{X: -1, Y: 1}) {
		t.Errorf("Add = %+v", got)
	}
}

func TestClampHelpers(t *testing.T) {
	for _, tt := range []struct{ v, want int }{{-5, 0}, {0, 0}, {7, 7}, {10, 10}, {11, 10}} {
		if got := Clamp(tt.v, 0, 10); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
	if ClampF(1.5, 0, 1) != 1 || ClampF(-0.1, 0, 1) != 0 || ClampF(0.25, 0, 1) != 0.25 {
		t.Error("ClampF does not restrict to [0, 1]")
	}
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs is wrong")
	}
}
