package pong

// Rect is an axis-aligned box. Pos is its center, Size its width and height.
type Rect struct {
	Pos  Vector
	Size Vector
}

// NewRect returns a w by h rectangle centered on the origin
func NewRect(w, h float64) Rect {
	return Rect{Size: Vector{X: w, Y: h}}
}

func (r Rect) Left() float64   { return r.Pos.X - r.Size.X/2 }
func (r Rect) Right() float64  { return r.Pos.X + r.Size.X/2 }
func (r Rect) Top() float64    { return r.Pos.Y - r.Size.Y/2 }
func (r Rect) Bottom() float64 { return r.Pos.Y + r.Size.Y/2 }

// Overlaps reports whether a and b intersect on both axes.
// Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.Left() < b.Right() && a.Right() > b.Left() &&
		a.Top() < b.Bottom() && a.Bottom() > b.Top()
}
