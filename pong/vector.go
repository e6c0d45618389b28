package pong

import "math"

// Vector is a pair of coordinates in the 2-D plane
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Len returns the euclidean norm of v
func (v Vector) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize scales v to unit length. The zero vector is left untouched.
func (v *Vector) Normalize() {
	if v.X == 0 && v.Y == 0 {
		return
	}
	l := v.Len()
	v.X /= l
	v.Y /= l
}

// Scale multiplies both components by c
func (v *Vector) Scale(c float64) {
	v.X *= c
	v.Y *= c
}
