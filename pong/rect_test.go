package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rectAt(x, y, w, h float64) Rect {
	r := NewRect(w, h)
	r.Pos = Vector{X: x, Y: y}
	return r
}

func TestRectEdges(t *testing.T) {
	r := rectAt(40, 300, 20, 100)

	assert.Equal(t, 30.0, r.Left())
	assert.Equal(t, 50.0, r.Right())
	assert.Equal(t, 250.0, r.Top())
	assert.Equal(t, 350.0, r.Bottom())
}

func TestOverlaps(t *testing.T) {
	paddle := rectAt(40, 300, 20, 100)

	tests := []struct {
		name string
		ball Rect
		want bool
	}{
		{"inside", rectAt(45, 300, 10, 10), true},
		{"straddling top edge", rectAt(40, 248, 10, 10), true},
		{"touching right edge", rectAt(55, 300, 10, 10), false},
		{"touching left edge", rectAt(25, 300, 10, 10), false},
		{"touching bottom edge", rectAt(40, 355, 10, 10), false},
		{"right of paddle", rectAt(100, 300, 10, 10), false},
		{"x overlap only", rectAt(40, 500, 10, 10), false},
		{"y overlap only", rectAt(400, 300, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(paddle, tt.ball))
			assert.Equal(t, tt.want, Overlaps(tt.ball, paddle), "overlap should be symmetric")
		})
	}
}
