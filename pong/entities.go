package pong

const (
	BallSize     = 10
	PaddleWidth  = 20
	PaddleHeight = 100

	// PaddleShift is the distance between a paddle center and its side of the field
	PaddleShift = 40
)

// Ball is the moving square
type Ball struct {
	Rect
	Vel Vector
}

// NewBall returns a motionless ball at the origin
func NewBall() *Ball {
	return &Ball{Rect: NewRect(BallSize, BallSize)}
}

// Paddle is a player's bat along with the points it has won
type Paddle struct {
	Rect
	Score int
}

// NewPaddle returns a paddle centered on (x, y)
func NewPaddle(x, y float64) *Paddle {
	p := &Paddle{Rect: NewRect(PaddleWidth, PaddleHeight)}
	p.Pos = Vector{X: x, Y: y}
	return p
}
