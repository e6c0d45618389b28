package pong

// BallSnapshot is the wire view of the ball
type BallSnapshot struct {
	Position Vector `json:"position"`
	Velocity Vector `json:"velocity"`
}

// PaddleSnapshot is the wire view of a paddle
type PaddleSnapshot struct {
	Position Vector `json:"position"`
	Score    int    `json:"score"`
}

// Snapshot is a point-in-time copy of a Game, safe to hand to other goroutines
type Snapshot struct {
	Phase   Phase             `json:"phase"`
	Width   float64           `json:"width"`
	Height  float64           `json:"height"`
	Ball    BallSnapshot      `json:"ball"`
	Players [2]PaddleSnapshot `json:"players"`
}

// Snapshot copies the current state of g
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:  g.State.Phase,
		Width:  g.Width,
		Height: g.Height,
		Ball: BallSnapshot{
			Position: g.Ball.Pos,
			Velocity: g.Ball.Vel,
		},
	}
	for i, p := range g.Players {
		s.Players[i] = PaddleSnapshot{Position: p.Pos, Score: p.Score}
	}
	return s
}
