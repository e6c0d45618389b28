package pong

import (
	"math"
	"math/rand"
	"time"
)

// Paddle indexes
const (
	Human = 0
	AI    = 1
)

// maxScoreServe bounds the x component requested for the serve after a point
const maxScoreServe = 200

// Random is the source of serve directions. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// Game is the whole play state: field, ball, both paddles and tunables.
// It is driven from outside, one Frame call per display refresh, and never
// schedules itself.
type Game struct {
	Width   float64
	Height  float64
	Ball    *Ball
	Players [2]*Paddle
	State   GameState

	// OnScore, when set, is called after a point has been awarded
	OnScore func(player int)

	rng Random
}

// NewGame creates a game on a width by height field. The ball waits
// motionless in the center until Start is called. A nil rng is replaced by a
// time-seeded one.
func NewGame(width, height float64, state GameState, rng Random) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		Width:  width,
		Height: height,
		Ball:   NewBall(),
		State:  state,
		rng:    rng,
	}
	g.Players = [2]*Paddle{
		NewPaddle(PaddleShift, height/2),
		NewPaddle(width-PaddleShift, height/2),
	}
	g.Reset(0, 0)
	return g
}

// Reset puts the ball in the center of the field heading toward (vx, vy) at
// the initial speed. Reset(0, 0) leaves the ball at rest.
func (g *Game) Reset(vx, vy float64) {
	g.Ball.Pos = Center(g.Width, g.Height)
	g.Ball.Vel = Vector{X: vx, Y: vy}
	g.Ball.Vel.Normalize()
	g.Ball.Vel.Scale(g.State.InitialSpeed)
}

// Start serves the first ball. Only the first call has an effect; it
// reports whether the serve happened.
func (g *Game) Start() bool {
	if g.State.Running() {
		return false
	}
	g.Reset(g.serveX(), g.serveY())
	g.State.Phase = Running
	return true
}

// serveX picks the horizontal serve direction by coin flip
func (g *Game) serveX() float64 {
	if g.rng.Float64() > .5 {
		return g.State.InitialSpeed
	}
	return -g.State.InitialSpeed
}

// serveY yields either 0 or -InitialSpeed, never a downward serve
func (g *Game) serveY() float64 {
	return math.Floor(g.rng.Float64()-.5) * g.State.InitialSpeed
}

// Integrate moves the ball along its velocity for dt seconds
func (g *Game) Integrate(dt float64) {
	g.Ball.Pos.X += g.Ball.Vel.X * dt
	g.Ball.Pos.Y += g.Ball.Vel.Y * dt
}

// CheckHorizontalBounds awards a point when the ball leaves the field on
// the left or the right.
func (g *Game) CheckHorizontalBounds() bool {
	if g.Ball.Left() < 0 || g.Ball.Right() > g.Width {
		g.Score()
		return true
	}
	return false
}

// CheckVerticalBounds bounces the ball off the top and bottom edges.
// The ball is not pushed back inside; it may sit past the edge for a frame.
func (g *Game) CheckVerticalBounds() bool {
	if g.Ball.Top() < 0 || g.Ball.Bottom() > g.Height {
		g.BounceY()
		return true
	}
	return false
}

// BounceY reflects the vertical velocity
func (g *Game) BounceY() {
	if g.State.AlwaysSpeedup {
		g.Ball.Vel.Y = g.speedup(g.Ball.Vel.Y)
	}
	g.Ball.Vel.Y = -g.Ball.Vel.Y
}

// speedup adds sign(v)*pct*v to v. That is pct*|v| for either sign, so a
// negative component loses magnitude instead of gaining it.
func (g *Game) speedup(v float64) float64 {
	return v + sign(v)*g.State.SpeedupPercentage*v
}

// Score credits the player the ball was travelling away from and serves a
// new ball toward the player who lost the point. It returns the index of
// the scoring player.
func (g *Game) Score() int {
	id := Human
	if g.Ball.Vel.X < 0 {
		id = AI
	}
	g.Players[id].Score++

	dir := -1.0
	if id == AI {
		dir = 1
	}
	// the magnitude can floor to zero, which serves a purely vertical or
	// motionless ball
	vx := dir * math.Floor(g.rng.Float64()*maxScoreServe)
	g.Reset(vx, g.serveY())

	if g.OnScore != nil {
		g.OnScore(id)
	}
	return id
}

// UpdateAI moves the computer paddle toward the ball
func (g *Game) UpdateAI(dt float64) {
	p := g.Players[AI]
	switch g.State.AIPolicy {
	case Follow:
		p.Pos.Y = (p.Pos.Y + g.Ball.Pos.Y) / 2
	default:
		diff := g.Ball.Pos.Y - p.Pos.Y
		g.State.AIVelocity = g.State.AIDifficulty * sign(diff) * math.Sqrt(math.Abs(diff))
		p.Pos.Y += g.State.AIVelocity * dt
	}
}

// Collide reflects the ball horizontally if it overlaps p. No penetration
// correction is applied.
func (g *Game) Collide(p *Paddle) bool {
	if !Overlaps(p.Rect, g.Ball.Rect) {
		return false
	}
	if g.State.AlwaysSpeedup {
		g.Ball.Vel.X = g.speedup(g.Ball.Vel.X)
	}
	g.Ball.Vel.X = -g.Ball.Vel.X
	return true
}

// Update advances the simulation by dt seconds
func (g *Game) Update(dt float64) {
	g.Integrate(dt)
	g.CheckHorizontalBounds()
	g.CheckVerticalBounds()
	g.UpdateAI(dt)
	for _, p := range g.Players {
		g.Collide(p)
	}
}

// Frame runs one update and paints the result on r
func (g *Game) Frame(dt float64, r Renderer) {
	g.Update(dt)
	if r != nil {
		g.Draw(r)
	}
}

// Draw paints the background, the ball and both paddles
func (g *Game) Draw(r Renderer) {
	r.Clear(BgColor)
	drawRect(r, g.Ball.Rect)
	for _, p := range g.Players {
		drawRect(r, p.Rect)
	}
}

// PointerMove places the human paddle at height y. Last write wins and the
// paddle may leave the field.
func (g *Game) PointerMove(y float64) {
	g.Players[Human].Pos.Y = y
}

// Click serves the first ball
func (g *Game) Click() {
	g.Start()
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
