package pong

import "fmt"

// Phase is an enum for the session lifecycle
type Phase byte

const (
	NotStarted Phase = iota
	Running
)

var phaseName = map[Phase]string{
	NotStarted: "not_started",
	Running:    "running",
}

func (p Phase) String() string {
	return phaseName[p]
}

// MarshalText lets snapshots carry the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	name, ok := phaseName[p]
	if !ok {
		return nil, fmt.Errorf("unknown phase %d", p)
	}
	return []byte(name), nil
}

// UnmarshalText parses a phase name written by MarshalText
func (p *Phase) UnmarshalText(b []byte) error {
	for k, v := range phaseName {
		if v == string(b) {
			*p = k
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", b)
}

// AIPolicy selects how the computer paddle chases the ball
type AIPolicy string

const (
	// RubberBand moves toward the ball at a speed proportional to the
	// square root of the vertical gap.
	RubberBand AIPolicy = "rubberband"
	// Follow closes half of the vertical gap every frame and cannot be beaten.
	Follow AIPolicy = "follow"
)

// Valid reports whether p names a known policy
func (p AIPolicy) Valid() bool {
	return p == RubberBand || p == Follow
}

// GameState holds the tunables and the session phase
type GameState struct {
	AIDifficulty      float64
	AIVelocity        float64
	AIPolicy          AIPolicy
	Phase             Phase
	InitialSpeed      float64
	AlwaysSpeedup     bool
	SpeedupPercentage float64
}

const (
	DefaultAIDifficulty      = 5
	DefaultInitialSpeed      = 400
	DefaultSpeedupPercentage = .1
)

// DefaultGameState returns the stock tunables in the NotStarted phase
func DefaultGameState() GameState {
	return GameState{
		AIDifficulty:      DefaultAIDifficulty,
		AIPolicy:          RubberBand,
		Phase:             NotStarted,
		InitialSpeed:      DefaultInitialSpeed,
		SpeedupPercentage: DefaultSpeedupPercentage,
	}
}

// Running reports whether the first serve has happened
func (s GameState) Running() bool {
	return s.Phase == Running
}
