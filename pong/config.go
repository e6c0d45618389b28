package pong

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every validation failure from LoadConfig
var ErrInvalidConfig = errors.New("invalid config")

// Config is the on-disk form of the game settings
type Config struct {
	Width             float64  `toml:"width"`
	Height            float64  `toml:"height"`
	AIDifficulty      float64  `toml:"ai_difficulty"`
	AIPolicy          AIPolicy `toml:"ai_policy"`
	InitialSpeed      float64  `toml:"initial_speed"`
	AlwaysSpeedup     bool     `toml:"always_speedup"`
	SpeedupPercentage float64  `toml:"speedup_percentage"`
	Seed              int64    `toml:"seed"`
	SpectatorAddr     string   `toml:"spectator_addr"`
}

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// DefaultConfig returns the settings used when no file is given
func DefaultConfig() Config {
	s := DefaultGameState()
	return Config{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		AIDifficulty:      s.AIDifficulty,
		AIPolicy:          s.AIPolicy,
		InitialSpeed:      s.InitialSpeed,
		AlwaysSpeedup:     s.AlwaysSpeedup,
		SpeedupPercentage: s.SpeedupPercentage,
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path yields the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks the values a game cannot be built from
func (c Config) Validate() error {
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"initial_speed", c.InitialSpeed},
		{"ai_difficulty", c.AIDifficulty},
		{"speedup_percentage", c.SpeedupPercentage},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s %g is not finite", ErrInvalidConfig, f.key, f.v)
		}
	}

	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: field size %gx%g must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.InitialSpeed < 0:
		return fmt.Errorf("%w: initial_speed %g is negative", ErrInvalidConfig, c.InitialSpeed)
	case c.AIDifficulty < 0:
		return fmt.Errorf("%w: ai_difficulty %g is negative", ErrInvalidConfig, c.AIDifficulty)
	case c.SpeedupPercentage < 0:
		return fmt.Errorf("%w: speedup_percentage %g is negative", ErrInvalidConfig, c.SpeedupPercentage)
	case !c.AIPolicy.Valid():
		return fmt.Errorf("%w: ai_policy %q", ErrInvalidConfig, c.AIPolicy)
	}
	return nil
}

// GameState returns the tunables described by c, not yet started
func (c Config) GameState() GameState {
	s := DefaultGameState()
	s.AIDifficulty = c.AIDifficulty
	s.AIPolicy = c.AIPolicy
	s.InitialSpeed = c.InitialSpeed
	s.AlwaysSpeedup = c.AlwaysSpeedup
	s.SpeedupPercentage = c.SpeedupPercentage
	return s
}

// Random returns the serve source. A zero seed picks one from the clock.
func (c Config) Random() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewGame builds a game from c
func (c Config) NewGame() *Game {
	return NewGame(c.Width, c.Height, c.GameState(), c.Random())
}
