package pong

// FrameClock turns the host's millisecond timestamps into frame deltas
type FrameClock struct {
	last    float64
	started bool
}

// Tick records millis and returns the seconds elapsed since the previous
// tick. The first tick has no predecessor and returns ok == false.
func (c *FrameClock) Tick(millis float64) (dt float64, ok bool) {
	if c.started {
		dt, ok = (millis-c.last)/1000, true
	}
	c.last = millis
	c.started = true
	return dt, ok
}
