package game

import "time"

// Clock tells the loop how much time has passed since rendering started.
// It must never go backwards.
type Clock interface {
	Now() time.Duration
}

// WallClock reads the monotonic wall clock.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}

type Ticker interface {
	Tick()
}

// StepClock advances by a fixed Step on every Tick. Useful for recording and tests.
type StepClock struct {
	Step    time.Duration
	current time.Duration
}

func (c *StepClock) Tick() {
	c.current += c.Step
}

func (c *StepClock) Now() time.Duration {
	return c.current
}
