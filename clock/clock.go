// Package clock paces frames at a fixed rate and derives the light orbit phase.
package clock

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"
)

// DefaultMaxLagTicks is how many ticks the clock may fall behind before it
// resynchronizes instead of replaying missed frames
const DefaultMaxLagTicks = 2

// MaxFPS is the highest rate with a non-zero tick
const MaxFPS = int(time.Second)

// Clock is a fixed-timestep frame pacer
// The last tick advances by exactly one tick per frame so the long-run rate
// matches the target regardless of sleep imprecision
type Clock struct {
	src    TimeSource
	tick   time.Duration
	period float64 // Orbit period in seconds
	maxLag time.Duration

	start time.Time // Animation epoch
	last  time.Time // Last tick time

	frames  atomic.Uint64
	resyncs atomic.Uint64
}

// New creates a clock for fps frames per second and an orbit period in
// seconds. The first Advance returns without waiting
func New(fps int, period float64, src TimeSource) (*Clock, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("clock: fps must be positive, got %d", fps)
	}
	if fps > MaxFPS {
		return nil, fmt.Errorf("clock: fps must be at most %d, got %d", MaxFPS, fps)
	}
	if !(period > 0) || math.IsInf(period, 1) {
		return nil, fmt.Errorf("clock: period must be a positive number, got %v", period)
	}
	if src == nil {
		src = NewTimeProvider()
	}

	tick := time.Second / time.Duration(fps)
	last := src.Now().Add(-tick)
	return &Clock{
		src:    src,
		tick:   tick,
		period: period,
		maxLag: tick * DefaultMaxLagTicks,
		start:  last,
		last:   last,
	}, nil
}

// Tick returns the frame period
func (c *Clock) Tick() time.Duration {
	return c.tick
}

// Frames returns how many ticks have been advanced
func (c *Clock) Frames() uint64 {
	return c.frames.Load()
}

// Resyncs returns how many times the clock skipped ahead after falling behind
func (c *Clock) Resyncs() uint64 {
	return c.resyncs.Load()
}

// Advance blocks until one full tick has elapsed since the last tick, then
// moves the last tick forward by exactly one tick and returns the phase
// The wait is bounded by one tick and aborts with ctx.Err() on cancellation
func (c *Clock) Advance(ctx context.Context) (float64, error) {
	deadline := c.last.Add(c.tick)

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		now := c.src.Now()
		if !now.Before(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-c.src.After(deadline.Sub(now)):
		}
	}

	c.last = deadline

	// Behind by more than maxLag: drop the backlog rather than render it in a burst
	if now := c.src.Now(); now.Sub(c.last) > c.maxLag {
		c.last = now
		c.resyncs.Add(1)
	}

	c.frames.Add(1)
	return c.Phase(), nil
}

// Elapsed returns animation time at the last tick
func (c *Clock) Elapsed() time.Duration {
	return c.last.Sub(c.start)
}

// Phase returns the orbit angle at the last tick in [0, 2π)
func (c *Clock) Phase() float64 {
	return PhaseAt(c.Elapsed(), c.period)
}

// PhaseAt returns 2π/period * elapsed reduced to [0, 2π)
func PhaseAt(elapsed time.Duration, period float64) float64 {
	theta := math.Mod(2*math.Pi/period*elapsed.Seconds(), 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}
