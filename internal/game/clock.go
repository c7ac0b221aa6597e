package game

import (
	"context"
	"sync/atomic"
	"time"
)

// Clock is the level countdown. It is the only value shared between the
// ticking goroutine and the controller.
type Clock struct {
	remaining atomic.Int64
}

// NewClock creates a clock with the given number of ticks left.
func NewClock(remaining int) *Clock {
	c := &Clock{}
	c.Reset(remaining)
	return c
}

// Remaining returns the ticks left. It goes negative once time is up.
func (c *Clock) Remaining() int {
	return int(c.remaining.Load())
}

// Tick counts down one unit.
func (c *Clock) Tick() {
	c.remaining.Add(-1)
}

// Reset sets the ticks left. Only level and session resets call it.
func (c *Clock) Reset(remaining int) {
	c.remaining.Store(int64(remaining))
}

// Run ticks once per interval until ctx is cancelled.
func (c *Clock) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}
