package boxgrid

import (
	"context"
	"time"
)

// Ticker is anything advanced once per frame by dt seconds.
type Ticker interface {
	Tick(dt float64)
}

// TickerFunc adapts a function to Ticker.
type TickerFunc func(dt float64)

func (f TickerFunc) Tick(dt float64) { f(dt) }

// Run drives t every interval on the calling goroutine until ctx is done or,
// when maxFrames is positive, maxFrames ticks have run. Each tick completes
// before the next is scheduled.
func Run(ctx context.Context, t Ticker, interval time.Duration, maxFrames int) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for frame := 0; maxFrames <= 0 || frame < maxFrames; frame++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			t.Tick(now.Sub(last).Seconds())
			last = now
		}
	}
	return nil
}
