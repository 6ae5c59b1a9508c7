package frameloop

import (
	"context"
	"time"
)

// DefaultInterval is roughly one frame at 30 fps.
const DefaultInterval = time.Second / 30

// Loop turns a ticker into frame callbacks carrying the elapsed wall time.
type Loop struct {
	interval time.Duration
	dispatch func(func())
	now      func() time.Time
}

// New creates a loop. dispatch decides where frames run; pass fyne.Do to run
// them on the UI goroutine or nil to run them on the loop goroutine.
func New(interval time.Duration, dispatch func(func())) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if dispatch == nil {
		dispatch = func(frame func()) { frame() }
	}
	return &Loop{
		interval: interval,
		dispatch: dispatch,
		now:      time.Now,
	}
}

// Run delivers frames until ctx is cancelled. Elapsed time is measured between
// consecutive ticks, so a stalled dispatcher does not lose time.
func (loop *Loop) Run(ctx context.Context, onFrame func(elapsed float64)) {
	ticker := time.NewTicker(loop.interval)
	defer ticker.Stop()

	last := loop.now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := loop.now()
			elapsed := current.Sub(last).Seconds()
			last = current
			if elapsed <= 0 {
				continue
			}
			loop.dispatch(func() {
				onFrame(elapsed)
			})
		}
	}
}
