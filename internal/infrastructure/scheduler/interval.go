package scheduler

import (
	"context"
	"time"

	"financehub/internal/ports"
)

// Interval is a fixed-period scheduler backed by time.Ticker. Unlike a
// fire-and-forget timer it is explicitly stoppable, and it does not run the
// job immediately on Start; the first execution waits one full period.
type Interval struct {
	period time.Duration
	stop   chan struct{}
}

var _ ports.Scheduler = (*Interval)(nil)

// NewInterval builds a scheduler that fires every period.
func NewInterval(period time.Duration) *Interval {
	return &Interval{period: period}
}

// Start begins ticking in a background goroutine.
func (i *Interval) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}

	if i.stop != nil {
		return nil
	}

	i.stop = make(chan struct{})
	go func() {
		ticker := time.NewTicker(i.period)
		defer ticker.Stop()
		for {
			select {
			case t := <-ticker.C:
				job(t)
			case <-ctx.Done():
				return
			case <-i.stop:
				return
			}
		}
	}()

	return nil
}

// Stop halts the ticker goroutine.
func (i *Interval) Stop(ctx context.Context) error {
	if i.stop == nil {
		return nil
	}
	close(i.stop)
	i.stop = nil
	return nil
}
