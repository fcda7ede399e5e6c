// internal/controller/runner.go
package controller

import (
	"context"
	"time"
)

// PollResult carries one monitor cycle outcome.
type PollResult struct {
	Snapshot Snapshot
	Err      error // non-nil means the cycle failed
}

// Run starts the ticker loop and emits one PollResult per cycle on out.
// One goroutine per link. No overlap: the next tick is not serviced until
// the previous cycle completes.
func (c *Controller) Run(ctx context.Context, interval time.Duration, out chan<- PollResult) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap, err := c.Poll()
			select {
			case out <- PollResult{Snapshot: snap, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}
