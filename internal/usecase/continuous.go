package usecase

import (
	"context"
	"log/slog"
	"time"

	"financehub/internal/ports"
)

// Continuous drives the automation on two recurring cadences: a full run
// every few hours and an hourly slice keyed by the wall-clock hour. It is
// opt-in via configuration and never started by an HTTP request, so a
// deployment that only wants the trigger endpoints simply leaves it off.
type Continuous struct {
	full       ports.Scheduler
	hourly     ports.Scheduler
	automation *Automation
	logger     *slog.Logger
}

// NewContinuous wires the two scheduler drivers with the orchestrator.
func NewContinuous(full, hourly ports.Scheduler, automation *Automation, logger *slog.Logger) *Continuous {
	return &Continuous{full: full, hourly: hourly, automation: automation, logger: logger}
}

// Start registers both recurring jobs. Errors inside a tick are logged and
// swallowed; a failed cycle must not kill the loop.
func (c *Continuous) Start(ctx context.Context) error {
	if c.automation == nil {
		return nil
	}

	if c.full != nil {
		job := func(trigger time.Time) {
			if _, err := c.automation.RunFull(ctx); err != nil && c.logger != nil {
				c.logger.Error("continuous full run failed", "error", err)
			}
		}
		if err := c.full.Start(ctx, job); err != nil {
			return err
		}
	}

	if c.hourly != nil {
		job := func(trigger time.Time) {
			if err := c.automation.RunScheduled(ctx, trigger.Hour()); err != nil && c.logger != nil {
				c.logger.Error("continuous hourly run failed", "hour", trigger.Hour(), "error", err)
			}
		}
		if err := c.hourly.Start(ctx, job); err != nil {
			return err
		}
	}

	return nil
}

// Stop tears both drivers down.
func (c *Continuous) Stop(ctx context.Context) error {
	if c.full != nil {
		if err := c.full.Stop(ctx); err != nil {
			return err
		}
	}
	if c.hourly != nil {
		return c.hourly.Stop(ctx)
	}
	return nil
}
