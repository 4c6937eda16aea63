package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-ledtunnel/internal/frame"
	"github.com/coreman2200/funtimes-ledtunnel/internal/led"
	"github.com/coreman2200/funtimes-ledtunnel/internal/sequence"
)

// Conductor owns the tick loop: scheduler bookkeeping, the active
// sequence's frame, then a synchronous flush to the driver. Everything runs
// on the caller's goroutine; the buffer has exactly one writer.
type Conductor struct {
	Sched *sequence.Scheduler
	Buf   *frame.Buffer
	Drv   led.Driver

	fps int
	rgb []byte
}

func NewConductor(sched *sequence.Scheduler, buf *frame.Buffer, drv led.Driver, fps int) *Conductor {
	if fps <= 0 {
		fps = 30
	}
	return &Conductor{Sched: sched, Buf: buf, Drv: drv, fps: fps}
}

// Step runs one tick: advance the show, serialize, flush.
func (c *Conductor) Step() error {
	c.Sched.Tick(c.Buf)
	c.rgb = c.Buf.AppendRGB(c.rgb[:0])
	return c.Drv.Write(c.rgb)
}

// Run ticks at the configured frame rate until ctx is cancelled.
func (c *Conductor) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(c.fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.Step(); err != nil {
				log.Warn().Err(err).Msg("frame write failed")
			}
		}
	}
}
