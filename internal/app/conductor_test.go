package app

import (
	"testing"

	"github.com/coreman2200/funtimes-ledtunnel/internal/frame"
	"github.com/coreman2200/funtimes-ledtunnel/internal/layout"
	"github.com/coreman2200/funtimes-ledtunnel/internal/led"
	"github.com/coreman2200/funtimes-ledtunnel/internal/sequence"
)

func TestConductorStepFlushesFullFrames(t *testing.T) {
	tun := layout.Tunnel{Rings: 2, LedsPerRing: 5}
	buf, err := frame.NewBuffer(tun)
	if err != nil {
		t.Fatalf("buffer: %v", err)
	}
	reg := sequence.NewRegistry(sequence.NewRingChase(tun, sequence.RingChaseParams{
		Palette:    []frame.HSV{{H: 10, S: 255, V: 255}},
		PulseEvery: 4,
		ShiftEvery: 1,
		Falloff:    8,
	}))
	sched, err := sequence.NewScheduler(reg, 50, 5)
	if err != nil {
		t.Fatalf("scheduler: %v", err)
	}
	drv := led.NewSim()
	drv.SetBrightness(255)

	c := NewConductor(sched, buf, drv, 30)
	for i := 0; i < 10; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if drv.Count != 10 {
		t.Fatalf("expected 10 flushes, got %d", drv.Count)
	}
	if len(drv.Last) != tun.Count()*3 {
		t.Fatalf("frame size %d, want %d", len(drv.Last), tun.Count()*3)
	}
	// The pulse launched, so the frame is not dark.
	var sum int
	for _, v := range drv.Last {
		sum += int(v)
	}
	if sum == 0 {
		t.Fatal("expected a lit frame after 10 ticks")
	}
}
