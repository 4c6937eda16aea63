package sequence

import (
	"testing"

	"github.com/coreman2200/funtimes-ledtunnel/internal/frame"
	"github.com/coreman2200/funtimes-ledtunnel/internal/layout"
)

// stubSeq records lifecycle calls into a shared log.
type stubSeq struct {
	name string
	log  *[]string
}

func (s *stubSeq) Name() string             { return s.name }
func (s *stubSeq) Init()                    { *s.log = append(*s.log, "init:"+s.name) }
func (s *stubSeq) WrapUp()                  { *s.log = append(*s.log, "wrap:"+s.name) }
func (s *stubSeq) Update(buf *frame.Buffer) {}

func testBuffer(t *testing.T) *frame.Buffer {
	t.Helper()
	buf, err := frame.NewBuffer(layout.Tunnel{Rings: 2, LedsPerRing: 3})
	if err != nil {
		t.Fatalf("buffer: %v", err)
	}
	return buf
}

func TestSchedulerRotationTiming(t *testing.T) {
	var calls []string
	reg := NewRegistry(
		&stubSeq{name: "A", log: &calls},
		&stubSeq{name: "B", log: &calls},
		&stubSeq{name: "C", log: &calls},
	)
	s, err := NewScheduler(reg, 300, 20)
	if err != nil {
		t.Fatalf("scheduler: %v", err)
	}
	buf := testBuffer(t)

	for i := 0; i < 279; i++ {
		s.Tick(buf)
	}
	want := []string{"init:A"}
	if len(calls) != 1 || calls[0] != want[0] {
		t.Fatalf("before wrapup window: %#v", calls)
	}

	s.Tick(buf) // tick 280: countdown hits the wrapup offset
	if len(calls) != 2 || calls[1] != "wrap:A" {
		t.Fatalf("expected wrap:A at tick 280, got %#v", calls)
	}

	for i := 281; i <= 300; i++ {
		s.Tick(buf)
	}
	if len(calls) != 2 {
		t.Fatalf("no lifecycle calls expected through tick 300, got %#v", calls)
	}

	s.Tick(buf) // tick 301: rotation
	if len(calls) != 3 || calls[2] != "init:B" {
		t.Fatalf("expected init:B at tick 301, got %#v", calls)
	}
	if s.Index() != 1 {
		t.Fatalf("expected index 1, got %d", s.Index())
	}
	if s.Countdown() != 300 {
		t.Fatalf("expected countdown reset to 300, got %d", s.Countdown())
	}
}

func TestSchedulerCyclesRegistry(t *testing.T) {
	var calls []string
	reg := NewRegistry(
		&stubSeq{name: "A", log: &calls},
		&stubSeq{name: "B", log: &calls},
	)
	s, err := NewScheduler(reg, 10, 2)
	if err != nil {
		t.Fatalf("scheduler: %v", err)
	}
	buf := testBuffer(t)

	// Four full cycles: rotation fires every 11 ticks after Start.
	for i := 0; i < 4*11; i++ {
		s.Tick(buf)
	}
	if s.Index() != 0 {
		t.Fatalf("expected to land back on index 0, got %d", s.Index())
	}

	var wraps, inits int
	for _, c := range calls {
		switch c[:4] {
		case "wrap":
			wraps++
		case "init":
			inits++
		}
	}
	if wraps != 4 {
		t.Fatalf("expected one WrapUp per cycle (4), got %d: %#v", wraps, calls)
	}
	if inits != 5 { // initial Init plus one per rotation
		t.Fatalf("expected 5 Inits, got %d: %#v", inits, calls)
	}
}

func TestSchedulerRejectsBadWindows(t *testing.T) {
	var calls []string
	reg := NewRegistry(&stubSeq{name: "A", log: &calls})
	if _, err := NewScheduler(reg, 10, 10); err == nil {
		t.Fatal("expected error for wrapup >= rotation")
	}
	if _, err := NewScheduler(reg, 0, 0); err == nil {
		t.Fatal("expected error for zero rotation")
	}
	if _, err := NewScheduler(NewRegistry(), 10, 2); err == nil {
		t.Fatal("expected error for empty registry")
	}
}
