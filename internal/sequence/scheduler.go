package sequence

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-ledtunnel/internal/frame"
)

// Scheduler rotates through the registry on a tick countdown. Each tick it
// does the timer bookkeeping, fires WrapUp/Init at the configured points,
// then runs the active sequence's Update. Runs indefinitely; there is no
// terminal state.
type Scheduler struct {
	reg *Registry

	idx       int
	countdown int

	rotation int // ticks per sequence
	wrapup   int // ticks before rotation at which WrapUp fires

	started bool
}

// NewScheduler validates the timing window: WrapUp must fire strictly
// inside the rotation period.
func NewScheduler(reg *Registry, rotationTicks, wrapupTicks int) (*Scheduler, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, errors.New("registry has no sequences")
	}
	if rotationTicks <= 0 {
		return nil, fmt.Errorf("rotation must be positive, got %d", rotationTicks)
	}
	if wrapupTicks < 0 || wrapupTicks >= rotationTicks {
		return nil, fmt.Errorf("wrapup offset %d outside rotation %d", wrapupTicks, rotationTicks)
	}
	return &Scheduler{
		reg:      reg,
		rotation: rotationTicks,
		wrapup:   wrapupTicks,
	}, nil
}

// Start primes sequence 0. Tick calls it implicitly on first use.
func (s *Scheduler) Start() {
	if s.started {
		return
	}
	s.started = true
	s.idx = 0
	s.countdown = s.rotation
	s.Active().Init()
	log.Debug().Str("sequence", s.Active().Name()).Msg("show starting")
}

// Tick advances the show by one step: countdown, possible WrapUp or
// rotation, then the active sequence's frame.
func (s *Scheduler) Tick(buf *frame.Buffer) {
	if !s.started {
		s.Start()
	}
	s.countdown--
	if s.countdown == s.wrapup {
		s.Active().WrapUp()
	}
	if s.countdown < 0 {
		s.idx = (s.idx + 1) % s.reg.Len()
		s.Active().Init()
		s.countdown = s.rotation
		log.Debug().Str("sequence", s.Active().Name()).Int("index", s.idx).Msg("rotating")
	}
	s.Active().Update(buf)
}

func (s *Scheduler) Active() Sequence { return s.reg.At(s.idx) }
func (s *Scheduler) Index() int      { return s.idx }
func (s *Scheduler) Countdown() int  { return s.countdown }
