package sequence

import (
	"github.com/coreman2200/funtimes-ledtunnel/internal/frame"
	"github.com/coreman2200/funtimes-ledtunnel/internal/layout"
)

// suppressed parks a pulse timer far enough out that no pulse can launch
// before the scheduler rotates away.
const suppressed = 1 << 30

// RingChaseParams are the fixed tunables for the pulse-echo pattern.
type RingChaseParams struct {
	Palette    []frame.HSV
	PulseEvery int   // ticks between pulse launches
	ShiftEvery int   // ticks between ring-to-ring hops
	Falloff    uint8 // linear V decay per tick, floored at 0
}

// RingChase launches a colored pulse on ring 0 on a fixed period and walks
// it down the tunnel ring by ring while every ring's brightness decays
// linearly, leaving a fading echo behind the pulse.
type RingChase struct {
	tun layout.Tunnel
	p   RingChaseParams

	rings      []frame.HSV // current color+value per ring
	palIdx     int
	pulse      frame.HSV
	pulseTimer int
	shiftTimer int
	next       int // ring awaiting the pulse; == len(rings) when idle
}

func NewRingChase(tun layout.Tunnel, p RingChaseParams) *RingChase {
	if p.PulseEvery <= 0 {
		p.PulseEvery = 1
	}
	if p.ShiftEvery <= 0 {
		p.ShiftEvery = 1
	}
	rc := &RingChase{tun: tun, p: p, rings: make([]frame.HSV, tun.Rings)}
	rc.Init()
	return rc
}

func (rc *RingChase) Name() string { return "ringchase" }

func (rc *RingChase) Init() {
	for i := range rc.rings {
		rc.rings[i] = frame.HSV{}
	}
	rc.palIdx = 0
	rc.pulse = frame.HSV{}
	rc.pulseTimer = 1 // launch on the first tick
	rc.shiftTimer = 0
	rc.next = len(rc.rings)
}

func (rc *RingChase) WrapUp() {
	rc.pulseTimer = suppressed
}

func (rc *RingChase) Update(buf *frame.Buffer) {
	// Propagate before the launch check so a fresh pulse spends a full
	// ShiftEvery window on ring 0 before hopping.
	if rc.next < len(rc.rings) {
		rc.shiftTimer--
		if rc.shiftTimer <= 0 {
			rc.rings[rc.next] = rc.pulse
			rc.next++
			rc.shiftTimer = rc.p.ShiftEvery
		}
	}

	rc.pulseTimer--
	if rc.pulseTimer <= 0 && len(rc.p.Palette) > 0 {
		rc.pulse = rc.p.Palette[rc.palIdx]
		rc.palIdx = (rc.palIdx + 1) % len(rc.p.Palette)
		rc.rings[0] = rc.pulse
		rc.next = 1
		rc.shiftTimer = rc.p.ShiftEvery
		rc.pulseTimer = rc.p.PulseEvery
	}

	for r := range rc.rings {
		buf.FillRing(r, rc.rings[r])
		rc.rings[r].V = frame.SubSat(rc.rings[r].V, rc.p.Falloff)
	}
}
