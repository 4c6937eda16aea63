package sequence

import (
	"github.com/coreman2200/funtimes-ledtunnel/internal/frame"
	"github.com/coreman2200/funtimes-ledtunnel/internal/layout"
)

// TraceChaseParams are the fixed tunables for the spiral trace pattern.
type TraceChaseParams struct {
	Palette []frame.HSV
	Speed   int   // positions advanced per tick
	Stride  int   // starting-offset stride between adjacent rings
	Falloff uint8 // multiplicative V decay per tick
}

// TraceChase runs one lit position around every ring, staggered ring to
// ring by a fixed stride so the traces form a spiral down the tunnel.
// Odd rings run backwards under zig-zag wiring. Every ring paints the
// color slot assigned to ring 0, so the whole spiral is one color.
type TraceChase struct {
	tun layout.Tunnel
	p   TraceChaseParams

	pos      []int
	colorIdx []int
}

func NewTraceChase(tun layout.Tunnel, p TraceChaseParams) *TraceChase {
	if p.Speed <= 0 {
		p.Speed = 1
	}
	tc := &TraceChase{
		tun:      tun,
		p:        p,
		pos:      make([]int, tun.Rings),
		colorIdx: make([]int, tun.Rings),
	}
	tc.Init()
	return tc
}

func (tc *TraceChase) Name() string { return "tracechase" }

func (tc *TraceChase) Init() {
	n := tc.tun.LedsPerRing
	for r := range tc.pos {
		off := (r * tc.p.Stride) % n
		if tc.tun.Reversed(r) {
			off = n - 1 - off
		}
		tc.pos[r] = off
		tc.colorIdx[r] = 0
	}
}

func (tc *TraceChase) WrapUp() {}

func (tc *TraceChase) Update(buf *frame.Buffer) {
	buf.DimAll(255 - tc.p.Falloff)

	if len(tc.p.Palette) == 0 {
		return
	}
	c := tc.p.Palette[tc.colorIdx[0]]
	n := tc.tun.LedsPerRing
	for r := range tc.pos {
		step := tc.p.Speed
		if tc.tun.Reversed(r) {
			step = -step
		}
		p := (tc.pos[r] + step) % n
		if p < 0 {
			p += n
		}
		tc.pos[r] = p
		buf.SetRingLed(r, p, c)
	}
}
