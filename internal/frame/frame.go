package frame

import (
	"fmt"

	"github.com/coreman2200/funtimes-ledtunnel/internal/layout"
)

// Buffer is the shared per-LED color state for the whole tunnel, one HSV
// value per LED in chain order. It is sized once at startup and mutated in
// place by exactly one sequence per tick.
type Buffer struct {
	tun layout.Tunnel
	px  []HSV
}

// NewBuffer allocates a zeroed buffer for the tunnel geometry.
func NewBuffer(tun layout.Tunnel) (*Buffer, error) {
	if tun.Rings <= 0 || tun.LedsPerRing <= 0 {
		return nil, fmt.Errorf("invalid tunnel geometry %dx%d", tun.Rings, tun.LedsPerRing)
	}
	return &Buffer{tun: tun, px: make([]HSV, tun.Count())}, nil
}

func (b *Buffer) Tunnel() layout.Tunnel { return b.tun }
func (b *Buffer) Len() int              { return len(b.px) }

func (b *Buffer) At(i int) HSV     { return b.px[i] }
func (b *Buffer) Set(i int, c HSV) { b.px[i] = c }

// SetRingLed writes one LED addressed by (ring, offset).
func (b *Buffer) SetRingLed(ring, offset int, c HSV) {
	b.px[b.tun.Index(ring, offset)] = c
}

// FillRing paints every LED of a ring with c.
func (b *Buffer) FillRing(ring int, c HSV) {
	start := b.tun.RingStart(ring)
	for i := start; i < start+b.tun.LedsPerRing; i++ {
		b.px[i] = c
	}
}

// Clear zeroes every LED.
func (b *Buffer) Clear() {
	for i := range b.px {
		b.px[i] = HSV{}
	}
}

// FadeAll subtracts amount from every LED's V, floored at 0.
func (b *Buffer) FadeAll(amount uint8) {
	for i := range b.px {
		b.px[i].V = SubSat(b.px[i].V, amount)
	}
}

// DimAll scales every LED's V by scale/255. Exponential fade over ticks.
func (b *Buffer) DimAll(scale uint8) {
	for i := range b.px {
		b.px[i].V = Scale8(b.px[i].V, scale)
	}
}

// AppendRGB converts the frame to flat 3-byte-per-LED RGB in chain order,
// appending to dst. Pass dst[:0] to reuse an allocation across ticks.
func (b *Buffer) AppendRGB(dst []byte) []byte {
	for i := range b.px {
		r, g, bb := b.px[i].RGB()
		dst = append(dst, r, g, bb)
	}
	return dst
}
