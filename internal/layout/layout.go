package layout

// Tunnel describes the physical arrangement: a run of identical LED rings
// wired as one chain. ZigZag means alternate rings are soldered in the
// opposite direction, so odd rings count their offsets mirrored.
type Tunnel struct {
	Rings       int
	LedsPerRing int
	ZigZag      bool
}

// Count is the total LED count of the chain.
func (t Tunnel) Count() int {
	return t.Rings * t.LedsPerRing
}

// RingStart maps ring r -> first linear LED index of that ring.
func (t Tunnel) RingStart(r int) int {
	return r * t.LedsPerRing
}

// Index maps (ring, offset) -> linear LED index (0..N-1).
func (t Tunnel) Index(ring, offset int) int {
	return ring*t.LedsPerRing + offset
}

// Reversed reports whether a ring advances against chain order. Only odd
// rings under zig-zag wiring do.
func (t Tunnel) Reversed(ring int) bool {
	return t.ZigZag && ring%2 == 1
}
