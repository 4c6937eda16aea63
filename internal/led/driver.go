package led

// Driver abstracts the LED chain transport.
type Driver interface {
	// Write pushes an RGB frame to hardware. len(rgb) must be 3*N.
	Write(rgb []byte) error
	// SetBrightness sets the global brightness scalar applied to every
	// channel on Write. Called once at startup.
	SetBrightness(level uint8)
	// Close releases resources.
	Close() error
}

// scale8 attenuates one channel byte by level/255.
func scale8(v, level uint8) uint8 {
	return uint8(uint16(v) * uint16(level) / 0xFF)
}
