package led

import "fmt"

// Sim is a headless driver for tests and dry runs. It keeps a copy of the
// last frame and a running average, and optionally prints a per-frame
// summary.
type Sim struct {
	Verbose bool

	Count      int
	Last       []byte
	brightness uint8
}

func NewSim() *Sim {
	return &Sim{brightness: 255}
}

func (d *Sim) SetBrightness(level uint8) { d.brightness = level }

func (d *Sim) Write(rgb []byte) error {
	d.Count++
	if cap(d.Last) < len(rgb) {
		d.Last = make([]byte, len(rgb))
	}
	d.Last = d.Last[:len(rgb)]
	for i, v := range rgb {
		d.Last[i] = scale8(v, d.brightness)
	}
	if d.Verbose {
		var sum int
		for _, v := range d.Last {
			sum += int(v)
		}
		n := len(d.Last)
		if n == 0 {
			n = 1
		}
		fmt.Printf("[frame %04d] avg=%.2f\n", d.Count, float64(sum)/float64(n))
	}
	return nil
}

func (d *Sim) Close() error { return nil }
