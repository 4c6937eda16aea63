package led

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/devices/v3/screen1d"
	"periph.io/x/host/v3"
)

// SPI drives a single-wire NRZ LED chain (WS2812 and friends) through a
// SPI port via periph.io. When no SPI port is available it falls back to
// an ANSI terminal rendition of the chain.
type SPI struct {
	// Hardware reports whether a real SPI port was found; the caller may
	// want to log the terminal fallback.
	Hardware bool

	count      int
	dev        *nrzled.Dev
	term       display.Drawer
	brightness uint8
	scratch    []byte
}

// NewSPI opens spiDev and binds an NRZ chain of count LEDs at speedHz.
func NewSPI(spiDev string, count, speedHz int) (*SPI, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid LED count %d", count)
	}
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	s := &SPI{count: count, brightness: 255, scratch: make([]byte, count*3)}

	port, err := spireg.Open(spiDev)
	if err != nil {
		s.term = screen1d.New(&screen1d.Opts{X: count})
		return s, nil
	}

	opts := nrzled.Opts{
		NumPixels: count,
		Channels:  3,
		Freq:      physic.Frequency(speedHz) * physic.Hertz,
	}
	dev, err := nrzled.NewSPI(port, &opts)
	if err != nil {
		return nil, err
	}
	if err := dev.Halt(); err != nil {
		return nil, err
	}
	s.dev = dev
	s.Hardware = true
	return s, nil
}

func (s *SPI) SetBrightness(level uint8) { s.brightness = level }

func (s *SPI) Write(rgb []byte) error {
	if len(rgb) != s.count*3 {
		return fmt.Errorf("frame is %d bytes, want %d", len(rgb), s.count*3)
	}
	for i, v := range rgb {
		s.scratch[i] = scale8(v, s.brightness)
	}
	if s.dev != nil {
		_, err := s.dev.Write(s.scratch)
		return err
	}
	return s.term.Draw(s.term.Bounds(), s.image(), image.Point{})
}

// image wraps the scaled frame as a 1-pixel-tall strip for the terminal
// drawer.
func (s *SPI) image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.count, 1))
	for i := 0; i < s.count; i++ {
		img.SetNRGBA(i, 0, color.NRGBA{
			R: s.scratch[i*3+0],
			G: s.scratch[i*3+1],
			B: s.scratch[i*3+2],
			A: 255,
		})
	}
	return img
}

func (s *SPI) Close() error {
	if s.dev != nil {
		return s.dev.Halt()
	}
	return s.term.Halt()
}
