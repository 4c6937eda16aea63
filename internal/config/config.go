package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-ledtunnel/internal/frame"
)

// Color is an HSV triple as written in config.yaml.
type Color struct {
	H uint8 `yaml:"h"`
	S uint8 `yaml:"s"`
	V uint8 `yaml:"v"`
}

func (c Color) HSV() frame.HSV { return frame.HSV{H: c.H, S: c.S, V: c.V} }

// Palette converts a config color list for the sequences.
func Palette(cs []Color) []frame.HSV {
	out := make([]frame.HSV, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.HSV())
	}
	return out
}

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0
	SpeedHz int    `yaml:"speed_hz"` // e.g. 2500000
}

type Tunnel struct {
	Rings       int  `yaml:"rings"`
	LedsPerRing int  `yaml:"leds_per_ring"`
	ZigZag      bool `yaml:"zig_zag"`
}

type Show struct {
	RotationTicks int   `yaml:"rotation_ticks"`
	WrapupTicks   int   `yaml:"wrapup_ticks"`
	Seed          int64 `yaml:"seed"`
}

type RingChase struct {
	Palette    []Color `yaml:"palette"`
	PulseEvery int     `yaml:"pulse_every"`
	ShiftEvery int     `yaml:"shift_every"`
	Falloff    uint8   `yaml:"falloff"`
}

type Twinkle struct {
	Palette    []Color `yaml:"palette"`
	SpawnEvery int     `yaml:"spawn_every"`
	Variance   uint8   `yaml:"variance"`
	Falloff    uint8   `yaml:"falloff"`
}

type Trace struct {
	Palette []Color `yaml:"palette"`
	Speed   int     `yaml:"speed"`
	Stride  int     `yaml:"stride"`
	Falloff uint8   `yaml:"falloff"`
}

type Config struct {
	Driver     string `yaml:"driver"` // "spi" | "sim"
	DataPin    int    `yaml:"data_pin"`
	Brightness uint8  `yaml:"brightness"` // global, applied by the driver
	FPS        int    `yaml:"fps"`

	SPI    SPI    `yaml:"spi,omitempty"`
	Tunnel Tunnel `yaml:"tunnel"`
	Show   Show   `yaml:"show"`

	RingChase RingChase `yaml:"ringchase"`
	Twinkle   Twinkle   `yaml:"twinkle"`
	Trace     Trace     `yaml:"trace"`
}

// Default is the shipped tunnel setup: 8 rings of 150 LEDs.
func Default() *Config {
	return &Config{
		Driver:     "spi",
		DataPin:    18,
		Brightness: 160,
		FPS:        30,
		SPI:        SPI{Dev: "/dev/spidev0.0", SpeedHz: 2500000},
		Tunnel:     Tunnel{Rings: 8, LedsPerRing: 150, ZigZag: true},
		Show:       Show{RotationTicks: 300, WrapupTicks: 20, Seed: 1},
		RingChase: RingChase{
			Palette: []Color{
				{H: 0, S: 255, V: 255},   // red
				{H: 96, S: 255, V: 255},  // green
				{H: 160, S: 255, V: 255}, // blue
				{H: 64, S: 255, V: 255},  // yellow
			},
			PulseEvery: 40,
			ShiftEvery: 3,
			Falloff:    4,
		},
		Twinkle: Twinkle{
			Palette: []Color{
				{H: 160, S: 255, V: 255},
				{H: 192, S: 255, V: 255},
				{H: 0, S: 0, V: 255}, // white
			},
			SpawnEvery: 2,
			Variance:   80,
			Falloff:    8,
		},
		Trace: Trace{
			Palette: []Color{
				{H: 128, S: 255, V: 255},
				{H: 200, S: 255, V: 255},
			},
			Speed:   2,
			Stride:  19,
			Falloff: 32,
		},
	}
}

// Load reads path and unmarshals over the defaults, so a partial file only
// overrides what it names.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
