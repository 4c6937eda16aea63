// tunnelsim runs the show headless for a fixed number of ticks, as fast as
// possible, printing scheduler transitions. Useful for eyeballing rotation
// timing without hardware.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-ledtunnel/internal/app"
	"github.com/coreman2200/funtimes-ledtunnel/internal/config"
	"github.com/coreman2200/funtimes-ledtunnel/internal/frame"
	"github.com/coreman2200/funtimes-ledtunnel/internal/layout"
	"github.com/coreman2200/funtimes-ledtunnel/internal/led"
	"github.com/coreman2200/funtimes-ledtunnel/internal/sequence"
)

func main() {
	var (
		ticks      = flag.Int("ticks", 1000, "ticks to simulate")
		verbose    = flag.Bool("verbose", false, "print a per-frame summary")
		configPath = flag.String("config", "", "optional config.yaml")
	)
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("config load failed")
		}
		cfg = c
	}

	tun := layout.Tunnel{
		Rings:       cfg.Tunnel.Rings,
		LedsPerRing: cfg.Tunnel.LedsPerRing,
		ZigZag:      cfg.Tunnel.ZigZag,
	}
	buf, err := frame.NewBuffer(tun)
	if err != nil {
		log.Fatal().Err(err).Msg("bad tunnel geometry")
	}

	rng := rand.New(rand.NewSource(cfg.Show.Seed))
	reg := sequence.NewRegistry(
		sequence.NewRingChase(tun, sequence.RingChaseParams{
			Palette:    config.Palette(cfg.RingChase.Palette),
			PulseEvery: cfg.RingChase.PulseEvery,
			ShiftEvery: cfg.RingChase.ShiftEvery,
			Falloff:    cfg.RingChase.Falloff,
		}),
		sequence.NewTwinkle(sequence.TwinkleParams{
			Palette:    config.Palette(cfg.Twinkle.Palette),
			SpawnEvery: cfg.Twinkle.SpawnEvery,
			Variance:   cfg.Twinkle.Variance,
			Falloff:    cfg.Twinkle.Falloff,
		}, rng),
		sequence.NewTraceChase(tun, sequence.TraceChaseParams{
			Palette: config.Palette(cfg.Trace.Palette),
			Speed:   cfg.Trace.Speed,
			Stride:  cfg.Trace.Stride,
			Falloff: cfg.Trace.Falloff,
		}),
	)
	sched, err := sequence.NewScheduler(reg, cfg.Show.RotationTicks, cfg.Show.WrapupTicks)
	if err != nil {
		log.Fatal().Err(err).Msg("bad show timing")
	}

	drv := led.NewSim()
	drv.Verbose = *verbose
	drv.SetBrightness(cfg.Brightness)

	cond := app.NewConductor(sched, buf, drv, cfg.FPS)
	start := time.Now()
	for i := 0; i < *ticks; i++ {
		if err := cond.Step(); err != nil {
			log.Fatal().Err(err).Int("tick", i).Msg("step failed")
		}
	}
	fmt.Printf("%d ticks in %v, ended on %q (index %d)\n",
		*ticks, time.Since(start), sched.Active().Name(), sched.Index())
}
