package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
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
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		driver     = flag.String("driver", "", "driver: spi | sim (overrides config)")
		fps        = flag.Int("fps", 0, "target ticks per second (overrides config)")
		brightness = flag.Int("brightness", -1, "global brightness 0..255 (overrides config)")
		simOnly    = flag.Bool("sim-only", false, "force simulation (no hardware output)")
		debug      = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if !*debug {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// ---- Config (file over defaults, flags over file) ----
	cfg := config.Default()
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with defaults")
	} else {
		cfg = c
	}
	if *driver != "" {
		cfg.Driver = *driver
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	if *brightness >= 0 && *brightness <= 255 {
		cfg.Brightness = uint8(*brightness)
	}
	if *simOnly {
		cfg.Driver = "sim"
	}

	// ---- Tunnel + buffer ----
	tun := layout.Tunnel{
		Rings:       cfg.Tunnel.Rings,
		LedsPerRing: cfg.Tunnel.LedsPerRing,
		ZigZag:      cfg.Tunnel.ZigZag,
	}
	buf, err := frame.NewBuffer(tun)
	if err != nil {
		log.Fatal().Err(err).Msg("bad tunnel geometry")
	}

	// ---- Sequences ----
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

	// ---- Driver ----
	var drv led.Driver
	switch cfg.Driver {
	case "sim":
		drv = led.NewSim()
	case "spi":
		s, err := led.NewSPI(cfg.SPI.Dev, tun.Count(), cfg.SPI.SpeedHz)
		if err != nil {
			log.Warn().Err(err).Str("dev", cfg.SPI.Dev).Msg("SPI init failed; falling back to SIM")
			drv = led.NewSim()
		} else {
			if !s.Hardware {
				log.Warn().Str("dev", cfg.SPI.Dev).Msg("no SPI port found; rendering to terminal")
			}
			drv = s
		}
	default:
		log.Warn().Str("driver", cfg.Driver).Msg("unknown driver; using SIM")
		drv = led.NewSim()
	}
	drv.SetBrightness(cfg.Brightness)

	// ---- Run loop ----
	ctx, cancel := context.WithCancel(context.Background())
	cond := app.NewConductor(sched, buf, drv, cfg.FPS)
	go func() {
		_ = cond.Run(ctx)
	}()
	log.Info().
		Int("rings", tun.Rings).
		Int("leds_per_ring", tun.LedsPerRing).
		Str("driver", cfg.Driver).
		Int("fps", cfg.FPS).
		Msg("tunnel running")

	// ---- Graceful shutdown ----
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s := <-ch
	log.Info().Str("signal", s.String()).Msg("shutting down")
	cancel()
	if err := drv.Close(); err != nil {
		log.Warn().Err(err).Msg("driver close failed")
	}
}
