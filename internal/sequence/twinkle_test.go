package sequence

import (
	"math/rand"
	"testing"

	"github.com/coreman2200/funtimes-ledtunnel/internal/frame"
	"github.com/coreman2200/funtimes-ledtunnel/internal/layout"
)

var twinkleTun = layout.Tunnel{Rings: 1, LedsPerRing: 30}

func twinkleParams() TwinkleParams {
	return TwinkleParams{
		Palette: []frame.HSV{
			{H: 160, S: 255, V: 255},
			{H: 192, S: 255, V: 255},
		},
		SpawnEvery: 1,
		Variance:   80,
		Falloff:    8,
	}
}

func TestTwinkleSpawnBounds(t *testing.T) {
	tw := NewTwinkle(twinkleParams(), rand.New(rand.NewSource(42)))
	buf, err := frame.NewBuffer(twinkleTun)
	if err != nil {
		t.Fatalf("buffer: %v", err)
	}

	for i := 0; i < 500; i++ {
		buf.Clear()
		tw.Init()
		tw.Update(buf)

		lit := -1
		for j := 0; j < buf.Len(); j++ {
			if buf.At(j).V > 0 {
				if lit != -1 {
					t.Fatalf("tick %d: more than one spawn per tick (%d and %d)", i, lit, j)
				}
				lit = j
			}
		}
		if lit == -1 {
			t.Fatalf("tick %d: nothing spawned", i)
		}
		if lit == 0 || lit == buf.Len()-1 {
			t.Fatalf("tick %d: boundary LED %d lit", i, lit)
		}
		if v := buf.At(lit).V; v < 255-80 {
			t.Fatalf("tick %d: brightness %d below variance band", i, v)
		}
	}
}

func TestTwinkleDecayNeverBrightens(t *testing.T) {
	p := twinkleParams()
	p.Palette = nil // no spawns; decay only
	tw := NewTwinkle(p, rand.New(rand.NewSource(1)))
	buf, err := frame.NewBuffer(twinkleTun)
	if err != nil {
		t.Fatalf("buffer: %v", err)
	}
	for i := 0; i < buf.Len(); i++ {
		buf.Set(i, frame.HSV{H: 100, S: 200, V: 200})
	}

	prev := make([]uint8, buf.Len())
	for i := range prev {
		prev[i] = 200
	}
	for tick := 0; tick < 100; tick++ {
		tw.Update(buf)
		for i := 0; i < buf.Len(); i++ {
			if v := buf.At(i).V; v > prev[i] {
				t.Fatalf("tick %d: pixel %d brightened %d -> %d", tick, i, prev[i], v)
			} else {
				prev[i] = v
			}
		}
	}
	// scale 247/255 per tick decays well below half after 100 ticks
	if prev[5] > 100 {
		t.Fatalf("expected substantial decay, still at %d", prev[5])
	}
}

func TestTwinkleBoundaryNeverLitOverLongRun(t *testing.T) {
	tw := NewTwinkle(twinkleParams(), rand.New(rand.NewSource(7)))
	buf, err := frame.NewBuffer(twinkleTun)
	if err != nil {
		t.Fatalf("buffer: %v", err)
	}
	last := buf.Len() - 1
	for tick := 0; tick < 5000; tick++ {
		tw.Update(buf)
		if buf.At(0).V != 0 || buf.At(last).V != 0 {
			t.Fatalf("tick %d: boundary lit (0:%d last:%d)", tick, buf.At(0).V, buf.At(last).V)
		}
	}
}
