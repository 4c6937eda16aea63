package sequence

import (
	"math/rand"

	"github.com/coreman2200/funtimes-ledtunnel/internal/frame"
)

// TwinkleParams are the fixed tunables for the random sparkle pattern.
type TwinkleParams struct {
	Palette    []frame.HSV
	SpawnEvery int   // ticks between new twinkles
	Variance   uint8 // brightness band below 255 for a new twinkle
	Falloff    uint8 // multiplicative V decay per tick
}

// Twinkle lights a random LED on a fixed period while everything fades
// exponentially. The chain's two end LEDs are never lit; they sit inside
// the tunnel mounts.
type Twinkle struct {
	p     TwinkleParams
	rng   *rand.Rand
	timer int
}

func NewTwinkle(p TwinkleParams, rng *rand.Rand) *Twinkle {
	if p.SpawnEvery <= 0 {
		p.SpawnEvery = 1
	}
	return &Twinkle{p: p, rng: rng}
}

func (t *Twinkle) Name() string { return "twinkle" }

// Init resets the spawn timer; there is no other state.
func (t *Twinkle) Init() { t.timer = 0 }

func (t *Twinkle) WrapUp() {}

func (t *Twinkle) Update(buf *frame.Buffer) {
	buf.DimAll(255 - t.p.Falloff)

	t.timer--
	if t.timer > 0 {
		return
	}
	t.timer = t.p.SpawnEvery

	n := buf.Len()
	if n <= 2 || len(t.p.Palette) == 0 {
		return
	}
	pos := 1 + t.rng.Intn(n-2)
	c := t.p.Palette[t.rng.Intn(len(t.p.Palette))]
	c.V = 255 - uint8(t.rng.Intn(int(t.p.Variance)+1))
	buf.Set(pos, c)
}
