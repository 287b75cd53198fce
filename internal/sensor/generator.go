package sensor

import (
	"math"
	"math/rand"
	"time"
)

// Delay window between emission cycles, in whole seconds.
const (
	DelayMinSec = 5
	DelayMaxSec = 10
)

// Generator draws readings and inter-reading delays from an injected
// random source. A fixed seed fully determines the sequence of both, so
// test harnesses can replay a run.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator backed by the given source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded creates a generator with its own source seeded from seed.
// A seed of 0 falls back to the wall clock.
func NewSeeded(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// Next draws one reading. Each field is drawn independently; there is no
// correlation between fields or across calls.
func (g *Generator) Next() Reading {
	return Reading{
		PH:       round1(g.uniform(PHMin, PHMax)),
		TempC:    round1(g.uniform(TempMin, TempMax)),
		Moisture: MoistureMin + g.rng.Intn(MoistureMax-MoistureMin+1),
	}
}

// NextDelay draws the pause before the next emission cycle: a whole
// number of seconds in [DelayMinSec, DelayMaxSec].
func (g *Generator) NextDelay() time.Duration {
	secs := DelayMinSec + g.rng.Intn(DelayMaxSec-DelayMinSec+1)
	return time.Duration(secs) * time.Second
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
