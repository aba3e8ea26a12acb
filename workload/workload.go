// Package workload generates the deterministic, seeded test data benchmark
// payloads build during their one-time initialisation. The same seed always
// yields the same data, so results are comparable across boards.
package workload

import (
	"math"
	mrand "math/rand"
)

// Value distributions understood by Ints and Matrix.
const (
	Uniform     = "uniform"
	PowerLaw    = "power-law"
	Exponential = "exponential"
)

// Config controls data generation.
type Config struct {
	Seed         int64
	Distribution string
	MinValue     int
	MaxValue     int
}

// Generator produces deterministic data from a Config.
type Generator struct {
	cfg Config
	rng *mrand.Rand
}

// NewGenerator creates a Generator from the given Config. An empty range
// collapses to MinValue.
func NewGenerator(cfg Config) *Generator {
	if cfg.MaxValue < cfg.MinValue {
		cfg.MaxValue = cfg.MinValue
	}

	return &Generator{
		cfg: cfg,
		rng: mrand.New(mrand.NewSource(cfg.Seed)),
	}
}

// Bytes returns n pseudo-random bytes.
func (g *Generator) Bytes(n int) []byte {
	buf := make([]byte, n)
	g.rng.Read(buf)

	return buf
}

// Ints returns n values in [MinValue, MaxValue] drawn from the configured
// distribution.
func (g *Generator) Ints(n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = g.value()
	}

	return vals
}

// Matrix returns a rows x cols matrix filled by Ints.
func (g *Generator) Matrix(rows, cols int) [][]int {
	m := make([][]int, rows)
	for i := range m {
		m[i] = g.Ints(cols)
	}

	return m
}

func (g *Generator) value() int {
	lo, hi := g.cfg.MinValue, g.cfg.MaxValue

	switch g.cfg.Distribution {
	case PowerLaw:
		alpha := 1.5
		u := g.rng.Float64()
		v := float64(max(lo, 1)) / math.Pow(1-u, 1/alpha)
		if v > float64(hi) {
			v = float64(hi)
		}

		return max(lo, int(v))

	case Exponential:
		lambda := math.Log(2) / math.Max(float64(hi-lo)/4, 1)
		u := g.rng.Float64()
		v := float64(lo) - math.Log(1-u)/lambda
		clamped := math.Max(float64(lo), math.Min(v, float64(hi)))

		return int(clamped)

	default:
		// Unknown distributions fall back to uniform.
		return lo + g.rng.Intn(hi-lo+1)
	}
}
