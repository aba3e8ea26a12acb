// Package matmult is an integer matrix multiplication workload. The timed
// body multiplies two fixed square matrices; verification compares against
// a reference product computed once with a different loop order.
package matmult

import (
	"github.com/sifive/cortex-bsp-kit/payload"
	"github.com/sifive/cortex-bsp-kit/workload"
)

const (
	// LocalScaleFactor is the number of products per timed call at a global
	// scale factor of one.
	LocalScaleFactor = 46

	// Size is the matrix dimension.
	Size = 20

	seedA    = 0x1e4b
	seedB    = 0x2f5c
	maxValue = 8094
)

type matrix [Size][Size]int

// MatMult implements payload.Benchmark.
type MatMult struct {
	scale int

	a, b      matrix
	result    matrix
	reference matrix
	checksum  int

	bodyRuns int
}

// New returns the workload with the given global scale factor.
func New(globalScale int) *MatMult {
	return &MatMult{scale: payload.Scale(LocalScaleFactor, globalScale)}
}

// Initialise fills A with exponentially distributed values and B with a
// power-law spread, so most of B is small with a few large outliers.
func (m *MatMult) Initialise() {
	fill(&m.a, operand(seedA, workload.Exponential))
	fill(&m.b, operand(seedB, workload.PowerLaw))

	for i := range Size {
		for k := range Size {
			for j := range Size {
				m.reference[i][j] += m.a[i][k] * m.b[k][j]
			}
		}
	}

	m.checksum = sum(&m.reference)
}

// WarmCaches runs the body heat times and clears the product afterwards.
func (m *MatMult) WarmCaches(heat int) {
	if heat <= 0 {
		return
	}

	m.body(heat)
	m.result = matrix{}
}

//go:noinline
func (m *MatMult) Benchmark() int {
	return m.body(m.scale)
}

// Verify checks both the returned checksum and the stored product.
func (m *MatMult) Verify(result int) payload.Outcome {
	return payload.Check(result == m.checksum && m.result == m.reference)
}

func (m *MatMult) body(rpt int) int {
	for range rpt {
		m.bodyRuns++
		multiply(&m.a, &m.b, &m.result)
	}

	return sum(&m.result)
}

func multiply(a, b, res *matrix) {
	for i := range Size {
		for j := range Size {
			res[i][j] = 0
			for k := range Size {
				res[i][j] += a[i][k] * b[k][j]
			}
		}
	}
}

func sum(m *matrix) int {
	total := 0
	for i := range Size {
		for j := range Size {
			total += m[i][j]
		}
	}

	return total
}

func operand(seed int64, distribution string) [][]int {
	gen := workload.NewGenerator(workload.Config{
		Seed:         seed,
		Distribution: distribution,
		MaxValue:     maxValue,
	})

	return gen.Matrix(Size, Size)
}

func fill(dst *matrix, src [][]int) {
	for i := range dst {
		copy(dst[i][:], src[i])
	}
}
