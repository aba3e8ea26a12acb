// Package fixed provides a scripted payload that returns a preset result and
// delegates verification to a caller-supplied function. It records every
// call so harness ordering can be observed.
package fixed

import "github.com/sifive/cortex-bsp-kit/payload"

// Verifier maps a result to an outcome.
type Verifier func(result int) payload.Outcome

// Expect returns a verifier accepting exactly want.
func Expect(want int) Verifier {
	return func(result int) payload.Outcome {
		return payload.Check(result == want)
	}
}

// Unverifiable is a verifier that implements no check.
func Unverifiable(int) payload.Outcome {
	return payload.NotVerifiable
}

// Payload implements payload.Benchmark.
type Payload struct {
	Result   int
	Verifier Verifier

	// Calls lists "initialise", "warm", "benchmark" and "verify" in call
	// order.
	Calls []string
	// Runs counts executions of the workload, warm-up included.
	Runs int
}

// New returns a payload producing result, checked by verify. A nil verify
// means no check is implemented.
func New(result int, verify Verifier) *Payload {
	if verify == nil {
		verify = Unverifiable
	}

	return &Payload{Result: result, Verifier: verify}
}

func (p *Payload) Initialise() {
	p.Calls = append(p.Calls, "initialise")
}

func (p *Payload) WarmCaches(heat int) {
	p.Calls = append(p.Calls, "warm")

	for range max(heat, 0) {
		p.Runs++
	}
}

//go:noinline
func (p *Payload) Benchmark() int {
	p.Calls = append(p.Calls, "benchmark")
	p.Runs++

	return p.Result
}

func (p *Payload) Verify(result int) payload.Outcome {
	p.Calls = append(p.Calls, "verify")

	return p.Verifier(result)
}
