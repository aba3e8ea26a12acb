// Package payload defines the contract a benchmark workload satisfies to be
// timed by the harness.
package payload

// Outcome is the verdict of a benchmark's own result check.
type Outcome int

// NotVerifiable is the sentinel for benchmarks that implement no check. It
// never fails a run.
const (
	NotVerifiable Outcome = -1
	Incorrect     Outcome = 0
	Correct       Outcome = 1
)

// Passed reports whether the outcome counts as success.
func (o Outcome) Passed() bool {
	return o != Incorrect
}

func (o Outcome) String() string {
	switch o {
	case NotVerifiable:
		return "not-verifiable"
	case Incorrect:
		return "incorrect"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Check converts a boolean check into an Outcome.
func Check(ok bool) Outcome {
	if ok {
		return Correct
	}

	return Incorrect
}

// Benchmark is implemented once per workload.
//
// Initialise runs once before any warm-up or timing. WarmCaches(heat) runs
// the workload heat times untimed, with heat <= 0 doing nothing, and leaves
// mutable state as Initialise left it. Benchmark is the timed entry point and
// must be marked //go:noinline. Verify is pure.
type Benchmark interface {
	Initialise()
	WarmCaches(heat int)
	Benchmark() int
	Verify(result int) Outcome
}

// Scale is the number of body repetitions per timed call: the workload's
// local factor times the build-wide global factor. Non-positive factors
// count as one.
func Scale(local, global int) int {
	return max(local, 1) * max(global, 1)
}
