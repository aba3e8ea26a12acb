// Package harness runs one benchmark payload on one board under a fixed
// measurement protocol: bring-up, warm-up, a single timed call bracketed by
// two cycle-counter reads, then verification.
package harness

import (
	"fmt"
	"io"

	"github.com/sifive/cortex-bsp-kit/board"
	"github.com/sifive/cortex-bsp-kit/payload"
)

// Config holds the build-time knobs of a run.
type Config struct {
	// WarmupHeat is passed through to Benchmark.WarmCaches; 0 disables
	// warming.
	WarmupHeat int
}

// sink keeps the timed result observable so the call cannot be dropped.
var sink int

// Run executes the protocol once. The start line is written to w before the
// timed call, so it survives a crash inside the workload; w should be
// unbuffered.
//
// An error is returned only for bring-up failure or a failed write; an
// incorrect result is reported through Result.Outcome.
func Run[C board.Counter, B board.Board[C], P payload.Benchmark](
	b B,
	p P,
	cfg Config,
	w io.Writer,
) (Result[C], error) {
	var res Result[C]

	if err := b.Initialise(); err != nil {
		return res, fmt.Errorf("initialise board: %w", err)
	}

	p.Initialise()
	p.WarmCaches(cfg.WarmupHeat)

	res.Start = b.StartTrigger()
	if err := writeReading(w, StartLabel, res.Start); err != nil {
		return res, err
	}

	sink = p.Benchmark()
	res.End = b.StopTrigger()

	res.Value = sink

	if err := writeReading(w, EndLabel, res.End); err != nil {
		return res, err
	}

	res.Outcome = p.Verify(res.Value)

	return res, nil
}

// ExitCode maps an outcome to the process exit status: 0 for correct or not
// verifiable, 1 for incorrect.
func ExitCode(o payload.Outcome) int {
	if o.Passed() {
		return 0
	}

	return 1
}
