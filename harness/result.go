package harness

import (
	"github.com/sifive/cortex-bsp-kit/board"
	"github.com/sifive/cortex-bsp-kit/payload"
)

// Result holds what one run observed.
type Result[C board.Counter] struct {
	Start   C
	End     C
	Value   int
	Outcome payload.Outcome
}

// ExitCode returns the process exit status for the run.
func (r Result[C]) ExitCode() int {
	return ExitCode(r.Outcome)
}
