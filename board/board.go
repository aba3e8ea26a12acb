// Package board defines the contract every board support package satisfies:
// one-time bring-up plus access to a free-running cycle counter whose width
// is fixed by the target processor.
package board

import (
	"strconv"
	"unsafe"
)

// Counter is the set of native cycle-counter representations. The width is
// chosen at build time by the selected board, never at runtime.
type Counter interface {
	~uint32 | ~uint64
}

// Board is implemented once per supported board or processor.
//
// StartTrigger and StopTrigger must be marked //go:noinline by every
// implementation so the reads stay on their side of the timed call.
// Initialise must tolerate being called a second time without resetting or
// corrupting the counter.
type Board[C Counter] interface {
	Initialise() error
	StartTrigger() C
	StopTrigger() C
}

// Width returns the bit width of the counter type C.
func Width[C Counter]() int {
	var c C

	return int(unsafe.Sizeof(c)) * 8
}

// Format renders a reading as an unsigned decimal.
func Format[C Counter](c C) string {
	return strconv.FormatUint(uint64(c), 10)
}

// Elapsed returns end-start modulo 2^width. wrapped reports that the counter
// rolled over at least once between the readings; exactly one rollover is
// recovered, more than one cannot be detected from two readings.
func Elapsed(start, end uint64, width int) (cycles uint64, wrapped bool) {
	if width <= 0 || width >= 64 {
		return end - start, end < start
	}

	mask := uint64(1)<<width - 1
	start &= mask
	end &= mask

	return (end - start) & mask, end < start
}
