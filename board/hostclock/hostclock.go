// Package hostclock is the portable fallback board: a 64-bit counter of
// nanoseconds on the host monotonic clock.
package hostclock

import "time"

// Board counts nanoseconds since its first Initialise.
type Board struct {
	origin time.Time
}

// New returns a board that reads zero until Initialise.
func New() *Board {
	return &Board{}
}

// Initialise fixes the counter origin. Later calls keep the first origin.
func (b *Board) Initialise() error {
	if b.origin.IsZero() {
		b.origin = time.Now()
	}

	return nil
}

//go:noinline
func (b *Board) StartTrigger() uint64 {
	return b.read()
}

//go:noinline
func (b *Board) StopTrigger() uint64 {
	return b.read()
}

func (b *Board) read() uint64 {
	if b.origin.IsZero() {
		return 0
	}

	return uint64(time.Since(b.origin))
}
