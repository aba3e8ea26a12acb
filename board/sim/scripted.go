package sim

import "github.com/sifive/cortex-bsp-kit/board"

// Scripted replays a fixed sequence of readings, one per trigger. Once the
// sequence is exhausted the last reading is repeated.
type Scripted[C board.Counter] struct {
	readings []C
	next     int

	// Initialised counts Initialise calls.
	Initialised int
}

// NewScripted returns a board that yields readings in order.
func NewScripted[C board.Counter](readings ...C) *Scripted[C] {
	return &Scripted[C]{readings: readings}
}

// Initialise counts the call and never fails.
func (b *Scripted[C]) Initialise() error {
	b.Initialised++

	return nil
}

//go:noinline
func (b *Scripted[C]) StartTrigger() C {
	return b.read()
}

//go:noinline
func (b *Scripted[C]) StopTrigger() C {
	return b.read()
}

func (b *Scripted[C]) read() C {
	if len(b.readings) == 0 {
		return 0
	}

	if b.next >= len(b.readings) {
		return b.readings[len(b.readings)-1]
	}

	c := b.readings[b.next]
	b.next++

	return c
}
