// Package sim provides simulated board support packages. Each board models
// the cycle counter of a real processor (width, reset behaviour, bring-up
// requirements) on top of the host monotonic clock, so the harness can be
// exercised without the silicon.
package sim

import (
	"math/bits"
	"time"

	"github.com/sifive/cortex-bsp-kit/board"
)

// Clock returns the time elapsed since an arbitrary, fixed origin. It must
// never go backwards.
type Clock func() time.Duration

// HostClock returns a Clock backed by the host monotonic clock.
func HostClock() Clock {
	origin := time.Now()

	return func() time.Duration {
		return time.Since(origin)
	}
}

type config struct {
	clock  Clock
	hz     uint64
	offset uint64
}

// Option configures a simulated board.
type Option func(*config)

// WithClock replaces the host clock driving the counter.
func WithClock(c Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

// WithFrequency sets the simulated core clock in Hz.
func WithFrequency(hz uint64) Option {
	return func(cfg *config) {
		cfg.hz = hz
	}
}

// WithOffset sets the counter value at the origin. Offsets close to the top
// of the counter range are useful for provoking rollover.
func WithOffset(offset uint64) Option {
	return func(cfg *config) {
		cfg.offset = offset
	}
}

func newConfig(defaultHz uint64, opts []Option) config {
	cfg := config{hz: defaultHz}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.clock == nil {
		cfg.clock = HostClock()
	}

	return cfg
}

// counter converts clock time into cycles at a fixed frequency and truncates
// them to the native width C.
type counter[C board.Counter] struct {
	cfg    config
	origin time.Duration
}

func (c *counter[C]) reset() {
	c.origin = c.cfg.clock()
}

func (c *counter[C]) read() C {
	elapsed := c.cfg.clock() - c.origin
	if elapsed < 0 {
		elapsed = 0
	}

	hi, lo := bits.Mul64(uint64(elapsed), c.cfg.hz)
	cycles, _ := bits.Div64(hi%uint64(time.Second), lo, uint64(time.Second))

	return C(c.cfg.offset + cycles)
}
