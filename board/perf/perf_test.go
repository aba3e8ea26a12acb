package perf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifive/cortex-bsp-kit/board"
)

var _ board.Board[uint64] = (*Board)(nil)

func TestCycleCounter(t *testing.T) {
	b := New()
	defer b.Close()

	if err := b.Initialise(); err != nil {
		if errors.Is(err, ErrUnsupported) {
			t.Skipf("cycle counter unavailable: %v", err)
		}
		t.Fatalf("Initialise: %v", err)
	}

	require.NoError(t, b.Initialise(), "second bring-up must succeed")

	start := b.StartTrigger()
	sum := 0
	for i := 0; i < 100000; i++ {
		sum += i
	}
	stop := b.StopTrigger()

	assert.NotZero(t, sum)
	assert.GreaterOrEqual(t, stop, start)
}

func TestUninitialisedReadsZero(t *testing.T) {
	b := New()

	assert.Zero(t, b.StartTrigger())
	assert.NoError(t, b.Close())
}
