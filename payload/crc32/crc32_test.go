package crc32

import (
	stdcrc32 "hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifive/cortex-bsp-kit/payload"
)

var _ payload.Benchmark = (*CRC32)(nil)

func TestChecksumMatchesIEEE(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("a"),
		[]byte("123456789"),
		[]byte("The quick brown fox jumps over the lazy dog"),
	}

	for _, in := range inputs {
		assert.Equal(t, stdcrc32.ChecksumIEEE(in), checksum(in), "input %q", in)
	}

	assert.Equal(t, uint32(0xcbf43926), checksum([]byte("123456789")))
}

func TestBenchmarkVerifies(t *testing.T) {
	c := New(1)
	c.Initialise()
	c.WarmCaches(1)

	result := c.Benchmark()

	assert.Equal(t, payload.Correct, c.Verify(result))
	assert.Equal(t, payload.Incorrect, c.Verify(result+1))
	assert.Equal(t, 1+LocalScaleFactor, c.bodyRuns)
}

func TestWarmCachesZeroHeat(t *testing.T) {
	c := New(1)
	c.Initialise()

	c.WarmCaches(0)
	c.WarmCaches(-3)

	assert.Zero(t, c.bodyRuns)
}

func TestGlobalScale(t *testing.T) {
	c := New(2)
	c.Initialise()
	c.Benchmark()

	require.Equal(t, 2*LocalScaleFactor, c.bodyRuns)
}

func TestDataDeterministic(t *testing.T) {
	a, b := New(1), New(1)
	a.Initialise()
	b.Initialise()

	assert.Len(t, a.data, DataSize)
	assert.Equal(t, a.data, b.data)
	assert.Equal(t, a.Benchmark(), b.Benchmark())
}
