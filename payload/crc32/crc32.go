// Package crc32 is a CRC-32 workload: a bitwise, table-free reflected CRC
// over a fixed block of seeded bytes. The result is checked against the
// standard library's table-driven IEEE implementation.
package crc32

import (
	stdcrc32 "hash/crc32"

	"github.com/sifive/cortex-bsp-kit/payload"
	"github.com/sifive/cortex-bsp-kit/workload"
)

const (
	// LocalScaleFactor is the number of CRC passes per timed call at a
	// global scale factor of one.
	LocalScaleFactor = 170

	// DataSize is the length of the checksummed block.
	DataSize = 1024

	seed = 0x10da

	polynomial = 0xedb88320
)

// CRC32 implements payload.Benchmark.
type CRC32 struct {
	scale    int
	data     []byte
	expected uint32

	bodyRuns int
}

// New returns the workload with the given global scale factor.
func New(globalScale int) *CRC32 {
	return &CRC32{scale: payload.Scale(LocalScaleFactor, globalScale)}
}

func (c *CRC32) Initialise() {
	c.data = workload.NewGenerator(workload.Config{Seed: seed}).Bytes(DataSize)
	c.expected = stdcrc32.ChecksumIEEE(c.data)
}

// WarmCaches runs the body heat times. The input block is never written, so
// no state needs restoring.
func (c *CRC32) WarmCaches(heat int) {
	if heat <= 0 {
		return
	}

	c.body(heat)
}

//go:noinline
func (c *CRC32) Benchmark() int {
	return c.body(c.scale)
}

func (c *CRC32) Verify(result int) payload.Outcome {
	return payload.Check(result == int(c.expected))
}

func (c *CRC32) body(rpt int) int {
	var r uint32
	for range rpt {
		c.bodyRuns++
		r = checksum(c.data)
	}

	return int(r)
}

func checksum(data []byte) uint32 {
	crc := ^uint32(0)
	for _, b := range data {
		crc ^= uint32(b)
		for range 8 {
			if crc&1 != 0 {
				crc = crc>>1 ^ polynomial
			} else {
				crc >>= 1
			}
		}
	}

	return ^crc
}
