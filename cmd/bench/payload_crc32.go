//go:build !payload_matmult

package main

import "github.com/sifive/cortex-bsp-kit/payload/crc32"

const payloadName = "crc32"

func newPayload(globalScale int) *crc32.CRC32 {
	return crc32.New(globalScale)
}
