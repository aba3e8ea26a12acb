//go:build payload_matmult

package main

import "github.com/sifive/cortex-bsp-kit/payload/matmult"

const payloadName = "matmult"

func newPayload(globalScale int) *matmult.MatMult {
	return matmult.New(globalScale)
}
