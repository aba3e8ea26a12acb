//go:build board_rv64

package main

import "github.com/sifive/cortex-bsp-kit/board/sim"

type counter = uint64

const boardName = "rv64"

func newBoard() *sim.RV64 {
	return sim.NewRV64()
}
