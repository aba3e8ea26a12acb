//go:build board_cortexm85

package main

import "github.com/sifive/cortex-bsp-kit/board/sim"

type counter = uint32

const boardName = "cortexm85"

func newBoard() *sim.CortexM85 {
	return sim.NewCortexM85()
}
