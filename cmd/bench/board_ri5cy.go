//go:build board_ri5cy

package main

import "github.com/sifive/cortex-bsp-kit/board/sim"

type counter = uint32

const boardName = "ri5cy"

func newBoard() *sim.RI5CY {
	return sim.NewRI5CY()
}
