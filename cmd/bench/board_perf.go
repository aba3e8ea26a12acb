//go:build board_perf

package main

import "github.com/sifive/cortex-bsp-kit/board/perf"

type counter = uint64

const boardName = "perf"

func newBoard() *perf.Board {
	return perf.New()
}
