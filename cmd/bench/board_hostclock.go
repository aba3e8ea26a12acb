//go:build !board_ri5cy && !board_rv64 && !board_cortexm85 && !board_perf

package main

import "github.com/sifive/cortex-bsp-kit/board/hostclock"

type counter = uint64

const boardName = "hostclock"

func newBoard() *hostclock.Board {
	return hostclock.New()
}
