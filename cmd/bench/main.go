// Bench is the target-side harness binary. Exactly one board and one payload
// are compiled in, chosen with build tags:
//
//	board_ri5cy | board_rv64 | board_cortexm85 | board_perf  (default hostclock)
//	payload_matmult                                          (default crc32)
//
// Warm-up heat and the global scale factor are fixed at link time:
//
//	go build -tags board_ri5cy -ldflags "-X main.warmupHeat=2 -X main.globalScale=1"
//
// The binary prints the two measurement lines and exits 0 when the result
// verifies (or cannot be verified) and 1 when it does not. Arguments are
// ignored.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sifive/cortex-bsp-kit/harness"
)

// Set with -ldflags -X.
var (
	warmupHeat  = "1"
	globalScale = "1"
)

// exitSetup is used when bring-up or build configuration fails; nothing
// meaningful was measured.
const exitSetup = 2

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) int {
	heat, err := strconv.Atoi(warmupHeat)
	if err != nil {
		fmt.Fprintf(stderr, "bench: invalid warmupHeat %q: %v\n", warmupHeat, err)
		return exitSetup
	}

	scale, err := strconv.Atoi(globalScale)
	if err != nil {
		fmt.Fprintf(stderr, "bench: invalid globalScale %q: %v\n", globalScale, err)
		return exitSetup
	}

	res, err := harness.Run[counter](
		newBoard(),
		newPayload(scale),
		harness.Config{WarmupHeat: heat},
		stdout,
	)
	if err != nil {
		fmt.Fprintf(stderr, "bench: %s/%s: %v\n", boardName, payloadName, err)
		return exitSetup
	}

	return res.ExitCode()
}
