package runner

import "slices"

// Units a board counter can tick in.
const (
	UnitCycles      = "cycles"
	UnitNanoseconds = "ns"
)

// BoardSpec describes a board the target harness can be built for.
type BoardSpec struct {
	Name  string
	Tag   string
	Width int
	Unit  string
	// GOOS is set when the board only exists on one host OS.
	GOOS string
}

// KnownBoards returns the supported boards.
func KnownBoards() []BoardSpec {
	return []BoardSpec{
		{Name: "hostclock", Width: 64, Unit: UnitNanoseconds},
		{Name: "ri5cy", Tag: "board_ri5cy", Width: 32, Unit: UnitCycles},
		{Name: "rv64", Tag: "board_rv64", Width: 64, Unit: UnitCycles},
		{Name: "cortexm85", Tag: "board_cortexm85", Width: 32, Unit: UnitCycles},
		{Name: "perf", Tag: "board_perf", Width: 64, Unit: UnitCycles, GOOS: "linux"},
	}
}

// LookupBoard returns the BoardSpec registered under name.
func LookupBoard(name string) (BoardSpec, bool) {
	i := slices.IndexFunc(KnownBoards(), func(b BoardSpec) bool {
		return b.Name == name
	})
	if i < 0 {
		return BoardSpec{}, false
	}

	return KnownBoards()[i], true
}

// KnownBenchmarks returns the supported payload names.
func KnownBenchmarks() []string {
	return []string{"crc32", "matmult"}
}

// benchmarkTag returns the build tag selecting a payload; crc32 is the
// default and needs none.
func benchmarkTag(name string) string {
	switch name {
	case "matmult":
		return "payload_matmult"
	default:
		return ""
	}
}
