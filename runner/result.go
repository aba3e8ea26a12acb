// Package runner builds target harness binaries, launches them on the host
// (optionally under a simulator or emulator wrapper) and turns their two
// measurement lines into cycle counts.
package runner

// Result holds the outcome of one harness execution. Cycles counts ticks of
// the board counter, measured in Unit.
type Result struct {
	RunID      string `json:"run_id"`
	Board      string `json:"board"`
	Benchmark  string `json:"benchmark"`
	Width      int    `json:"width"`
	Unit       string `json:"unit"`
	Start      uint64 `json:"start"`
	End        uint64 `json:"end"`
	Cycles     uint64 `json:"cycles"`
	Wrapped    bool   `json:"wrapped"`
	Verified   bool   `json:"verified"`
	ExitCode   int    `json:"exit_code"`
	WallTimeMs int64  `json:"wall_time_ms"`
}
