// Package report formats runner results into comparison tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sifive/cortex-bsp-kit/runner"
)

// Generate writes a markdown comparison table for the given results.
// Relative cost compares each run with the fastest board on the same
// benchmark whose counter ticks in the same unit; cycles and nanoseconds
// are never divided against each other.
func Generate(w io.Writer, results []runner.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fastest := findFastest(results)

	// Header.
	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	// Verification check.
	if failed := failedRuns(results); len(failed) == 0 {
		fmt.Fprintln(w, "Verification: **all passed**")
	} else {
		fmt.Fprintln(w, "Verification: **FAILED**")

		for _, r := range failed {
			fmt.Fprintf(w, "  - %s/%s: exit %d\n", r.Board, r.Benchmark, r.ExitCode)
		}
	}

	fmt.Fprintln(w)

	// Table header.
	fmt.Fprintln(w, "| Board | Benchmark | Width | Elapsed | Wall "+
		"| Verified | Relative |")
	fmt.Fprintln(w, "|-------|-----------|-------|---------|------"+
		"|----------|----------|")

	for _, r := range results {
		relative := 1.0
		if f := fastest[compareKey(r)]; f > 0 && r.Cycles > 0 {
			relative = float64(r.Cycles) / float64(f)
		}

		cycles := formatCycles(r.Cycles) + " " + unit(r)
		if r.Wrapped {
			cycles += " (wrapped)"
		}

		fmt.Fprintf(w, "| %s | %s | %d | %s | %s | %s | %.2fx |\n",
			r.Board,
			r.Benchmark,
			r.Width,
			cycles,
			formatMs(r.WallTimeMs),
			formatVerified(r.Verified),
			relative,
		)
	}

	fmt.Fprintln(w)

	// Raw readings.
	fmt.Fprintln(w, "| Run | Board | Start | End |")
	fmt.Fprintln(w, "|-----|-------|-------|-----|")

	for _, r := range results {
		fmt.Fprintf(w, "| %s | %s | %d | %d |\n",
			shortID(r.RunID),
			r.Board,
			r.Start,
			r.End,
		)
	}

	return nil
}

// GenerateJSON writes results as JSON to w.
func GenerateJSON(w io.Writer, results []runner.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

func failedRuns(results []runner.Result) []runner.Result {
	var failed []runner.Result
	for _, r := range results {
		if !r.Verified {
			failed = append(failed, r)
		}
	}

	return failed
}

func findFastest(results []runner.Result) map[string]uint64 {
	fastest := make(map[string]uint64)
	for _, r := range results {
		if r.Cycles == 0 {
			continue
		}

		key := compareKey(r)
		if f, ok := fastest[key]; !ok || r.Cycles < f {
			fastest[key] = r.Cycles
		}
	}

	return fastest
}

// compareKey groups runs whose counts are comparable.
func compareKey(r runner.Result) string {
	return r.Benchmark + "/" + unit(r)
}

func unit(r runner.Result) string {
	if r.Unit == "" {
		return runner.UnitCycles
	}

	return r.Unit
}

func formatMs(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}

	return fmt.Sprintf("%.2fs", float64(ms)/1000)
}

func formatCycles(c uint64) string {
	if c < 1000 {
		return strconv.FormatUint(c, 10)
	}

	units := []string{"", "K", "M", "G", "T"}
	size := float64(c)
	unit := 0

	for size >= 1000 && unit < len(units)-1 {
		size /= 1000
		unit++
	}

	formatted := fmt.Sprintf("%.1f", size)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")

	return formatted + units[unit]
}

func formatVerified(ok bool) string {
	if ok {
		return "yes"
	}

	return "**no**"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
