package harness

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/sifive/cortex-bsp-kit/board/sim"
	"github.com/sifive/cortex-bsp-kit/payload"
	"github.com/sifive/cortex-bsp-kit/payload/crc32"
	"github.com/sifive/cortex-bsp-kit/payload/fixed"
)

const wantLines = "start of mcycle: 100\nend of mcycle: 250\n"

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name     string
		result   int
		verify   fixed.Verifier
		wantCode int
	}{
		{"correct", 42, fixed.Expect(42), 0},
		{"incorrect", 42, fixed.Expect(41), 1},
		{"not verifiable", 42, fixed.Unverifiable, 0},
		{"not verifiable zero", 0, fixed.Unverifiable, 0},
		{"not verifiable negative", -7, fixed.Unverifiable, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			b := sim.NewScripted[uint32](100, 250)
			p := fixed.New(tt.result, tt.verify)

			res, err := Run[uint32](b, p, Config{WarmupHeat: 1}, &out)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if out.String() != wantLines {
				t.Errorf("output = %q, want %q", out.String(), wantLines)
			}
			if res.Start != 100 || res.End != 250 {
				t.Errorf("readings = (%d, %d), want (100, 250)", res.Start, res.End)
			}
			if res.Value != tt.result {
				t.Errorf("value = %d, want %d", res.Value, tt.result)
			}
			if got := res.ExitCode(); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestRunOrder(t *testing.T) {
	b := sim.NewScripted[uint64](1, 2)
	p := fixed.New(1, nil)

	if _, err := Run[uint64](b, p, Config{WarmupHeat: 3}, &bytes.Buffer{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{"initialise", "warm", "benchmark", "verify"}
	if !slices.Equal(p.Calls, want) {
		t.Errorf("calls = %v, want %v", p.Calls, want)
	}
	if p.Runs != 4 {
		t.Errorf("runs = %d, want 3 warm-up plus 1 timed", p.Runs)
	}
	if b.Initialised != 1 {
		t.Errorf("board initialised %d times, want 1", b.Initialised)
	}
}

func TestRunNoWarmup(t *testing.T) {
	p := fixed.New(1, nil)

	if _, err := Run[uint32](sim.NewScripted[uint32](1, 2), p, Config{}, &bytes.Buffer{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if p.Runs != 1 {
		t.Errorf("runs = %d, want only the timed call", p.Runs)
	}
}

func TestRunRealPayload(t *testing.T) {
	var out bytes.Buffer

	res, err := Run[uint32](sim.NewRI5CY(), crc32.New(1), Config{WarmupHeat: 1}, &out)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Outcome != payload.Correct {
		t.Errorf("outcome = %s, want correct", res.Outcome)
	}
	if res.End < res.Start {
		t.Errorf("end %d before start %d", res.End, res.Start)
	}

	start, end, err := Parse(&out)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if start != uint64(res.Start) || end != uint64(res.End) {
		t.Errorf("parsed (%d, %d), want (%d, %d)", start, end, res.Start, res.End)
	}
}

func TestRestartWithoutPowerCycle(t *testing.T) {
	b := sim.NewCortexM85()

	var prevEnd uint32
	for i := 0; i < 2; i++ {
		res, err := Run[uint32](b, fixed.New(1, nil), Config{}, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
		if res.End < res.Start || res.Start < prevEnd {
			t.Errorf("run %d: readings (%d, %d) after previous end %d",
				i, res.Start, res.End, prevEnd)
		}
		prevEnd = res.End
	}
}

type deadBoard struct{}

var errNoClock = errors.New("no clock")

func (deadBoard) Initialise() error    { return errNoClock }
func (deadBoard) StartTrigger() uint32 { return 0 }
func (deadBoard) StopTrigger() uint32  { return 0 }

func TestRunBringUpFailure(t *testing.T) {
	var out bytes.Buffer
	p := fixed.New(1, nil)

	_, err := Run[uint32](deadBoard{}, p, Config{}, &out)
	if !errors.Is(err, errNoClock) {
		t.Fatalf("err = %v, want errNoClock", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
	if len(p.Calls) != 0 {
		t.Errorf("payload touched after bring-up failure: %v", p.Calls)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunWriteFailure(t *testing.T) {
	_, err := Run[uint32](sim.NewScripted[uint32](1, 2), fixed.New(1, nil), Config{}, failWriter{})
	if err == nil || !strings.Contains(err.Error(), "start of mcycle") {
		t.Errorf("err = %v, want start line write error", err)
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(payload.Correct) != 0 {
		t.Error("correct should exit 0")
	}
	if ExitCode(payload.NotVerifiable) != 0 {
		t.Error("not verifiable should exit 0")
	}
	if ExitCode(payload.Incorrect) != 1 {
		t.Error("incorrect should exit 1")
	}
}
