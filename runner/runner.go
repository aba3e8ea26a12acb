package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/sifive/cortex-bsp-kit/board"
	"github.com/sifive/cortex-bsp-kit/harness"
)

// RunConfig holds parameters for a single harness execution.
type RunConfig struct {
	Timeout time.Duration
}

// Runner launches and manages a single harness binary.
type Runner struct {
	Board      BoardSpec
	Benchmark  string
	BinaryPath string
	ExtraArgs  []string
	Env        []string
	Logger     *slog.Logger
}

// NewRunner creates a Runner for a built harness. When wrapper is set the
// harness is started as an argument of wrapper[0], e.g. an emulator such as
// qemu-riscv64. Env is appended to the inherited environment.
func NewRunner(
	spec BoardSpec,
	benchmark, binaryPath string,
	wrapper, env []string,
	logger *slog.Logger,
) *Runner {
	r := &Runner{
		Board:      spec,
		Benchmark:  benchmark,
		BinaryPath: binaryPath,
		Env:        env,
		Logger: logger.With(
			slog.String("board", spec.Name),
			slog.String("benchmark", benchmark),
		),
	}

	if len(wrapper) > 0 {
		r.BinaryPath = wrapper[0]
		r.ExtraArgs = append(append([]string{}, wrapper[1:]...), binaryPath)
	}

	return r
}

// Run executes the harness binary and returns parsed results. Exit status 1
// is a failed verification, not an error; any other non-zero status, a
// timeout or missing measurement lines are errors.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.BinaryPath, r.ExtraArgs...)

	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Logger.InfoContext(ctx, "starting harness",
		slog.String("binary", r.BinaryPath),
	)

	wallStart := time.Now()
	runErr := cmd.Run()
	wallElapsed := time.Since(wallStart)

	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		if ctx.Err() != nil || !errors.As(runErr, &exitErr) || exitErr.ExitCode() != 1 {
			return nil, r.failure(ctx, runErr, &stdout, &stderr)
		}

		exitCode = 1
	}

	r.Logger.InfoContext(ctx, "harness finished",
		slog.Duration("wall_time", wallElapsed),
		slog.Int("exit_code", exitCode),
	)

	result, err := parseResult(r.Board, r.Benchmark, exitCode, &stdout)
	if err != nil {
		return nil, fmt.Errorf(
			"parse %s output: %w\nstdout: %s",
			r.Board.Name, err, stdout.String(),
		)
	}

	result.WallTimeMs = wallElapsed.Milliseconds()

	if result.Wrapped {
		r.Logger.WarnContext(ctx, "cycle counter wrapped during timed region",
			slog.Int("width", result.Width),
			slog.Uint64("start", result.Start),
			slog.Uint64("end", result.End),
		)
	}

	return result, nil
}

// failure builds the error for a run that produced no usable result. A start
// reading without an end reading means the workload hung or crashed.
func (r *Runner) failure(
	ctx context.Context,
	runErr error,
	stdout, stderr *bytes.Buffer,
) error {
	if ctx.Err() != nil {
		runErr = fmt.Errorf("%w: %w", ctx.Err(), runErr)
	}

	start, _, parseErr := harness.Parse(bytes.NewReader(stdout.Bytes()))
	if parseErr != nil && bytes.Contains(stdout.Bytes(), []byte(harness.StartLabel)) {
		r.Logger.WarnContext(ctx, "harness stopped inside timed region",
			slog.Uint64("start", start),
		)
	}

	return fmt.Errorf(
		"harness %s/%s failed: %w\nstderr: %s",
		r.Board.Name, r.Benchmark, runErr, stderr.String(),
	)
}

func parseResult(
	spec BoardSpec,
	benchmark string,
	exitCode int,
	r io.Reader,
) (*Result, error) {
	start, end, err := harness.Parse(r)
	if err != nil {
		return nil, err
	}

	cycles, wrapped := board.Elapsed(start, end, spec.Width)

	return &Result{
		RunID:     uuid.NewString(),
		Board:     spec.Name,
		Benchmark: benchmark,
		Width:     spec.Width,
		Unit:      spec.Unit,
		Start:     start,
		End:       end,
		Cycles:    cycles,
		Wrapped:   wrapped,
		Verified:  exitCode == 0,
		ExitCode:  exitCode,
	}, nil
}
