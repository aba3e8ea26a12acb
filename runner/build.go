package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

// BuildConfig describes one target harness binary.
type BuildConfig struct {
	Board       string
	Benchmark   string
	WarmupHeat  int
	GlobalScale int
	// ModuleDir is the root of this module; the binary is built from
	// ./cmd/bench inside it.
	ModuleDir string
	BinDir    string
	GOOS      string
	GOARCH    string
}

// ResolveBinary returns the expected binary path for a board and benchmark
// pair given the output directory.
func ResolveBinary(binDir, board, benchmark string) string {
	return filepath.Join(binDir, "bench-"+board+"-"+benchmark)
}

// BuildArgs returns the go command arguments producing binPath.
func BuildArgs(cfg BuildConfig, binPath string) ([]string, error) {
	spec, ok := LookupBoard(cfg.Board)
	if !ok {
		return nil, fmt.Errorf("unknown board %q", cfg.Board)
	}

	if !slices.Contains(KnownBenchmarks(), cfg.Benchmark) {
		return nil, fmt.Errorf("unknown benchmark %q", cfg.Benchmark)
	}

	var tags []string
	if spec.Tag != "" {
		tags = append(tags, spec.Tag)
	}
	if tag := benchmarkTag(cfg.Benchmark); tag != "" {
		tags = append(tags, tag)
	}

	args := []string{"build", "-o", binPath}
	if len(tags) > 0 {
		args = append(args, "-tags", strings.Join(tags, ","))
	}

	args = append(args,
		"-ldflags", fmt.Sprintf("-X main.warmupHeat=%d -X main.globalScale=%d",
			cfg.WarmupHeat, cfg.GlobalScale),
		"./cmd/bench",
	)

	return args, nil
}

// Build compiles the target harness for the configured pair.
func Build(
	ctx context.Context,
	logger *slog.Logger,
	cfg BuildConfig,
) (string, error) {
	binDir, err := filepath.Abs(cfg.BinDir)
	if err != nil {
		return "", fmt.Errorf("resolve bin dir: %w", err)
	}

	binPath := ResolveBinary(binDir, cfg.Board, cfg.Benchmark)

	args, err := BuildArgs(cfg, binPath)
	if err != nil {
		return "", err
	}

	if spec, _ := LookupBoard(cfg.Board); spec.GOOS != "" {
		goos := cfg.GOOS
		if goos == "" {
			goos = runtime.GOOS
		}
		if goos != spec.GOOS {
			return "", fmt.Errorf("board %s requires GOOS=%s, got %s",
				cfg.Board, spec.GOOS, goos)
		}
	}

	logger.InfoContext(ctx, "building harness",
		slog.String("board", cfg.Board),
		slog.String("benchmark", cfg.Benchmark),
		slog.String("module_dir", cfg.ModuleDir),
	)

	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = cfg.ModuleDir
	cmd.Env = os.Environ()

	if cfg.GOOS != "" {
		cmd.Env = append(cmd.Env, "GOOS="+cfg.GOOS)
	}
	if cfg.GOARCH != "" {
		cmd.Env = append(cmd.Env, "GOARCH="+cfg.GOARCH)
	}

	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("build %s/%s: %w", cfg.Board, cfg.Benchmark, err)
	}

	if _, err := os.Stat(binPath); err != nil {
		return "", fmt.Errorf(
			"build %s/%s: binary not found at %s",
			cfg.Board, cfg.Benchmark, binPath,
		)
	}

	logger.InfoContext(ctx, "harness built",
		slog.String("board", cfg.Board),
		slog.String("benchmark", cfg.Benchmark),
		slog.String("binary", binPath),
	)

	return binPath, nil
}
