package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifive/cortex-bsp-kit/runner"
	"github.com/sifive/cortex-bsp-kit/suite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBoardsCommand(t *testing.T) {
	root := newRootCmd(discardLogger())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"boards"})

	require.NoError(t, root.Execute())

	for _, want := range []string{"ri5cy", "cortexm85", "board_perf", "matmult", "(default)"} {
		assert.Contains(t, out.String(), want)
	}
}

// fakeHarness installs a shell script where the runner expects the built
// binary for board/benchmark.
func fakeHarness(t *testing.T, binDir, board, benchmark, body string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts need a unix host")
	}

	path := runner.ResolveBinary(binDir, board, benchmark)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
}

func TestRunSuiteSkipBuild(t *testing.T) {
	binDir := t.TempDir()
	fakeHarness(t, binDir, "ri5cy", "crc32",
		"echo 'start of mcycle: 100'; echo 'end of mcycle: 250'")
	fakeHarness(t, binDir, "rv64", "crc32",
		"echo 'start of mcycle: 1000'; echo 'end of mcycle: 1300'")

	s := &suite.Suite{
		Name:    "fake",
		Timeout: 10 * time.Second,
		Runs: []suite.Entry{
			{Board: "ri5cy", Benchmark: "crc32"},
			{Board: "rv64", Benchmark: "crc32"},
		},
	}

	var out bytes.Buffer
	err := runSuite(context.Background(), discardLogger(), &out, s,
		suite.Env{BinDir: binDir}, true, true)
	require.NoError(t, err)

	var results []runner.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 2)

	assert.Equal(t, uint64(150), results[0].Cycles)
	assert.Equal(t, 32, results[0].Width)
	assert.Equal(t, uint64(300), results[1].Cycles)
	assert.True(t, results[1].Verified)
}

func TestRunSuiteVerificationFailure(t *testing.T) {
	binDir := t.TempDir()
	fakeHarness(t, binDir, "cortexm85", "matmult",
		"echo 'start of mcycle: 100'; echo 'end of mcycle: 250'; exit 1")

	s := &suite.Suite{
		Timeout: 10 * time.Second,
		Runs:    []suite.Entry{{Board: "cortexm85", Benchmark: "matmult"}},
	}

	var out bytes.Buffer
	err := runSuite(context.Background(), discardLogger(), &out, s,
		suite.Env{BinDir: binDir}, true, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 runs failed verification")
	assert.Contains(t, out.String(), "FAILED")
}

func TestResolveAdhoc(t *testing.T) {
	t.Setenv(suite.EnvPathVar, "")
	t.Chdir(t.TempDir())

	bf := buildFlags{
		board:       "ri5cy",
		benchmark:   "matmult",
		warmupHeat:  0,
		globalScale: 2,
		wrapper:     []string{"qemu-riscv32"},
		binDir:      "/tmp/out",
	}

	s, env, err := bf.resolve(discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out", env.BinDir)
	assert.Zero(t, s.WarmupHeat)
	assert.Equal(t, 2, s.GlobalScaleFactor)
	require.Len(t, s.Runs, 1)
	assert.Equal(t, "matmult", s.Runs[0].Benchmark)
	assert.Equal(t, []string{"qemu-riscv32"}, s.Runs[0].Wrapper)

	bf.board = "z80"
	_, _, err = bf.resolve(discardLogger())
	assert.Error(t, err)
}
