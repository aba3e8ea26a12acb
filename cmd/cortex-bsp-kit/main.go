// Package main provides the CLI entry point for cortex-bsp-kit, a host-side
// driver that builds, runs and compares cycle-counted benchmark harnesses
// across board support packages.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sifive/cortex-bsp-kit/report"
	"github.com/sifive/cortex-bsp-kit/runner"
	"github.com/sifive/cortex-bsp-kit/suite"
)

func main() {
	logger := newLogger(os.Stderr)

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newLogger writes human-readable logs to a terminal and JSON otherwise.
func newLogger(w *os.File) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	if term.IsTerminal(int(w.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "cortex-bsp-kit",
		Short: "Cycle-counted benchmark harness across board support packages",
		Long: `cortex-bsp-kit builds a benchmark harness for one board support package
and one benchmark payload, runs it, and reports the cycle counter readings that
bracket the single timed call, so the same workload can be compared across
processors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCmd(logger),
		newBuildCmd(logger),
		newBoardsCmd(),
	)

	return root
}

// buildFlags are shared by run and build.
type buildFlags struct {
	suitePath   string
	board       string
	benchmark   string
	warmupHeat  int
	globalScale int
	wrapper     []string
	goos        string
	goarch      string
	binDir      string
	moduleDir   string
}

func (f *buildFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.suitePath, "suite", "",
		"Path to a suite YAML file (overrides --board/--benchmark)")
	flags.StringVar(&f.board, "board", "hostclock",
		"Board support package to build for")
	flags.StringVar(&f.benchmark, "benchmark", "crc32",
		"Benchmark payload to build")
	flags.IntVar(&f.warmupHeat, "warmup-heat", suite.DefaultWarmupHeat,
		"Untimed warm-up runs before the measurement (0 = none)")
	flags.IntVar(&f.globalScale, "global-scale", suite.DefaultGlobalScale,
		"Global scale factor applied to every payload")
	flags.StringSliceVar(&f.wrapper, "wrapper", nil,
		"Command that launches the harness (e.g. qemu-riscv32)")
	flags.StringVar(&f.goos, "goos", "",
		"Target GOOS for the harness binary")
	flags.StringVar(&f.goarch, "goarch", "",
		"Target GOARCH for the harness binary")
	flags.StringVar(&f.binDir, "bin-dir", "",
		"Output directory for harness binaries (default: $BSPKIT_BIN_DIR or ./bin)")
	flags.StringVar(&f.moduleDir, "module-dir", "",
		"Root of the cortex-bsp-kit module (default: $BSPKIT_MODULE_DIR or .)")
}

// resolve turns the flags into a suite, filling directory defaults from the
// environment.
func (f *buildFlags) resolve(logger *slog.Logger) (*suite.Suite, suite.Env, error) {
	env, err := suite.LoadEnv(logger)
	if err != nil {
		return nil, env, fmt.Errorf("load environment: %w", err)
	}

	if f.binDir != "" {
		env.BinDir = f.binDir
	}
	if f.moduleDir != "" {
		env.ModuleDir = f.moduleDir
	}

	if f.suitePath != "" {
		s, err := suite.LoadFromFile(f.suitePath)
		if err != nil {
			return nil, env, fmt.Errorf("load suite: %w", err)
		}

		return s, env, nil
	}

	s := &suite.Suite{
		Name:              "adhoc",
		WarmupHeat:        f.warmupHeat,
		GlobalScaleFactor: f.globalScale,
		Timeout:           suite.DefaultTimeout,
		Runs: []suite.Entry{{
			Board:     f.board,
			Benchmark: f.benchmark,
			Wrapper:   f.wrapper,
			GOOS:      f.goos,
			GOARCH:    f.goarch,
		}},
	}

	if err := s.Validate(); err != nil {
		return nil, env, err
	}

	return s, env, nil
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		bf         buildFlags
		skipBuild  bool
		outputJSON bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build and run benchmark harnesses",
		Long: `Build one harness binary per suite entry, run each once, and report the
start and end cycle counter readings together with the verification outcome.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, env, err := bf.resolve(logger)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("timeout") {
				s.Timeout = timeout
			}

			return runSuite(cmd.Context(), logger, cmd.OutOrStdout(), s, env, skipBuild, outputJSON)
		},
	}

	bf.register(cmd)

	flags := cmd.Flags()
	flags.BoolVar(&skipBuild, "skip-build", false,
		"Skip building harness binaries")
	flags.BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of table")
	flags.DurationVar(&timeout, "timeout", suite.DefaultTimeout,
		"Per-run timeout")

	return cmd
}

func newBuildCmd(logger *slog.Logger) *cobra.Command {
	var bf buildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build harness binaries without running them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, env, err := bf.resolve(logger)
			if err != nil {
				return err
			}

			for _, e := range s.Runs {
				binPath, err := runner.Build(cmd.Context(), logger, buildConfig(s, env, e))
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), binPath)
			}

			return nil
		},
	}

	bf.register(cmd)

	return cmd
}

func newBoardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boards",
		Short: "List supported boards and benchmarks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listBoards(cmd.OutOrStdout())
		},
	}
}

func listBoards(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "BOARD\tWIDTH\tUNIT\tTAG\tGOOS")
	for _, b := range runner.KnownBoards() {
		tag, goos := b.Tag, b.GOOS
		if tag == "" {
			tag = "(default)"
		}
		if goos == "" {
			goos = "any"
		}

		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", b.Name, b.Width, b.Unit, tag, goos)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "BENCHMARK")
	for _, name := range runner.KnownBenchmarks() {
		fmt.Fprintln(tw, name)
	}

	return tw.Flush()
}

func buildConfig(s *suite.Suite, env suite.Env, e suite.Entry) runner.BuildConfig {
	return runner.BuildConfig{
		Board:       e.Board,
		Benchmark:   e.Benchmark,
		WarmupHeat:  s.WarmupHeat,
		GlobalScale: s.GlobalScaleFactor,
		ModuleDir:   env.ModuleDir,
		BinDir:      env.BinDir,
		GOOS:        e.GOOS,
		GOARCH:      e.GOARCH,
	}
}

func runSuite(
	ctx context.Context,
	logger *slog.Logger,
	out io.Writer,
	s *suite.Suite,
	env suite.Env,
	skipBuild bool,
	outputJSON bool,
) error {
	logger.InfoContext(ctx, "starting suite",
		slog.String("suite", s.Name),
		slog.Int("runs", len(s.Runs)),
		slog.Int("warmup_heat", s.WarmupHeat),
		slog.Int("global_scale_factor", s.GlobalScaleFactor),
	)

	// Step 1: Build harness binaries (unless --skip-build).
	binaries := make([]string, len(s.Runs))

	for i, e := range s.Runs {
		binPath := runner.ResolveBinary(env.BinDir, e.Board, e.Benchmark)

		if !skipBuild {
			var err error

			binPath, err = runner.Build(ctx, logger, buildConfig(s, env, e))
			if err != nil {
				return err
			}
		}

		binaries[i] = binPath
	}

	// Step 2: Run each harness sequentially.
	results := make([]runner.Result, 0, len(s.Runs))

	for i, e := range s.Runs {
		spec, _ := runner.LookupBoard(e.Board)

		r := runner.NewRunner(spec, e.Benchmark, binaries[i], e.Wrapper, nil, logger)

		result, err := r.Run(ctx, runner.RunConfig{Timeout: s.Timeout})
		if err != nil {
			return fmt.Errorf("run %s/%s: %w", e.Board, e.Benchmark, err)
		}

		results = append(results, *result)
	}

	// Step 3: Generate report.
	if outputJSON {
		if err := report.GenerateJSON(out, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	} else {
		if err := report.Generate(out, results); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	failed := 0
	for _, r := range results {
		if !r.Verified {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d runs failed verification", failed, len(results))
	}

	logger.InfoContext(ctx, "suite complete")

	return nil
}
