// Package suite loads YAML descriptions of board/benchmark runs.
package suite

import (
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sifive/cortex-bsp-kit/runner"
)

// Defaults applied to keys a suite file leaves out.
const (
	DefaultWarmupHeat  = 1
	DefaultGlobalScale = 1
	DefaultTimeout     = 10 * time.Minute
)

// Suite is a named list of runs sharing build-time settings.
type Suite struct {
	Name              string        `yaml:"name"`
	WarmupHeat        int           `yaml:"warmup_heat"`
	GlobalScaleFactor int           `yaml:"global_scale_factor"`
	Timeout           time.Duration `yaml:"timeout"`
	Runs              []Entry       `yaml:"runs"`
}

// Entry selects one board and one benchmark.
type Entry struct {
	Board     string   `yaml:"board"`
	Benchmark string   `yaml:"benchmark"`
	Wrapper   []string `yaml:"wrapper"`
	GOOS      string   `yaml:"goos"`
	GOARCH    string   `yaml:"goarch"`
}

// LoadFromFile reads and parses the suite file at path.
func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML suite, fills defaults and validates it.
func Parse(data []byte) (*Suite, error) {
	s := Suite{
		WarmupHeat:        DefaultWarmupHeat,
		GlobalScaleFactor: DefaultGlobalScale,
		Timeout:           DefaultTimeout,
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every run names a known board and benchmark.
func (s *Suite) Validate() error {
	if len(s.Runs) == 0 {
		return fmt.Errorf("suite has no runs")
	}
	if s.WarmupHeat < 0 {
		return fmt.Errorf("warmup_heat must not be negative, got %d", s.WarmupHeat)
	}
	for i, e := range s.Runs {
		if e.Board == "" {
			return fmt.Errorf("run at index %d has no board", i)
		}
		if _, ok := runner.LookupBoard(e.Board); !ok {
			return fmt.Errorf("run at index %d: unknown board %q", i, e.Board)
		}
		if e.Benchmark == "" {
			return fmt.Errorf("run at index %d has no benchmark", i)
		}
		if !slices.Contains(runner.KnownBenchmarks(), e.Benchmark) {
			return fmt.Errorf("run at index %d: unknown benchmark %q", i, e.Benchmark)
		}
	}
	return nil
}
