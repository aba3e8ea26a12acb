package harness

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sifive/cortex-bsp-kit/board"
)

// Labels of the two measurement lines.
const (
	StartLabel = "start of mcycle: "
	EndLabel   = "end of mcycle: "
)

// ErrMalformedOutput is returned by Parse when the measurement lines are
// missing, out of order or unparsable.
var ErrMalformedOutput = errors.New("malformed harness output")

func writeReading[C board.Counter](w io.Writer, label string, c C) error {
	if _, err := io.WriteString(w, label+board.Format(c)+"\n"); err != nil {
		return fmt.Errorf("write %q line: %w", strings.TrimSpace(label), err)
	}

	return nil
}

// Parse reads harness output and returns the start and end readings. Lines
// other than the two measurement lines are ignored; the start line must come
// first.
func Parse(r io.Reader) (start, end uint64, err error) {
	var haveStart, haveEnd bool

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case strings.HasPrefix(line, StartLabel):
			if haveStart {
				return 0, 0, fmt.Errorf("%w: duplicate start line", ErrMalformedOutput)
			}
			start, err = parseReading(line, StartLabel)
			if err != nil {
				return 0, 0, err
			}
			haveStart = true

		case strings.HasPrefix(line, EndLabel):
			if !haveStart {
				return 0, 0, fmt.Errorf("%w: end line before start line", ErrMalformedOutput)
			}
			if haveEnd {
				return 0, 0, fmt.Errorf("%w: duplicate end line", ErrMalformedOutput)
			}
			end, err = parseReading(line, EndLabel)
			if err != nil {
				return 0, 0, err
			}
			haveEnd = true
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("read output: %w", err)
	}

	switch {
	case !haveStart:
		return 0, 0, fmt.Errorf("%w: no start line", ErrMalformedOutput)
	case !haveEnd:
		return start, 0, fmt.Errorf("%w: no end line", ErrMalformedOutput)
	}

	return start, end, nil
}

func parseReading(line, label string) (uint64, error) {
	text := strings.TrimSpace(strings.TrimPrefix(line, label))

	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: reading %q: %w", ErrMalformedOutput, text, err)
	}

	return v, nil
}
