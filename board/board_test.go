package board

import (
	"math"
	"testing"
)

func TestWidth(t *testing.T) {
	if got := Width[uint32](); got != 32 {
		t.Errorf("Width[uint32] = %d, want 32", got)
	}
	if got := Width[uint64](); got != 64 {
		t.Errorf("Width[uint64] = %d, want 64", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(uint32(math.MaxUint32)); got != "4294967295" {
		t.Errorf("Format(MaxUint32) = %q", got)
	}
	if got := Format(uint64(math.MaxUint64)); got != "18446744073709551615" {
		t.Errorf("Format(MaxUint64) = %q", got)
	}
}

func TestElapsed(t *testing.T) {
	tests := []struct {
		name        string
		start, end  uint64
		width       int
		wantCycles  uint64
		wantWrapped bool
	}{
		{"no wrap 32", 100, 250, 32, 150, false},
		{"no wrap 64", 100, 250, 64, 150, false},
		{"equal", 7, 7, 32, 0, false},
		{"wrap 32", math.MaxUint32 - 9, 5, 32, 15, true},
		{"wrap 64", math.MaxUint64 - 9, 5, 64, 15, true},
		{"bits above width ignored", 1<<32 | 10, 20, 32, 10, false},
	}

	for _, tt := range tests {
		cycles, wrapped := Elapsed(tt.start, tt.end, tt.width)
		if cycles != tt.wantCycles || wrapped != tt.wantWrapped {
			t.Errorf("%s: Elapsed = (%d, %v), want (%d, %v)",
				tt.name, cycles, wrapped, tt.wantCycles, tt.wantWrapped)
		}
	}
}
