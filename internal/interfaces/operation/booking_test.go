// Package operation
package operation

import (
	"strings"
	"testing"
)

func TestSeatLabel(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{0, "1A"},
		{1, "1B"},
		{5, "1F"},
		{6, "2A"},
		{11, "2F"},
		{12, "3A"},
		{59, "10F"},
	}
	for _, test := range tests {
		result := SeatLabel(test.index)
		if result != test.expected {
			t.Errorf("SeatLabel(%d) = %q; expected %q", test.index, result, test.expected)
		}
	}
}

func TestGeneratePnr(t *testing.T) {
	for i := 0; i < 100; i++ {
		pnr := GeneratePnr()
		if len(pnr) != PnrLength {
			t.Fatalf("GeneratePnr() = %q; expected length %d", pnr, PnrLength)
		}
		for _, r := range pnr {
			if !strings.ContainsRune(PnrAlphabet, r) {
				t.Fatalf("GeneratePnr() = %q; %q outside alphabet", pnr, r)
			}
		}
	}
}
