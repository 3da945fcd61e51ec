package encoder

import (
	"errors"
	"testing"

	"github.com/ericlevine/datamatrix/reedsolomon"
)

func TestSymbolCatalog(t *testing.T) {
	all := Symbols()
	if len(all) != 30 {
		t.Fatalf("%d symbols, want 30", len(all))
	}
	for i := range all {
		si := &all[i]
		if i > 0 && si.DataCapacity < all[i-1].DataCapacity {
			t.Errorf("%v: capacity %d out of order", si, si.DataCapacity)
		}
		if si.Height%si.HeightSection != 0 || si.Width%si.WidthSection != 0 {
			t.Errorf("%v: sections %dx%d do not tile", si, si.HeightSection, si.WidthSection)
		}
		if _, ok := reedsolomon.Generator(si.ErrorBlock); !ok {
			t.Errorf("%v: no generator for %d", si, si.ErrorBlock)
		}
		// The mapping matrix holds every codeword, with at most four
		// modules left over for the corner pattern.
		modules := si.MappingMatrixRows() * si.MappingMatrixColumns()
		if spare := modules - 8*si.TotalCodewords(); spare < 0 || spare > 4 {
			t.Errorf("%v: %d modules for %d codewords", si, modules, si.TotalCodewords())
		}
	}
}

func TestInterleavedBlockCount(t *testing.T) {
	tests := []struct {
		height, width, blocks int
	}{
		{10, 10, 1},
		{48, 48, 1},
		{52, 52, 2},
		{64, 64, 2},
		{72, 72, 4},
		{96, 96, 4},
		{104, 104, 6},
		{120, 120, 6},
		{132, 132, 8},
		{144, 144, 10},
	}
	for _, tc := range tests {
		si, err := LookupBySize(tc.height, tc.width)
		if err != nil {
			t.Fatal(err)
		}
		if got := si.InterleavedBlockCount(); got != tc.blocks {
			t.Errorf("%v: %d blocks, want %d", si, got, tc.blocks)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		n             int
		height, width int
	}{
		{0, 10, 10},
		{3, 10, 10},
		{4, 12, 12},
		{5, 12, 12},
		{9, 8, 32},
		{10, 8, 32},
		{1558, 144, 144},
	}
	for _, tc := range tests {
		si, err := Lookup(tc.n)
		if err != nil {
			t.Errorf("Lookup(%d): %v", tc.n, err)
			continue
		}
		if si.Height != tc.height || si.Width != tc.width {
			t.Errorf("Lookup(%d) = %v, want %dx%d", tc.n, si, tc.height, tc.width)
		}
	}
	if _, err := Lookup(1559); !errors.Is(err, ErrTextTooBig) {
		t.Errorf("err = %v, want ErrTextTooBig", err)
	}
}

func TestLookupBySize(t *testing.T) {
	si, err := LookupBySize(8, 18)
	if err != nil {
		t.Fatal(err)
	}
	if si.DataCapacity != 5 || si.Square() {
		t.Errorf("8x18: %+v", si)
	}
	for _, size := range [][2]int{{11, 11}, {18, 8}, {0, 10}} {
		if _, err := LookupBySize(size[0], size[1]); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("%v: err = %v, want ErrInvalidSquare", size, err)
		}
	}
}
