// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "fmt"

// SymbolInfo describes a single Data Matrix ECC-200 symbol size.
type SymbolInfo struct {
	Height        int // symbol height in modules, finder patterns included
	Width         int // symbol width in modules, finder patterns included
	HeightSection int // height of one data region plus its two pattern rows
	WidthSection  int // width of one data region plus its two pattern columns
	DataCapacity  int // data codewords, summed over all blocks
	DataBlock     int // data codewords per interleaved block
	ErrorBlock    int // error correction codewords per interleaved block
}

// Square reports whether the symbol is square.
func (si *SymbolInfo) Square() bool {
	return si.Height == si.Width
}

// InterleavedBlockCount returns the number of interleaved RS blocks.
// The two largest symbols hold two data codewords fewer than
// blocks*DataBlock; integer division absorbs them.
func (si *SymbolInfo) InterleavedBlockCount() int {
	return (si.DataCapacity + 2) / si.DataBlock
}

// ErrorCodewords returns the total number of error correction codewords.
func (si *SymbolInfo) ErrorCodewords() int {
	return si.InterleavedBlockCount() * si.ErrorBlock
}

// TotalCodewords returns data + error correction codewords.
func (si *SymbolInfo) TotalCodewords() int {
	return si.DataCapacity + si.ErrorCodewords()
}

// MappingMatrixRows returns the number of rows in the mapping matrix
// (symbol rows minus the two pattern rows of every data region).
func (si *SymbolInfo) MappingMatrixRows() int {
	return si.Height - si.Height/si.HeightSection*2
}

// MappingMatrixColumns returns the number of columns in the mapping matrix.
func (si *SymbolInfo) MappingMatrixColumns() int {
	return si.Width - si.Width/si.WidthSection*2
}

func (si *SymbolInfo) String() string {
	return fmt.Sprintf("%dx%d", si.Height, si.Width)
}

// symbols is the full list of ECC-200 symbol sizes ordered by data capacity.
// Derived from ISO/IEC 16022 Table 7.
var symbols = []SymbolInfo{
	// {Height, Width, HeightSection, WidthSection, DataCapacity, DataBlock, ErrorBlock}
	{10, 10, 10, 10, 3, 3, 5},
	{12, 12, 12, 12, 5, 5, 7},
	{8, 18, 8, 18, 5, 5, 7},
	{14, 14, 14, 14, 8, 8, 10},
	{8, 32, 8, 16, 10, 10, 11},
	{16, 16, 16, 16, 12, 12, 12},
	{12, 26, 12, 26, 16, 16, 14},
	{18, 18, 18, 18, 18, 18, 14},
	{20, 20, 20, 20, 22, 22, 18},
	{12, 36, 12, 18, 22, 22, 18},
	{22, 22, 22, 22, 30, 30, 20},
	{16, 36, 16, 18, 32, 32, 24},
	{24, 24, 24, 24, 36, 36, 24},
	{26, 26, 26, 26, 44, 44, 28},
	{16, 48, 16, 24, 49, 49, 28},
	{32, 32, 16, 16, 62, 62, 36},
	{36, 36, 18, 18, 86, 86, 42},
	{40, 40, 20, 20, 114, 114, 48},
	{44, 44, 22, 22, 144, 144, 56},
	{48, 48, 24, 24, 174, 174, 68},
	{52, 52, 26, 26, 204, 102, 42},
	{64, 64, 16, 16, 280, 140, 56},
	{72, 72, 18, 18, 368, 92, 36},
	{80, 80, 20, 20, 456, 114, 48},
	{88, 88, 22, 22, 576, 144, 56},
	{96, 96, 24, 24, 696, 174, 68},
	{104, 104, 26, 26, 816, 136, 56},
	{120, 120, 20, 20, 1050, 175, 68},
	{132, 132, 22, 22, 1304, 163, 62},
	{144, 144, 24, 24, 1558, 156, 62},
}

// Symbols returns a copy of the catalog in ascending capacity order.
func Symbols() []SymbolInfo {
	return append([]SymbolInfo(nil), symbols...)
}

// Largest returns the symbol with the highest data capacity.
func Largest() *SymbolInfo {
	return &symbols[len(symbols)-1]
}

// Lookup finds the smallest symbol that can hold the given number of data codewords.
func Lookup(dataCodewords int) (*SymbolInfo, error) {
	for i := range symbols {
		si := &symbols[i]
		if si.DataCapacity >= dataCodewords {
			return si, nil
		}
	}
	return nil, fmt.Errorf("%w: no symbol holds %d data codewords", ErrTextTooBig, dataCodewords)
}

// LookupBySize returns the SymbolInfo for a specific symbol size.
func LookupBySize(height, width int) (*SymbolInfo, error) {
	for i := range symbols {
		si := &symbols[i]
		if si.Height == height && si.Width == width {
			return si, nil
		}
	}
	return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSquare, height, width)
}
