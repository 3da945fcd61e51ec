// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "sync"

// Placement implements the ECC-200 module placement algorithm as defined
// in ISO/IEC 16022, Annex F (and Annex M for the special corner cases).
// It maps every module of the mapping matrix to a codeword bit.
//
// The mapping matrix is the symbol matrix with finder/timing patterns
// stripped away; it contains only data modules. A Placement depends only
// on the matrix size, so one grid serves every symbol of that size.
//
// Cell values: 0 and 1 are fixed modules; any other value v refers to
// bit v%8 (0 is the most significant) of codeword v/8-1.
type Placement struct {
	numRows int
	numCols int
	grid    []int16
}

type placementKey struct {
	rows, cols int
}

var placements sync.Map // placementKey -> *Placement

// PlacementFor returns the placement grid for a mapping matrix of the
// given size. Grids are computed once and shared; concurrent callers may
// compute the same grid but all of them get the one that was stored first.
func PlacementFor(numRows, numCols int) *Placement {
	key := placementKey{numRows, numCols}
	if p, ok := placements.Load(key); ok {
		return p.(*Placement)
	}
	p := &Placement{
		numRows: numRows,
		numCols: numCols,
		grid:    make([]int16, numRows*numCols),
	}
	p.place()
	actual, _ := placements.LoadOrStore(key, p)
	return actual.(*Placement)
}

// NumRows returns the number of rows.
func (p *Placement) NumRows() int { return p.numRows }

// NumCols returns the number of columns.
func (p *Placement) NumCols() int { return p.numCols }

// At returns the cell value at (row, col).
func (p *Placement) At(row, col int) int {
	return int(p.grid[row*p.numCols+col])
}

// Bit returns the module value at (row, col) for the given codewords.
func (p *Placement) Bit(codewords []byte, row, col int) bool {
	z := p.At(row, col)
	if z < 2 {
		return z == 1
	}
	return codewords[z/8-1]&(0x80>>uint(z%8)) != 0
}

// hasBit returns true if the position has been visited.
func (p *Placement) hasBit(row, col int) bool {
	return p.grid[row*p.numCols+col] != 0
}

// place runs the placement algorithm. Codewords are numbered from 1 so
// that every assigned cell is at least 8.
func (p *Placement) place() {
	chr := 1
	row := 4
	col := 0

	for {
		// Check the four corner conditions.
		if row == p.numRows && col == 0 {
			p.corner1(chr)
			chr++
		}
		if row == p.numRows-2 && col == 0 && p.numCols%4 != 0 {
			p.corner2(chr)
			chr++
		}
		if row == p.numRows-2 && col == 0 && p.numCols%8 == 4 {
			p.corner3(chr)
			chr++
		}
		if row == p.numRows+4 && col == 2 && p.numCols%8 == 0 {
			p.corner4(chr)
			chr++
		}

		// Sweep upward-right diagonal.
		for {
			if row < p.numRows && col >= 0 && !p.hasBit(row, col) {
				p.utah(row, col, chr)
				chr++
			}
			row -= 2
			col += 2
			if row < 0 || col >= p.numCols {
				break
			}
		}
		row++
		col += 3

		// Sweep downward-left diagonal.
		for {
			if row >= 0 && col < p.numCols && !p.hasBit(row, col) {
				p.utah(row, col, chr)
				chr++
			}
			row += 2
			col -= 2
			if row >= p.numRows || col < 0 {
				break
			}
		}
		row += 3
		col++

		if row >= p.numRows && col >= p.numCols {
			break
		}
	}

	// Fill the unused corner with a fixed pattern.
	if !p.hasBit(p.numRows-1, p.numCols-1) {
		p.grid[p.numRows*p.numCols-1] = 1
		p.grid[(p.numRows-2)*p.numCols+p.numCols-2] = 1
	}
}

// module assigns a single module, wrapping positions outside the matrix
// boundaries.
func (p *Placement) module(row, col, chr, bit int) {
	if row < 0 {
		row += p.numRows
		col += 4 - ((p.numRows + 4) % 8)
	}
	if col < 0 {
		col += p.numCols
		row += 4 - ((p.numCols + 4) % 8)
	}
	p.grid[row*p.numCols+col] = int16(8*chr + bit)
}

// utah places the 8 modules of a standard Utah-shaped codeword.
// The (row, col) parameters refer to the position of the lower-right
// corner of the nominal L-shaped pattern.
func (p *Placement) utah(row, col, chr int) {
	p.module(row-2, col-2, chr, 0)
	p.module(row-2, col-1, chr, 1)
	p.module(row-1, col-2, chr, 2)
	p.module(row-1, col-1, chr, 3)
	p.module(row-1, col, chr, 4)
	p.module(row, col-2, chr, 5)
	p.module(row, col-1, chr, 6)
	p.module(row, col, chr, 7)
}

// corner1 handles special case 1: the bottom-left corner codeword
// when row==numRows and col==0.
func (p *Placement) corner1(chr int) {
	p.module(p.numRows-1, 0, chr, 0)
	p.module(p.numRows-1, 1, chr, 1)
	p.module(p.numRows-1, 2, chr, 2)
	p.module(0, p.numCols-2, chr, 3)
	p.module(0, p.numCols-1, chr, 4)
	p.module(1, p.numCols-1, chr, 5)
	p.module(2, p.numCols-1, chr, 6)
	p.module(3, p.numCols-1, chr, 7)
}

// corner2 handles special case 2.
func (p *Placement) corner2(chr int) {
	p.module(p.numRows-3, 0, chr, 0)
	p.module(p.numRows-2, 0, chr, 1)
	p.module(p.numRows-1, 0, chr, 2)
	p.module(0, p.numCols-4, chr, 3)
	p.module(0, p.numCols-3, chr, 4)
	p.module(0, p.numCols-2, chr, 5)
	p.module(0, p.numCols-1, chr, 6)
	p.module(1, p.numCols-1, chr, 7)
}

// corner3 handles special case 3.
func (p *Placement) corner3(chr int) {
	p.module(p.numRows-3, 0, chr, 0)
	p.module(p.numRows-2, 0, chr, 1)
	p.module(p.numRows-1, 0, chr, 2)
	p.module(0, p.numCols-2, chr, 3)
	p.module(0, p.numCols-1, chr, 4)
	p.module(1, p.numCols-1, chr, 5)
	p.module(2, p.numCols-1, chr, 6)
	p.module(3, p.numCols-1, chr, 7)
}

// corner4 handles special case 4.
func (p *Placement) corner4(chr int) {
	p.module(p.numRows-1, 0, chr, 0)
	p.module(p.numRows-1, p.numCols-1, chr, 1)
	p.module(0, p.numCols-3, chr, 2)
	p.module(0, p.numCols-2, chr, 3)
	p.module(0, p.numCols-1, chr, 4)
	p.module(1, p.numCols-3, chr, 5)
	p.module(1, p.numCols-2, chr, 6)
	p.module(1, p.numCols-1, chr, 7)
}
