// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package encoder implements Data Matrix (ECC-200) barcode encoding.
package encoder

import (
	"fmt"

	"github.com/ericlevine/datamatrix/bitutil"
)

// Options controls Encode. The zero value selects the mode and the symbol
// size automatically, adds no quiet zone and treats the whole input as
// message data.
type Options struct {
	// Mode forces a compaction mode. ModeAuto picks one.
	Mode Mode
	// Height and Width request a symbol size. Both must be set for the
	// request to take effect and must name a catalog symbol.
	Height, Width int
	// QuietZone is the number of blank modules around the symbol.
	QuietZone int
	// Extension parses leading extension directives, up to and including
	// the first '.'.
	Extension bool
	// TestOnly runs every step except rasterization.
	TestOnly bool
}

// Result is an encoded symbol.
type Result struct {
	Symbol *SymbolInfo
	// Mode is the compaction mode that produced the data codewords.
	Mode Mode
	// DataLength is the number of codewords before padding, extension
	// codewords included.
	DataLength int
	// Codewords holds the padded data followed by the interleaved error
	// correction codewords.
	Codewords []byte
	// Bitmap is the rasterized symbol framed by the quiet zone. It is nil
	// for TestOnly encodes.
	Bitmap *bitutil.Bitmap
}

// Encode encodes text into a Data Matrix ECC-200 symbol. text is taken as
// one byte per character; converting from other encodings is up to the
// caller. No partial result is returned on error.
func Encode(text []byte, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, opts.Mode)
	}
	if opts.QuietZone < 0 {
		return nil, fmt.Errorf("datamatrix/encoder: negative quiet zone %d", opts.QuietZone)
	}

	// Step 1: Resolve an explicit symbol size.
	var symbolInfo *SymbolInfo
	if opts.Height != 0 && opts.Width != 0 {
		si, err := LookupBySize(opts.Height, opts.Width)
		if err != nil {
			return nil, err
		}
		symbolInfo = si
	}

	// Step 2: Extension directives become a codeword prefix.
	var prefix []byte
	if opts.Extension {
		ext, consumed, err := ParseExtensions(text)
		if err != nil {
			return nil, err
		}
		prefix = ext
		text = text[consumed:]
	}

	// Step 3: High-level encode, then pick the symbol size.
	var (
		encoded []byte
		mode    Mode
		err     error
	)
	if symbolInfo != nil {
		encoded, mode, err = EncodeFirstFit(text, prefix, opts.Mode, symbolInfo.DataCapacity)
		if err != nil {
			return nil, fmt.Errorf("%w for a %v symbol", err, symbolInfo)
		}
	} else {
		encoded, mode, err = EncodeHighLevel(text, prefix, opts.Mode, Largest().DataCapacity)
		if err != nil {
			return nil, err
		}
		if symbolInfo, err = Lookup(len(encoded)); err != nil {
			return nil, err
		}
	}

	// Step 4: Pad codewords to fill the data capacity.
	codewords := PadCodewords(encoded, symbolInfo.DataCapacity)

	// Step 5: Generate error correction codewords.
	fullCodewords, err := EncodeECC200(codewords, symbolInfo)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Symbol:     symbolInfo,
		Mode:       mode,
		DataLength: len(encoded),
		Codewords:  fullCodewords,
	}
	if opts.TestOnly {
		return result, nil
	}

	// Step 6: Place the codewords and draw the symbol.
	placement := PlacementFor(symbolInfo.MappingMatrixRows(), symbolInfo.MappingMatrixColumns())
	result.Bitmap = encodeLowLevel(placement, fullCodewords, symbolInfo, opts.QuietZone)
	return result, nil
}

// encodeLowLevel draws the symbol into a bitmap framed by ws blank modules.
// Each data region gets a dotted row on top, a solid row at the bottom, a
// solid column on the left and a dotted column on the right.
func encodeLowLevel(placement *Placement, codewords []byte, symbolInfo *SymbolInfo, ws int) *bitutil.Bitmap {
	height := symbolInfo.Height
	width := symbolInfo.Width
	hs := symbolInfo.HeightSection
	wsec := symbolInfo.WidthSection

	matrix := bitutil.NewBitmap(width+2*ws, height+2*ws)

	// Top rows of every region: alternating, starting set.
	for y := 0; y < height; y += hs {
		for x := 0; x < width; x += 2 {
			matrix.Set(ws+x, ws+y)
		}
	}
	// Bottom rows: solid.
	for y := hs - 1; y < height; y += hs {
		matrix.SetRegion(ws, ws+y, width, 1)
	}
	// Left columns: solid.
	for x := 0; x < width; x += wsec {
		matrix.SetRegion(ws+x, ws, 1, height)
	}
	// Right columns: alternating, starting unset.
	for x := wsec - 1; x < width; x += wsec {
		for y := 1; y < height; y += 2 {
			matrix.Set(ws+x, ws+y)
		}
	}

	// Data modules, region by region in raster order.
	row := 0
	for ys := 0; ys < height; ys += hs {
		for y := 1; y < hs-1; y++ {
			col := 0
			for xs := 0; xs < width; xs += wsec {
				for x := 1; x < wsec-1; x++ {
					if placement.Bit(codewords, row, col) {
						matrix.Set(ws+xs+x, ws+ys+y)
					}
					col++
				}
			}
			row++
		}
	}
	return matrix
}
