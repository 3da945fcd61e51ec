// Package render writes symbol bitmaps as images or text.
//
// Set modules are drawn black. PNG and PBM are written directly from the
// packed rows; BMP and TIFF go through an *image.Gray.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ericlevine/datamatrix/bitutil"
)

// ErrArgs is returned for a nil bitmap or an invalid scale.
var ErrArgs = errors.New("render: invalid arguments")

// Format is an output format.
type Format int

const (
	PNG Format = iota
	PBM
	BMP
	TIFF
	UTF8
	ASCII
)

var formatNames = [...]string{
	PNG:   "png",
	PBM:   "pbm",
	BMP:   "bmp",
	TIFF:  "tiff",
	UTF8:  "utf8",
	ASCII: "ascii",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Formats returns the names accepted by ParseFormat.
func Formats() []string {
	return append([]string(nil), formatNames[:]...)
}

// ParseFormat returns the format with the given case-insensitive name.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(name)
	if name == "tif" {
		return TIFF, nil
	}
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("render: unknown format %q", name)
}

// Options controls rendering.
type Options struct {
	// Scale is the number of image pixels per module. Zero means 1.
	// Text formats ignore it.
	Scale int
	// Reverse swaps black and white.
	Reverse bool
}

func (o *Options) scale() int {
	if o == nil || o.Scale == 0 {
		return 1
	}
	return o.Scale
}

func (o *Options) reverse() bool {
	return o != nil && o.Reverse
}

// Write renders bm to w in format f. opts may be nil.
func Write(w io.Writer, bm *bitutil.Bitmap, f Format, opts *Options) error {
	if bm == nil || opts.scale() < 1 {
		return ErrArgs
	}
	switch f {
	case PNG:
		return EncodePNG(w, bm, opts)
	case PBM:
		return EncodePBM(w, bm, opts)
	case BMP:
		return bmp.Encode(w, Image(bm, opts))
	case TIFF:
		return tiff.Encode(w, Image(bm, opts), &tiff.Options{Compression: tiff.Deflate})
	case UTF8:
		return EncodeUTF8(w, bm, opts)
	case ASCII:
		return EncodeASCII(w, bm, opts)
	}
	return fmt.Errorf("render: unknown format %v", f)
}

// scaledRows calls fn with every output row, packed one bit per pixel,
// MSB first, set bits black. The row slice is reused between calls.
func scaledRows(bm *bitutil.Bitmap, scale int, reverse bool, fn func(row []byte) error) error {
	width := bm.Width() * scale
	row := make([]byte, (width+7)/8)
	var white byte
	if reverse {
		white = 0xff
	}
	for y := 0; y < bm.Height(); y++ {
		if scale == 1 {
			copy(row, bm.Row(y))
		} else {
			for i := range row {
				row[i] = 0
			}
			for x := 0; x < bm.Width(); x++ {
				if !bm.Get(x, y) {
					continue
				}
				for px := x * scale; px < (x+1)*scale; px++ {
					row[px/8] |= 0x80 >> uint(px&7)
				}
			}
		}
		if white != 0 {
			for i := range row {
				row[i] ^= white
			}
		}
		for i := 0; i < scale; i++ {
			if err := fn(row); err != nil {
				return err
			}
		}
	}
	return nil
}
