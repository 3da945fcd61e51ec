// Package datamatrix generates Data Matrix ECC-200 symbols.
//
// Generate turns a byte message into a Symbol: the resolved symbol size,
// the codewords and a packed monochrome bitmap. The render package turns
// the bitmap into image files or terminal text.
package datamatrix

import (
	"image"
	"io"

	"github.com/ericlevine/datamatrix/bitutil"
	"github.com/ericlevine/datamatrix/render"
)

// Symbol is a generated Data Matrix symbol.
type Symbol struct {
	// Height and Width are the symbol size in modules, quiet zone excluded.
	Height, Width int
	// QuietZone is the number of blank modules on every side of Bitmap.
	QuietZone int
	// Mode is the compaction mode that encoded the message.
	Mode Mode
	// DataLength is the number of data codewords before padding.
	DataLength int
	// Codewords holds the padded data and error correction codewords.
	Codewords []byte
	// Bitmap is nil when the symbol was generated with TestOnly.
	Bitmap *bitutil.Bitmap
}

// Black reports whether the module at (x, y) of the bitmap, quiet zone
// included, is black. Coordinates outside the bitmap are white.
func (s *Symbol) Black(x, y int) bool {
	bm := s.Bitmap
	return bm != nil && 0 <= x && x < bm.Width() && 0 <= y && y < bm.Height() && bm.Get(x, y)
}

// Image returns a grayscale image of the symbol with scale pixels per module.
func (s *Symbol) Image(scale int) image.Image {
	if s.Bitmap == nil {
		return nil
	}
	return render.Image(s.Bitmap, &render.Options{Scale: scale})
}

// Write renders the symbol to w in the given format.
func (s *Symbol) Write(w io.Writer, f render.Format, opts *render.Options) error {
	return render.Write(w, s.Bitmap, f, opts)
}
