package bitutil

import (
	"bytes"
	"strings"
)

// Bitmap is a packed monochrome raster. Rows are stored top to bottom,
// each row starting on a byte boundary. Within a byte the most
// significant bit is the leftmost module. x is the column position, y is
// the row position; the origin is at the top-left.
type Bitmap struct {
	width  int
	height int
	stride int
	data   []byte
}

// NewBitmap creates a cleared Bitmap with the given width and height.
func NewBitmap(width, height int) *Bitmap {
	if width < 1 || height < 1 {
		panic("bitmap: dimensions must be greater than 0")
	}
	stride := (width + 7) / 8
	return &Bitmap{
		width:  width,
		height: height,
		stride: stride,
		data:   make([]byte, stride*height),
	}
}

// ParseStringBitmap creates a Bitmap from a string representation where
// setStr marks a set module, unsetStr a cleared one and rows are separated
// by newlines. It panics on malformed input; it is meant for fixtures.
func ParseStringBitmap(repr, setStr, unsetStr string) *Bitmap {
	var rows [][]bool
	for _, line := range strings.FieldsFunc(repr, func(r rune) bool { return r == '\n' || r == '\r' }) {
		var row []bool
		for pos := 0; pos < len(line); {
			switch {
			case strings.HasPrefix(line[pos:], setStr):
				row = append(row, true)
				pos += len(setStr)
			case strings.HasPrefix(line[pos:], unsetStr):
				row = append(row, false)
				pos += len(unsetStr)
			default:
				panic("bitmap: illegal character encountered")
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			panic("bitmap: row lengths do not match")
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		panic("bitmap: empty representation")
	}
	bm := NewBitmap(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, set := range row {
			if set {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

// Get returns true if the module at (x, y) is set.
func (bm *Bitmap) Get(x, y int) bool {
	return bm.data[y*bm.stride+x/8]&(0x80>>uint(x&7)) != 0
}

// Set sets the module at (x, y).
func (bm *Bitmap) Set(x, y int) {
	bm.data[y*bm.stride+x/8] |= 0x80 >> uint(x&7)
}

// Unset clears the module at (x, y).
func (bm *Bitmap) Unset(x, y int) {
	bm.data[y*bm.stride+x/8] &^= 0x80 >> uint(x&7)
}

// Clear clears all modules.
func (bm *Bitmap) Clear() {
	for i := range bm.data {
		bm.data[i] = 0
	}
}

// SetRegion sets a rectangular region of modules.
func (bm *Bitmap) SetRegion(left, top, width, height int) {
	if top < 0 || left < 0 {
		panic("bitmap: left and top must be nonnegative")
	}
	if height < 1 || width < 1 {
		panic("bitmap: height and width must be at least 1")
	}
	right := left + width
	bottom := top + height
	if bottom > bm.height || right > bm.width {
		panic("bitmap: region must fit inside the bitmap")
	}
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			bm.Set(x, y)
		}
	}
}

// Row returns the packed bytes of row y. The slice aliases the bitmap.
// Bits past Width in the last byte are always zero.
func (bm *Bitmap) Row(y int) []byte {
	return bm.data[y*bm.stride : (y+1)*bm.stride]
}

// Width returns the width in modules.
func (bm *Bitmap) Width() int { return bm.width }

// Height returns the height in modules.
func (bm *Bitmap) Height() int { return bm.height }

// Stride returns the number of bytes per row.
func (bm *Bitmap) Stride() int { return bm.stride }

// Bytes returns the packed rows. The slice aliases the bitmap.
func (bm *Bitmap) Bytes() []byte { return bm.data }

// Clone returns a deep copy.
func (bm *Bitmap) Clone() *Bitmap {
	data := make([]byte, len(bm.data))
	copy(data, bm.data)
	return &Bitmap{width: bm.width, height: bm.height, stride: bm.stride, data: data}
}

// Equal reports whether both bitmaps have the same size and modules.
func (bm *Bitmap) Equal(other *Bitmap) bool {
	if other == nil {
		return false
	}
	return bm.width == other.width && bm.height == other.height &&
		bytes.Equal(bm.data, other.data)
}

// String returns a string representation using "X " for set and "  " for unset.
func (bm *Bitmap) String() string {
	return bm.ToString("X ", "  ")
}

// ToString returns a string representation using the given set/unset strings.
func (bm *Bitmap) ToString(setStr, unsetStr string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width*len(setStr) + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setStr)
			} else {
				sb.WriteString(unsetStr)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
