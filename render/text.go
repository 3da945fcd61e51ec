package render

import (
	"bufio"
	"io"

	"github.com/ericlevine/datamatrix/bitutil"
)

// halfBlocks is indexed by top | bottom<<1.
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// EncodeUTF8 draws bm with Unicode half blocks, two rows per line.
func EncodeUTF8(w io.Writer, bm *bitutil.Bitmap, opts *Options) error {
	if bm == nil {
		return ErrArgs
	}
	rev := opts.reverse()
	b := bufio.NewWriter(w)
	for y := 0; y < bm.Height(); y += 2 {
		for x := 0; x < bm.Width(); x++ {
			top := bm.Get(x, y) != rev
			bottom := false
			if y+1 < bm.Height() {
				bottom = bm.Get(x, y+1) != rev
			}
			i := 0
			if top {
				i |= 1
			}
			if bottom {
				i |= 2
			}
			b.WriteString(halfBlocks[i])
		}
		b.WriteByte('\n')
	}
	return b.Flush()
}

// EncodeASCII draws bm with two '#' per set module.
func EncodeASCII(w io.Writer, bm *bitutil.Bitmap, opts *Options) error {
	if bm == nil {
		return ErrArgs
	}
	set, unset := "##", "  "
	if opts.reverse() {
		set, unset = unset, set
	}
	_, err := io.WriteString(w, bm.ToString(set, unset))
	return err
}
