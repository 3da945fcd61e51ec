package render

import (
	"bufio"
	"io"
	"strconv"

	"github.com/ericlevine/datamatrix/bitutil"
)

// EncodePBM writes bm as a binary Portable Bit Map (P4), for use with
// netpbm.
func EncodePBM(w io.Writer, bm *bitutil.Bitmap, opts *Options) error {
	if bm == nil || opts.scale() < 1 {
		return ErrArgs
	}
	scale := opts.scale()
	b := bufio.NewWriter(w)
	header := "P4\n" + strconv.Itoa(bm.Width()*scale) + " " + strconv.Itoa(bm.Height()*scale) + "\n"
	if _, err := b.WriteString(header); err != nil {
		return err
	}
	err := scaledRows(bm, scale, opts.reverse(), func(row []byte) error {
		_, err := b.Write(row)
		return err
	})
	if err != nil {
		return err
	}
	return b.Flush()
}
