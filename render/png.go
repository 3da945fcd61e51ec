package render

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/ericlevine/datamatrix/bitutil"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// EncodePNG writes bm as a 1-bit grayscale PNG.
func EncodePNG(w io.Writer, bm *bitutil.Bitmap, opts *Options) error {
	if bm == nil || opts.scale() < 1 {
		return ErrArgs
	}
	scale := opts.scale()
	width, height := bm.Width()*scale, bm.Height()*scale

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlib.BestCompression)
	if err != nil {
		return err
	}
	// PNG grayscale has 0 for black: invert unless reversed.
	err = scaledRows(bm, scale, !opts.reverse(), func(row []byte) error {
		if _, err := zw.Write([]byte{0}); err != nil { // filter type None
			return err
		}
		_, err := zw.Write(row)
		return err
	})
	if err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

	b := bufio.NewWriter(w)
	if _, err := b.Write(pngSignature); err != nil {
		return err
	}
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(height))
	ihdr[8] = 1 // bit depth
	ihdr[9] = 0 // grayscale
	for _, c := range []struct {
		typ  string
		data []byte
	}{
		{"IHDR", ihdr},
		{"IDAT", idat.Bytes()},
		{"IEND", nil},
	} {
		if err := writeChunk(b, c.typ, c.data); err != nil {
			return err
		}
	}
	return b.Flush()
}

func writeChunk(w io.Writer, typ string, data []byte) error {
	var header [8]byte
	binary.BigEndian.PutUint32(header[:4], uint32(len(data)))
	copy(header[4:], typ)
	crc := crc32.NewIEEE()
	crc.Write(header[4:])
	crc.Write(data)
	var footer [4]byte
	binary.BigEndian.PutUint32(footer[:], crc.Sum32())
	for _, p := range [][]byte{header[:], data, footer[:]} {
		if _, err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}
