package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/ericlevine/datamatrix/bitutil"
)

// Image returns a grayscale image of bm with opts.Scale pixels per module.
func Image(bm *bitutil.Bitmap, opts *Options) *image.Gray {
	black, white := color.Gray{0x00}, color.Gray{0xff}
	if opts.reverse() {
		black, white = white, black
	}
	src := image.NewGray(image.Rect(0, 0, bm.Width(), bm.Height()))
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			if bm.Get(x, y) {
				src.SetGray(x, y, black)
			} else {
				src.SetGray(x, y, white)
			}
		}
	}
	scale := opts.scale()
	if scale == 1 {
		return src
	}
	dst := image.NewGray(image.Rect(0, 0, bm.Width()*scale, bm.Height()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
