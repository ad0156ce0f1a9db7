package dmi

import (
	"image"

	"golang.org/x/image/draw"
)

// copyFrame copies sr of src to dp in dst. NRGBA sources are copied row by
// row so that translucent pixels are not premultiplied on the way through.
func copyFrame(dst *image.NRGBA, dp image.Point, src image.Image, sr image.Rectangle) {
	nrgba, ok := src.(*image.NRGBA)
	if !ok {
		draw.Copy(dst, dp, src, sr, draw.Src, nil)
		return
	}
	sr = sr.Intersect(nrgba.Bounds())
	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		s := nrgba.PixOffset(sr.Min.X, y)
		d := dst.PixOffset(dp.X, dp.Y+y-sr.Min.Y)
		copy(dst.Pix[d:d+4*sr.Dx()], nrgba.Pix[s:s+4*sr.Dx()])
	}
}
