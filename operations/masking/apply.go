package masking

import (
	"image"

	"gitgub.com/cam-per/hypnagogic/dmi"
)

// maskState splits every frame of base using the frame at the same position
// in mask.
func maskState(base, mask *dmi.State) (masked, unmasked []*image.NRGBA) {
	n := min(len(base.Images), len(mask.Images))
	masked = make([]*image.NRGBA, 0, n)
	unmasked = make([]*image.NRGBA, 0, n)
	for i := 0; i < n; i++ {
		m, u := MaskFrame(base.Images[i], mask.Images[i])
		masked = append(masked, m)
		unmasked = append(unmasked, u)
	}
	return masked, unmasked
}

// MaskFrame returns two copies of base. masked has every pixel cleared where
// mask is not fully transparent, unmasked has every other pixel cleared.
// Pixels outside mask's bounds count as transparent.
func MaskFrame(base, mask *image.NRGBA) (masked, unmasked *image.NRGBA) {
	masked = dmi.CloneFrame(base)
	unmasked = dmi.CloneFrame(base)

	bounds := base.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			target := unmasked
			if alphaAt(mask, x, y) != 0 {
				target = masked
			}
			i := target.PixOffset(x, y)
			clear(target.Pix[i : i+4])
		}
	}
	return masked, unmasked
}

func alphaAt(img *image.NRGBA, x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return 0
	}
	return img.Pix[img.PixOffset(x, y)+3]
}
