package imageio

import (
	"fmt"
	stdmath "math"

	"github.com/disintegration/imaging"

	"lumenray/core"
)

// LoadTexture decodes an image file into an *Image usable as a
// scenepkg.Texture's ImageSampler, applying the task descriptor's lr/ud
// flip flags (spec §6) with the ecosystem's own flip helpers rather than
// a hand-rolled loop, since imaging.Open already decodes PNG/JPEG in one
// call.
func LoadTexture(path string, flipLR, flipUD bool) (*Image, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading texture %s: %w", path, err)
	}
	if flipLR {
		src = imaging.FlipH(src)
	}
	if flipUD {
		src = imaging.FlipV(src)
	}

	bounds := src.Bounds()
	img := NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			img.Set(x, y, core.NewColor(srgbToLinear(r), srgbToLinear(g), srgbToLinear(b)))
		}
	}
	return img, nil
}

// srgbToLinear converts a 16-bit-scaled color.RGBA channel (as returned
// by image/color's RGBA()) back to a [0,1] float, undoing the gamma
// encoding textures are normally stored with so that EncodeByte's own
// 2.2 gamma on output composes correctly.
func srgbToLinear(c uint32) float64 {
	return stdmath.Pow(float64(c)/65535, 2.2)
}
