// Package imageio implements the renderer's output image buffer (a
// row-major float RGB buffer with gamma-encoded byte export) and the
// encode/decode glue around it: PNG/JPEG via the standard image codecs
// (and via github.com/disintegration/imaging for texture loading with
// its flip helpers), plus a small PPM text codec.
package imageio

import (
	stdmath "math"

	"lumenray/core"
)

// Image is a row-major buffer of RGB floats.
type Image struct {
	W, H int
	Data []core.Color
}

// Clone returns an independent copy of the image, used by PPM to seed
// each iteration's output from the fixed direct-lighting image before
// adding that iteration's gathered flux.
func (img *Image) Clone() *Image {
	out := &Image{W: img.W, H: img.H, Data: make([]core.Color, len(img.Data))}
	copy(out.Data, img.Data)
	return out
}

func NewImage(w, h int) *Image {
	return &Image{W: w, H: h, Data: make([]core.Color, w*h)}
}

func (img *Image) index(x, y int) int {
	return y*img.W + x
}

func (img *Image) At(x, y int) core.Color {
	return img.Data[img.index(x, y)]
}

func (img *Image) Set(x, y int, c core.Color) {
	img.Data[img.index(x, y)] = c
}

// Add accumulates into the pixel; used by the PPM renderer's per-
// iteration direct + gathered radiance composition.
func (img *Image) Add(x, y int, c core.Color) {
	i := img.index(x, y)
	img.Data[i] = img.Data[i].Add(c)
}

// FlipH mirrors the image left-right in place.
func (img *Image) FlipH() {
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W/2; x++ {
			i, j := img.index(x, y), img.index(img.W-1-x, y)
			img.Data[i], img.Data[j] = img.Data[j], img.Data[i]
		}
	}
}

// FlipV mirrors the image top-bottom in place.
func (img *Image) FlipV() {
	for y := 0; y < img.H/2; y++ {
		for x := 0; x < img.W; x++ {
			i, j := img.index(x, y), img.index(x, img.H-1-y)
			img.Data[i], img.Data[j] = img.Data[j], img.Data[i]
		}
	}
}

// Sample looks up the nearest texel for normalized (u,v) in [0,1],
// wrapping out-of-range coordinates — the cheap, teacher-style texture
// fetch (no mip chain, no bilinear filtering) appropriate for a CPU
// path tracer that already jitters every primary ray.
func (img *Image) Sample(u, v float64) core.Color {
	u = wrap01(u)
	v = wrap01(v)
	x := int(u * float64(img.W))
	y := int(v * float64(img.H))
	if x >= img.W {
		x = img.W - 1
	}
	if y >= img.H {
		y = img.H - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return img.At(x, y)
}

func wrap01(x float64) float64 {
	x = stdmath.Mod(x, 1)
	if x < 0 {
		x += 1
	}
	return x
}

// EncodeByte gamma-encodes a clamped-[0,1] channel value: x^(1/2.2)*255
// + 0.5, truncated to a byte.
func EncodeByte(x float64) byte {
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	return byte(stdmath.Pow(x, 1/2.2)*255 + 0.5)
}
