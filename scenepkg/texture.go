// Package scenepkg holds the renderer's scene-description domain types:
// textures, materials, objects and the scene itself. Named scenepkg
// (rather than scene) only to avoid colliding with the teacher's
// original scene package during the transformation; it plays the same
// structural role.
package scenepkg

import (
	"lumenray/core"
	lmath "lumenray/math"
	"lumenray/shapes"
)

// TextureKind distinguishes a flat color from an image lookup.
type TextureKind int

const (
	TexturePure TextureKind = iota
	TextureImage
)

// ImageSampler is satisfied by imageio.Image; declared here instead of
// importing imageio directly to keep scenepkg from depending on the
// image codec/texture-loading package it has no other reason to need.
type ImageSampler interface {
	Sample(u, v float64) core.Color
}

// Texture is either a flat color or an image sampled by (u,v), the (u,v)
// itself coming from the hit's intrinsic parametrization when present or
// from the shape's TextureMap otherwise.
type Texture struct {
	Kind  TextureKind
	Pure  core.Color
	Image ImageSampler
}

func NewPureTexture(c core.Color) Texture {
	return Texture{Kind: TexturePure, Pure: c}
}

func NewImageTexture(img ImageSampler) Texture {
	return Texture{Kind: TextureImage, Image: img}
}

// ColorAt resolves the texture at a surface point, given the shape it
// belongs to (for the pos->(u,v) fallback) and an optional intrinsic uv
// from the hit record.
func (t Texture) ColorAt(shape shapes.Shape, pos lmath.Vector3, uv *[2]float64) core.Color {
	if t.Kind == TexturePure {
		return t.Pure
	}
	var u, v float64
	if uv != nil {
		u, v = uv[0], uv[1]
	} else {
		u, v = shape.TextureMap(pos)
	}
	if t.Image == nil {
		return core.ColorBlack
	}
	return t.Image.Sample(u, v)
}
