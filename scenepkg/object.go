package scenepkg

import (
	"lumenray/core"
	lmath "lumenray/math"
	"lumenray/shapes"
)

// Object is a shape paired with a material and a self-emission flux
// (zero for non-lights).
type Object struct {
	Shape    shapes.Shape
	Material Material
	Flux     core.Color
}

func NewObject(shape shapes.Shape, material Material, flux core.Color) Object {
	return Object{Shape: shape, Material: material, Flux: flux}
}

// ColorAt resolves the object's surface color at a hit point.
func (o Object) ColorAt(pos lmath.Vector3, uv *[2]float64) core.Color {
	return o.Material.Texture.ColorAt(o.Shape, pos, uv)
}

// IsEmitter reports whether the object can serve as a photon source,
// i.e. its shape implements the Emitter capability and it carries
// non-zero flux.
func (o Object) IsEmitter() bool {
	if o.Flux.L1Norm() == 0 {
		return false
	}
	_, ok := o.Shape.(shapes.Emitter)
	return ok
}
