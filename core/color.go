// Package core holds small value types shared across the renderer
// packages, following the teacher engine's convention of a small core
// package that depends only on math and sits beneath scene/render.
package core

import lmath "lumenray/math"

// Color is an RGB radiance/reflectance triple. It is a thin alias over
// Vector3's arithmetic rather than a distinct struct, since color math in
// a light-transport renderer is ordinary vector math (flux addition,
// componentwise texture modulation, throughput scaling).
type Color = lmath.Vector3

var (
	ColorBlack = Color{X: 0, Y: 0, Z: 0}
	ColorWhite = Color{X: 1, Y: 1, Z: 1}
)

// NewColor builds a Color from RGB components.
func NewColor(r, g, b float64) Color {
	return Color{X: r, Y: g, Z: b}
}
