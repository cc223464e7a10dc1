package math

import stdmath "math"

// Pi, Inf and Eps are shared across the shape intersection and Bezier
// solver code; Eps matches the original implementation's tolerance for
// "effectively zero" denominators.
const (
	Pi  = stdmath.Pi
	Inf = 1e30
	Eps = 1e-8
)

func cos(x float64) float64 { return stdmath.Cos(x) }
func sin(x float64) float64 { return stdmath.Sin(x) }
func sqrt(x float64) float64 { return stdmath.Sqrt(x) }
func abs(x float64) float64 { return stdmath.Abs(x) }
