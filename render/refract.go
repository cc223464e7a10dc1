// Package render implements the two light-transport estimators that
// share the scene-intersection and sampling substrate built by the
// math, shapes, kdtree, scenepkg and camera packages: the unbiased path
// tracer (PT) and the stochastic progressive photon mapper (PPM).
package render

import (
	stdmath "math"
	"os"

	lmath "lumenray/math"
)

// EPS is the t_min every primary and secondary ray is traced with, the
// same epsilon value used throughout the shape intersection layer to
// push the next ray origin off the surface it just left.
const EPS = 1e-4

// iorStack is the refraction nesting stack from spec §4.8
// and §9: push on entering a refractive medium, pop on exiting, with
// the environment's index of refraction always at the bottom. It is
// represented as a plain slice and copied (not mutated in place) at each
// bounce, since every recursive path/photon call needs its own view of
// the medium nesting along its own branch.
type iorStack []float64

func newIORStack(envN float64) iorStack {
	return iorStack{envN}
}

func (s iorStack) top() float64 {
	return s[len(s)-1]
}

// resolve returns the (n1, n2) pair for a refraction event: n1 is
// always the current top of the stack. When entering a new medium
// (inside == false) n2 is the surface's own index of refraction. When
// exiting (inside == true) n2 should be the medium one level further
// out, i.e. the stack entry just below the top — unless the stack holds
// only the environment sentinel, in which case the ray is exiting a
// medium it was never recorded as entering (spec §7's StackUnderflow: a
// light source embedded in glass, or inconsistent nested geometry). That
// case is not recoverable from the stack itself, so it logs a warning
// and substitutes the documented fallback pair (1.0, 1.1) rather than
// aborting the render.
func (s iorStack) resolve(inside bool, nt float64) (n1, n2 float64, next iorStack) {
	n1 = s.top()
	if !inside {
		next = append(append(iorStack{}, s...), nt)
		return n1, nt, next
	}
	if len(s) < 2 {
		warnStackUnderflow()
		return 1.0, 1.1, iorStack{1.0, 1.1}
	}
	next = append(iorStack{}, s[:len(s)-1]...)
	return n1, next.top(), next
}

var warnedUnderflow bool

// warnStackUnderflow logs the StackUnderflow recovery path once per
// process run — per-ray numeric issues never abort rendering (spec §7),
// but a flood of identical warnings per sample is not useful either.
func warnStackUnderflow() {
	if warnedUnderflow {
		return
	}
	warnedUnderflow = true
	os.Stderr.WriteString("render: refraction stack underflow (ray exited a medium it never recorded entering); continuing with n=(1.0, 1.1)\n")
}

// fresnel computes the refracted direction (if any) and the Schlick
// reflectance R for an incident direction d against
// a normal n oriented toward the ray origin, given the incident/
// transmitted indices of refraction n1/n2. ok is false on total internal
// reflection, per spec §4.8: Delta = n2^2 - n1^2*(1-(d.n)^2) <= 0.
func fresnel(d, n lmath.Vector3, n1, n2 float64) (refractDir lmath.Vector3, R float64, ok bool) {
	dn := d.Dot(n)
	delta := n2*n2 - n1*n1*(1-dn*dn)
	if delta <= 0 {
		return lmath.Vector3{}, 1, false
	}
	refractDir = d.Sub(n.Scale(dn)).Scale(n1 / n2).Sub(n.Scale(stdmath.Sqrt(delta) / n2)).Normalize()

	r0 := (n2 - n1) / (n2 + n1)
	r0 *= r0
	var c float64
	if n1 <= n2 {
		c = stdmath.Abs(dn)
	} else {
		c = stdmath.Abs(refractDir.Dot(n))
	}
	R = r0 + (1-r0)*stdmath.Pow(1-c, 5)
	return refractDir, R, true
}
