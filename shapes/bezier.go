package shapes

import (
	stdmath "math"

	lmath "lumenray/math"
)

// bezierPoly holds the monomial-form coefficients of a single Bezier
// coordinate (x(t) or y(t)) converted once from its Bernstein control
// points, so every intersection evaluates with Horner's method instead
// of re-expanding binomial terms per ray.
type bezierPoly struct {
	coeffs []float64 // coeffs[i] is the t^i coefficient, i = 0..degree
}

// bernsteinToMonomial converts n+1 control-point values (one coordinate
// of each control point) into monomial coefficients using the standard
// Bernstein->power-basis identity
//
//	a_i = sum_{j=0}^{i} (-1)^(i-j) C(n,i) C(i,j) P_j
func bernsteinToMonomial(p []float64) bezierPoly {
	n := len(p) - 1
	coeffs := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		var sum float64
		cni := binomial(n, i)
		for j := 0; j <= i; j++ {
			sign := 1.0
			if (i-j)%2 != 0 {
				sign = -1
			}
			sum += sign * cni * binomial(i, j) * p[j]
		}
		coeffs[i] = sum
	}
	return bezierPoly{coeffs: coeffs}
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return result
}

func (b bezierPoly) eval(t float64) float64 {
	result := 0.0
	for i := len(b.coeffs) - 1; i >= 0; i-- {
		result = result*t + b.coeffs[i]
	}
	return result
}

func (b bezierPoly) derivative() bezierPoly {
	if len(b.coeffs) <= 1 {
		return bezierPoly{coeffs: []float64{0}}
	}
	d := make([]float64, len(b.coeffs)-1)
	for i := range d {
		d[i] = float64(i+1) * b.coeffs[i+1]
	}
	return bezierPoly{coeffs: d}
}

// BezierCurve is a planar curve (x(t), y(t)), t in [0,1].
type BezierCurve struct {
	x, y   bezierPoly
	dx, dy bezierPoly
	degree int
}

// NewBezierCurve builds the curve from 2D control points in the order
// they're given in the task descriptor.
func NewBezierCurve(points [][2]float64) BezierCurve {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p[0]
		ys[i] = p[1]
	}
	x := bernsteinToMonomial(xs)
	y := bernsteinToMonomial(ys)
	return BezierCurve{x: x, y: y, dx: x.derivative(), dy: y.derivative(), degree: len(points) - 1}
}

func (c BezierCurve) Eval(t float64) (x, y float64) {
	return c.x.eval(t), c.y.eval(t)
}

func (c BezierCurve) Deriv(t float64) (dx, dy float64) {
	return c.dx.eval(t), c.dy.eval(t)
}

// BezierRotate is a BezierCurve revolved about the y axis and translated
// by Shift.
type BezierRotate struct {
	Curve  BezierCurve
	Shift  lmath.Vector3
	bounds lmath.AABB
}

// NewBezierRotate builds the revolved surface and its bounding box, the
// latter by sampling the curve and sweeping the resulting disk radius
// through a full revolution.
func NewBezierRotate(points [][2]float64, shift lmath.Vector3) BezierRotate {
	curve := NewBezierCurve(points)
	const samples = 256
	b := lmath.EmptyAABB()
	for i := 0; i <= samples; i++ {
		t := float64(i) / samples
		x, y := curve.Eval(t)
		r := stdmath.Abs(x)
		b = b.Extend(lmath.Vector3{X: r, Y: y, Z: r})
		b = b.Extend(lmath.Vector3{X: -r, Y: y, Z: -r})
	}
	b = lmath.AABB{Min: b.Min.Add(shift), Max: b.Max.Add(shift)}
	return BezierRotate{Curve: curve, Shift: shift, bounds: b}
}

func (br BezierRotate) Bounds() lmath.AABB {
	return br.bounds
}

// surfaceFunc evaluates f(t) = a*y(t)^2 + b*y(t) + c + w*x(t)^2 and its
// derivative with respect to t, for the implicit equation obtained by
// eliminating the revolution angle theta from the ray/surface system.
func (br BezierRotate) surfaceFunc(op lmath.Vector3, d lmath.Vector3) (f, fPrime func(t float64) float64) {
	a := d.X*d.X + d.Z*d.Z
	t1 := op.X*d.Y - op.Y*d.X
	t2 := op.Z*d.Y - op.Y*d.Z
	b := 2 * (t1*d.X + t2*d.Z)
	c := t1*t1 + t2*t2
	w := -d.Y * d.Y

	f = func(t float64) float64 {
		x, y := br.Curve.Eval(t)
		return a*y*y + b*y + c + w*x*x
	}
	fPrime = func(t float64) float64 {
		x, y := br.Curve.Eval(t)
		dx, dy := br.Curve.Deriv(t)
		return 2*a*y*dy + b*dy + 2*w*x*dx
	}
	return
}

// Hit solves the revolved-surface intersection by damped Newton's method
// from n+1 evenly spaced seeds, keeping the smallest valid ray parameter
// across all seeds that converge inside [0,1].
func (br BezierRotate) Hit(r lmath.Ray, tMin float64) (HitTemp, bool) {
	if _, _, ok := br.bounds.Intersect(r); !ok {
		return HitTemp{}, false
	}
	op := r.Origin.Sub(br.Shift)
	d := r.Direction
	f, fPrime := br.surfaceFunc(op, d)

	bestK := lmath.Inf
	bestT := -1.0
	found := false

	n := br.Curve.degree
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		seed := float64(i) / float64(n)
		t, ok := newtonSolve(f, fPrime, seed)
		if !ok {
			continue
		}
		k, ok := br.recoverK(op, d, t)
		if !ok || k <= tMin || k >= bestK {
			continue
		}
		bestK = k
		bestT = t
		found = true
	}
	if !found {
		return HitTemp{}, false
	}
	normal, uv := br.normalAndUV(op, d, bestT, bestK)
	return HitTemp{T: bestK, Normal: normal, UV: &uv}, true
}

// newtonSolve runs damped Newton's method with backtracking line search:
// the step length lambda starts at 1 and is repeatedly scaled by a
// weight (0.9 near the curve's endpoints, 0.5 in the interior) until a
// step both reduces |f| and stays inside [0,1], giving up once lambda
// falls below 1e-5. Convergence is |f(t)| < 1e-10.
func newtonSolve(f, fPrime func(float64) float64, seed float64) (float64, bool) {
	t := seed
	for iter := 0; iter < 20; iter++ {
		ft := f(t)
		if stdmath.Abs(ft) < 1e-10 {
			return t, true
		}
		fp := fPrime(t)
		if fp == 0 {
			return 0, false
		}
		step := ft / fp
		lambda := 1.0
		weight := 0.5
		if t < 0.1 || t > 0.9 {
			weight = 0.9
		}
		stepped := false
		for lambda >= 1e-5 {
			tNew := t - lambda*step
			if tNew >= 0 && tNew <= 1 && stdmath.Abs(f(tNew)) < stdmath.Abs(ft) {
				t = tNew
				stepped = true
				break
			}
			lambda *= weight
		}
		if !stepped {
			return 0, false
		}
	}
	if stdmath.Abs(f(t)) < 1e-10 {
		return t, true
	}
	return 0, false
}

// recoverK solves for the ray parameter k given a root t of the implicit
// equation: from the y-component of the ray/surface equation when d.Y is
// non-degenerate, otherwise from the quadratic obtained by substituting
// x(t)^2 back into the eliminated x/z equations.
func (br BezierRotate) recoverK(op, d lmath.Vector3, t float64) (float64, bool) {
	_, y := br.Curve.Eval(t)
	if stdmath.Abs(d.Y) > lmath.Eps {
		return (y - op.Y) / d.Y, true
	}
	x, _ := br.Curve.Eval(t)
	a := d.X*d.X + d.Z*d.Z
	bb := 2 * (op.X*d.X + op.Z*d.Z)
	cc := op.X*op.X + op.Z*op.Z - x*x
	if a == 0 {
		return 0, false
	}
	disc := bb*bb - 4*a*cc
	if disc < 0 {
		return 0, false
	}
	sq := stdmath.Sqrt(disc)
	k1 := (-bb - sq) / (2 * a)
	k2 := (-bb + sq) / (2 * a)
	switch {
	case k1 > 0 && (k2 <= 0 || k1 < k2):
		return k1, true
	case k2 > 0:
		return k2, true
	default:
		return 0, false
	}
}

// normalAndUV recovers the revolution angle theta from the hit's x/z
// components, builds the 3D surface normal from the curve's 2D tangent
// rotated back by theta, and reports the (theta, t) parametrization. The
// pole (x(t) == 0) has no defined theta, so the normal degenerates to a
// vertical vector signed by which half of the curve it came from.
func (br BezierRotate) normalAndUV(op, d lmath.Vector3, t, k float64) (lmath.Vector3, [2]float64) {
	x, _ := br.Curve.Eval(t)
	if stdmath.Abs(x) > lmath.Eps {
		cosT := (op.X + k*d.X) / x
		sinT := (op.Z + k*d.Z) / x
		dx, dy := br.Curve.Deriv(t)
		nx, ny := dy, -dx
		normal := lmath.Vector3{X: nx * cosT, Y: ny, Z: nx * sinT}.Normalize()
		theta := stdmath.Atan2(sinT, cosT)
		if theta < 0 {
			theta += 2 * lmath.Pi
		}
		return normal, [2]float64{theta / (2 * lmath.Pi), t}
	}
	sign := 1.0
	if t < 0.5 {
		sign = -1
	}
	return lmath.Vector3{X: 0, Y: sign, Z: 0}, [2]float64{0, t}
}

// TextureMap for a Bezier surface is fully determined at Hit time (the
// intrinsic (theta, t) parametrization); this exists only to satisfy the
// Shape interface for callers that don't already have the HitTemp.
func (br BezierRotate) TextureMap(pos lmath.Vector3) (float64, float64) {
	return 0, 0
}
