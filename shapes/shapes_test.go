package shapes

import (
	"math/rand"
	stdmath "math"
	"testing"

	lmath "lumenray/math"
)

// TestSphereHit is testable property 2: a ray from (0,0,-5) in +z against
// a unit sphere at the origin hits at t=4 with normal (0,0,-1).
func TestSphereHit(t *testing.T) {
	s := NewSphere(lmath.Vector3{}, 1)
	r := lmath.NewRay(lmath.NewVector3(0, 0, -5), lmath.NewVector3(0, 0, 1))
	hit, ok := s.Hit(r, 0)
	if !ok {
		t.Fatal("expected a hit")
	}
	if stdmath.Abs(hit.T-4) > 1e-9 {
		t.Errorf("expected t=4, got %v", hit.T)
	}
	want := lmath.NewVector3(0, 0, -1)
	if stdmath.Abs(hit.Normal.X-want.X) > 1e-9 || stdmath.Abs(hit.Normal.Y-want.Y) > 1e-9 || stdmath.Abs(hit.Normal.Z-want.Z) > 1e-9 {
		t.Errorf("expected normal %v, got %v", want, hit.Normal)
	}
}

// TestTriangleBarycentricSum is testable property 3.
func TestTriangleBarycentricSum(t *testing.T) {
	tri := NewTriangle(
		lmath.NewVector3(0, 0, 0),
		lmath.NewVector3(1, 0, 0),
		lmath.NewVector3(0, 1, 0),
	)
	r := lmath.NewRay(lmath.NewVector3(0.2, 0.2, -5), lmath.NewVector3(0, 0, 1))
	hit, ok := tri.Hit(r, 0)
	if !ok {
		t.Fatal("expected a hit")
	}
	beta, gamma := hit.UV[0], hit.UV[1]
	alpha := 1 - beta - gamma
	sum := alpha + beta + gamma
	if stdmath.Abs(sum-1) > 1e-9 {
		t.Errorf("expected barycentric sum 1, got %v", sum)
	}
	if alpha < 0 || beta < 0 || gamma < 0 {
		t.Errorf("expected non-negative barycentrics, got (%v,%v,%v)", alpha, beta, gamma)
	}
}

// TestBezierEvalMatchesBernstein is testable property 6: the monomial
// evaluator must agree with direct Bernstein-basis evaluation to 1e-10.
func TestBezierEvalMatchesBernstein(t *testing.T) {
	points := [][2]float64{{0, 0}, {0.5, 1}, {1.5, 1.5}, {2, 0}}
	curve := NewBezierCurve(points)

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p[0]
		ys[i] = p[1]
	}

	for i := 0; i <= 1024; i++ {
		tt := float64(i) / 1024
		wantX := bernsteinEval(xs, tt)
		wantY := bernsteinEval(ys, tt)
		gotX, gotY := curve.Eval(tt)
		if stdmath.Abs(gotX-wantX) > 1e-10 {
			t.Fatalf("x mismatch at t=%v: got %v want %v", tt, gotX, wantX)
		}
		if stdmath.Abs(gotY-wantY) > 1e-10 {
			t.Fatalf("y mismatch at t=%v: got %v want %v", tt, gotY, wantY)
		}
	}
}

// bernsteinEval evaluates a Bezier curve directly in Bernstein form,
// independent of the monomial conversion under test.
func bernsteinEval(p []float64, t float64) float64 {
	n := len(p) - 1
	var sum float64
	for i, pi := range p {
		sum += binomial(n, i) * stdmath.Pow(t, float64(i)) * stdmath.Pow(1-t, float64(n-i)) * pi
	}
	return sum
}

// TestTriangleKDTreeMatchesBruteForce is testable property 8.
func TestTriangleKDTreeMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tris := make([]Triangle, 0, 200)
	for i := 0; i < 200; i++ {
		center := lmath.NewVector3(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
		jitter := func() lmath.Vector3 {
			return lmath.NewVector3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		}
		tris = append(tris, NewTriangle(center.Add(jitter()), center.Add(jitter()), center.Add(jitter())))
	}
	tree := BuildTriangleTree(tris)

	for i := 0; i < 300; i++ {
		r := lmath.NewRay(
			lmath.NewVector3(rng.Float64()*40-20, rng.Float64()*40-20, rng.Float64()*40-20),
			lmath.NewVector3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1).Normalize(),
		)
		got, gotOk := tree.Hit(r, 0, lmath.Inf)

		bestT := lmath.Inf
		bruteOk := false
		for _, tri := range tris {
			if h, ok := tri.Hit(r, 0); ok && h.T < bestT {
				bestT = h.T
				bruteOk = true
			}
		}

		if gotOk != bruteOk {
			t.Fatalf("ray %d: kd-tree hit=%v brute=%v", i, gotOk, bruteOk)
		}
		if bruteOk && stdmath.Abs(got.T-bestT) > 1e-9 {
			t.Errorf("ray %d: kd-tree t=%v brute t=%v", i, got.T, bestT)
		}
	}
}
