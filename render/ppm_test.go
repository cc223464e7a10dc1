package render

import (
	stdmath "math"
	"testing"

	"lumenray/core"
	lmath "lumenray/math"
)

// TestViewPointUpdateEmptyGather checks that gathering zero photons
// leaves a view point untouched (no division by zero in the ratio).
func TestViewPointUpdateEmptyGather(t *testing.T) {
	vp := ViewPoint{Radius: 1, AccumFlux: core.NewColor(1, 2, 3), AccumPhotons: 5}
	vp.update(nil, 0.7)
	if vp.Radius != 1 || vp.AccumPhotons != 5 || vp.AccumFlux != core.NewColor(1, 2, 3) {
		t.Errorf("expected no change on empty gather, got %+v", vp)
	}
}

// TestViewPointUpdateFirstIteration checks the progressive radius
// reduction and flux accumulation formula (spec §4.9) on a view point's
// first gather: with AccumPhotons=0, gain=floor(alpha*m), ratio=gain/m.
func TestViewPointUpdateFirstIteration(t *testing.T) {
	vp := ViewPoint{Radius: 2, Throughput: core.ColorWhite}
	photons := []Photon{
		{P: lmath.Vector3{}, Flux: core.NewColor(1, 1, 1)},
		{P: lmath.Vector3{}, Flux: core.NewColor(1, 1, 1)},
		{P: lmath.Vector3{}, Flux: core.NewColor(1, 1, 1)},
		{P: lmath.Vector3{}, Flux: core.NewColor(1, 1, 1)},
	}
	alpha := 0.5
	vp.update(photons, alpha)

	m := 4.0
	gain := stdmath.Floor(alpha * m) // = 2
	wantRatio := gain / m            // = 0.5
	wantRadius := 2 * stdmath.Sqrt(wantRatio)
	if stdmath.Abs(vp.Radius-wantRadius) > 1e-9 {
		t.Errorf("radius = %v, want %v", vp.Radius, wantRadius)
	}
	if vp.AccumPhotons != int(gain) {
		t.Errorf("accumPhotons = %d, want %d", vp.AccumPhotons, int(gain))
	}
	wantFlux := core.NewColor(4, 4, 4).Scale(wantRatio)
	if vp.AccumFlux.Sub(wantFlux).Length() > 1e-9 {
		t.Errorf("accumFlux = %v, want %v", vp.AccumFlux, wantFlux)
	}
}

// TestPhotonPositionable checks Photon satisfies kdtree.Positionable via
// its Pos() accessor over the P field.
func TestPhotonPositionable(t *testing.T) {
	p := Photon{P: lmath.NewVector3(1, 2, 3)}
	if p.Pos() != lmath.NewVector3(1, 2, 3) {
		t.Errorf("Pos() = %v, want (1,2,3)", p.Pos())
	}
}

func BenchmarkViewPointUpdate(b *testing.B) {
	photons := make([]Photon, 100)
	for i := range photons {
		photons[i] = Photon{Flux: core.NewColor(0.01, 0.01, 0.01)}
	}
	for i := 0; i < b.N; i++ {
		vp := ViewPoint{Radius: 1, Throughput: core.ColorWhite}
		vp.update(photons, 0.7)
	}
}
