package camera

import (
	"math/rand"
	stdmath "math"
	"testing"

	lmath "lumenray/math"
)

func testCamera(lens *Lens) Camera {
	return Camera{
		Center:    lmath.NewVector3(0, 0, -5),
		Right:     lmath.NewVector3(1, 0, 0),
		Up:        lmath.NewVector3(0, 1, 0),
		Direction: lmath.NewVector3(0, 0, 1),
		Dis:       1,
		W:         100,
		H:         100,
		AntiAlias: 1,
		Lens:      lens,
	}
}

// TestPinholeDegeneracy is the camera pinhole-degeneracy scenario: a lens
// with aperture=0
// must produce rays identical (up to FP noise) to the pinhole camera.
func TestPinholeDegeneracy(t *testing.T) {
	pinhole := testCamera(nil)
	thin := testCamera(&Lens{Focal: 5, Aperture: 0})

	seed := int64(99)
	r1 := pinhole.GenRay(50, 50, rand.New(rand.NewSource(seed)))
	r2 := thin.GenRay(50, 50, rand.New(rand.NewSource(seed)))

	if stdmath.Abs(r1.Origin.X-r2.Origin.X) > 1e-9 || stdmath.Abs(r1.Origin.Y-r2.Origin.Y) > 1e-9 || stdmath.Abs(r1.Origin.Z-r2.Origin.Z) > 1e-9 {
		t.Errorf("origin mismatch: pinhole %v thin-lens(aperture=0) %v", r1.Origin, r2.Origin)
	}
	if stdmath.Abs(r1.Direction.X-r2.Direction.X) > 1e-9 || stdmath.Abs(r1.Direction.Y-r2.Direction.Y) > 1e-9 || stdmath.Abs(r1.Direction.Z-r2.Direction.Z) > 1e-9 {
		t.Errorf("direction mismatch: pinhole %v thin-lens(aperture=0) %v", r1.Direction, r2.Direction)
	}
}

func TestCameraValidate(t *testing.T) {
	c := testCamera(nil)
	if err := c.Validate(); err != nil {
		t.Errorf("expected valid camera, got %v", err)
	}
	bad := c
	bad.Up = lmath.NewVector3(0, 2, 0)
	if err := bad.Validate(); err == nil {
		t.Error("expected non-unit up vector to fail validation")
	}
}
