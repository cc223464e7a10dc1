package meshio

import (
	stdmath "math"
	"os"
	"path/filepath"
	"testing"

	lmath "lumenray/math"
)

const cubeOBJ = `o cube
v -1 -1 -1
v  1 -1 -1
v  1  1 -1
v -1  1 -1
v -1 -1  1
v  1 -1  1
v  1  1  1
v -1  1  1
f 1 2 3
f 1 3 4
f 5 8 7
f 5 7 6
f 1 5 6
f 1 6 2
f 2 6 7
f 2 7 3
f 3 7 8
f 3 8 4
f 4 8 5
f 4 5 1
`

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp obj: %v", err)
	}
	return path
}

// TestLoadOBJMeshTriangleCount checks fan triangulation of a 12-face
// (all-triangle) cube yields exactly 12 triangles, and that the
// untransformed mesh spans [-1,1] on X.
func TestLoadOBJMeshTriangleCount(t *testing.T) {
	path := writeTemp(t, "cube.obj", cubeOBJ)
	mesh, err := LoadOBJMesh(path, lmath.Vector3{}, lmath.NewVector3(1, 1, 1), nil)
	if err != nil {
		t.Fatalf("LoadOBJMesh: %v", err)
	}
	if len(mesh.Triangles) != 12 {
		t.Errorf("got %d triangles, want 12", len(mesh.Triangles))
	}
	bounds := mesh.Bounds()
	if stdmath.Abs(bounds.Min.X+1) > 1e-9 || stdmath.Abs(bounds.Max.X-1) > 1e-9 {
		t.Errorf("expected cube bounds [-1,1] on X, got min=%v max=%v", bounds.Min.X, bounds.Max.X)
	}
}

// TestApplyTransformScaleAboutCentroid checks that scaling a mesh whose
// bounding box is centered at the origin leaves the centroid fixed and
// doubles the half-extent.
func TestApplyTransformScaleAboutCentroid(t *testing.T) {
	points := []lmath.Vector3{
		lmath.NewVector3(-1, -1, -1),
		lmath.NewVector3(1, 1, 1),
	}
	ApplyTransform(points, lmath.Vector3{}, lmath.NewVector3(2, 2, 2), nil)
	want0 := lmath.NewVector3(-2, -2, -2)
	want1 := lmath.NewVector3(2, 2, 2)
	if points[0].Sub(want0).Length() > 1e-9 || points[1].Sub(want1).Length() > 1e-9 {
		t.Errorf("expected scaled points %v, %v; got %v, %v", want0, want1, points[0], points[1])
	}
}

// TestApplyTransformShift checks a pure shift (identity scale, no
// rotation) translates every point by the same vector.
func TestApplyTransformShift(t *testing.T) {
	points := []lmath.Vector3{lmath.NewVector3(0, 0, 0), lmath.NewVector3(1, 0, 0)}
	shift := lmath.NewVector3(5, -3, 2)
	ApplyTransform(points, shift, lmath.NewVector3(1, 1, 1), nil)
	if points[0].Sub(shift).Length() > 1e-9 {
		t.Errorf("expected %v, got %v", shift, points[0])
	}
	want := lmath.NewVector3(1, 0, 0).Add(shift)
	if points[1].Sub(want).Length() > 1e-9 {
		t.Errorf("expected %v, got %v", want, points[1])
	}
}

// TestApplyTransformRotation90 checks a 90-degree rotation about Z maps
// +X to +Y.
func TestApplyTransformRotation90(t *testing.T) {
	points := []lmath.Vector3{lmath.NewVector3(1, 0, 0)}
	ApplyTransform(points, lmath.Vector3{}, lmath.NewVector3(1, 1, 1), []Rotation{{Dim: 2, Degree: 90}})
	want := lmath.NewVector3(0, 1, 0)
	if points[0].Sub(want).Length() > 1e-6 {
		t.Errorf("expected %v, got %v", want, points[0])
	}
}

func TestLoadOBJMeshMissingFile(t *testing.T) {
	if _, err := LoadOBJMesh(filepath.Join(t.TempDir(), "missing.obj"), lmath.Vector3{}, lmath.NewVector3(1, 1, 1), nil); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
