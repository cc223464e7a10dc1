package meshio

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	lmath "lumenray/math"
	"lumenray/shapes"
)

// LoadGLTFMesh reads the first mesh primitive of a glTF/GLB document's
// first mesh, applies the same rotate/scale/shift pipeline LoadOBJMesh
// uses, and returns it as a kd-tree-accelerated Mesh. It is an alternate
// mesh source alongside wavefront OBJ (spec §6 names .obj; glTF is an
// additional format carried over from the renderer's own dependency).
func LoadGLTFMesh(path string, shift, scale lmath.Vector3, rotations []Rotation) (shapes.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return shapes.Mesh{}, fmt.Errorf("meshio: opening %s: %w", path, err)
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return shapes.Mesh{}, fmt.Errorf("meshio: %s: no primitives", path)
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return shapes.Mesh{}, fmt.Errorf("meshio: %s: primitive has no POSITION attribute", path)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return shapes.Mesh{}, fmt.Errorf("meshio: reading positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}

	points := make([]lmath.Vector3, len(positions))
	for i, p := range positions {
		points[i] = lmath.Vector3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
	}
	normVecs := make([]lmath.Vector3, len(normals))
	for i, n := range normals {
		normVecs[i] = lmath.Vector3{X: float64(n[0]), Y: float64(n[1]), Z: float64(n[2])}.Normalize()
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return shapes.Mesh{}, fmt.Errorf("meshio: reading indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(points))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	ApplyTransform(points, shift, scale, rotations)

	hasNormals := len(normVecs) == len(points)
	tris := make([]shapes.Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		tri := shapes.NewTriangle(points[a], points[b], points[c])
		if hasNormals {
			tri.SetVertexNormals(normVecs[a], normVecs[b], normVecs[c])
		}
		tris = append(tris, tri)
	}
	return shapes.NewMesh(tris), nil
}
