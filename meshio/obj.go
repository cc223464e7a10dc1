// Package meshio loads triangle meshes from disk — wavefront OBJ (the
// primary format, spec §6) and glTF (an alternate source carried over
// from the teacher's own qmuntal/gltf dependency) — into the plain
// []shapes.Triangle list that shapes.NewMesh accelerates with a kd-tree.
// It also implements the mesh transform pipeline (rotate, scale, shift)
// a task descriptor's Mesh entry specifies.
package meshio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	lmath "lumenray/math"
	"lumenray/shapes"
)

// Rotation is one entry of a task descriptor's Mesh.rotates list: rotate
// by Degree degrees about axis Dim (0=X, 1=Y, 2=Z).
type Rotation struct {
	Dim    int
	Degree float64
}

// objData is the raw parse of a wavefront OBJ file's first object: flat
// point list plus triangle vertex/normal index triples. Per spec §6,
// only the first object in the file is used.
type objData struct {
	points      []lmath.Vector3
	normals     []lmath.Vector3
	faces       [][3]int // point indices (0-based)
	faceNormals [][3]int // normal indices (0-based), or -1 if absent
	hasNormals  bool
}

// loadOBJRaw parses a wavefront .obj file (first object only, per-vertex
// normals optional) and returns the raw point/triangle data before any
// transform is applied.
func loadOBJRaw(path string) (*objData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data := &objData{}
	sawObject := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "o":
			if sawObject {
				// First object only (spec §6).
				return data, nil
			}
			sawObject = true
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("parsing vertex %q: %w", line, err)
			}
			data.points = append(data.points, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("parsing normal %q: %w", line, err)
			}
			data.normals = append(data.normals, n.Normalize())
		case "f":
			if err := parseFace(fields[1:], data); err != nil {
				return nil, fmt.Errorf("parsing face %q: %w", line, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(data.faces) == 0 {
		return nil, fmt.Errorf("meshio: %s: no triangles found", path)
	}
	return data, nil
}

func parseVec3(fields []string) (lmath.Vector3, error) {
	if len(fields) < 3 {
		return lmath.Vector3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return lmath.Vector3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return lmath.Vector3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return lmath.Vector3{}, err
	}
	return lmath.Vector3{X: x, Y: y, Z: z}, nil
}

// parseFace triangulates an n-gon face by fan triangulation, recording
// each resulting triangle's point and normal index triples.
func parseFace(fields []string, data *objData) error {
	type vref struct {
		point  int
		normal int
	}
	refs := make([]vref, len(fields))
	for i, f := range fields {
		parts := strings.Split(f, "/")
		p, err := strconv.Atoi(parts[0])
		if err != nil {
			return err
		}
		ref := vref{point: p - 1, normal: -1}
		if len(parts) >= 3 && parts[2] != "" {
			n, err := strconv.Atoi(parts[2])
			if err != nil {
				return err
			}
			ref.normal = n - 1
			data.hasNormals = true
		}
		refs[i] = ref
	}
	for i := 2; i < len(refs); i++ {
		a, b, c := refs[0], refs[i-1], refs[i]
		data.faces = append(data.faces, [3]int{a.point, b.point, c.point})
		data.faceNormals = append(data.faceNormals, [3]int{a.normal, b.normal, c.normal})
	}
	return nil
}

// ApplyTransform mutates points in place following the original
// implementation's pipeline (spec SPEC_FULL.md §D): every rotation is
// applied first (about the origin, in list order), then the result is
// scaled about the centroid of the pre-rotation bounding box, then
// shifted.
func ApplyTransform(points []lmath.Vector3, shift, scale lmath.Vector3, rotations []Rotation) {
	mid := lmath.BoundPoints(points)
	center := mid.Min.Add(mid.Max).Scale(0.5)

	mats := make([]lmath.Matrix3, len(rotations))
	for i, r := range rotations {
		mats[i] = lmath.RotationAxis(r.Dim, r.Degree)
	}

	for i, p := range points {
		for _, m := range mats {
			p = m.MulVec(p)
		}
		rel := p.Sub(center)
		scaled := lmath.Vector3{X: rel.X * scale.X, Y: rel.Y * scale.Y, Z: rel.Z * scale.Z}
		points[i] = center.Add(scaled).Add(shift)
	}
}

// LoadOBJMesh parses path, applies the transform pipeline, and builds
// the triangle list a shapes.Mesh kd-tree is built over.
func LoadOBJMesh(path string, shift, scale lmath.Vector3, rotations []Rotation) (shapes.Mesh, error) {
	data, err := loadOBJRaw(path)
	if err != nil {
		return shapes.Mesh{}, err
	}
	ApplyTransform(data.points, shift, scale, rotations)
	return shapes.NewMesh(buildTriangles(data)), nil
}

func buildTriangles(data *objData) []shapes.Triangle {
	tris := make([]shapes.Triangle, 0, len(data.faces))
	for i, f := range data.faces {
		tri := shapes.NewTriangle(data.points[f[0]], data.points[f[1]], data.points[f[2]])
		if data.hasNormals {
			nIdx := data.faceNormals[i]
			if nIdx[0] >= 0 && nIdx[1] >= 0 && nIdx[2] >= 0 {
				tri.SetVertexNormals(data.normals[nIdx[0]], data.normals[nIdx[1]], data.normals[nIdx[2]])
			}
		}
		tris = append(tris, tri)
	}
	return tris
}
