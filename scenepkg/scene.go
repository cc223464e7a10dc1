package scenepkg

import (
	"lumenray/core"
	lmath "lumenray/math"
)

// Scene is a flat collection of objects plus the environment that
// escaping rays resolve to.
type Scene struct {
	Objects []Object
	Env     core.Color
	EnvIOR  float64
}

// Hit is a fully resolved intersection: the world-space position,
// surface normal, optional intrinsic uv, and the object that was hit.
type Hit struct {
	Pos    lmath.Vector3
	Normal lmath.Vector3
	UV     *[2]float64
	Object *Object
}

// Intersect performs a linear scan over every object, delegating to each
// shape's own Hit (for meshes this dispatches into the kd-tree), and
// returns the closest accepted hit.
func (s *Scene) Intersect(r lmath.Ray, tMin float64) (Hit, bool) {
	bestT := lmath.Inf
	var best Hit
	found := false

	for i := range s.Objects {
		obj := &s.Objects[i]
		h, ok := obj.Shape.Hit(r, tMin)
		if !ok || h.T >= bestT {
			continue
		}
		bestT = h.T
		best = Hit{
			Pos:    r.At(h.T),
			Normal: h.Normal,
			UV:     h.UV,
			Object: obj,
		}
		found = true
	}
	return best, found
}
