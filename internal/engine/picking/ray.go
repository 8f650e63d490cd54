// Package picking provides ray casting utilities for component picking.
package picking

import (
	gomath "math"

	"github.com/Maurichilean3d/Gizmoplug/pkg/math"
	"github.com/Maurichilean3d/Gizmoplug/pkg/mesh"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := (2.0*screenX/viewportW - 1.0)
	ndcY := (1.0 - 2.0*screenY/viewportH) // Flip Y

	// Unproject near and far points
	nearPoint := math.Vec4{ndcX, ndcY, -1.0, 1.0}
	farPoint := math.Vec4{ndcX, ndcY, 1.0, 1.0}

	nearWorld := invViewProj.MulVec4(nearPoint)
	farWorld := invViewProj.MulVec4(farPoint)

	// Perspective divide
	if nearWorld[3] != 0 {
		nearWorld[0] /= nearWorld[3]
		nearWorld[1] /= nearWorld[3]
		nearWorld[2] /= nearWorld[3]
	}
	if farWorld[3] != 0 {
		farWorld[0] /= farWorld[3]
		farWorld[1] /= farWorld[3]
		farWorld[2] /= farWorld[3]
	}

	origin := math.Vec3{X: nearWorld[0], Y: nearWorld[1], Z: nearWorld[2]}
	dir := math.Vec3{
		X: farWorld[0] - nearWorld[0],
		Y: farWorld[1] - nearWorld[1],
		Z: farWorld[2] - nearWorld[2],
	}

	// Normalize direction
	rayLen := dir.Length()
	if rayLen > 0 {
		dir = dir.Scale(1 / rayLen)
	}

	return Ray{Origin: origin, Direction: dir}
}

// IntersectTriangle tests ray intersection with a triangle using the
// Moller-Trumbore algorithm. Returns the ray parameter t and whether the
// intersection occurred in front of the origin.
func (r Ray) IntersectTriangle(a, b, c math.Vec3) (t float32, hit bool) {
	const epsilon = 1e-7

	ab := b.Sub(a)
	ac := c.Sub(a)

	pvec := r.Direction.Cross(ac)
	det := ab.Dot(pvec)
	if det > -epsilon && det < epsilon {
		return 0, false // Ray parallel to triangle plane
	}

	invDet := 1 / det
	tvec := r.Origin.Sub(a)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(ab)
	v := r.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = ac.Dot(qvec) * invDet
	if t < 0 {
		return 0, false // Intersection behind ray origin
	}
	return t, true
}

// IntersectFace tests ray intersection with a mesh face, splitting quads
// into two triangles on the first corner.
func (r Ray) IntersectFace(m *mesh.Mesh, f int32) (t float32, hit bool) {
	corners := m.FaceCorners(f)
	if len(corners) < 3 {
		return 0, false
	}

	a := m.Position(corners[0])
	b := m.Position(corners[1])
	c := m.Position(corners[2])

	best := float32(gomath.MaxFloat32)
	if tt, ok := r.IntersectTriangle(a, b, c); ok {
		best = tt
		hit = true
	}
	if len(corners) == 4 {
		d := m.Position(corners[3])
		if tt, ok := r.IntersectTriangle(a, c, d); ok && tt < best {
			best = tt
			hit = true
		}
	}
	if !hit {
		return 0, false
	}
	return best, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	slab := func(origin, dir, lo, hi float32) bool {
		if dir != 0 {
			t1 := (lo - origin) / dir
			t2 := (hi - origin) / dir
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
			return true
		}
		return origin >= lo && origin <= hi
	}

	if !slab(r.Origin.X, r.Direction.X, box.Min.X, box.Max.X) {
		return 0, false
	}
	if !slab(r.Origin.Y, r.Direction.Y, box.Min.Y, box.Max.Y) {
		return 0, false
	}
	if !slab(r.Origin.Z, r.Direction.Z, box.Min.Z, box.Max.Z) {
		return 0, false
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// MeshBounds computes the axis-aligned bounding box of a mesh.
// Returns a zero box for an empty mesh.
func MeshBounds(m *mesh.Mesh) AABB {
	n := int32(m.VertexCount())
	if n == 0 {
		return AABB{}
	}

	box := AABB{
		Min: m.Position(0),
		Max: m.Position(0),
	}
	for v := int32(1); v < n; v++ {
		p := m.Position(v)
		if p.X < box.Min.X {
			box.Min.X = p.X
		}
		if p.Y < box.Min.Y {
			box.Min.Y = p.Y
		}
		if p.Z < box.Min.Z {
			box.Min.Z = p.Z
		}
		if p.X > box.Max.X {
			box.Max.X = p.X
		}
		if p.Y > box.Max.Y {
			box.Max.Y = p.Y
		}
		if p.Z > box.Max.Z {
			box.Max.Z = p.Z
		}
	}
	return box
}

// PickNearestFace casts a ray against every face of the mesh and returns
// the closest hit. A bounding box test rejects meshes the ray misses
// entirely before any per-face work.
func PickNearestFace(m *mesh.Mesh, r Ray) (face int32, point math.Vec3, hit bool) {
	if _, ok := r.IntersectAABB(MeshBounds(m)); !ok {
		return 0, math.Vec3{}, false
	}

	best := float32(gomath.MaxFloat32)
	face = -1
	for f := int32(0); f < int32(m.FaceCount()); f++ {
		if t, ok := r.IntersectFace(m, f); ok && t < best {
			best = t
			face = f
		}
	}
	if face < 0 {
		return 0, math.Vec3{}, false
	}
	point = r.Origin.Add(r.Direction.Scale(best))
	return face, point, true
}
