// Package gizmo re-derives transform gizmo axes so translate/rotate
// handles can operate in local or surface-normal space instead of the
// host's global default. Orientation is configured per session; there is
// no process-wide patch state.
package gizmo

import (
	"github.com/Maurichilean3d/Gizmoplug/pkg/math"
	"github.com/Maurichilean3d/Gizmoplug/pkg/mesh"
)

// Space selects the coordinate space the gizmo axes are derived in.
type Space int

const (
	// SpaceGlobal keeps the world axes.
	SpaceGlobal Space = iota
	// SpaceLocal rotates the world axes by the object's orientation.
	SpaceLocal
	// SpaceNormal aligns the Z axis with the surface normal under the
	// gizmo.
	SpaceNormal
)

// String returns the lowercase space name.
func (s Space) String() string {
	switch s {
	case SpaceGlobal:
		return "global"
	case SpaceLocal:
		return "local"
	case SpaceNormal:
		return "normal"
	}
	return "unknown"
}

// ParseSpace converts a space name (as written in config files) to a
// Space. Unknown names fall back to global.
func ParseSpace(s string) Space {
	switch s {
	case "local":
		return SpaceLocal
	case "normal":
		return SpaceNormal
	}
	return SpaceGlobal
}

// Config is the per-session gizmo orientation configuration.
type Config struct {
	Space Space
}

// Frame is a right-handed orthonormal axis triple for gizmo handles.
type Frame struct {
	X, Y, Z math.Vec3
}

// GlobalFrame returns the world axes.
func GlobalFrame() Frame {
	return Frame{
		X: math.Vec3{X: 1},
		Y: math.Vec3{Y: 1},
		Z: math.Vec3{Z: 1},
	}
}

// LocalFrame rotates the world axes by the object's orientation.
func LocalFrame(rot math.Quat) Frame {
	q := rot.Normalize()
	return Frame{
		X: q.RotateVec3(math.Vec3{X: 1}),
		Y: q.RotateVec3(math.Vec3{Y: 1}),
		Z: q.RotateVec3(math.Vec3{Z: 1}),
	}
}

// NormalFrame builds a frame whose Z axis is the given surface normal.
// The tangent is derived by Gram-Schmidt against the world axis least
// aligned with the normal, which keeps the frame stable as the normal
// sweeps across axis directions. A degenerate normal falls back to the
// global frame.
func NormalFrame(normal math.Vec3) Frame {
	z := normal.Normalize()
	if z.LengthSq() == 0 {
		return GlobalFrame()
	}

	ref := math.Vec3{X: 1}
	ax, ay, az := abs(z.X), abs(z.Y), abs(z.Z)
	if ay <= ax && ay <= az {
		ref = math.Vec3{Y: 1}
	} else if az <= ax && az <= ay {
		ref = math.Vec3{Z: 1}
	}

	x := ref.Sub(z.Scale(ref.Dot(z))).Normalize()
	y := z.Cross(x)
	return Frame{X: x, Y: y, Z: z}
}

// Derive resolves the configured space to a concrete frame. rot is the
// object's local orientation, normal the surface normal under the gizmo
// (only consulted for their respective spaces).
func (c Config) Derive(rot math.Quat, normal math.Vec3) Frame {
	switch c.Space {
	case SpaceLocal:
		return LocalFrame(rot)
	case SpaceNormal:
		return NormalFrame(normal)
	}
	return GlobalFrame()
}

// SelectionNormal averages the area-weighted normals of the given faces.
// ok is false when the set is empty or the normals cancel out, in which
// case callers should fall back to another space.
func SelectionNormal(m *mesh.Mesh, faces map[int32]struct{}) (math.Vec3, bool) {
	var sum math.Vec3
	for f := range faces {
		sum = sum.Add(m.FaceNormal(f))
	}
	n := sum.Normalize()
	if n.LengthSq() == 0 {
		return math.Vec3{}, false
	}
	return n, true
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
