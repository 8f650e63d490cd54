package selection

import (
	"github.com/Maurichilean3d/Gizmoplug/pkg/math"
	"github.com/Maurichilean3d/Gizmoplug/pkg/mesh"
)

// PickHit is the result of the host's nearest-face ray pick.
type PickHit struct {
	Face  int32
	Point math.Vec3 // intersection point in the mesh's local space
}

// Host is the set of services the hosting application provides to the
// engine. The engine never owns rendering, picking or camera state; it
// calls through this interface instead.
//
// Every method may legitimately report absence (nil mesh, no hit, no
// projection); the engine treats absence as a benign no-op.
type Host interface {
	// ActiveMesh returns the mesh currently being edited, or nil.
	ActiveMesh() *mesh.Mesh

	// PickNearestFace casts the host's pick ray through a screen point
	// and returns the nearest intersected face.
	PickNearestFace(m *mesh.Mesh, p math.Vec2) (PickHit, bool)

	// ProjectToScreen maps a mesh-local point to screen coordinates.
	// ok is false when the point cannot be projected (behind the eye).
	ProjectToScreen(m *mesh.Mesh, p math.Vec3) (math.Vec2, bool)

	// NotifyChannelChanged tells the host the highlight channel was
	// written, so it can re-upload derived rendering buffers.
	NotifyChannelChanged(m *mesh.Mesh)

	// RequestRender schedules a host repaint.
	RequestRender()
}
