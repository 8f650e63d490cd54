package selection

import (
	"github.com/Maurichilean3d/Gizmoplug/pkg/math"
	"github.com/Maurichilean3d/Gizmoplug/pkg/mesh"
)

// stubHost is a scripted host: a fixed mesh, an optional scripted pick
// hit, and a trivial orthographic projection (screen = 100 * local XY).
type stubHost struct {
	mesh    *mesh.Mesh
	hit     PickHit
	hasHit  bool
	project bool

	notifies int
	renders  int
}

func newStubHost(m *mesh.Mesh) *stubHost {
	return &stubHost{mesh: m, project: true}
}

func (h *stubHost) ActiveMesh() *mesh.Mesh { return h.mesh }

func (h *stubHost) PickNearestFace(_ *mesh.Mesh, _ math.Vec2) (PickHit, bool) {
	return h.hit, h.hasHit
}

func (h *stubHost) ProjectToScreen(_ *mesh.Mesh, p math.Vec3) (math.Vec2, bool) {
	if !h.project {
		return math.Vec2{}, false
	}
	return math.Vec2{X: p.X * 100, Y: p.Y * 100}, true
}

func (h *stubHost) NotifyChannelChanged(_ *mesh.Mesh) { h.notifies++ }
func (h *stubHost) RequestRender()                    { h.renders++ }

// scriptHit makes the next picks report a hit on face f at point p.
func (h *stubHost) scriptHit(f int32, p math.Vec3) {
	h.hit = PickHit{Face: f, Point: p}
	h.hasHit = true
}

// quadStrip builds F0=(v0,v1,v2), F1=(v0,v2,v3) sharing edge (v0,v2),
// the reference scenario used throughout the operator tests.
//
//	v3 ---- v2
//	 |  F1 / |
//	 |   / F0|
//	v0 ---- v1
func quadStrip() *mesh.Mesh {
	return mesh.New(
		[]float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		[]int32{
			0, 1, 2, mesh.QuadSentinel,
			0, 2, 3, mesh.QuadSentinel,
		},
	)
}

// twoIslands builds two quadStrip-shaped components with disjoint
// vertices, faces 0-1 on the left and 2-3 on the right.
func twoIslands() *mesh.Mesh {
	return mesh.New(
		[]float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
			5, 0, 0,
			6, 0, 0,
			6, 1, 0,
			5, 1, 0,
		},
		[]int32{
			0, 1, 2, mesh.QuadSentinel,
			0, 2, 3, mesh.QuadSentinel,
			4, 5, 6, mesh.QuadSentinel,
			4, 6, 7, mesh.QuadSentinel,
		},
	)
}

// activeEngine returns an activated engine over m with its stub host.
func activeEngine(m *mesh.Mesh) (*Engine, *stubHost) {
	h := newStubHost(m)
	e := New(h, nil)
	e.Activate()
	return e, h
}

// fullScreen is a rectangle comfortably containing every projected
// element of the test meshes.
var fullScreen = [2]math.Vec2{{X: -10000, Y: -10000}, {X: 10000, Y: 10000}}
