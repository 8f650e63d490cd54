package main

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Maurichilean3d/Gizmoplug/internal/engine/picking"
	"github.com/Maurichilean3d/Gizmoplug/internal/engine/selection"
	"github.com/Maurichilean3d/Gizmoplug/pkg/math"
	"github.com/Maurichilean3d/Gizmoplug/pkg/mesh"
)

// demoHost implements selection.Host on top of an orbit camera. It
// plays the role the sculpting application would in production.
type demoHost struct {
	mesh   *mesh.Mesh
	log    *zap.Logger
	width  int
	height int

	// Orbit camera around the origin.
	yaw   float32
	pitch float32
	dist  float32

	viewProj    math.Mat4
	invViewProj math.Mat4

	needsRender  bool
	channelDirty bool
}

func newDemoHost(m *mesh.Mesh, width, height int, log *zap.Logger) *demoHost {
	h := &demoHost{
		mesh:        m,
		log:         log,
		width:       width,
		height:      height,
		pitch:       0.3,
		dist:        8,
		needsRender: true,
	}
	h.updateCamera()
	return h
}

// eye returns the camera position for the current orbit parameters.
func (h *demoHost) eye() math.Vec3 {
	cp := float32(gomath.Cos(float64(h.pitch)))
	return math.Vec3{
		X: h.dist * cp * float32(gomath.Sin(float64(h.yaw))),
		Y: h.dist * float32(gomath.Sin(float64(h.pitch))),
		Z: h.dist * cp * float32(gomath.Cos(float64(h.yaw))),
	}
}

func (h *demoHost) updateCamera() {
	proj := math.Perspective(gomath.Pi/4, float32(h.width)/float32(h.height), 0.1, 100)
	view := math.LookAt(h.eye(), math.Vec3{}, math.Vec3{Y: 1})
	h.viewProj = proj.Mul(view)
	h.invViewProj = h.viewProj.Inverse()
	h.needsRender = true
}

// orbit rotates the camera by mouse deltas, clamping pitch short of the
// poles so the view up vector stays valid.
func (h *demoHost) orbit(dx, dy float32) {
	h.yaw -= dx * 0.01
	h.pitch += dy * 0.01
	const maxPitch = gomath.Pi/2 - 0.05
	if h.pitch > maxPitch {
		h.pitch = maxPitch
	}
	if h.pitch < -maxPitch {
		h.pitch = -maxPitch
	}
	h.updateCamera()
}

// zoom moves the camera along the view axis.
func (h *demoHost) zoom(steps float32) {
	h.dist -= steps * 0.5
	if h.dist < 1 {
		h.dist = 1
	}
	if h.dist > 50 {
		h.dist = 50
	}
	h.updateCamera()
}

func (h *demoHost) ActiveMesh() *mesh.Mesh {
	return h.mesh
}

func (h *demoHost) PickNearestFace(m *mesh.Mesh, p math.Vec2) (selection.PickHit, bool) {
	ray := picking.ScreenToRay(p.X, p.Y, float32(h.width), float32(h.height), h.invViewProj)
	face, point, ok := picking.PickNearestFace(m, ray)
	if !ok {
		return selection.PickHit{}, false
	}
	return selection.PickHit{Face: face, Point: point}, true
}

func (h *demoHost) ProjectToScreen(m *mesh.Mesh, p math.Vec3) (math.Vec2, bool) {
	ndc, ok := h.viewProj.TransformPoint(p)
	if !ok {
		return math.Vec2{}, false
	}
	return math.Vec2{
		X: (ndc.X + 1) / 2 * float32(h.width),
		Y: (1 - ndc.Y) / 2 * float32(h.height),
	}, true
}

func (h *demoHost) NotifyChannelChanged(m *mesh.Mesh) {
	h.channelDirty = true
	h.log.Debug("highlight channel updated", zap.Int("vertices", m.VertexCount()))
}

func (h *demoHost) RequestRender() {
	h.needsRender = true
}
