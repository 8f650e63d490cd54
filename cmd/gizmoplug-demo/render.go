package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Maurichilean3d/Gizmoplug/internal/engine/gizmo"
	"github.com/Maurichilean3d/Gizmoplug/internal/engine/selection"
	"github.com/Maurichilean3d/Gizmoplug/pkg/math"
	"github.com/Maurichilean3d/Gizmoplug/pkg/mesh"
)

// highlightColor blends the base wireframe color toward the selection
// color by the highlight weight.
func highlightColor(w float32) (uint8, uint8, uint8) {
	if w < 0 {
		w = 0
	}
	if w > 1 {
		w = 1
	}
	lerp := func(a, b float32) uint8 { return uint8(a + (b-a)*w) }
	return lerp(110, 255), lerp(110, 160), lerp(110, 30)
}

// drawMesh renders the wireframe with per-vertex highlight coloring.
// Shared edges are drawn once per adjacent face, which is fine for a
// debug view.
func drawMesh(r *sdl.Renderer, h *demoHost, m *mesh.Mesh, mode selection.Mode) {
	for f := int32(0); f < int32(m.FaceCount()); f++ {
		corners := m.FaceCorners(f)
		for i := range corners {
			a := corners[i]
			b := corners[(i+1)%len(corners)]

			pa, okA := h.ProjectToScreen(m, m.Position(a))
			pb, okB := h.ProjectToScreen(m, m.Position(b))
			if !okA || !okB {
				continue
			}

			w := m.Highlight[a]
			if m.Highlight[b] > w {
				w = m.Highlight[b]
			}
			cr, cg, cb := highlightColor(w)
			r.SetDrawColor(cr, cg, cb, 255)
			r.DrawLine(int32(pa.X), int32(pa.Y), int32(pb.X), int32(pb.Y))
		}
	}

	// Vertex handles only in vertex mode; they clutter other modes.
	if mode != selection.ModeVertex {
		return
	}
	for v := int32(0); v < int32(m.VertexCount()); v++ {
		p, ok := h.ProjectToScreen(m, m.Position(v))
		if !ok {
			continue
		}
		cr, cg, cb := highlightColor(m.Highlight[v])
		r.SetDrawColor(cr, cg, cb, 255)
		r.FillRect(&sdl.Rect{X: int32(p.X) - 2, Y: int32(p.Y) - 2, W: 5, H: 5})
	}
}

// drawDragRect renders the in-progress marquee.
func drawDragRect(r *sdl.Renderer, rect math.Rect) {
	r.SetDrawColor(230, 230, 230, 255)
	r.DrawRect(&sdl.Rect{
		X: int32(rect.Min.X),
		Y: int32(rect.Min.Y),
		W: int32(rect.Width()),
		H: int32(rect.Height()),
	})
}

// selectionPivot averages the positions of the active components.
func selectionPivot(m *mesh.Mesh, s *selection.Store) (math.Vec3, bool) {
	var sum math.Vec3
	n := 0

	switch s.Mode() {
	case selection.ModeVertex:
		for v := range s.Vertices() {
			sum = sum.Add(m.Position(v))
			n++
		}
	case selection.ModeEdge:
		for k := range s.Edges() {
			mid := m.Position(k.A).Add(m.Position(k.B)).Scale(0.5)
			sum = sum.Add(mid)
			n++
		}
	case selection.ModeFace:
		for f := range s.Faces() {
			sum = sum.Add(m.FaceCentroid(f))
			n++
		}
	}

	if n == 0 {
		return math.Vec3{}, false
	}
	return sum.Scale(1 / float32(n)), true
}

// drawGizmo renders the transform gizmo axes at the selection pivot.
func drawGizmo(r *sdl.Renderer, h *demoHost, m *mesh.Mesh, s *selection.Store, cfg gizmo.Config) {
	pivot, ok := selectionPivot(m, s)
	if !ok {
		return
	}

	normal, hasNormal := gizmo.SelectionNormal(m, s.Faces())
	if !hasNormal {
		normal = math.Vec3{Z: 1}
	}
	frame := cfg.Derive(math.QuatIdentity(), normal)

	origin, ok := h.ProjectToScreen(m, pivot)
	if !ok {
		return
	}

	axes := []struct {
		dir     math.Vec3
		r, g, b uint8
	}{
		{frame.X, 220, 60, 60},
		{frame.Y, 60, 220, 60},
		{frame.Z, 60, 60, 220},
	}
	for _, axis := range axes {
		tip, ok := h.ProjectToScreen(m, pivot.Add(axis.dir))
		if !ok {
			continue
		}
		r.SetDrawColor(axis.r, axis.g, axis.b, 255)
		r.DrawLine(int32(origin.X), int32(origin.Y), int32(tip.X), int32(tip.Y))
	}
}

// drawFrame renders one complete frame.
func drawFrame(r *sdl.Renderer, h *demoHost, eng *selection.Engine, cfg gizmo.Config) {
	r.SetDrawColor(24, 24, 28, 255)
	r.Clear()

	m := h.ActiveMesh()
	if m != nil {
		drawMesh(r, h, m, eng.Mode())
		drawGizmo(r, h, m, eng.Store(), cfg)
	}

	if rect, dragging := eng.DragRect(); dragging {
		drawDragRect(r, rect)
	}

	r.Present()
}
