package selection

import (
	"go.uber.org/zap"

	"github.com/Maurichilean3d/Gizmoplug/internal/engine/topology"
	"github.com/Maurichilean3d/Gizmoplug/pkg/math"
)

// boxDrag is the transient state of an in-progress marquee drag: origin,
// current point and the operator captured from the modifiers held at
// drag start. Nothing is applied to the store until the drag is released.
type boxDrag struct {
	start   math.Vec2
	current math.Vec2
	op      Op
}

// BeginBoxSelect opens a marquee drag at p. The operator is fixed at
// drag start; later modifier changes do not affect it.
func (e *Engine) BeginBoxSelect(p math.Vec2, op Op) {
	if !e.active {
		return
	}
	e.drag = &boxDrag{start: p, current: p, op: op}
}

// UpdateBoxSelect moves the drag's current corner.
func (e *Engine) UpdateBoxSelect(p math.Vec2) {
	if e.drag != nil {
		e.drag.current = p
	}
}

// DragRect returns the normalized marquee rectangle of an in-progress
// drag, for the host to draw.
func (e *Engine) DragRect() (math.Rect, bool) {
	if e.drag == nil {
		return math.Rect{}, false
	}
	return math.NewRect(e.drag.start, e.drag.current), true
}

// CancelBoxSelect abandons the drag without touching any membership set.
func (e *Engine) CancelBoxSelect() {
	e.drag = nil
}

// FinishBoxSelect releases the drag and applies the marquee selection.
func (e *Engine) FinishBoxSelect() {
	d := e.drag
	e.drag = nil
	if d == nil {
		return
	}
	e.BoxSelect(d.start, d.current, d.op)
}

// BoxSelect applies a marquee selection over the rectangle spanned by a
// and b (order-independent) with op in {replace, add, subtract}. Every
// element of the active mode is tested: a vertex by its projected
// position, a face by its projected centroid, an edge by the screen-space
// midpoint of its projected endpoints. Containment is inclusive.
// Elements that fail to project are skipped.
func (e *Engine) BoxSelect(a, b math.Vec2, op Op) {
	m, topo := e.session()
	if m == nil {
		return
	}
	rect := math.NewRect(a, b)

	if op == OpReplace {
		e.store.ClearActive()
	}
	contained := func(p math.Vec3) bool {
		sp, ok := e.host.ProjectToScreen(m, p)
		return ok && rect.Contains(sp)
	}

	switch e.store.Mode() {
	case ModeVertex:
		for v := int32(0); v < int32(m.VertexCount()); v++ {
			if contained(m.Position(v)) {
				e.store.ApplyVertex(v, op)
			}
		}
	case ModeFace:
		for f := int32(0); f < int32(m.FaceCount()); f++ {
			if contained(m.FaceCentroid(f)) {
				e.store.ApplyFace(f, op)
			}
		}
	case ModeEdge:
		topo.Edges(func(k topology.EdgeKey) {
			pa, oka := e.host.ProjectToScreen(m, m.Position(k.A))
			pb, okb := e.host.ProjectToScreen(m, m.Position(k.B))
			if oka && okb && rect.Contains(pa.Mid(pb)) {
				e.store.ApplyEdge(k, op)
			}
		})
	}

	e.log.Debug("box select applied",
		zap.Stringer("mode", e.store.Mode()),
		zap.Stringer("op", op),
		zap.Int("selected", e.store.ActiveLen()),
	)
	e.sync(m)
}
