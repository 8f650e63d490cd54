package selection

import (
	"go.uber.org/zap"

	"github.com/Maurichilean3d/Gizmoplug/internal/engine/topology"
	"github.com/Maurichilean3d/Gizmoplug/pkg/math"
	"github.com/Maurichilean3d/Gizmoplug/pkg/mesh"
)

// Pick resolves a single-point screen query to one element of the active
// mode and applies op to it. Without an active mesh or a pick hit this is
// a no-op.
func (e *Engine) Pick(p math.Vec2, op Op) {
	m, topo := e.session()
	if m == nil {
		return
	}
	hit, ok := e.host.PickNearestFace(m, p)
	if !ok {
		return
	}

	if op == OpReplace {
		e.store.ClearActive()
	}
	switch e.store.Mode() {
	case ModeFace:
		e.store.ApplyFace(hit.Face, op)
		e.log.Debug("picked face", zap.Int32("face", hit.Face), zap.Stringer("op", op))
	case ModeVertex:
		v := nearestCorner(m, hit)
		e.store.ApplyVertex(v, op)
		e.log.Debug("picked vertex", zap.Int32("vertex", v), zap.Stringer("op", op))
	case ModeEdge:
		k := nearestEdge(topo, hit)
		e.store.ApplyEdge(k, op)
		e.log.Debug("picked edge",
			zap.Int32("a", k.A), zap.Int32("b", k.B), zap.Stringer("op", op))
	}
	e.sync(m)
}

// nearestCorner returns the hit face's corner vertex closest to the
// intersection point. Ties resolve to the first corner in enumeration
// order.
func nearestCorner(m *mesh.Mesh, hit PickHit) int32 {
	corners := m.FaceCorners(hit.Face)
	best := corners[0]
	bestDist := hit.Point.DistanceSq(m.Position(best))
	for _, v := range corners[1:] {
		if d := hit.Point.DistanceSq(m.Position(v)); d < bestDist {
			best, bestDist = v, d
		}
	}
	return best
}

// nearestEdge returns the hit face's boundary edge closest to the
// intersection point, by clamped point-to-segment distance. Ties resolve
// to the first-enumerated edge.
func nearestEdge(c *topology.Cache, hit PickHit) topology.EdgeKey {
	m := c.Mesh()
	edges := c.FaceEdges(hit.Face)
	best := edges[0]
	bestDist := math.SegmentDistanceSq(hit.Point, m.Position(best.A), m.Position(best.B))
	for _, k := range edges[1:] {
		d := math.SegmentDistanceSq(hit.Point, m.Position(k.A), m.Position(k.B))
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
