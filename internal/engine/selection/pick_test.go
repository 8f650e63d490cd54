package selection

import (
	"testing"

	"github.com/Maurichilean3d/Gizmoplug/internal/engine/topology"
	"github.com/Maurichilean3d/Gizmoplug/pkg/math"
)

func TestPickFaceOperators(t *testing.T) {
	e, h := activeEngine(quadStrip())
	e.SetMode(ModeFace)
	h.scriptHit(0, math.Vec3{X: 0.6, Y: 0.3})

	e.Pick(math.Vec2{}, OpReplace)
	if len(e.Store().Faces()) != 1 {
		t.Fatalf("replace pick = %v, want {F0}", e.Store().Faces())
	}

	h.scriptHit(1, math.Vec3{X: 0.3, Y: 0.6})
	e.Pick(math.Vec2{}, OpAdd)
	if len(e.Store().Faces()) != 2 {
		t.Fatalf("add pick = %v, want {F0, F1}", e.Store().Faces())
	}

	e.Pick(math.Vec2{}, OpSubtract)
	if _, in := e.Store().Faces()[1]; in {
		t.Error("subtract pick left F1 selected")
	}

	// Replace clears everything previously selected.
	e.Pick(math.Vec2{}, OpReplace)
	if len(e.Store().Faces()) != 1 {
		t.Errorf("replace pick = %v, want exactly {F1}", e.Store().Faces())
	}
	if _, in := e.Store().Faces()[1]; !in {
		t.Error("replace pick missing F1")
	}
}

func TestPickToggleIsSelfInverse(t *testing.T) {
	e, h := activeEngine(quadStrip())
	e.SetMode(ModeFace)
	e.Store().ApplyFace(1, OpAdd)
	h.scriptHit(0, math.Vec3{})

	e.Pick(math.Vec2{}, OpToggle)
	e.Pick(math.Vec2{}, OpToggle)

	if len(e.Store().Faces()) != 1 {
		t.Fatalf("double toggle = %v, want original {F1}", e.Store().Faces())
	}
	if _, in := e.Store().Faces()[1]; !in {
		t.Error("double toggle lost original selection")
	}
}

func TestPickNearestVertex(t *testing.T) {
	e, h := activeEngine(quadStrip())
	e.SetMode(ModeVertex)
	// Intersection on F0 close to v1 at (1,0,0).
	h.scriptHit(0, math.Vec3{X: 0.9, Y: 0.1})

	e.Pick(math.Vec2{}, OpReplace)

	verts := e.Store().Vertices()
	if len(verts) != 1 {
		t.Fatalf("vertex pick = %v, want {v1}", verts)
	}
	if _, in := verts[1]; !in {
		t.Errorf("vertex pick = %v, want {v1}", verts)
	}
}

func TestPickNearestVertexTieFirstCorner(t *testing.T) {
	e, h := activeEngine(quadStrip())
	e.SetMode(ModeVertex)
	// Equidistant from v0 and v1; the first enumerated corner wins.
	h.scriptHit(0, math.Vec3{X: 0.5, Y: 0})

	e.Pick(math.Vec2{}, OpReplace)

	if _, in := e.Store().Vertices()[0]; !in {
		t.Errorf("tie should resolve to first corner v0, got %v", e.Store().Vertices())
	}
}

func TestPickNearestEdge(t *testing.T) {
	e, h := activeEngine(quadStrip())
	e.SetMode(ModeEdge)
	// Close to the bottom edge (v0,v1) of F0.
	h.scriptHit(0, math.Vec3{X: 0.6, Y: 0.05})

	e.Pick(math.Vec2{}, OpReplace)

	edges := e.Store().Edges()
	want := topology.MakeEdgeKey(0, 1)
	if len(edges) != 1 {
		t.Fatalf("edge pick = %v, want {%v}", edges, want)
	}
	if _, in := edges[want]; !in {
		t.Errorf("edge pick = %v, want {%v}", edges, want)
	}
}

func TestPickWithoutHitIsNoOp(t *testing.T) {
	e, h := activeEngine(quadStrip())
	e.SetMode(ModeFace)
	e.Store().ApplyFace(0, OpAdd)
	h.hasHit = false
	renders := h.renders

	e.Pick(math.Vec2{X: 500, Y: 500}, OpReplace)

	if len(e.Store().Faces()) != 1 {
		t.Error("missed pick changed selection state")
	}
	if h.renders != renders {
		t.Error("missed pick requested a render")
	}
}

func TestPickWithoutMeshIsNoOp(t *testing.T) {
	h := newStubHost(nil)
	h.scriptHit(0, math.Vec3{})
	e := New(h, nil)
	e.Activate()
	e.Pick(math.Vec2{}, OpReplace) // must not panic or render
	if h.renders != 0 {
		t.Error("pick without mesh requested a render")
	}
}

func TestPickInactiveEngineIsNoOp(t *testing.T) {
	h := newStubHost(quadStrip())
	h.scriptHit(0, math.Vec3{})
	e := New(h, nil)
	e.Pick(math.Vec2{}, OpReplace)
	if len(e.Store().Faces()) != 0 {
		t.Error("inactive engine applied a pick")
	}
}
