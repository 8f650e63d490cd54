package selection

import (
	"github.com/Maurichilean3d/Gizmoplug/internal/engine/topology"
	"github.com/Maurichilean3d/Gizmoplug/pkg/mesh"
)

// Store holds the three component membership sets and the active mode.
// All three sets persist independently of the mode: switching modes never
// clears the sets of the other modes, it only changes which set the
// operators and the highlight channel target.
type Store struct {
	mode  Mode
	verts map[int32]struct{}
	faces map[int32]struct{}
	edges map[topology.EdgeKey]struct{}
}

// NewStore creates an empty store with the given initial mode.
func NewStore(mode Mode) *Store {
	return &Store{
		mode:  mode,
		verts: make(map[int32]struct{}),
		faces: make(map[int32]struct{}),
		edges: make(map[topology.EdgeKey]struct{}),
	}
}

// Mode returns the active mode.
func (s *Store) Mode() Mode {
	return s.mode
}

// SetMode switches the active mode. No other state changes.
func (s *Store) SetMode(mode Mode) {
	s.mode = mode
}

// Vertices returns the selected vertex id set.
func (s *Store) Vertices() map[int32]struct{} {
	return s.verts
}

// Faces returns the selected face id set.
func (s *Store) Faces() map[int32]struct{} {
	return s.faces
}

// Edges returns the selected edge key set.
func (s *Store) Edges() map[topology.EdgeKey]struct{} {
	return s.edges
}

// ActiveLen returns the size of the active mode's set.
func (s *Store) ActiveLen() int {
	switch s.mode {
	case ModeVertex:
		return len(s.verts)
	case ModeEdge:
		return len(s.edges)
	default:
		return len(s.faces)
	}
}

// ClearActive empties the active mode's set only.
func (s *Store) ClearActive() {
	switch s.mode {
	case ModeVertex:
		s.verts = make(map[int32]struct{})
	case ModeEdge:
		s.edges = make(map[topology.EdgeKey]struct{})
	default:
		s.faces = make(map[int32]struct{})
	}
}

// ApplyVertex applies op to a vertex id. OpReplace is treated as an
// insert; callers clear the set once beforehand.
func (s *Store) ApplyVertex(v int32, op Op) {
	applyOp(s.verts, v, op)
}

// ApplyFace applies op to a face id.
func (s *Store) ApplyFace(f int32, op Op) {
	applyOp(s.faces, f, op)
}

// ApplyEdge applies op to an edge key.
func (s *Store) ApplyEdge(k topology.EdgeKey, op Op) {
	applyOp(s.edges, k, op)
}

// prune drops components the mesh no longer has: vertex and face ids
// past the mesh's counts, and edge keys absent from the rebuilt cache.
// Deleting from a map during range is safe in Go.
func (s *Store) prune(m *mesh.Mesh, topo *topology.Cache) {
	nv := int32(m.VertexCount())
	for v := range s.verts {
		if v < 0 || v >= nv {
			delete(s.verts, v)
		}
	}
	nf := int32(m.FaceCount())
	for f := range s.faces {
		if f < 0 || f >= nf {
			delete(s.faces, f)
		}
	}
	for k := range s.edges {
		if !topo.HasEdge(k) {
			delete(s.edges, k)
		}
	}
}

func applyOp[K comparable](set map[K]struct{}, k K, op Op) {
	switch op {
	case OpAdd, OpReplace:
		set[k] = struct{}{}
	case OpSubtract:
		delete(set, k)
	case OpToggle:
		if _, ok := set[k]; ok {
			delete(set, k)
		} else {
			set[k] = struct{}{}
		}
	}
}
