package selection

import "github.com/Maurichilean3d/Gizmoplug/pkg/mesh"

// writeHighlight projects the active selection onto the mesh's highlight
// channel: every vertex is reset to 0, then the vertices belonging to the
// active mode's selected elements are raised to 1. The channel is
// presentation-only; the store stays the single source of truth and the
// channel is never read back.
func writeHighlight(m *mesh.Mesh, s *Store) {
	for i := range m.Highlight {
		m.Highlight[i] = 0
	}
	raise := func(v int32) {
		if int(v) < len(m.Highlight) {
			m.Highlight[v] = 1
		}
	}

	switch s.Mode() {
	case ModeVertex:
		for v := range s.verts {
			raise(v)
		}
	case ModeEdge:
		for k := range s.edges {
			raise(k.A)
			raise(k.B)
		}
	case ModeFace:
		for f := range s.faces {
			if int(f)*4 >= len(m.Faces) {
				continue
			}
			for _, v := range m.FaceCorners(f) {
				raise(v)
			}
		}
	}
}
