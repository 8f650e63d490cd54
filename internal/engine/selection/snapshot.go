package selection

import "github.com/Maurichilean3d/Gizmoplug/pkg/mesh"

// Snapshot is an immutable copy of the highlight channel taken at
// activation time, tagged with the vertex count at capture.
type Snapshot struct {
	values []float32
	count  int
}

// Capture copies the mesh's highlight channel, clamping each value to
// [0,1].
func Capture(m *mesh.Mesh) *Snapshot {
	s := &Snapshot{
		values: make([]float32, len(m.Highlight)),
		count:  m.VertexCount(),
	}
	for i, v := range m.Highlight {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		s.values[i] = v
	}
	return s
}

// VertexCount returns the vertex count recorded at capture time.
func (s *Snapshot) VertexCount() int {
	return s.count
}

// Restore writes the captured values back verbatim. When the mesh's
// vertex count no longer matches the capture, out-of-range indices are
// skipped rather than corrupting the channel.
func (s *Snapshot) Restore(m *mesh.Mesh) {
	n := len(s.values)
	if len(m.Highlight) < n {
		n = len(m.Highlight)
	}
	copy(m.Highlight[:n], s.values[:n])
}
