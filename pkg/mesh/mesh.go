// Package mesh defines the mesh data model shared between the selection
// engine and the hosting application. The host owns the mesh; the engine
// only reads its buffers and writes the per-vertex highlight channel.
package mesh

import "github.com/Maurichilean3d/Gizmoplug/pkg/math"

// QuadSentinel marks the unused fourth corner slot of a triangular face.
const QuadSentinel = -1

// Mesh is a triangle/quad mesh.
// All arrays are flat: Positions has 3 floats per vertex (x,y,z),
// Faces has 4 vertex ids per face where a triangle carries QuadSentinel
// in its fourth slot, and Highlight has one scalar per vertex.
//
// The Highlight channel drives selection visualization only; it is never
// the source of truth for selection membership.
type Mesh struct {
	Positions []float32
	Faces     []int32
	Highlight []float32
}

// New creates a mesh from flat position and face buffers and allocates a
// zeroed highlight channel.
func New(positions []float32, faces []int32) *Mesh {
	return &Mesh{
		Positions: positions,
		Faces:     faces,
		Highlight: make([]float32, len(positions)/3),
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces) / 4
}

// FaceCorners returns the 3 or 4 corner vertex ids of face f, in stored
// order. The returned slice aliases the face buffer; callers must not
// modify it.
func (m *Mesh) FaceCorners(f int32) []int32 {
	base := int(f) * 4
	if m.Faces[base+3] == QuadSentinel {
		return m.Faces[base : base+3]
	}
	return m.Faces[base : base+4]
}

// IsQuad reports whether face f has four corners.
func (m *Mesh) IsQuad(f int32) bool {
	return m.Faces[int(f)*4+3] != QuadSentinel
}

// Position returns the position of vertex v.
func (m *Mesh) Position(v int32) math.Vec3 {
	base := int(v) * 3
	return math.Vec3{
		X: m.Positions[base],
		Y: m.Positions[base+1],
		Z: m.Positions[base+2],
	}
}

// FaceCentroid returns the mean of the face's corner positions.
func (m *Mesh) FaceCentroid(f int32) math.Vec3 {
	corners := m.FaceCorners(f)
	var c math.Vec3
	for _, v := range corners {
		c = c.Add(m.Position(v))
	}
	return c.Scale(1.0 / float32(len(corners)))
}

// FaceNormal returns the unnormalized area-weighted normal of face f.
// Quads are split into two triangles sharing the first corner.
func (m *Mesh) FaceNormal(f int32) math.Vec3 {
	corners := m.FaceCorners(f)
	p0 := m.Position(corners[0])
	n := m.Position(corners[1]).Sub(p0).Cross(m.Position(corners[2]).Sub(p0))
	if len(corners) == 4 {
		n = n.Add(m.Position(corners[2]).Sub(p0).Cross(m.Position(corners[3]).Sub(p0)))
	}
	return n
}
