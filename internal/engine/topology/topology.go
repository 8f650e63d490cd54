// Package topology derives adjacency structures from a mesh face buffer.
// The cache is built once per mesh in O(faces) and answers the neighbor
// queries the selection operators need. Non-manifold and degenerate input
// is tolerated: an edge keeps every incident face, and a face with
// repeated vertex ids simply produces self-referential adjacency.
package topology

import (
	"github.com/Maurichilean3d/Gizmoplug/pkg/mesh"
)

// EdgeKey identifies an unordered pair of vertex ids forming an edge.
// It is canonicalized so A <= B, collapsing the two directed
// representations of a shared edge into one identity.
type EdgeKey struct {
	A, B int32
}

// MakeEdgeKey canonicalizes a vertex pair into an EdgeKey.
func MakeEdgeKey(a, b int32) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}
}

// Less orders edge keys lexicographically. Used to pick deterministic
// seeds and for stable test output.
func (k EdgeKey) Less(other EdgeKey) bool {
	if k.A != other.A {
		return k.A < other.A
	}
	return k.B < other.B
}

// Cache holds the adjacency derived from one mesh. It is immutable after
// Build and valid only for the mesh it was built from.
type Cache struct {
	mesh *mesh.Mesh

	edgeFaces map[EdgeKey][]int32 // incident faces per edge
	faceEdges [][]EdgeKey         // boundary edges per face, in corner order
	vertEdges map[int32][]EdgeKey // edges per endpoint vertex
	vertRing  map[int32][]int32   // one-ring vertex neighbors
}

// Build derives the full adjacency for m.
func Build(m *mesh.Mesh) *Cache {
	c := &Cache{
		mesh:      m,
		edgeFaces: make(map[EdgeKey][]int32),
		faceEdges: make([][]EdgeKey, m.FaceCount()),
		vertEdges: make(map[int32][]EdgeKey),
		vertRing:  make(map[int32][]int32),
	}

	for f := int32(0); f < int32(m.FaceCount()); f++ {
		corners := m.FaceCorners(f)
		n := len(corners)
		edges := make([]EdgeKey, 0, n)
		for i := 0; i < n; i++ {
			key := MakeEdgeKey(corners[i], corners[(i+1)%n])
			if _, seen := c.edgeFaces[key]; !seen {
				c.registerEndpoints(key)
			}
			c.edgeFaces[key] = append(c.edgeFaces[key], f)
			edges = append(edges, key)
		}
		c.faceEdges[f] = edges
	}
	return c
}

// registerEndpoints records a newly discovered edge on both endpoints.
// A degenerate edge (A == B) is recorded once and yields a
// self-referential ring entry.
func (c *Cache) registerEndpoints(key EdgeKey) {
	c.vertEdges[key.A] = append(c.vertEdges[key.A], key)
	c.vertRing[key.A] = append(c.vertRing[key.A], key.B)
	if key.A != key.B {
		c.vertEdges[key.B] = append(c.vertEdges[key.B], key)
		c.vertRing[key.B] = append(c.vertRing[key.B], key.A)
	}
}

// ValidFor reports whether the cache was built from m. Mesh identity is
// pointer identity; a different mesh requires a full rebuild.
func (c *Cache) ValidFor(m *mesh.Mesh) bool {
	return c != nil && c.mesh == m
}

// Mesh returns the mesh the cache was built from.
func (c *Cache) Mesh() *mesh.Mesh {
	return c.mesh
}

// EdgeCount returns the number of distinct edges.
func (c *Cache) EdgeCount() int {
	return len(c.edgeFaces)
}

// HasEdge reports whether the mesh contains the given edge.
func (c *Cache) HasEdge(key EdgeKey) bool {
	_, ok := c.edgeFaces[key]
	return ok
}

// EdgeFaces returns the faces incident to an edge: one for a boundary
// edge, two for a manifold interior edge, more for non-manifold input.
func (c *Cache) EdgeFaces(key EdgeKey) []int32 {
	return c.edgeFaces[key]
}

// FaceEdges returns the boundary edges of face f in corner order.
func (c *Cache) FaceEdges(f int32) []EdgeKey {
	return c.faceEdges[f]
}

// VertexNeighbors returns the one-ring vertex neighbors of v.
func (c *Cache) VertexNeighbors(v int32) []int32 {
	return c.vertRing[v]
}

// VertexEdges returns the edges having v as an endpoint.
func (c *Cache) VertexEdges(v int32) []EdgeKey {
	return c.vertEdges[v]
}

// FaceNeighbors returns the faces sharing at least one boundary edge
// with f, excluding f itself. Each neighbor appears once even when it
// shares several edges.
func (c *Cache) FaceNeighbors(f int32) []int32 {
	var out []int32
	seen := map[int32]struct{}{f: {}}
	for _, key := range c.faceEdges[f] {
		for _, other := range c.edgeFaces[key] {
			if _, dup := seen[other]; dup {
				continue
			}
			seen[other] = struct{}{}
			out = append(out, other)
		}
	}
	return out
}

// EdgeNeighbors returns the edges sharing an endpoint with key,
// excluding key itself.
func (c *Cache) EdgeNeighbors(key EdgeKey) []EdgeKey {
	var out []EdgeKey
	seen := map[EdgeKey]struct{}{key: {}}
	for _, v := range [2]int32{key.A, key.B} {
		for _, other := range c.vertEdges[v] {
			if _, dup := seen[other]; dup {
				continue
			}
			seen[other] = struct{}{}
			out = append(out, other)
		}
	}
	return out
}

// Edges calls fn for every distinct edge. Iteration order is
// unspecified.
func (c *Cache) Edges(fn func(EdgeKey)) {
	for key := range c.edgeFaces {
		fn(key)
	}
}
