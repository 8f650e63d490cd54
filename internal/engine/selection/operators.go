package selection

import (
	"go.uber.org/zap"

	"github.com/Maurichilean3d/Gizmoplug/internal/engine/topology"
)

// Grow expands the active set by the one-ring neighbors of every selected
// element: vertices via the vertex ring, faces via shared boundary edges,
// edges via shared endpoints. The result always contains the input set.
func (e *Engine) Grow() {
	m, topo := e.session()
	if m == nil {
		return
	}
	switch e.store.Mode() {
	case ModeVertex:
		var add []int32
		for v := range e.store.verts {
			for _, n := range topo.VertexNeighbors(v) {
				if _, in := e.store.verts[n]; !in {
					add = append(add, n)
				}
			}
		}
		for _, v := range add {
			e.store.verts[v] = struct{}{}
		}
	case ModeFace:
		var add []int32
		for f := range e.store.faces {
			for _, n := range topo.FaceNeighbors(f) {
				if _, in := e.store.faces[n]; !in {
					add = append(add, n)
				}
			}
		}
		for _, f := range add {
			e.store.faces[f] = struct{}{}
		}
	case ModeEdge:
		var add []topology.EdgeKey
		for k := range e.store.edges {
			for _, n := range topo.EdgeNeighbors(k) {
				if _, in := e.store.edges[n]; !in {
					add = append(add, n)
				}
			}
		}
		for _, k := range add {
			e.store.edges[k] = struct{}{}
		}
	}
	e.logOperator("grow")
	e.sync(m)
}

// Shrink removes the boundary of the active set: an element survives
// only when all of its Grow-relation neighbors are also selected. Edges
// use the endpoint-degree approximation: an edge survives only when both
// endpoints have degree >= 2 within the selected edge sub-graph.
func (e *Engine) Shrink() {
	m, topo := e.session()
	if m == nil {
		return
	}
	switch e.store.Mode() {
	case ModeVertex:
		keep := make(map[int32]struct{}, len(e.store.verts))
		for v := range e.store.verts {
			if allSelected(topo.VertexNeighbors(v), e.store.verts) {
				keep[v] = struct{}{}
			}
		}
		e.store.verts = keep
	case ModeFace:
		keep := make(map[int32]struct{}, len(e.store.faces))
		for f := range e.store.faces {
			if allSelected(topo.FaceNeighbors(f), e.store.faces) {
				keep[f] = struct{}{}
			}
		}
		e.store.faces = keep
	case ModeEdge:
		degree := make(map[int32]int)
		for k := range e.store.edges {
			degree[k.A]++
			degree[k.B]++
		}
		keep := make(map[topology.EdgeKey]struct{}, len(e.store.edges))
		for k := range e.store.edges {
			if degree[k.A] >= 2 && degree[k.B] >= 2 {
				keep[k] = struct{}{}
			}
		}
		e.store.edges = keep
	}
	e.logOperator("shrink")
	e.sync(m)
}

func allSelected(neighbors []int32, set map[int32]struct{}) bool {
	for _, n := range neighbors {
		if _, in := set[n]; !in {
			return false
		}
	}
	return true
}

// SelectLinked replaces the active set with the full connected component
// containing its lowest-id element, found by breadth-first flood fill
// over the active mode's adjacency graph. A no-op on an empty set;
// applying it twice yields the same set. The lowest-id seed keeps the
// result reproducible regardless of set iteration order.
func (e *Engine) SelectLinked() {
	m, topo := e.session()
	if m == nil || e.store.ActiveLen() == 0 {
		return
	}
	switch e.store.Mode() {
	case ModeVertex:
		seed := lowestID(e.store.verts)
		e.store.verts = floodFill(seed, topo.VertexNeighbors)
	case ModeFace:
		seed := lowestID(e.store.faces)
		e.store.faces = floodFill(seed, topo.FaceNeighbors)
	case ModeEdge:
		var seed topology.EdgeKey
		first := true
		for k := range e.store.edges {
			if first || k.Less(seed) {
				seed, first = k, false
			}
		}
		e.store.edges = floodFill(seed, topo.EdgeNeighbors)
	}
	e.logOperator("select-linked")
	e.sync(m)
}

func lowestID(set map[int32]struct{}) int32 {
	var seed int32
	first := true
	for id := range set {
		if first || id < seed {
			seed, first = id, false
		}
	}
	return seed
}

// floodFill collects every node reachable from seed. The visited set
// doubles as the loop guard for degenerate self-referential adjacency.
func floodFill[K comparable](seed K, neighbors func(K) []K) map[K]struct{} {
	visited := map[K]struct{}{seed: {}}
	queue := []K{seed}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, n := range neighbors(node) {
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return visited
}

// Clear empties the active set.
func (e *Engine) Clear() {
	m, _ := e.session()
	if m == nil {
		return
	}
	e.store.ClearActive()
	e.logOperator("clear")
	e.sync(m)
}

// Invert replaces the active set with its complement over the full
// element universe of the current mesh.
func (e *Engine) Invert() {
	m, topo := e.session()
	if m == nil {
		return
	}
	switch e.store.Mode() {
	case ModeVertex:
		next := make(map[int32]struct{})
		for v := int32(0); v < int32(m.VertexCount()); v++ {
			if _, in := e.store.verts[v]; !in {
				next[v] = struct{}{}
			}
		}
		e.store.verts = next
	case ModeFace:
		next := make(map[int32]struct{})
		for f := int32(0); f < int32(m.FaceCount()); f++ {
			if _, in := e.store.faces[f]; !in {
				next[f] = struct{}{}
			}
		}
		e.store.faces = next
	case ModeEdge:
		next := make(map[topology.EdgeKey]struct{})
		topo.Edges(func(k topology.EdgeKey) {
			if _, in := e.store.edges[k]; !in {
				next[k] = struct{}{}
			}
		})
		e.store.edges = next
	}
	e.logOperator("invert")
	e.sync(m)
}

func (e *Engine) logOperator(name string) {
	e.log.Debug("selection operator applied",
		zap.String("operator", name),
		zap.Stringer("mode", e.store.Mode()),
		zap.Int("selected", e.store.ActiveLen()),
	)
}
