// File: methods_adjacent.go
// Role: Neighbor enumeration (Neighbors) and adjacency bookkeeping helpers.
//
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//
// Concurrency:
//   - Read operations hold muVert or muEdgeAdj read locks as needed.
//   - Helpers are called only under appropriate write locks by mutating code.
package core

import "sort"

// Neighbors lists all edges touching id: directed edges only where
// e.From==id, undirected edges in both directions with a self-loop appearing
// once. mdpmodel.Builder.Build calls this per state to recover its staged
// choices and transitions.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// ensureAdjacency guarantees the presence of nested maps for (from,to). Must
// be called under muEdgeAdj write lock by mutating code paths.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
