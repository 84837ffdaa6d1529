// File: methods_edges.go
// Role: Edge lifecycle for MDP transition staging: AddEdge/GetEdge, plus nextEdgeID().
//
// Determinism:
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
//
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
package core

import (
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge stages one transition from state `from` to state `to`. weight
// carries the per-transition reward rTsa on a weighted graph (the only mode
// mdpmodel.Builder constructs); opts may override directedness in a mixed
// graph.
//
//   - Without WithMixedEdges, any non-empty opts returns ErrMixedEdgesNotAllowed.
//   - Without WithWeighted, weight!=0 returns ErrBadWeight.
//   - Without WithLoops, from==to returns ErrLoopNotAllowed.
//   - Without WithMultiEdges, a second edge on (from,to) returns ErrMultiEdgeNotAllowed.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := nextEdgeID(g)

	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}
	if e.From == e.To && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// GetEdge returns a pointer to the Edge with the given edgeID, or
// ErrEdgeNotFound if no such edge is staged. The returned *Edge is read-only
// by convention; mdpmodel.Builder attaches choice/probability metadata to
// it immediately after AddEdge returns.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// nextEdgeID returns a new unique textual edge ID ("e1", "e2", ...), using an
// atomic counter instead of fmt.Sprintf to avoid heap churn in hot paths.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
