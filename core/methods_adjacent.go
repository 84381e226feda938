// File: methods_adjacent.go
// Role: Neighborhood APIs: adjacency and traversability in both directions.
// Determinism:
//   - Every result lists edges in insertion order, and nodes in the order of
//     their edge followed by the edge's own endpoint order.
// Concurrency:
//   - All methods hold g.mu for reading for the whole call.
// AI-HINT (file):
//   - AdjacentNodes is a multiset: k parallel or loop edges yield a neighbor k times.
//   - "From" follows e.TraversableNodes(n); "To" asks each co-endpoint m whether
//     n ∈ e.TraversableNodes(m).

package core

import "fmt"

// AdjacentEdges returns every edge that lists n as an endpoint.
//
// Errors:
//   - ErrNodeNotFound if n is absent.
//
// Complexity: O(d log d).
func (g *Graph[N]) AdjacentEdges(n N) ([]Edge[N], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, err := g.incidentLocked(n)
	if err != nil {
		return nil, fmt.Errorf("core: AdjacentEdges(%v): %w", n, err)
	}

	return edges, nil
}

// AdjacentNodes returns, for every incident edge, that edge's endpoints with
// one occurrence of n removed. The result is a multiset in edge order.
//
// Errors:
//   - ErrNodeNotFound if n is absent.
func (g *Graph[N]) AdjacentNodes(n N) ([]N, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, err := g.incidentLocked(n)
	if err != nil {
		return nil, fmt.Errorf("core: AdjacentNodes(%v): %w", n, err)
	}
	out := make([]N, 0, len(edges))
	for _, e := range edges {
		rest, _ := withoutOne(e.Nodes(), n)
		out = append(out, rest...)
	}

	return out, nil
}

// TraversableAdjacentEdgesFrom returns incident edges that can be left from n.
//
// Errors:
//   - ErrNodeNotFound if n is absent.
func (g *Graph[N]) TraversableAdjacentEdgesFrom(n N) ([]Edge[N], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, err := g.incidentLocked(n)
	if err != nil {
		return nil, fmt.Errorf("core: TraversableAdjacentEdgesFrom(%v): %w", n, err)
	}
	out := edges[:0]
	for _, e := range edges {
		if e.IsTraversable(n) {
			out = append(out, e)
		}
	}

	return out, nil
}

// TraversableAdjacentNodesFrom returns the concatenation of
// e.TraversableNodes(n) over every incident edge e.
//
// Errors:
//   - ErrNodeNotFound if n is absent.
//   - Any error an Edge implementation returns from TraversableNodes.
func (g *Graph[N]) TraversableAdjacentNodesFrom(n N) ([]N, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, err := g.incidentLocked(n)
	if err != nil {
		return nil, fmt.Errorf("core: TraversableAdjacentNodesFrom(%v): %w", n, err)
	}
	out := make([]N, 0, len(edges))
	for _, e := range edges {
		targets, terr := e.TraversableNodes(n)
		if terr != nil {
			return nil, fmt.Errorf("core: TraversableAdjacentNodesFrom(%v): %w", n, terr)
		}
		out = append(out, targets...)
	}

	return out, nil
}

// TraversableAdjacentEdgesTo returns incident edges through which some other
// endpoint can reach n.
//
// Errors:
//   - ErrNodeNotFound if n is absent.
func (g *Graph[N]) TraversableAdjacentEdgesTo(n N) ([]Edge[N], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, err := g.incidentLocked(n)
	if err != nil {
		return nil, fmt.Errorf("core: TraversableAdjacentEdgesTo(%v): %w", n, err)
	}
	var out []Edge[N]
	for _, e := range edges {
		sources, serr := sourcesInto(e, n)
		if serr != nil {
			return nil, fmt.Errorf("core: TraversableAdjacentEdgesTo(%v): %w", n, serr)
		}
		if len(sources) > 0 {
			out = append(out, e)
		}
	}

	return out, nil
}

// TraversableAdjacentNodesTo returns every co-endpoint m (per occurrence)
// with n ∈ e.TraversableNodes(m), across incident edges.
//
// Errors:
//   - ErrNodeNotFound if n is absent.
func (g *Graph[N]) TraversableAdjacentNodesTo(n N) ([]N, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, err := g.incidentLocked(n)
	if err != nil {
		return nil, fmt.Errorf("core: TraversableAdjacentNodesTo(%v): %w", n, err)
	}
	var out []N
	for _, e := range edges {
		sources, serr := sourcesInto(e, n)
		if serr != nil {
			return nil, fmt.Errorf("core: TraversableAdjacentNodesTo(%v): %w", n, serr)
		}
		out = append(out, sources...)
	}

	return out, nil
}

// Degree returns len(AdjacentNodes(n)).
func (g *Graph[N]) Degree(n N) (int, error) {
	nbrs, err := g.AdjacentNodes(n)
	if err != nil {
		return 0, err
	}

	return len(nbrs), nil
}

// incidentLocked returns n's incident edges in insertion order.
// Caller must hold g.mu.
func (g *Graph[N]) incidentLocked(n N) ([]Edge[N], error) {
	bucket, ok := g.adjacency[n]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]Edge[N], 0, len(bucket))
	for _, seq := range sortedSeqs(bucket) {
		if entry, found := g.edges.Get(edgeEntry[N]{seq: seq}); found {
			out = append(out, entry.edge)
		}
	}

	return out, nil
}

// sourcesInto lists the co-endpoints of n in e that can traverse e into n.
func sourcesInto[N comparable](e Edge[N], n N) ([]N, error) {
	others, ok := withoutOne(e.Nodes(), n)
	if !ok {
		return nil, ErrNotEndpoint
	}
	var out []N
	for _, m := range others {
		targets, err := e.TraversableNodes(m)
		if err != nil {
			return nil, err
		}
		if indexOf(targets, n) >= 0 {
			out = append(out, m)
		}
	}

	return out, nil
}
