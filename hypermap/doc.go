// Package hypermap lays out graph nodes in N-dimensional space with a
// hyperassociative map: a force-directed relaxation advanced in discrete,
// bulk-synchronous rounds over a bounded worker pool.
//
// One Map.Align call is one round. Every node computes a candidate position
// from the same Snapshot of committed positions (no node ever sees another
// node's new position within a round), the engine waits for all candidates,
// subtracts their centroid and commits. The map's centroid therefore stays at
// the origin after every committed round.
//
// The force law is pluggable through ForceLaw. SpringLaw is the default.
//
// A failed round (task error, panic, non-finite candidate, submission
// failure) commits nothing and returns an error wrapping ErrRoundFailed. The
// caller decides whether to retry.
//
// Structural changes to the graph must happen between rounds; call Map.Sync
// afterwards to place new nodes and drop removed ones.
//
// Example:
//
//	g := core.NewGraph[string]()
//	_ = g.AddEdge(core.NewUndirectedEdge("A", "B"))
//	m, _ := hypermap.New(g, 2, hypermap.WithSeed(7))
//	defer m.Close()
//	_ = m.Run(ctx, 100)
package hypermap
