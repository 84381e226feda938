// Package bfs implements breadth-first search and weak connectivity over
// core.Graph. The prim_kruskal tests and the hyperlayout CLI use Components
// to check that a spanning forest covers every component of its input.
//
// Complexity:
//
//   - BFS:        Time O(V + E·k), Memory O(V)
//   - Components: Time O(V + E·k), Memory O(V)
package bfs
