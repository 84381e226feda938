// Package unionfind implements a generic disjoint-set forest with union by
// size and path compression, giving near-constant amortized Find and Union.
//
// DisjointSet is not safe for concurrent mutation; callers that share one
// across goroutines must serialize access.
//
// Complexity:
//
//   - Add:           O(1)
//   - Find, Union:   O(α(n)) amortized
//   - Memory:        O(n)
package unionfind

import (
	"errors"
	"fmt"
)

// ErrUnknownElement is returned when an element was never added.
var ErrUnknownElement = errors.New("unionfind: unknown element")

// DisjointSet tracks a partition of elements of type N.
type DisjointSet[N comparable] struct {
	parent map[N]N   // parent link; roots point to themselves
	size   map[N]int // component size, valid at roots only
	sets   int       // number of disjoint sets
}

// New returns a forest with one singleton set per element.
// Duplicates in elems are ignored.
func New[N comparable](elems ...N) *DisjointSet[N] {
	d := &DisjointSet[N]{
		parent: make(map[N]N, len(elems)),
		size:   make(map[N]int, len(elems)),
	}
	for _, x := range elems {
		d.Add(x)
	}

	return d
}

// Add inserts x as a singleton. Returns false if x was already present.
func (d *DisjointSet[N]) Add(x N) bool {
	if _, ok := d.parent[x]; ok {
		return false
	}
	d.parent[x] = x
	d.size[x] = 1
	d.sets++

	return true
}

// Find returns the representative of x's set, compressing the path.
//
// Implementation:
//   - Stage 1: Walk parent links up to the root.
//   - Stage 2: Re-point every node on the path directly at the root.
func (d *DisjointSet[N]) Find(x N) (N, error) {
	if _, ok := d.parent[x]; !ok {
		var zero N

		return zero, fmt.Errorf("unionfind: Find(%v): %w", x, ErrUnknownElement)
	}

	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root, nil
}

// Union merges the sets containing a and b, attaching the smaller tree under
// the larger. Returns true iff a merge happened (false when already joined).
func (d *DisjointSet[N]) Union(a, b N) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	delete(d.size, rb)
	d.sets--

	return true, nil
}

// Connected reports whether a and b share a set.
func (d *DisjointSet[N]) Connected(a, b N) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// SizeOf returns the size of the set containing x.
func (d *DisjointSet[N]) SizeOf(x N) (int, error) {
	r, err := d.Find(x)
	if err != nil {
		return 0, err
	}

	return d.size[r], nil
}

// Len returns the number of elements.
func (d *DisjointSet[N]) Len() int { return len(d.parent) }

// Sets returns the number of disjoint sets.
func (d *DisjointSet[N]) Sets() int { return d.sets }
