package octree

import (
	"github.com/golang/geo/r3"
)

// Find returns the values of all entries whose shape contains the given point.
func (t *Tree[T]) Find(pt r3.Vector) []T {
	return entryValues(t.FindEntries(pt))
}

// FindEntries returns all entries whose shape contains the given point.
func (t *Tree[T]) FindEntries(pt r3.Vector) []*Entry[T] {
	return t.search(
		func(n *node[T]) bool { return n.containsPoint(pt) },
		func(e *Entry[T]) bool { return e.shape.Contains(pt) },
	)
}

// FindNearby returns the values of all entries whose shape lies within radius
// of the given center.
func (t *Tree[T]) FindNearby(center r3.Vector, radius float64) []T {
	return entryValues(t.FindNearbyEntries(center, radius))
}

// FindNearbyEntries returns all entries whose shape lies within radius of the
// given center.
func (t *Tree[T]) FindNearbyEntries(center r3.Vector, radius float64) []*Entry[T] {
	if radius < 0 {
		return nil
	}
	radiusSq := radius * radius
	return t.search(
		func(n *node[T]) bool { return n.overlapsSphere(center, radiusSq) },
		func(e *Entry[T]) bool { return e.shape.DistanceSquared(center) <= radiusSq },
	)
}

// FindInRegion returns the values of all entries whose shape intersects the
// axis-aligned box spanned by min and max.
func (t *Tree[T]) FindInRegion(min, max r3.Vector) []T {
	return entryValues(t.FindInRegionEntries(min, max))
}

// FindInRegionEntries returns all entries whose shape intersects the
// axis-aligned box spanned by min and max.
func (t *Tree[T]) FindInRegionEntries(min, max r3.Vector) []*Entry[T] {
	return t.search(
		func(n *node[T]) bool { return n.overlapsBox(min, max) },
		func(e *Entry[T]) bool { return e.shape.IntersectsBox(min, max) },
	)
}

// search walks the tree with an explicit stack rather than call-stack
// recursion, visiting every node whose bounds pass the prune predicate and
// collecting entries that pass the match predicate. A query region straddling
// a splitting plane passes the predicate for multiple children, so no match is
// ever missed; results are deduplicated by entry identity so none is reported
// twice.
func (t *Tree[T]) search(prune func(*node[T]) bool, match func(*Entry[T]) bool) []*Entry[T] {
	var found []*Entry[T]
	seen := make(map[*Entry[T]]struct{})
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !n.bounded || !prune(n) {
			continue
		}
		for _, entry := range n.entries {
			if _, ok := seen[entry]; ok {
				continue
			}
			if match(entry) {
				seen[entry] = struct{}{}
				found = append(found, entry)
			}
		}
		if n.divided() {
			for _, child := range n.children {
				stack = append(stack, child)
			}
		}
	}
	return found
}

// Iterate calls fn for every stored value until fn returns false. Each call
// builds a fresh traversal stack, so iteration is restartable.
func (t *Tree[T]) Iterate(fn func(v T) bool) {
	t.IterateEntries(func(e *Entry[T]) bool { return fn(e.value) })
}

// IterateEntries calls fn for every stored entry until fn returns false.
func (t *Tree[T]) IterateEntries(fn func(e *Entry[T]) bool) {
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, entry := range n.entries {
			if !fn(entry) {
				return
			}
		}
		if n.divided() {
			for _, child := range n.children {
				stack = append(stack, child)
			}
		}
	}
}

func entryValues[T comparable](entries []*Entry[T]) []T {
	if len(entries) == 0 {
		return nil
	}
	values := make([]T, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.value)
	}
	return values
}
