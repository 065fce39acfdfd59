package octree

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.uber.org/multierr"

	"github.com/worldmesh/spatial/spatialmath"
)

// node is a single octree node. The root and every child are the same type, so
// a node is also a complete subtree. Bounds are unset until the first
// insertion establishes them and only ever grow afterwards; removals never
// shrink them.
type node[T comparable] struct {
	logger   golog.Logger
	capacity int

	bounded bool
	min     r3.Vector
	max     r3.Vector
	center  r3.Vector

	entries  []*Entry[T]
	children [8]*node[T]
}

func newNode[T comparable](capacity int, logger golog.Logger) *node[T] {
	return &node[T]{logger: logger, capacity: capacity}
}

func (n *node[T]) divided() bool {
	return n.children[0] != nil
}

// growBounds unions the node's bounding box with the given box, establishing
// the box on first use. The center is kept at the midpoint of the bounds.
func (n *node[T]) growBounds(min, max r3.Vector) {
	if !n.bounded {
		n.min, n.max = min, max
		n.bounded = true
	} else {
		if min.X < n.min.X {
			n.min.X = min.X
		}
		if min.Y < n.min.Y {
			n.min.Y = min.Y
		}
		if min.Z < n.min.Z {
			n.min.Z = min.Z
		}
		if max.X > n.max.X {
			n.max.X = max.X
		}
		if max.Y > n.max.Y {
			n.max.Y = max.Y
		}
		if max.Z > n.max.Z {
			n.max.Z = max.Z
		}
	}
	n.center = spatialmath.Midpoint(n.min, n.max)
}

// octant returns the index of the child octant for the given point. A
// coordinate at or above the node center clears the axis bit, so points
// exactly on a splitting plane resolve to a single deterministic child.
func (n *node[T]) octant(pt r3.Vector) int {
	i := 0
	if pt.X < n.center.X {
		i |= 1
	}
	if pt.Y < n.center.Y {
		i |= 2
	}
	if pt.Z < n.center.Z {
		i |= 4
	}
	return i
}

// octantBounds returns the bounds of the child octant with the given index,
// obtained by bisecting each axis of the node's bounds at its center.
func (n *node[T]) octantBounds(i int) (r3.Vector, r3.Vector) {
	min, max := n.min, n.max
	if i&1 == 0 {
		min.X = n.center.X
	} else {
		max.X = n.center.X
	}
	if i&2 == 0 {
		min.Y = n.center.Y
	} else {
		max.Y = n.center.Y
	}
	if i&4 == 0 {
		min.Z = n.center.Z
	} else {
		max.Z = n.center.Z
	}
	return min, max
}

// insert grows the node's bounds around the entry, routes it to the matching
// child octant if the node has split, and otherwise appends it locally,
// splitting when the local list exceeds capacity.
func (n *node[T]) insert(entry *Entry[T]) error {
	n.growBounds(entry.min, entry.max)
	if n.divided() {
		return n.children[n.octant(entry.center)].insert(entry)
	}
	n.entries = append(n.entries, entry)
	if len(n.entries) <= n.capacity {
		return nil
	}
	if err := n.split(); err != nil {
		if !n.divided() {
			// the split failed its sizing precondition before moving anything;
			// pop the appended entry so the failed insert leaves the tree unchanged
			n.entries = n.entries[:len(n.entries)-1]
		}
		return err
	}
	return nil
}

// split allocates the 8 child octants and moves every local entry into the
// child matching its center. Splitting requires every axis extent to exceed
// the capacity, preventing unbounded recursive splitting over clustered
// entries or a geometrically undersized tree.
func (n *node[T]) split() error {
	ext := n.max.Sub(n.min)
	if ext.X <= float64(n.capacity) || ext.Y <= float64(n.capacity) || ext.Z <= float64(n.capacity) {
		return newCannotSplitError([3]float64{ext.X, ext.Y, ext.Z}, n.capacity)
	}

	n.logger.Debugf("splitting octree node at center (%.2f, %.2f, %.2f) with %d entries",
		n.center.X, n.center.Y, n.center.Z, len(n.entries))

	for i := range n.children {
		child := newNode[T](n.capacity, n.logger)
		childMin, childMax := n.octantBounds(i)
		child.growBounds(childMin, childMax)
		n.children[i] = child
	}

	entries := n.entries
	n.entries = nil
	var err error
	for _, entry := range entries {
		err = multierr.Combine(err, n.children[n.octant(entry.center)].insert(entry))
	}
	return err
}

// remove searches children first, then the local entry list, removing the
// first entry whose value equals the target. Children are not merged and
// bounds are not shrunk.
func (n *node[T]) remove(value T) bool {
	if n.divided() {
		for _, child := range n.children {
			if child.remove(value) {
				return true
			}
		}
	}
	for i, entry := range n.entries {
		if entry.value == value {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return true
		}
	}
	return false
}

// containsPoint reports whether the node's bounding box contains pt, boundaries inclusive.
func (n *node[T]) containsPoint(pt r3.Vector) bool {
	return n.min.X <= pt.X && pt.X <= n.max.X &&
		n.min.Y <= pt.Y && pt.Y <= n.max.Y &&
		n.min.Z <= pt.Z && pt.Z <= n.max.Z
}

// overlapsBox reports whether the node's bounding box overlaps the given box.
func (n *node[T]) overlapsBox(min, max r3.Vector) bool {
	return n.min.X <= max.X && min.X <= n.max.X &&
		n.min.Y <= max.Y && min.Y <= n.max.Y &&
		n.min.Z <= max.Z && min.Z <= n.max.Z
}

// overlapsSphere reports whether the node's bounding box reaches the sphere
// around center, determined by clamping the center into the box.
func (n *node[T]) overlapsSphere(center r3.Vector, radiusSq float64) bool {
	return spatialmath.DistSq(center, spatialmath.ClosestPointInBox(center, n.min, n.max)) <= radiusSq
}
