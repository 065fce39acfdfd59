// Package octree implements a mutable octree: a container that recursively
// partitions 3D space into octants to index values by the shape defining
// their spatial extent.
//
// The tree is not safe for concurrent use. It assumes a single logical owner
// mutating it with synchronous readers; callers needing concurrent access must
// layer their own locking on top.
package octree

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Tree is an octree of entries keyed by their shape bounds. Each node holds up
// to capacity entries before splitting into 8 child octants. The tree's
// bounding box grows to cover every inserted entry and never shrinks, even
// after removals.
type Tree[T comparable] struct {
	logger   golog.Logger
	root     *node[T]
	capacity int
	size     int
}

// New creates an empty octree whose bounds are established by the first
// insertion. Capacity is the number of entries a node holds before it splits;
// it must be chosen so the spatial extent bisected repeatedly never collapses
// below the capacity, or inserts will fail with ErrCannotSplit.
func New[T comparable](capacity int, logger golog.Logger) (*Tree[T], error) {
	if capacity < 1 {
		return nil, errors.Errorf("invalid capacity (%d) for octree", capacity)
	}
	return &Tree[T]{
		logger:   logger,
		root:     newNode[T](capacity, logger),
		capacity: capacity,
	}, nil
}

// NewWithBounds creates an empty octree with its bounding box pre-seeded to
// the given corners. The bounds still grow if entries outside them are
// inserted.
func NewWithBounds[T comparable](min, max r3.Vector, capacity int, logger golog.Logger) (*Tree[T], error) {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return nil, errors.Errorf("invalid bounds for octree, min %v must not exceed max %v", min, max)
	}
	tree, err := New[T](capacity, logger)
	if err != nil {
		return nil, err
	}
	tree.root.growBounds(min, max)
	return tree, nil
}

// Insert adds an entry to the tree, growing the tree's bounds around it. It
// returns ErrCannotSplit if an overfull node cannot produce valid child
// octants; the entry count is left unchanged in that case.
func (t *Tree[T]) Insert(entry *Entry[T]) error {
	if entry == nil || entry.shape == nil {
		t.logger.Debug("no shape given, skipping insertion")
		return nil
	}
	if err := t.root.insert(entry); err != nil {
		return err
	}
	t.size++
	return nil
}

// Remove deletes the first entry whose value equals the given one, searching
// depth-first. Removing an absent value is a no-op. Bounds are not shrunk and
// children are not merged.
func (t *Tree[T]) Remove(value T) {
	if t.root.remove(value) {
		t.size--
	}
}

// Clear drops every entry and child node, resetting the tree to its empty state.
func (t *Tree[T]) Clear() {
	t.root = newNode[T](t.capacity, t.logger)
	t.size = 0
}

// Size returns the number of entries stored in the tree.
func (t *Tree[T]) Size() int {
	return t.size
}

// Capacity returns the number of entries a node holds before splitting.
func (t *Tree[T]) Capacity() int {
	return t.capacity
}

// Bounds returns the tree's bounding box. ok is false until an insertion or
// NewWithBounds has established the box.
func (t *Tree[T]) Bounds() (min, max r3.Vector, ok bool) {
	return t.root.min, t.root.max, t.root.bounded
}
