package octree

import (
	"github.com/golang/geo/r3"

	"github.com/worldmesh/spatial/spatialmath"
)

// Entry pairs a stored value with the shape defining its spatial extent. The
// bounds are derived from the shape once at construction. An entry is owned by
// exactly one node's entry list at a time; splitting moves it between lists,
// never duplicates it.
type Entry[T comparable] struct {
	value  T
	shape  spatialmath.Shape
	min    r3.Vector
	max    r3.Vector
	center r3.Vector
}

// NewEntry wraps a value with the shape that defines where it lives.
func NewEntry[T comparable](value T, shape spatialmath.Shape) *Entry[T] {
	return &Entry[T]{
		value:  value,
		shape:  shape,
		min:    shape.Min(),
		max:    shape.Max(),
		center: shape.Center(),
	}
}

// NewPointEntry wraps a value located at a single point.
func NewPointEntry[T comparable](value T, position r3.Vector) *Entry[T] {
	return NewEntry(value, spatialmath.NewPoint(position))
}

// Value returns the stored value.
func (e *Entry[T]) Value() T {
	return e.value
}

// Shape returns the shape keying the entry.
func (e *Entry[T]) Shape() spatialmath.Shape {
	return e.shape
}

// Min returns the minimum corner of the entry's bounding box.
func (e *Entry[T]) Min() r3.Vector {
	return e.min
}

// Max returns the maximum corner of the entry's bounding box.
func (e *Entry[T]) Max() r3.Vector {
	return e.max
}

// Center returns the center of the entry's bounding box.
func (e *Entry[T]) Center() r3.Vector {
	return e.center
}
