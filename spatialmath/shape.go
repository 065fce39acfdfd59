package spatialmath

import (
	"encoding/json"
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

const floatEpsilon = 1e-8

// Shape is an entry point with which to access all of the geometric primitives
// that can key an entry in a spatial index. Min and Max are the corners of the
// shape's tight axis-aligned bounding box and Center is derived from them.
type Shape interface {
	// Min returns the minimum corner of the shape's bounding box.
	Min() r3.Vector

	// Max returns the maximum corner of the shape's bounding box.
	Max() r3.Vector

	// Center returns the center of the shape's bounding box.
	Center() r3.Vector

	// Contains returns whether the given point lies on or inside the shape.
	Contains(pt r3.Vector) bool

	// DistanceSquared returns 0 for points on or inside the shape, otherwise
	// the squared distance from the point to the nearest point on the shape's
	// boundary. DistanceSquared(pt) == 0 exactly when Contains(pt) is true.
	DistanceSquared(pt r3.Vector) float64

	// IntersectsBox returns whether the shape overlaps the axis-aligned box
	// spanned by min and max. Touching boundaries count as overlap.
	IntersectsBox(min, max r3.Vector) bool

	// AlmostEqual compares the shape with another and checks if they are equivalent.
	AlmostEqual(Shape) bool

	json.Marshaler
	fmt.Stringer
}

// Axis selects one of the three coordinate axes.
type Axis int

// The three coordinate axes, in the order they cycle.
const (
	AxisX = Axis(iota)
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// component returns the coordinate of v along the given axis.
func component(v r3.Vector, axis Axis) float64 {
	switch axis {
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	default:
		return v.X
	}
}

// boxVsBoxOverlap checks two axis-aligned boxes for overlap, boundaries inclusive.
func boxVsBoxOverlap(aMin, aMax, bMin, bMax r3.Vector) bool {
	return aMin.X <= bMax.X && bMin.X <= aMax.X &&
		aMin.Y <= bMax.Y && bMin.Y <= aMax.Y &&
		aMin.Z <= bMax.Z && bMin.Z <= aMax.Z
}

func vectorAlmostEqual(a, b r3.Vector, eps float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, eps) &&
		scalar.EqualWithinAbs(a.Y, b.Y, eps) &&
		scalar.EqualWithinAbs(a.Z, b.Z, eps)
}
