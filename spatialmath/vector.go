// Package spatialmath defines the geometric primitives used by the spatial
// indexes: helpers over 3D vectors and the Shape capability implemented by
// axis-aligned boxes, spheres, cylinders and points.
package spatialmath

import (
	"github.com/golang/geo/r3"
)

// NewVector is a convenience method for creating a vector.
func NewVector(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b r3.Vector) r3.Vector {
	return a.Add(b).Mul(0.5)
}

// DistSq returns the squared euclidean distance between a and b.
func DistSq(a, b r3.Vector) float64 {
	return a.Sub(b).Norm2()
}

// ClosestPointInBox returns the point within the axis-aligned box [min, max]
// closest to pt. A point already inside the box is returned unchanged.
func ClosestPointInBox(pt, min, max r3.Vector) r3.Vector {
	return r3.Vector{
		X: clamp(pt.X, min.X, max.X),
		Y: clamp(pt.Y, min.Y, max.Y),
		Z: clamp(pt.Z, min.Z, max.Z),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Vectors is a series of three-dimensional vectors.
type Vectors []r3.Vector

// Len returns the number of vectors.
func (vs Vectors) Len() int {
	return len(vs)
}

// Swap swaps two vectors positionally.
func (vs Vectors) Swap(i, j int) {
	vs[i], vs[j] = vs[j], vs[i]
}

// Less returns which vector is less than the other based on
// r3.Vector.Cmp.
func (vs Vectors) Less(i, j int) bool {
	cmp := vs[i].Cmp(vs[j])
	if cmp == 0 {
		return false
	}
	return cmp < 0
}
