package spatialmath

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// sphere is a shape that represents a sphere, it has a center and a radius that fully define it.
type sphere struct {
	center r3.Vector
	radius float64
}

// NewSphere instantiates a new sphere Shape. A radius of zero yields a
// degenerate sphere containing only its center point.
func NewSphere(center r3.Vector, radius float64) (Shape, error) {
	if radius < 0 {
		return nil, newBadShapeDimensionsError(&sphere{})
	}
	return &sphere{center: center, radius: radius}, nil
}

// Min returns the minimum corner of the sphere's bounding box.
func (s *sphere) Min() r3.Vector {
	return s.center.Sub(r3.Vector{X: s.radius, Y: s.radius, Z: s.radius})
}

// Max returns the maximum corner of the sphere's bounding box.
func (s *sphere) Max() r3.Vector {
	return s.center.Add(r3.Vector{X: s.radius, Y: s.radius, Z: s.radius})
}

// Center returns the center of the sphere.
func (s *sphere) Center() r3.Vector {
	return s.center
}

// Contains returns whether the given point is on or inside the sphere. It is
// defined by DistanceSquared so the two always agree, including at boundary
// points where the rounded surface distance reaches zero first.
func (s *sphere) Contains(pt r3.Vector) bool {
	return s.DistanceSquared(pt) == 0
}

// DistanceSquared returns 0 for points inside the sphere, otherwise the
// squared distance from the point to the sphere surface.
func (s *sphere) DistanceSquared(pt r3.Vector) float64 {
	d2 := DistSq(pt, s.center)
	if d2 <= s.radius*s.radius {
		return 0
	}
	d := math.Sqrt(d2) - s.radius
	return d * d
}

// IntersectsBox returns whether the sphere overlaps the given axis-aligned
// box, determined by clamping the sphere center into the box.
func (s *sphere) IntersectsBox(min, max r3.Vector) bool {
	return DistSq(s.center, ClosestPointInBox(s.center, min, max)) <= s.radius*s.radius
}

// AlmostEqual compares the sphere with another shape and checks if they are equivalent.
func (s *sphere) AlmostEqual(other Shape) bool {
	o, ok := other.(*sphere)
	if !ok {
		return false
	}
	return vectorAlmostEqual(s.center, o.center, floatEpsilon) &&
		scalar.EqualWithinAbs(s.radius, o.radius, floatEpsilon)
}

func (s *sphere) MarshalJSON() ([]byte, error) {
	config, err := NewShapeConfig(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(config)
}

// String returns a human readable string that represents the sphere.
func (s *sphere) String() string {
	return fmt.Sprintf("Type: Sphere | Position: X:%.1f, Y:%.1f, Z:%.1f | Radius: %.1f",
		s.center.X, s.center.Y, s.center.Z, s.radius)
}
