package spatialmath

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// box is an axis-aligned rectangular prism, fully defined by its center and dimensions.
type box struct {
	center   r3.Vector
	halfSize r3.Vector
}

// NewBox instantiates a new axis-aligned box Shape.
func NewBox(center, dims r3.Vector) (Shape, error) {
	// Negative dimensions not allowed. Zero dimensions are allowed for bounding boxes, etc.
	if dims.X < 0 || dims.Y < 0 || dims.Z < 0 {
		return nil, newBadShapeDimensionsError(&box{})
	}
	return &box{center: center, halfSize: dims.Mul(0.5)}, nil
}

// Min returns the minimum corner of the box.
func (b *box) Min() r3.Vector {
	return b.center.Sub(b.halfSize)
}

// Max returns the maximum corner of the box.
func (b *box) Max() r3.Vector {
	return b.center.Add(b.halfSize)
}

// Center returns the center of the box.
func (b *box) Center() r3.Vector {
	return b.center
}

// Contains returns whether the given point is on or inside the box.
func (b *box) Contains(pt r3.Vector) bool {
	d := pt.Sub(b.center)
	return math.Abs(d.X) <= b.halfSize.X &&
		math.Abs(d.Y) <= b.halfSize.Y &&
		math.Abs(d.Z) <= b.halfSize.Z
}

// DistanceSquared returns 0 for points inside the box, otherwise the squared
// distance from the point to the nearest point on the box surface.
func (b *box) DistanceSquared(pt r3.Vector) float64 {
	return DistSq(pt, ClosestPointInBox(pt, b.Min(), b.Max()))
}

// IntersectsBox returns whether the box overlaps the given axis-aligned box.
func (b *box) IntersectsBox(min, max r3.Vector) bool {
	return boxVsBoxOverlap(b.Min(), b.Max(), min, max)
}

// AlmostEqual compares the box with another shape and checks if they are equivalent.
func (b *box) AlmostEqual(s Shape) bool {
	other, ok := s.(*box)
	if !ok {
		return false
	}
	return vectorAlmostEqual(b.center, other.center, floatEpsilon) &&
		vectorAlmostEqual(b.halfSize, other.halfSize, floatEpsilon)
}

func (b *box) MarshalJSON() ([]byte, error) {
	config, err := NewShapeConfig(b)
	if err != nil {
		return nil, err
	}
	return json.Marshal(config)
}

// String returns a human readable string that represents the box.
func (b *box) String() string {
	return fmt.Sprintf("Type: Box | Position: X:%.1f, Y:%.1f, Z:%.1f | Dims: X:%.1f, Y:%.1f, Z:%.1f",
		b.center.X, b.center.Y, b.center.Z, 2*b.halfSize.X, 2*b.halfSize.Y, 2*b.halfSize.Z)
}
