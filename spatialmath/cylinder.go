package spatialmath

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// cylinder is a disc of the given radius extruded symmetrically about its
// center along one of the coordinate axes.
type cylinder struct {
	center     r3.Vector
	radius     float64
	halfLength float64
	axis       Axis
}

// NewCylinder instantiates a new cylinder Shape extruded along the given axis.
func NewCylinder(center r3.Vector, radius, length float64, axis Axis) (Shape, error) {
	if radius < 0 || length < 0 {
		return nil, newBadShapeDimensionsError(&cylinder{})
	}
	if axis < AxisX || axis > AxisZ {
		return nil, newBadAxisError(axis)
	}
	return &cylinder{center: center, radius: radius, halfLength: length / 2, axis: axis}, nil
}

// extents returns the half size of the cylinder's bounding box.
func (c *cylinder) extents() r3.Vector {
	ext := r3.Vector{X: c.radius, Y: c.radius, Z: c.radius}
	switch c.axis {
	case AxisX:
		ext.X = c.halfLength
	case AxisY:
		ext.Y = c.halfLength
	case AxisZ:
		ext.Z = c.halfLength
	}
	return ext
}

// decompose splits the offset from the cylinder center to pt into the signed
// distance along the extrusion axis and the squared radial distance in the
// cross-section plane.
func (c *cylinder) decompose(pt r3.Vector) (axial, radialSq float64) {
	d := pt.Sub(c.center)
	switch c.axis {
	case AxisX:
		return d.X, d.Y*d.Y + d.Z*d.Z
	case AxisY:
		return d.Y, d.X*d.X + d.Z*d.Z
	default:
		return d.Z, d.X*d.X + d.Y*d.Y
	}
}

// Min returns the minimum corner of the cylinder's bounding box.
func (c *cylinder) Min() r3.Vector {
	return c.center.Sub(c.extents())
}

// Max returns the maximum corner of the cylinder's bounding box.
func (c *cylinder) Max() r3.Vector {
	return c.center.Add(c.extents())
}

// Center returns the center of the cylinder.
func (c *cylinder) Center() r3.Vector {
	return c.center
}

// Contains returns whether the given point is on or inside the cylinder. It is
// defined by DistanceSquared so the two always agree, including at boundary
// points where the rounded surface distance reaches zero first.
func (c *cylinder) Contains(pt r3.Vector) bool {
	return c.DistanceSquared(pt) == 0
}

// DistanceSquared returns 0 for points inside the cylinder, otherwise the
// squared distance from the point to the nearest point on the cylinder surface.
func (c *cylinder) DistanceSquared(pt r3.Vector) float64 {
	axial, radialSq := c.decompose(pt)
	axialOut := math.Abs(axial) - c.halfLength
	if axialOut < 0 {
		axialOut = 0
	}
	radialOut := 0.0
	if radialSq > c.radius*c.radius {
		radialOut = math.Sqrt(radialSq) - c.radius
	}
	return axialOut*axialOut + radialOut*radialOut
}

// IntersectsBox returns whether the cylinder overlaps the given axis-aligned
// box. Because the cylinder is the product of an interval along its axis and a
// disc in the cross-section plane, the test decomposes exactly: the intervals
// must overlap on the axis and the disc must reach the box's cross-section
// rectangle.
func (c *cylinder) IntersectsBox(min, max r3.Vector) bool {
	if component(c.center, c.axis)+c.halfLength < component(min, c.axis) ||
		component(c.center, c.axis)-c.halfLength > component(max, c.axis) {
		return false
	}
	clamped := ClosestPointInBox(c.center, min, max)
	_, radialSq := c.decompose(clamped)
	return radialSq <= c.radius*c.radius
}

// AlmostEqual compares the cylinder with another shape and checks if they are equivalent.
func (c *cylinder) AlmostEqual(s Shape) bool {
	other, ok := s.(*cylinder)
	if !ok {
		return false
	}
	return c.axis == other.axis &&
		vectorAlmostEqual(c.center, other.center, floatEpsilon) &&
		scalar.EqualWithinAbs(c.radius, other.radius, floatEpsilon) &&
		scalar.EqualWithinAbs(c.halfLength, other.halfLength, floatEpsilon)
}

func (c *cylinder) MarshalJSON() ([]byte, error) {
	config, err := NewShapeConfig(c)
	if err != nil {
		return nil, err
	}
	return json.Marshal(config)
}

// String returns a human readable string that represents the cylinder.
func (c *cylinder) String() string {
	return fmt.Sprintf("Type: Cylinder | Position: X:%.1f, Y:%.1f, Z:%.1f | Axis: %s | Radius: %.1f | Length: %.1f",
		c.center.X, c.center.Y, c.center.Z, c.axis, c.radius, 2*c.halfLength)
}
