package spatialmath

import (
	"encoding/json"
	"fmt"

	"github.com/golang/geo/r3"
)

// point is a degenerate shape with no extent. It is the default shape for
// entries stored at a bare location.
type point struct {
	position r3.Vector
}

// NewPoint instantiates a new point Shape at the given position.
func NewPoint(position r3.Vector) Shape {
	return &point{position: position}
}

// Min returns the minimum corner of the point's bounding box, the point itself.
func (p *point) Min() r3.Vector {
	return p.position
}

// Max returns the maximum corner of the point's bounding box, the point itself.
func (p *point) Max() r3.Vector {
	return p.position
}

// Center returns the position of the point.
func (p *point) Center() r3.Vector {
	return p.position
}

// Contains returns whether the given point coincides with this one.
func (p *point) Contains(pt r3.Vector) bool {
	return p.position == pt
}

// DistanceSquared returns the squared distance between the given point and this one.
func (p *point) DistanceSquared(pt r3.Vector) float64 {
	return DistSq(p.position, pt)
}

// IntersectsBox returns whether the point lies within the given axis-aligned box.
func (p *point) IntersectsBox(min, max r3.Vector) bool {
	return min.X <= p.position.X && p.position.X <= max.X &&
		min.Y <= p.position.Y && p.position.Y <= max.Y &&
		min.Z <= p.position.Z && p.position.Z <= max.Z
}

// AlmostEqual compares the point with another shape and checks if they are equivalent.
func (p *point) AlmostEqual(s Shape) bool {
	other, ok := s.(*point)
	if !ok {
		return false
	}
	return vectorAlmostEqual(p.position, other.position, floatEpsilon)
}

func (p *point) MarshalJSON() ([]byte, error) {
	config, err := NewShapeConfig(p)
	if err != nil {
		return nil, err
	}
	return json.Marshal(config)
}

// String returns a human readable string that represents the point.
func (p *point) String() string {
	return fmt.Sprintf("Type: Point | Position: X:%.1f, Y:%.1f, Z:%.1f",
		p.position.X, p.position.Y, p.position.Z)
}
