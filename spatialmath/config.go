package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// ShapeConfig is a serializable description of a Shape.
type ShapeConfig struct {
	Type string `json:"type"`

	// center of the shape
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	// parameters used for defining a box's dimensions
	DimX float64 `json:"dim_x,omitempty"`
	DimY float64 `json:"dim_y,omitempty"`
	DimZ float64 `json:"dim_z,omitempty"`

	// parameters used for defining a sphere's or cylinder's circular cross section
	R float64 `json:"r,omitempty"`

	// parameters used for defining a cylinder's length and extrusion axis
	L    float64 `json:"l,omitempty"`
	Axis string  `json:"axis,omitempty"`
}

// NewShapeConfig converts a Shape into its serializable description.
func NewShapeConfig(s Shape) (*ShapeConfig, error) {
	config := &ShapeConfig{}
	center := s.Center()
	config.X, config.Y, config.Z = center.X, center.Y, center.Z
	switch shape := s.(type) {
	case *box:
		config.Type = "box"
		dims := shape.halfSize.Mul(2)
		config.DimX, config.DimY, config.DimZ = dims.X, dims.Y, dims.Z
	case *sphere:
		config.Type = "sphere"
		config.R = shape.radius
	case *cylinder:
		config.Type = "cylinder"
		config.R = shape.radius
		config.L = 2 * shape.halfLength
		config.Axis = shape.axis.String()
	case *point:
		config.Type = "point"
	default:
		return nil, newShapeTypeUnsupportedError(fmt.Sprintf("%T", s))
	}
	return config, nil
}

// ParseConfig converts a ShapeConfig into the Shape it describes.
func (config *ShapeConfig) ParseConfig() (Shape, error) {
	center := r3.Vector{X: config.X, Y: config.Y, Z: config.Z}
	switch config.Type {
	case "box":
		return NewBox(center, r3.Vector{X: config.DimX, Y: config.DimY, Z: config.DimZ})
	case "sphere":
		return NewSphere(center, config.R)
	case "cylinder":
		axis, err := parseAxis(config.Axis)
		if err != nil {
			return nil, err
		}
		return NewCylinder(center, config.R, config.L, axis)
	case "point":
		return NewPoint(center), nil
	default:
		return nil, newShapeTypeUnsupportedError(config.Type)
	}
}

func parseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return AxisX, newBadAxisError(Axis(-1))
	}
}
