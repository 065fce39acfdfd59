package spatialmath

import (
	"github.com/pkg/errors"
)

func newBadShapeDimensionsError(shape Shape) error {
	return errors.Errorf("negative dimensions not allowed for shape type %T", shape)
}

func newBadAxisError(axis Axis) error {
	return errors.Errorf("invalid extrusion axis %d, must be one of x, y, z", int(axis))
}

func newShapeTypeUnsupportedError(shapeType string) error {
	return errors.Errorf("unsupported shape type %q", shapeType)
}
