package octree

import (
	"github.com/pkg/errors"
)

// ErrCannotSplit is returned from Insert when an overfull node's bounding box
// is too small relative to the tree capacity to produce non-degenerate child
// octants. It indicates a misconfiguration (capacity too large for the spatial
// extent, or degenerate clustered input), not a transient condition.
var ErrCannotSplit = errors.New("octree node bounds too small to split")

func newCannotSplitError(extents [3]float64, capacity int) error {
	return errors.Wrapf(ErrCannotSplit,
		"extents (%.2f, %.2f, %.2f) must each exceed capacity %d",
		extents[0], extents[1], extents[2], capacity)
}
