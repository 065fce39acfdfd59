package octree

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/worldmesh/spatial/spatialmath"
)

func newTestTree(t *testing.T, capacity int) *Tree[int] {
	t.Helper()
	tree, err := New[int](capacity, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	return tree
}

func TestNewOctree(t *testing.T) {
	logger := golog.NewTestLogger(t)

	_, err := New[int](0, logger)
	test.That(t, err, test.ShouldNotBeNil)

	tree, err := New[int](4, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tree.Size(), test.ShouldEqual, 0)
	test.That(t, tree.Capacity(), test.ShouldEqual, 4)

	_, _, ok := tree.Bounds()
	test.That(t, ok, test.ShouldBeFalse)

	_, err = NewWithBounds[int](spatialmath.NewVector(1, 0, 0), spatialmath.NewVector(0, 1, 1), 4, logger)
	test.That(t, err, test.ShouldNotBeNil)

	bounded, err := NewWithBounds[int](spatialmath.NewVector(-5, -5, -5), spatialmath.NewVector(5, 5, 5), 4, logger)
	test.That(t, err, test.ShouldBeNil)
	min, max, ok := bounded.Bounds()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, min, test.ShouldResemble, spatialmath.NewVector(-5, -5, -5))
	test.That(t, max, test.ShouldResemble, spatialmath.NewVector(5, 5, 5))
}

func TestBoundsGrowOnInsert(t *testing.T) {
	tree := newTestTree(t, 4)

	test.That(t, tree.Insert(NewPointEntry(1, spatialmath.NewVector(1, 1, 1))), test.ShouldBeNil)
	min, max, ok := tree.Bounds()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, min, test.ShouldResemble, spatialmath.NewVector(1, 1, 1))
	test.That(t, max, test.ShouldResemble, spatialmath.NewVector(1, 1, 1))

	shape, err := spatialmath.NewSphere(spatialmath.NewVector(-4, 0, 0), 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tree.Insert(NewEntry(2, shape)), test.ShouldBeNil)

	min, max, _ = tree.Bounds()
	test.That(t, min, test.ShouldResemble, spatialmath.NewVector(-6, -2, -2))
	test.That(t, max, test.ShouldResemble, spatialmath.NewVector(1, 2, 2))

	// bounds do not shrink on removal
	tree.Remove(2)
	min, max, _ = tree.Bounds()
	test.That(t, min, test.ShouldResemble, spatialmath.NewVector(-6, -2, -2))
	test.That(t, max, test.ShouldResemble, spatialmath.NewVector(1, 2, 2))
}

func TestInsertSplitScenario(t *testing.T) {
	tree, err := NewWithBounds[string](
		spatialmath.NewVector(-1, -1, -1), spatialmath.NewVector(11, 11, 11), 2, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)

	test.That(t, tree.Insert(NewPointEntry("origin", spatialmath.NewVector(0, 0, 0))), test.ShouldBeNil)
	test.That(t, tree.Insert(NewPointEntry("x", spatialmath.NewVector(10, 0, 0))), test.ShouldBeNil)
	test.That(t, tree.root.divided(), test.ShouldBeFalse)

	test.That(t, tree.Insert(NewPointEntry("y", spatialmath.NewVector(0, 10, 0))), test.ShouldBeNil)
	test.That(t, tree.root.divided(), test.ShouldBeTrue)
	test.That(t, tree.root.entries, test.ShouldBeEmpty)

	test.That(t, tree.Insert(NewPointEntry("z", spatialmath.NewVector(0, 0, 10))), test.ShouldBeNil)
	test.That(t, tree.Size(), test.ShouldEqual, 4)

	test.That(t, tree.Find(spatialmath.NewVector(0, 0, 0)), test.ShouldResemble, []string{"origin"})

	nearby := tree.FindNearby(spatialmath.NewVector(0, 0, 0), 15)
	test.That(t, nearby, test.ShouldHaveLength, 4)
	test.That(t, nearby, test.ShouldContain, "origin")
	test.That(t, nearby, test.ShouldContain, "x")
	test.That(t, nearby, test.ShouldContain, "y")
	test.That(t, nearby, test.ShouldContain, "z")
}

func TestInsertSizingError(t *testing.T) {
	tree, err := NewWithBounds[int](
		spatialmath.NewVector(0, 0, 0), spatialmath.NewVector(1, 1, 1), 10, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)

	for i := 0; i < 10; i++ {
		pt := spatialmath.NewVector(float64(i)*0.05, 0.5, 0.5)
		test.That(t, tree.Insert(NewPointEntry(i, pt)), test.ShouldBeNil)
	}

	err = tree.Insert(NewPointEntry(10, spatialmath.NewVector(0.5, 0.5, 0.5)))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrCannotSplit), test.ShouldBeTrue)
	test.That(t, tree.Size(), test.ShouldEqual, 10)

	// the failed entry was not left behind in the tree
	test.That(t, tree.Find(spatialmath.NewVector(0.5, 0.5, 0.5)), test.ShouldBeEmpty)
}

// Without seeded bounds, collinear points grow a box with zero extent on two
// axes; the overflow split must refuse rather than divide into degenerate
// octants.
func TestInsertCollinearSizingError(t *testing.T) {
	tree := newTestTree(t, 2)
	test.That(t, tree.Insert(NewPointEntry(0, spatialmath.NewVector(0, 0, 0))), test.ShouldBeNil)
	test.That(t, tree.Insert(NewPointEntry(1, spatialmath.NewVector(10, 0, 0))), test.ShouldBeNil)

	err := tree.Insert(NewPointEntry(2, spatialmath.NewVector(20, 0, 0)))
	test.That(t, errors.Is(err, ErrCannotSplit), test.ShouldBeTrue)
	test.That(t, tree.Size(), test.ShouldEqual, 2)
	test.That(t, tree.root.divided(), test.ShouldBeFalse)
}

func TestInsertNilEntry(t *testing.T) {
	tree := newTestTree(t, 2)
	test.That(t, tree.Insert(nil), test.ShouldBeNil)
	test.That(t, tree.Size(), test.ShouldEqual, 0)
}

func TestRemove(t *testing.T) {
	// seeded bounds keep every axis extent above the capacity so the
	// collinear entries can still trigger splits
	tree, err := NewWithBounds[int](
		spatialmath.NewVector(-1, -1, -1), spatialmath.NewVector(51, 51, 51), 2, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	points := []struct {
		v int
		x float64
	}{
		{1, 0}, {2, 10}, {3, 20}, {4, 30}, {5, 40}, {6, 50},
	}
	for _, p := range points {
		test.That(t, tree.Insert(NewPointEntry(p.v, spatialmath.NewVector(p.x, 0, 0))), test.ShouldBeNil)
	}
	test.That(t, tree.root.divided(), test.ShouldBeTrue)
	test.That(t, tree.Size(), test.ShouldEqual, 6)

	tree.Remove(3)
	test.That(t, tree.Size(), test.ShouldEqual, 5)
	test.That(t, tree.Find(spatialmath.NewVector(20, 0, 0)), test.ShouldBeEmpty)
	test.That(t, tree.FindNearby(spatialmath.NewVector(20, 0, 0), 5), test.ShouldBeEmpty)

	var values []int
	tree.Iterate(func(v int) bool {
		values = append(values, v)
		return true
	})
	test.That(t, values, test.ShouldHaveLength, 5)
	test.That(t, values, test.ShouldNotContain, 3)

	// removing an absent value changes nothing
	tree.Remove(99)
	test.That(t, tree.Size(), test.ShouldEqual, 5)
	test.That(t, tree.FindNearby(spatialmath.NewVector(25, 0, 0), 100), test.ShouldHaveLength, 5)
}

func TestClear(t *testing.T) {
	tree, err := NewWithBounds[int](
		spatialmath.NewVector(-1, -1, -1), spatialmath.NewVector(46, 46, 46), 2, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	for i := 0; i < 10; i++ {
		test.That(t, tree.Insert(NewPointEntry(i, spatialmath.NewVector(float64(i*5), 0, 0))), test.ShouldBeNil)
	}
	test.That(t, tree.Size(), test.ShouldEqual, 10)

	tree.Clear()
	test.That(t, tree.Size(), test.ShouldEqual, 0)
	_, _, ok := tree.Bounds()
	test.That(t, ok, test.ShouldBeFalse)
	test.That(t, tree.FindNearby(spatialmath.NewVector(0, 0, 0), 1000), test.ShouldBeEmpty)

	// the cleared tree accepts new insertions
	test.That(t, tree.Insert(NewPointEntry(42, spatialmath.NewVector(1, 2, 3))), test.ShouldBeNil)
	test.That(t, tree.Size(), test.ShouldEqual, 1)
}

func TestIterateEarlyStop(t *testing.T) {
	tree, err := NewWithBounds[int](
		spatialmath.NewVector(-1, -1, -1), spatialmath.NewVector(60, 60, 60), 2, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	for i := 0; i < 20; i++ {
		test.That(t, tree.Insert(NewPointEntry(i, spatialmath.NewVector(float64(i*3), 0, 0))), test.ShouldBeNil)
	}

	count := 0
	tree.Iterate(func(int) bool {
		count++
		return count < 5
	})
	test.That(t, count, test.ShouldEqual, 5)

	// iteration restarts from scratch on each call
	count = 0
	tree.IterateEntries(func(*Entry[int]) bool {
		count++
		return true
	})
	test.That(t, count, test.ShouldEqual, 20)
}

func TestEqualValuesDistinctEntries(t *testing.T) {
	tree := newTestTree(t, 4)
	pt := spatialmath.NewVector(1, 1, 1)
	test.That(t, tree.Insert(NewPointEntry(7, pt)), test.ShouldBeNil)
	test.That(t, tree.Insert(NewPointEntry(7, pt)), test.ShouldBeNil)

	// entries are distinct even though their values are equal
	test.That(t, tree.FindEntries(pt), test.ShouldHaveLength, 2)

	// remove deletes only the first matching entry
	tree.Remove(7)
	test.That(t, tree.Size(), test.ShouldEqual, 1)
	test.That(t, tree.Find(pt), test.ShouldResemble, []int{7})
}
