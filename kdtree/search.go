package kdtree

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"

	"github.com/worldmesh/spatial/spatialmath"
)

// PointAndValue pairs a stored point with its value.
type PointAndValue[T any] struct {
	P r3.Vector
	V T
}

// visit pairs a node with the depth it sits at, for explicit-stack traversals.
type visit[T any] struct {
	n     *node[T]
	depth int
}

// NearestNeighbor returns the stored point closest to pt and its value. ok is
// false for an empty tree. The traversal follows the branch indicated by the
// axis comparison first and pushes the sibling branch unconditionally;
// per-node best tracking keeps the result exact at the cost of extra visits.
func (t *Tree[T]) NearestNeighbor(pt r3.Vector) (r3.Vector, T, bool) {
	var best *node[T]
	bestDistSq := math.Inf(1)
	if t.root != nil {
		stack := []visit[T]{{t.root, 0}}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if d := spatialmath.DistSq(v.n.point, pt); d < bestDistSq {
				best, bestDistSq = v.n, d
			}
			near, far := v.n.left, v.n.right
			if component(pt, v.depth) >= component(v.n.point, v.depth) {
				near, far = far, near
			}
			if far != nil {
				stack = append(stack, visit[T]{far, v.depth + 1})
			}
			if near != nil {
				stack = append(stack, visit[T]{near, v.depth + 1})
			}
		}
	}
	if best == nil {
		var zero T
		return r3.Vector{}, zero, false
	}
	return best.point, best.value, true
}

// NearestNeighbors returns up to n stored points closest to pt, ordered by
// ascending distance. A sibling branch is descended only while the candidate
// list is unfilled or its splitting plane is closer than the worst kept
// distance.
func (t *Tree[T]) NearestNeighbors(pt r3.Vector, n int) []PointAndValue[T] {
	if n < 1 || t.root == nil {
		return nil
	}
	type candidate struct {
		pv     PointAndValue[T]
		distSq float64
	}
	best := make([]candidate, 0, n)
	worst := func() float64 { return best[len(best)-1].distSq }

	stack := []visit[T]{{t.root, 0}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if d := spatialmath.DistSq(v.n.point, pt); len(best) < n || d < worst() {
			i := sort.Search(len(best), func(i int) bool { return best[i].distSq > d })
			if len(best) == n {
				best = best[:n-1]
			}
			best = append(best, candidate{})
			copy(best[i+1:], best[i:])
			best[i] = candidate{PointAndValue[T]{v.n.point, v.n.value}, d}
		}

		planeDist := component(pt, v.depth) - component(v.n.point, v.depth)
		near, far := v.n.left, v.n.right
		if planeDist >= 0 {
			near, far = far, near
		}
		if far != nil && (len(best) < n || planeDist*planeDist <= worst()) {
			stack = append(stack, visit[T]{far, v.depth + 1})
		}
		if near != nil {
			stack = append(stack, visit[T]{near, v.depth + 1})
		}
	}

	result := make([]PointAndValue[T], 0, len(best))
	for _, c := range best {
		result = append(result, c.pv)
	}
	return result
}

// RangeSearch returns all stored points within radius of center. Both
// children of a node are descended whenever the sphere crosses the node's
// splitting plane; otherwise only the branch on the center's side is.
func (t *Tree[T]) RangeSearch(center r3.Vector, radius float64) []PointAndValue[T] {
	if radius < 0 || t.root == nil {
		return nil
	}
	radiusSq := radius * radius
	var found []PointAndValue[T]
	stack := []visit[T]{{t.root, 0}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if spatialmath.DistSq(v.n.point, center) <= radiusSq {
			found = append(found, PointAndValue[T]{v.n.point, v.n.value})
		}
		planeDist := component(center, v.depth) - component(v.n.point, v.depth)
		if math.Abs(planeDist) <= radius {
			if v.n.left != nil {
				stack = append(stack, visit[T]{v.n.left, v.depth + 1})
			}
			if v.n.right != nil {
				stack = append(stack, visit[T]{v.n.right, v.depth + 1})
			}
		} else if planeDist < 0 {
			if v.n.left != nil {
				stack = append(stack, visit[T]{v.n.left, v.depth + 1})
			}
		} else if v.n.right != nil {
			stack = append(stack, visit[T]{v.n.right, v.depth + 1})
		}
	}
	return found
}

// RangeSearchBox returns all stored points inside the axis-aligned box spanned
// by min and max, boundaries inclusive. The left child is descended whenever
// min does not exceed the node's on-axis coordinate and the right child
// whenever max does not fall below it; both may be.
func (t *Tree[T]) RangeSearchBox(min, max r3.Vector) []PointAndValue[T] {
	if t.root == nil {
		return nil
	}
	var found []PointAndValue[T]
	stack := []visit[T]{{t.root, 0}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pt := v.n.point
		if min.X <= pt.X && pt.X <= max.X &&
			min.Y <= pt.Y && pt.Y <= max.Y &&
			min.Z <= pt.Z && pt.Z <= max.Z {
			found = append(found, PointAndValue[T]{pt, v.n.value})
		}
		c := component(pt, v.depth)
		if v.n.left != nil && component(min, v.depth) <= c {
			stack = append(stack, visit[T]{v.n.left, v.depth + 1})
		}
		if v.n.right != nil && component(max, v.depth) >= c {
			stack = append(stack, visit[T]{v.n.right, v.depth + 1})
		}
	}
	return found
}
