// Package kdtree implements a mutable 3-dimensional k-d tree: a binary tree
// partitioning space by cycling the splitting axis with depth (x, then y,
// then z).
//
// The tree is not self-balancing; pathological insertion orders (e.g. sorted
// input) produce long chains. It is not safe for concurrent use.
package kdtree

import (
	"github.com/golang/geo/r3"
)

const dims = 3

// node is a single k-d tree node owning a point key, its associated value and
// up to two children. The node's splitting axis is its depth from the root
// modulo 3.
type node[T any] struct {
	point r3.Vector
	value T
	left  *node[T]
	right *node[T]
}

// Tree is a k-d tree of values keyed by 3D points.
type Tree[T any] struct {
	root *node[T]
	size int
}

// New creates an empty k-d tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Size returns the number of points stored in the tree.
func (t *Tree[T]) Size() int {
	return t.size
}

// Clear drops every node, resetting the tree to its empty state.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// axisComponent returns the coordinate of pt on the given axis.
func axisComponent(pt r3.Vector, axis int) float64 {
	switch axis {
	case 1:
		return pt.Y
	case 2:
		return pt.Z
	default:
		return pt.X
	}
}

// component returns the coordinate of pt on the splitting axis used at the
// given depth.
func component(pt r3.Vector, depth int) float64 {
	return axisComponent(pt, depth%dims)
}

// Insert adds a value keyed by the given point. Duplicate points are allowed;
// each insertion creates its own node.
func (t *Tree[T]) Insert(pt r3.Vector, value T) {
	t.root = insertNode(t.root, pt, value, 0)
	t.size++
}

// insertNode descends by comparing the target to each node on its splitting
// axis, going left on strictly smaller coordinates, and creates a leaf at the
// first absent child slot.
func insertNode[T any](n *node[T], pt r3.Vector, value T, depth int) *node[T] {
	if n == nil {
		return &node[T]{point: pt, value: value}
	}
	if component(pt, depth) < component(n.point, depth) {
		n.left = insertNode(n.left, pt, value, depth+1)
	} else {
		n.right = insertNode(n.right, pt, value, depth+1)
	}
	return n
}

// Remove deletes the node keyed by the given point. Removing an absent point
// is a no-op.
func (t *Tree[T]) Remove(pt r3.Vector) {
	var removed bool
	t.root, removed = removeNode(t.root, pt, 0)
	if removed {
		t.size--
	}
}

// removeNode locates the target by axis-cycling descent and removes it. A leaf
// detaches; a node with one child promotes that child into its slot; a node
// with two children takes over the point and value of the minimum node of its
// right subtree along its own axis, then deletes that minimum from the right
// subtree. The right-subtree minimum on the deleting node's axis preserves the
// ordering invariant along every axis.
func removeNode[T any](n *node[T], pt r3.Vector, depth int) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	if n.point == pt {
		switch {
		case n.left == nil && n.right == nil:
			return nil, true
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		default:
			min := findMin(n.right, depth%dims, depth+1)
			n.point = min.point
			n.value = min.value
			n.right, _ = removeNode(n.right, min.point, depth+1)
			return n, true
		}
	}
	var removed bool
	if component(pt, depth) < component(n.point, depth) {
		n.left, removed = removeNode(n.left, pt, depth+1)
	} else {
		n.right, removed = removeNode(n.right, pt, depth+1)
	}
	return n, removed
}

// findMin returns the node with the smallest coordinate on the given axis
// within the subtree rooted at n. At a node splitting on the target axis only
// the left child can hold a smaller coordinate; at any other node the
// axis-cycling means smaller coordinates can sit on either side, so both
// children are searched.
func findMin[T any](n *node[T], axis, depth int) *node[T] {
	if depth%dims == axis {
		if n.left == nil {
			return n
		}
		return findMin(n.left, axis, depth+1)
	}
	min := n
	if n.left != nil {
		if l := findMin(n.left, axis, depth+1); axisComponent(l.point, axis) < axisComponent(min.point, axis) {
			min = l
		}
	}
	if n.right != nil {
		if r := findMin(n.right, axis, depth+1); axisComponent(r.point, axis) < axisComponent(min.point, axis) {
			min = r
		}
	}
	return min
}

// Iterate calls fn for every stored point and value until fn returns false.
// Each call builds a fresh traversal stack, so iteration is restartable.
func (t *Tree[T]) Iterate(fn func(pt r3.Vector, value T) bool) {
	if t.root == nil {
		return
	}
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.point, n.value) {
			return
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}
}
