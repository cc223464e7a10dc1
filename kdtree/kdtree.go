// Package kdtree implements a generic balanced kd-tree over any item with
// a position, used by the photon map: median-split construction on
// rotating axes, a k-nearest-neighbor query backed by a bounded max-heap,
// and an unbounded radius query used by the progressive photon update.
package kdtree

import (
	"container/heap"
	"sort"

	lmath "lumenray/math"
)

// Positionable is the single capability the tree needs from its items.
type Positionable interface {
	Pos() lmath.Vector3
}

// Tree is a node in the kd-tree; a nil *Tree is the empty tree.
type Tree[T Positionable] struct {
	item        T
	bounds      lmath.AABB
	left, right *Tree[T]
}

// Build constructs a balanced tree over items via recursive median split,
// rotating the split axis by (axis+1)%3 at each level. Input items are
// not mutated; Build copies into a working slice before sorting.
func Build[T Positionable](items []T) *Tree[T] {
	work := make([]T, len(items))
	copy(work, items)
	return build(work, 0)
}

func build[T Positionable](items []T, axis int) *Tree[T] {
	if len(items) == 0 {
		return nil
	}
	sort.Slice(items, func(i, j int) bool {
		return axisVal(items[i].Pos(), axis) < axisVal(items[j].Pos(), axis)
	})
	mid := len(items) / 2
	node := &Tree[T]{item: items[mid]}
	node.left = build(items[:mid], (axis+1)%3)
	node.right = build(items[mid+1:], (axis+1)%3)

	b := lmath.EmptyAABB().Extend(items[mid].Pos())
	if node.left != nil {
		b = b.Union(node.left.bounds)
	}
	if node.right != nil {
		b = b.Union(node.right.bounds)
	}
	node.bounds = b
	return node
}

func axisVal(v lmath.Vector3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// heapEntry pairs an item with its squared distance to the query point.
type heapEntry[T Positionable] struct {
	item   T
	distSq float64
}

// maxHeap keeps the k currently-nearest entries with the farthest at the
// root, so a new candidate only needs comparing against heap[0].
type maxHeap[T Positionable] []heapEntry[T]

func (h maxHeap[T]) Len() int            { return len(h) }
func (h maxHeap[T]) Less(i, j int) bool  { return h[i].distSq > h[j].distSq }
func (h maxHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap[T]) Push(x interface{}) { *h = append(*h, x.(heapEntry[T])) }
func (h *maxHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// KNN returns the k items nearest to pos, unordered. Descends the nearer
// child first and prunes any subtree whose AABB squared-distance lower
// bound to pos exceeds the current k-th best distance once the heap is
// full.
func (t *Tree[T]) KNN(pos lmath.Vector3, k int) []T {
	if k <= 0 {
		return nil
	}
	h := &maxHeap[T]{}
	heap.Init(h)
	t.knn(pos, k, h)
	result := make([]T, len(*h))
	for i, e := range *h {
		result[i] = e.item
	}
	return result
}

func (t *Tree[T]) knn(pos lmath.Vector3, k int, h *maxHeap[T]) {
	if t == nil {
		return
	}
	d := sqDist(pos, t.item.Pos())
	if h.Len() < k {
		heap.Push(h, heapEntry[T]{item: t.item, distSq: d})
	} else if d < (*h)[0].distSq {
		heap.Pop(h)
		heap.Push(h, heapEntry[T]{item: t.item, distSq: d})
	}

	worst := lmath.Inf
	if h.Len() == k {
		worst = (*h)[0].distSq
	}

	first, second := t.left, t.right
	if first != nil && second != nil && first.bounds.SquaredLowerBound(pos) > second.bounds.SquaredLowerBound(pos) {
		first, second = second, first
	}
	for _, child := range [2]*Tree[T]{first, second} {
		if child == nil {
			continue
		}
		if h.Len() < k || child.bounds.SquaredLowerBound(pos) <= worst {
			child.knn(pos, k, h)
			if h.Len() == k {
				worst = (*h)[0].distSq
			}
		}
	}
}

// Within returns every item within radius r of pos, descending
// unconditionally into any child whose squared lower bound is <= r^2.
func (t *Tree[T]) Within(pos lmath.Vector3, r float64) []T {
	var out []T
	t.within(pos, r*r, &out)
	return out
}

func (t *Tree[T]) within(pos lmath.Vector3, rSq float64, out *[]T) {
	if t == nil {
		return
	}
	if sqDist(pos, t.item.Pos()) <= rSq {
		*out = append(*out, t.item)
	}
	if t.left != nil && t.left.bounds.SquaredLowerBound(pos) <= rSq {
		t.left.within(pos, rSq, out)
	}
	if t.right != nil && t.right.bounds.SquaredLowerBound(pos) <= rSq {
		t.right.within(pos, rSq, out)
	}
}

func sqDist(a, b lmath.Vector3) float64 {
	return a.Sub(b).LengthSqr()
}
