package huffpack

import (
	"container/heap"
)

// PriorityQueue is a min-heap of tree nodes ordered by frequency.
//
// Nodes with equal frequency come out in the order of their sequence
// numbers, which BuildTree assigns in insertion order: leaves in first-seen
// symbol order, then each internal node as it is created.  This makes the
// ordering total, so identical inputs always produce identical trees.
//
// The zero value is an empty queue ready to use.  A PriorityQueue is meant
// to be used by one tree build and then discarded.
type PriorityQueue struct {
	h nodeHeap
}

// Insert adds node to the queue.  O(log n).
func (pq *PriorityQueue) Insert(node *Node) {
	heap.Push(&pq.h, node)
}

// ExtractMin removes and returns the node with the lowest frequency.  The
// second return value is false if the queue is empty.
func (pq *PriorityQueue) ExtractMin() (*Node, bool) {
	if pq.h.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&pq.h).(*Node), true
}

// Len returns the number of nodes in the queue.
func (pq *PriorityQueue) Len() int {
	return pq.h.Len()
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.Freq != b.Freq {
		return a.Freq < b.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
