package huffpack

import (
	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf has no children and stands for
// Symbol; an internal node has exactly two children and its Symbol is
// meaningless.
type Node struct {
	Symbol Symbol

	// Freq is the leaf's count, or the sum of the counts of all leaves
	// beneath an internal node.
	Freq uint64

	Left  *Node
	Right *Node

	seq uint32
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree builds a Huffman tree for the given frequencies and returns its
// root.  If the table holds a single symbol, the root is that symbol's leaf.
//
// Returns ErrEmptyInput if the table is empty.
//
func BuildTree(ft *FrequencyTable) (*Node, error) {
	if ft.Len() == 0 {
		return nil, ErrEmptyInput
	}

	var pq PriorityQueue
	var seq uint32
	for _, symbol := range ft.order {
		pq.Insert(&Node{Symbol: symbol, Freq: ft.counts[symbol], seq: seq})
		seq++
	}

	for pq.Len() > 1 {
		left, _ := pq.ExtractMin()
		right, _ := pq.ExtractMin()
		pq.Insert(&Node{
			Freq:  left.Freq + right.Freq,
			Left:  left,
			Right: right,
			seq:   seq,
		})
		seq++
	}

	root, ok := pq.ExtractMin()
	assert.Assert(ok, "priority queue unexpectedly empty")
	assert.Assertf(root.Freq == ft.total, "root frequency %d != total %d", root.Freq, ft.total)
	return root, nil
}
