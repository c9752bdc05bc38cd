package huffman

import (
	"container/heap"
	"math"
)

// nodeRef addresses a node within a Tree's arena.  nilRef means "no node".
type nodeRef int32

const nilRef = nodeRef(-1)

// node is one arena slot: a leaf (left == right == nilRef) holding a
// symbol and its count, or an internal node whose count is the sum of
// both children's counts.
type node struct {
	count  uint64
	left   nodeRef
	right  nodeRef
	symbol Symbol // meaningful only for leaves
}

// Tree is a strict binary Huffman code tree: every internal node has
// exactly two children, and every leaf corresponds to exactly one
// distinct input symbol.  Nodes live in a flat arena addressed by index
// rather than in nested pointers, so traversals never recurse and the
// structure is trivially flat to serialize.
//
// The zero Tree and the result of Build on an empty FrequencyTable are
// the empty tree.
type Tree struct {
	nodes []node
	root  nodeRef
}

// Build constructs the Huffman code tree for ft by repeatedly merging
// the two lowest-count trees until a single tree remains.
//
// Removal order is deterministic: trees are ordered by ascending count,
// with ties broken by ascending insertion sequence.  Leaves are inserted
// in ascending symbol order before any merge happens, so two leaves with
// equal counts order by symbol value, and a merged tree orders after any
// equal-count tree that existed before it.  Of the two trees removed for
// a merge, the first becomes the left child.
//
// Build is total: zero distinct symbols yield the empty tree, and a
// single distinct symbol yields a tree whose root is that bare leaf.
func Build(ft *FrequencyTable) *Tree {
	t := &Tree{root: nilRef}
	syms := ft.Symbols()
	if len(syms) == 0 {
		return t
	}

	q := buildQueue{make([]buildItem, 0, len(syms)), 0}
	for _, sym := range syms {
		ref := t.add(node{count: ft.Count(sym), left: nilRef, right: nilRef, symbol: sym})
		q.list = append(q.list, buildItem{ref: ref, count: ft.Count(sym), seq: q.nextSeq()})
	}
	q.Init()

	for q.Len() > 1 {
		t1 := heap.Pop(&q).(buildItem)
		t2 := heap.Pop(&q).(buildItem)

		// Compute the merged count using saturating addition.
		sum := t1.count + t2.count
		if sum < t1.count {
			sum = math.MaxUint64
		}

		ref := t.add(node{count: sum, left: t1.ref, right: t2.ref})
		heap.Push(&q, buildItem{ref: ref, count: sum, seq: q.nextSeq()})
	}

	t.root = heap.Pop(&q).(buildItem).ref
	return t
}

func (t *Tree) add(n node) nodeRef {
	t.nodes = append(t.nodes, n)
	return nodeRef(len(t.nodes) - 1)
}

// Empty reports whether this tree has no nodes at all.
func (t *Tree) Empty() bool {
	return t.root == nilRef
}

// LeafCount returns the number of leaves, which equals the number of
// distinct symbols the tree was built from.
func (t *Tree) LeafCount() int {
	n := 0
	for _, nd := range t.nodes {
		if nd.left == nilRef {
			n++
		}
	}
	return n
}

// TotalCount returns the root's count, which equals the total number of
// symbols in the input the tree was built from.  The empty tree reports 0.
func (t *Tree) TotalCount() uint64 {
	if t.root == nilRef {
		return 0
	}
	return t.nodes[t.root].count
}

func (t *Tree) leaf(ref nodeRef) bool {
	return t.nodes[ref].left == nilRef
}

func (t *Tree) symbol(ref nodeRef) Symbol {
	return t.nodes[ref].symbol
}

// type buildItem + type buildQueue {{{

// buildItem is one tree awaiting a merge: the arena index of its root,
// its count, and the sequence number that breaks count ties.
type buildItem struct {
	ref   nodeRef
	count uint64
	seq   uint32
}

type buildQueue struct {
	list []buildItem
	seq  uint32
}

func (q *buildQueue) nextSeq() uint32 {
	s := q.seq
	q.seq++
	return s
}

func (q *buildQueue) Init() {
	heap.Init(q)
}

func (q *buildQueue) Len() int {
	return len(q.list)
}

func (q *buildQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *buildQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if a.count != b.count {
		return a.count < b.count
	}
	return a.seq < b.seq
}

func (q *buildQueue) Push(x interface{}) {
	q.list = append(q.list, x.(buildItem))
}

func (q *buildQueue) Pop() interface{} {
	last := len(q.list) - 1
	x := q.list[last]
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*buildQueue)(nil)

// }}}
