package huffman

// DeriveCodes walks t and assigns each leaf's symbol the bit-string of
// its root-to-leaf path: '0' for each left edge, '1' for each right
// edge.  The resulting table is prefix-free by construction, because no
// leaf lies on the path to another leaf.
//
// The walk uses an explicit stack rather than recursion; highly skewed
// inputs produce near-linear-chain trees whose depth approaches the
// number of distinct symbols.
//
// Special cases: the empty tree yields an empty table, and a tree whose
// root is itself a leaf yields the one-entry table {symbol: "0"}, since
// a childless root offers no edge to traverse.
func DeriveCodes(t *Tree) CodeTable {
	table := make(CodeTable, t.LeafCount())
	if t.Empty() {
		return table
	}
	if t.leaf(t.root) {
		table[t.symbol(t.root)] = MakeCode("0")
		return table
	}

	type frame struct {
		ref  nodeRef
		path string
	}

	stack := make([]frame, 0, t.LeafCount())
	stack = append(stack, frame{ref: t.root, path: ""})
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.leaf(top.ref) {
			table[t.symbol(top.ref)] = MakeCode(top.path)
			continue
		}
		n := t.nodes[top.ref]
		stack = append(stack, frame{ref: n.right, path: top.path + "1"})
		stack = append(stack, frame{ref: n.left, path: top.path + "0"})
	}
	return table
}
