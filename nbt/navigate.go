package nbt

// ChildAt returns the child at index i of a list or compound node. Any
// other kind, or an out-of-range index, reports ok == false.
func (n *Node) ChildAt(i int) (*Node, bool) {
	if n.kind != KindList && n.kind != KindCompound {
		return nil, false
	}
	if i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// ChildByKey returns the first compound child with the given key.
// Duplicate keys are permitted on the wire; lookup resolves to the first
// match, per the compound-keys invariant. Any non-compound node reports
// ok == false.
func (n *Node) ChildByKey(key string) (*Node, bool) {
	if n.kind != KindCompound {
		return nil, false
	}
	for _, c := range n.children {
		if c.key != nil && *c.key == key {
			return c, true
		}
	}
	return nil, false
}

// Path walks a sequence of compound keys from n, returning the final
// node reached. It stops (reporting ok == false) at the first missing
// key or the first non-compound node encountered before the path ends.
func (n *Node) Path(keys ...string) (*Node, bool) {
	cur := n
	for _, k := range keys {
		next, ok := cur.ChildByKey(k)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
