package nbt

// DeepCopy returns an independent orphan-root copy of n and its entire
// subtree. Scalar, string, and array payloads are duplicated into fresh
// buffers; no node in the result shares storage with n or aliases any
// node reachable from it.
func (n *Node) DeepCopy() *Node {
	cp := &Node{
		kind:     n.kind,
		i64:      n.i64,
		f64:      n.f64,
		str:      n.str,
		elemKind: n.elemKind,
	}
	if n.key != nil {
		k := *n.key
		cp.key = &k
	}
	if n.bytes != nil {
		cp.bytes = append([]byte(nil), n.bytes...)
	}
	if n.ints != nil {
		cp.ints = append([]int32(nil), n.ints...)
	}
	if n.longs != nil {
		cp.longs = append([]int64(nil), n.longs...)
	}
	if n.children != nil {
		cp.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			child := c.DeepCopy()
			child.parent = cp
			cp.children[i] = child
		}
	}
	return cp
}
