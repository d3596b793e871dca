package nbt

// validateInsertable checks the preconditions that must hold before any
// insertion mutates the tree: the parent must be a list or compound, the
// child must be a currently-orphan root, a compound child must carry a
// key (compound entries are always written as key-value pairs on the
// wire), and — for a list parent whose element kind is already fixed —
// the child's kind must match it. Nothing is mutated until the caller
// has a nil error back.
func (n *Node) validateInsertable(child *Node) error {
	if n.kind != KindList && n.kind != KindCompound {
		return invalidDataf("nbt: insertion only permitted on list or compound parents, got %v", n.kind)
	}
	if child == nil {
		return internalf("nbt: cannot insert a nil node")
	}
	if child.parent != nil {
		return invalidDataf("nbt: inserted node must be an orphan root")
	}
	if n.kind == KindCompound && child.key == nil {
		return invalidDataf("nbt: cannot insert a keyless node into a compound")
	}
	if n.kind == KindList && !n.listAcceptsKind(child.kind) {
		return invalidDataf("nbt: list element kind is %v, cannot insert %v", n.elemKind, child.kind)
	}
	return nil
}

// listAcceptsKind reports whether k may be inserted into this list: it
// must either match the list's existing element kind, or the list must
// still be in the "unknown element kind" state (empty, TAG_End), in
// which case the first insert fixes the element kind for every element
// that follows (see promoteElementKindIfNeeded).
func (n *Node) listAcceptsKind(k Kind) bool {
	if len(n.children) == 0 && n.elemKind == KindEnd {
		return true
	}
	return k == n.elemKind
}

func (n *Node) promoteElementKindIfNeeded(wasUnknown bool, childKind Kind) {
	if wasUnknown {
		n.elemKind = childKind
	}
}

func (n *Node) insertAt(idx int, child *Node) error {
	if err := n.validateInsertable(child); err != nil {
		return err
	}
	if idx < 0 || idx > len(n.children) {
		return invalidDataf("nbt: insert index %d out of range [0,%d]", idx, len(n.children))
	}
	wasUnknown := n.kind == KindList && len(n.children) == 0 && n.elemKind == KindEnd

	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
	child.parent = n

	n.promoteElementKindIfNeeded(wasUnknown, child.kind)
	return nil
}

// Append inserts child as the new last child.
func (n *Node) Append(child *Node) error {
	return n.insertAt(len(n.children), child)
}

// Prepend inserts child as the new first child.
func (n *Node) Prepend(child *Node) error {
	return n.insertAt(0, child)
}

// InsertBefore inserts child so it becomes the element at index at,
// shifting the existing element at that index (and everything after it)
// one position later. at == ChildCount() inserts at the end.
func (n *Node) InsertBefore(at int, child *Node) error {
	return n.insertAt(at, child)
}

// InsertAfter inserts child immediately after the existing child at
// index at. at must reference an existing child.
func (n *Node) InsertAfter(at int, child *Node) error {
	if n.kind != KindList && n.kind != KindCompound {
		return invalidDataf("nbt: insertion only permitted on list or compound parents, got %v", n.kind)
	}
	if at < 0 || at >= len(n.children) {
		return invalidDataf("nbt: insert-after index %d out of range [0,%d)", at, len(n.children))
	}
	return n.insertAt(at+1, child)
}

// RemoveAt unlinks and returns the child at index i.
func (n *Node) RemoveAt(i int) (*Node, error) {
	if n.kind != KindList && n.kind != KindCompound {
		return nil, invalidDataf("nbt: removal only permitted on list or compound parents, got %v", n.kind)
	}
	if i < 0 || i >= len(n.children) {
		return nil, invalidDataf("nbt: remove index %d out of range [0,%d)", i, len(n.children))
	}
	child := n.children[i]
	n.children = append(n.children[:i], n.children[i+1:]...)
	child.parent = nil
	return child, nil
}

// RemoveByKey unlinks and returns the first compound child with the
// given key.
func (n *Node) RemoveByKey(key string) (*Node, error) {
	if n.kind != KindCompound {
		return nil, invalidDataf("nbt: removal by key only permitted on compound nodes, got %v", n.kind)
	}
	for i, c := range n.children {
		if c.key != nil && *c.key == key {
			return n.RemoveAt(i)
		}
	}
	return nil, invalidDataf("nbt: no child with key %q", key)
}
