package nbt

// Node is one tag in an NBT tree. Its zero value is not useful; build
// nodes with the typed constructors (NewByte, NewCompound, ...) or by
// decoding bytes with Decode.
//
// A Node owns its key, its scalar/array/string payload, and its
// children; DeepCopy duplicates all of it into independent buffers. A
// Node has at most one parent; orphan roots (parent == nil) are the only
// nodes the mutation API accepts for insertion, enforcing that a node
// never appears in two trees at once.
type Node struct {
	kind Kind
	key  *string // nil: no key (list child, or a root built without one)

	i64 int64   // Byte/Short/Int/Long, widened
	f64 float64 // Float/Double, widened

	bytes []byte // ByteArray
	str   string // String
	ints  []int32
	longs []int64

	elemKind Kind // meaningful only when kind == KindList
	children []*Node

	parent *Node
}

// Kind reports the node's tag kind.
func (n *Node) Kind() Kind { return n.kind }

// Key reports the node's key and whether it has one. List children and
// roots constructed without a key report ok == false.
func (n *Node) Key() (key string, ok bool) {
	if n.key == nil {
		return "", false
	}
	return *n.key, true
}

// inList reports whether n is currently a direct child of a list node.
func (n *Node) inList() bool {
	return n.parent != nil && n.parent.kind == KindList
}

// SetKey sets n's key. It fails when n is a direct child of a list, since
// list children are unkeyed on the wire (spec invariant: list children
// have no key) — implementations must pick fail-fast over silent no-op,
// and this one fails with an error.
func (n *Node) SetKey(key string) error {
	if n.inList() {
		return invalidDataf("nbt: cannot set key on a list child")
	}
	n.key = &key
	return nil
}

// ElemKind reports the element kind of a list node. It is meaningless
// for any other kind.
func (n *Node) ElemKind() (Kind, bool) {
	if n.kind != KindList {
		return KindEnd, false
	}
	return n.elemKind, true
}

// ChildCount reports the number of children of a list or compound node,
// and 0 for any other kind.
func (n *Node) ChildCount() int {
	if n.kind != KindList && n.kind != KindCompound {
		return 0
	}
	return len(n.children)
}

// Children returns a shallow copy of the node's child slice (list or
// compound); any other kind returns nil. The returned slice may be
// freely appended to by the caller without affecting n.
func (n *Node) Children() []*Node {
	if n.kind != KindList && n.kind != KindCompound {
		return nil
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Parent returns the node's parent, or nil for an orphan root.
func (n *Node) Parent() *Node { return n.parent }
