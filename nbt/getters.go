package nbt

// Each typed getter returns the value for the expected kind and a success
// flag; on a kind mismatch the flag is false and the returned value is
// the type's zero value. There is no implicit coercion between kinds
// (e.g. AsInt on a TAG_Short node fails even though the value would fit).

func (n *Node) AsByte() (int8, bool) {
	if n.kind != KindByte {
		return 0, false
	}
	return int8(n.i64), true
}

func (n *Node) AsShort() (int16, bool) {
	if n.kind != KindShort {
		return 0, false
	}
	return int16(n.i64), true
}

func (n *Node) AsInt() (int32, bool) {
	if n.kind != KindInt {
		return 0, false
	}
	return int32(n.i64), true
}

func (n *Node) AsLong() (int64, bool) {
	if n.kind != KindLong {
		return 0, false
	}
	return n.i64, true
}

func (n *Node) AsFloat() (float32, bool) {
	if n.kind != KindFloat {
		return 0, false
	}
	return float32(n.f64), true
}

func (n *Node) AsDouble() (float64, bool) {
	if n.kind != KindDouble {
		return 0, false
	}
	return n.f64, true
}

// AsByteArray returns a copy of the node's bytes, so the caller cannot
// mutate the node's owned buffer through the returned slice.
func (n *Node) AsByteArray() ([]byte, bool) {
	if n.kind != KindByteArray {
		return nil, false
	}
	return append([]byte(nil), n.bytes...), true
}

func (n *Node) AsString() (string, bool) {
	if n.kind != KindString {
		return "", false
	}
	return n.str, true
}

// AsIntArray returns a copy of the node's ints.
func (n *Node) AsIntArray() ([]int32, bool) {
	if n.kind != KindIntArray {
		return nil, false
	}
	return append([]int32(nil), n.ints...), true
}

// AsLongArray returns a copy of the node's longs.
func (n *Node) AsLongArray() ([]int64, bool) {
	if n.kind != KindLongArray {
		return nil, false
	}
	return append([]int64(nil), n.longs...), true
}
