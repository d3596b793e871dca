package nbt

// The typed constructors each allocate a new childless orphan root. key
// is stored as given (an empty string is a valid, present key — distinct
// from no key at all, which only arises for list children and the
// decoder's internal bookkeeping). Array constructors copy their input so
// the new node owns an independent buffer.

func newKeyed(kind Kind, key string) *Node {
	k := key
	return &Node{kind: kind, key: &k}
}

func NewByte(key string, v int8) *Node {
	n := newKeyed(KindByte, key)
	n.i64 = int64(v)
	return n
}

func NewShort(key string, v int16) *Node {
	n := newKeyed(KindShort, key)
	n.i64 = int64(v)
	return n
}

func NewInt(key string, v int32) *Node {
	n := newKeyed(KindInt, key)
	n.i64 = int64(v)
	return n
}

func NewLong(key string, v int64) *Node {
	n := newKeyed(KindLong, key)
	n.i64 = v
	return n
}

func NewFloat(key string, v float32) *Node {
	n := newKeyed(KindFloat, key)
	n.f64 = float64(v)
	return n
}

func NewDouble(key string, v float64) *Node {
	n := newKeyed(KindDouble, key)
	n.f64 = v
	return n
}

// NewByteArray copies v into a new owned buffer.
func NewByteArray(key string, v []byte) *Node {
	n := newKeyed(KindByteArray, key)
	n.bytes = append([]byte(nil), v...)
	return n
}

func NewString(key string, v string) *Node {
	n := newKeyed(KindString, key)
	n.str = v
	return n
}

// NewIntArray copies v into a new owned buffer.
func NewIntArray(key string, v []int32) *Node {
	n := newKeyed(KindIntArray, key)
	n.ints = append([]int32(nil), v...)
	return n
}

// NewLongArray copies v into a new owned buffer.
func NewLongArray(key string, v []int64) *Node {
	n := newKeyed(KindLongArray, key)
	n.longs = append([]int64(nil), v...)
	return n
}

// NewList creates an empty list with the given element kind. elemKind
// may be KindEnd, by convention, for a list whose element kind is not
// yet known; the first successful insert adopts that child's kind (see
// promoteElementKindIfNeeded in mutate.go).
func NewList(key string, elemKind Kind) *Node {
	n := newKeyed(KindList, key)
	n.elemKind = elemKind
	return n
}

func NewCompound(key string) *Node {
	return newKeyed(KindCompound, key)
}
