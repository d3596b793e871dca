package nbt

import (
	"context"

	"github.com/anvilfile/nbtkit/internal/buf"
	"github.com/anvilfile/nbtkit/internal/nbtio"
	"github.com/anvilfile/nbtkit/internal/progress"
	"github.com/anvilfile/nbtkit/nbterr"
)

// Decode parses data into a tag tree. It first sniffs and reverses any
// GZIP/ZLIB/RAW compression wrapper (input with neither a gzip nor a zlib
// header that does not inflate as raw DEFLATE is taken to be uncompressed
// NBT and parsed as is), then runs a recursive-descent parse
// starting from whatever kind byte the stream's root actually carries
// (the root need not be a compound — a bare TAG_Byte is a perfectly
// valid whole document).
//
// A non-nil Node is returned alongside a non-nil error only when decoding
// otherwise succeeded but left unread trailing bytes; that error wraps
// ErrLeftoverData and callers may choose to ignore it. Every other error
// leaves the returned Node nil.
func Decode(data []byte, opts *DecodeOptions) (*Node, error) {
	format := sniffFormat(data)
	raw, err := opts.codec().Decompress(format, data)
	if err != nil {
		if format != Raw {
			return nil, err
		}
		raw = data
	}

	r := nbtio.NewReader(raw)
	tracker := progress.NewTracker(opts.progressFunc(), "decode")
	min, max := opts.progressRange()
	ctx := opts.context()

	root := &Node{kind: KindEnd}
	if err := decodeValue(r, root, false, tracker, min, max, ctx); err != nil {
		return nil, err
	}

	if r.Remaining() > 0 {
		return root, nbterr.Kindf(nbterr.KindLeftoverData, "nbt: %d bytes left over after decode", r.Remaining())
	}
	return root, nil
}

// decodeValue fills in n's payload (and, for a TAG_End placeholder, n's
// real kind too) by reading from r. skipKey is set for list elements,
// which carry no key on the wire.
func decodeValue(r *nbtio.Reader, n *Node, skipKey bool, tracker *progress.Tracker, min, max int, ctx context.Context) error {
	if err := progress.CheckContext(ctx); err != nil {
		return err
	}
	tracker.Maybe(progress.Percent(min, max, r.Pos(), r.Len()), "decoding")

	if n.kind == KindEnd {
		kb, err := r.U8()
		if err != nil {
			return err
		}
		k := Kind(kb)
		if k == KindEnd || k > KindLongArray {
			return invalidTagf("nbt: root tag kind %d out of range", kb)
		}
		n.kind = k
	}

	if !skipKey {
		key, err := r.Key()
		if err != nil {
			return err
		}
		n.key = &key
	}

	switch n.kind {
	case KindByte:
		v, err := r.I8()
		if err != nil {
			return err
		}
		n.i64 = int64(v)

	case KindShort:
		v, err := r.I16()
		if err != nil {
			return err
		}
		n.i64 = int64(v)

	case KindInt:
		v, err := r.I32()
		if err != nil {
			return err
		}
		n.i64 = int64(v)

	case KindLong:
		v, err := r.I64()
		if err != nil {
			return err
		}
		n.i64 = v

	case KindFloat:
		v, err := r.F32()
		if err != nil {
			return err
		}
		n.f64 = float64(v)

	case KindDouble:
		v, err := r.F64()
		if err != nil {
			return err
		}
		n.f64 = v

	case KindByteArray:
		ln, err := r.I32()
		if err != nil {
			return err
		}
		if ln < 0 {
			return invalidDataf("nbt: negative byte-array length %d", ln)
		}
		b, err := r.Bytes(int(ln))
		if err != nil {
			return err
		}
		n.bytes = b

	case KindString:
		s, err := r.Key()
		if err != nil {
			return err
		}
		n.str = s

	case KindIntArray:
		ints, err := decodeIntArray(r, 4)
		if err != nil {
			return err
		}
		n.ints = ints

	case KindLongArray:
		longs, err := decodeLongArray(r)
		if err != nil {
			return err
		}
		n.longs = longs

	case KindList:
		ekb, err := r.U8()
		if err != nil {
			return err
		}
		ek := Kind(ekb)
		if !ek.inRange(true) {
			return invalidTagf("nbt: list element kind %d out of range", ekb)
		}
		ln, err := r.I32()
		if err != nil {
			return err
		}
		if ln < 0 {
			return invalidDataf("nbt: negative list length %d", ln)
		}
		if ek == KindEnd && ln != 0 {
			return invalidDataf("nbt: non-empty list of TAG_End")
		}
		if err := validateListLength(r, ek, ln); err != nil {
			return err
		}
		n.elemKind = ek
		n.children = make([]*Node, 0, ln)
		for i := int32(0); i < ln; i++ {
			child := &Node{kind: ek}
			if err := decodeValue(r, child, true, tracker, min, max, ctx); err != nil {
				return err
			}
			child.parent = n
			n.children = append(n.children, child)
		}

	case KindCompound:
		for {
			kb, err := r.U8()
			if err != nil {
				return err
			}
			k := Kind(kb)
			if k == KindEnd {
				break
			}
			if !k.inRange(false) {
				return invalidTagf("nbt: compound entry kind %d out of range", kb)
			}
			child := &Node{kind: k}
			if err := decodeValue(r, child, false, tracker, min, max, ctx); err != nil {
				return err
			}
			child.parent = n
			n.children = append(n.children, child)
		}

	default:
		return invalidTagf("nbt: unexpected tag kind %d", n.kind)
	}
	return nil
}

func decodeIntArray(r *nbtio.Reader, elemSize int) ([]int32, error) {
	ln, err := r.I32()
	if err != nil {
		return nil, err
	}
	if ln < 0 {
		return nil, invalidDataf("nbt: negative int-array length %d", ln)
	}
	size, ok := buf.MulOverflowSafe(int(ln), elemSize)
	if !ok || size > r.Remaining() {
		return nil, invalidDataf("nbt: int-array length %d exceeds remaining input", ln)
	}
	out := make([]int32, ln)
	for i := range out {
		v, err := r.I32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func decodeLongArray(r *nbtio.Reader) ([]int64, error) {
	ln, err := r.I32()
	if err != nil {
		return nil, err
	}
	if ln < 0 {
		return nil, invalidDataf("nbt: negative long-array length %d", ln)
	}
	size, ok := buf.MulOverflowSafe(int(ln), 8)
	if !ok || size > r.Remaining() {
		return nil, invalidDataf("nbt: long-array length %d exceeds remaining input", ln)
	}
	out := make([]int64, ln)
	for i := range out {
		v, err := r.I64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// validateListLength rejects an implausible list length before any
// per-element parsing or allocation proportional to ln happens: a
// hostile or truncated stream could otherwise claim a huge element
// count and make the decoder allocate far beyond the input's actual
// size. The length is checked against the minimum possible encoded
// size of that many elements of kind ek.
func validateListLength(r *nbtio.Reader, ek Kind, ln int32) error {
	need, ok := buf.MulOverflowSafe(int(ln), minElementSize(ek))
	if !ok || need > r.Remaining() {
		return invalidDataf("nbt: list length %d exceeds remaining input", ln)
	}
	return nil
}

// minElementSize returns the fewest bytes a single encoded element of
// kind k can occupy, used only to sanity-bound untrusted list lengths.
func minElementSize(k Kind) int {
	switch k {
	case KindEnd:
		return 0
	case KindByte:
		return 1
	case KindShort:
		return 2
	case KindInt, KindFloat:
		return 4
	case KindLong, KindDouble:
		return 8
	case KindByteArray, KindIntArray, KindLongArray:
		return 4 // length prefix alone
	case KindString:
		return 2 // length prefix alone
	case KindList:
		return 5 // element-kind byte + 32-bit length
	case KindCompound:
		return 1 // terminator alone
	default:
		return 0
	}
}
