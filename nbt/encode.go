package nbt

import (
	"context"

	"github.com/anvilfile/nbtkit/internal/nbtio"
	"github.com/anvilfile/nbtkit/internal/progress"
)

// Encode serializes n depth-first into the big-endian NBT binary form,
// then compresses the result in format via the configured codec
// collaborator.
func Encode(n *Node, format CompressionFormat, opts *EncodeOptions) ([]byte, error) {
	w := nbtio.NewWriter()
	tracker := progress.NewTracker(opts.progressFunc(), "encode")
	min, max := opts.progressRange()
	ctx := opts.context()

	total := countNodes(n)
	done := 0
	if err := encodeValue(w, n, true, tracker, min, max, &done, total, ctx); err != nil {
		return nil, err
	}

	return opts.codec().Compress(format, w.Bytes())
}

func countNodes(n *Node) int {
	total := 1
	for _, c := range n.children {
		total += countNodes(c)
	}
	return total
}

func encodeValue(w *nbtio.Writer, n *Node, writeKey bool, tracker *progress.Tracker, min, max int, done *int, total int, ctx context.Context) error {
	if err := progress.CheckContext(ctx); err != nil {
		return err
	}
	*done++
	tracker.Maybe(progress.Percent(min, max, *done, total), "encoding")

	if writeKey {
		w.U8(byte(n.kind))
		key, _ := n.Key()
		w.Key(key)
	}

	switch n.kind {
	case KindByte:
		w.I8(int8(n.i64))
	case KindShort:
		w.I16(int16(n.i64))
	case KindInt:
		w.I32(int32(n.i64))
	case KindLong:
		w.I64(n.i64)
	case KindFloat:
		w.F32(float32(n.f64))
	case KindDouble:
		w.F64(n.f64)
	case KindByteArray:
		w.I32(int32(len(n.bytes)))
		w.Raw(n.bytes)
	case KindString:
		w.Key(n.str)
	case KindIntArray:
		w.I32(int32(len(n.ints)))
		for _, v := range n.ints {
			w.I32(v)
		}
	case KindLongArray:
		w.I32(int32(len(n.longs)))
		for _, v := range n.longs {
			w.I64(v)
		}
	case KindList:
		elemKind := n.elemKind
		if len(n.children) > 0 {
			elemKind = n.children[0].kind
		}
		w.U8(byte(elemKind))
		w.I32(int32(len(n.children)))
		for _, c := range n.children {
			if err := encodeValue(w, c, false, tracker, min, max, done, total, ctx); err != nil {
				return err
			}
		}
	case KindCompound:
		for _, c := range n.children {
			if err := encodeValue(w, c, true, tracker, min, max, done, total, ctx); err != nil {
				return err
			}
		}
		w.U8(byte(KindEnd))
	default:
		return invalidTagf("nbt: cannot encode tag kind %d", n.kind)
	}
	return nil
}
