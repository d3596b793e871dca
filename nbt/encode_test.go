package nbt

import (
	"bytes"
	"testing"
)

func TestEncodeHelloWorldCompoundMatchesWireForm(t *testing.T) {
	want := mustHex(t, "0A 00 0B 68 65 6C 6C 6F 20 77 6F 72 6C 64 08 00 04 6E 61 6D 65 00 09 42 61 6E 61 6E 72 61 6D 61 00")

	root := NewCompound("hello world")
	if err := root.Append(NewString("name", "Bananrama")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := Encode(root, Raw, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Raw mode is DEFLATE; decompress before comparing against the
	// uncompressed wire-form fixture.
	raw, err := DefaultCodec.Decompress(Raw, got)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(raw, want) {
		t.Fatalf("encoded bytes = % X, want % X", raw, want)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	root := NewCompound("")
	if err := root.Append(NewByte("b", -5)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := root.Append(NewLong("l", 1<<40)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := root.Append(NewString("s", "café \U0001F600")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	list := NewList("xs", KindInt)
	for i := int32(0); i < 3; i++ {
		if err := list.Append(NewInt("", i*i)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if err := root.Append(list); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := root.Append(NewIntArray("ia", []int32{1, -2, 3})); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := root.Append(NewLongArray("la", []int64{1, -2, 3})); err != nil {
		t.Fatalf("Append: %v", err)
	}

	for _, format := range []CompressionFormat{Raw, GZIP, ZLIB} {
		encoded, err := Encode(root, format, nil)
		if err != nil {
			t.Fatalf("Encode(%v): %v", format, err)
		}
		decoded, err := Decode(encoded, nil)
		if err != nil {
			t.Fatalf("Decode(%v): %v", format, err)
		}

		if b, ok := decoded.ChildByKey("b"); !ok {
			t.Fatalf("%v: missing child b", format)
		} else if v, _ := b.AsByte(); v != -5 {
			t.Fatalf("%v: b = %v, want -5", format, v)
		}
		if s, ok := decoded.ChildByKey("s"); !ok {
			t.Fatalf("%v: missing child s", format)
		} else if v, _ := s.AsString(); v != "café \U0001F600" {
			t.Fatalf("%v: s = %q, want round-tripped unicode", format, v)
		}
		xs, ok := decoded.ChildByKey("xs")
		if !ok || xs.ChildCount() != 3 {
			t.Fatalf("%v: xs missing or wrong length", format)
		}
		ia, ok := decoded.ChildByKey("ia")
		if !ok {
			t.Fatalf("%v: missing child ia", format)
		}
		if got, _ := ia.AsIntArray(); !equalInt32(got, []int32{1, -2, 3}) {
			t.Fatalf("%v: ia = %v, want [1 -2 3]", format, got)
		}
	}
}

func equalInt32(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEncodeEmptyListWritesElementKindEnd(t *testing.T) {
	root := NewCompound("")
	if err := root.Append(NewList("xs", KindEnd)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	encoded, err := Encode(root, Raw, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(encoded, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	xs, ok := decoded.ChildByKey("xs")
	if !ok {
		t.Fatalf("missing child xs")
	}
	if ek, _ := xs.ElemKind(); ek != KindEnd {
		t.Fatalf("ElemKind() = %v, want KindEnd", ek)
	}
}

func TestEncodeListChildKeyIgnored(t *testing.T) {
	list := NewCompound("")
	xs := NewList("xs", KindInt)
	// construct a list child with a key set before insertion; per the
	// unkeyed-list-children invariant this key must be ignored on encode.
	child := newKeyed(KindInt, "ignored")
	child.i64 = 9
	if err := xs.Append(child); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := list.Append(xs); err != nil {
		t.Fatalf("Append: %v", err)
	}

	encoded, err := Encode(list, Raw, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(encoded, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	decodedList, _ := decoded.ChildByKey("xs")
	decodedChild, _ := decodedList.ChildAt(0)
	if _, ok := decodedChild.Key(); ok {
		t.Fatalf("expected the round-tripped list child to have no key")
	}
}
