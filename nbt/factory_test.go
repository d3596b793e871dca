package nbt

import "testing"

func TestScalarConstructors(t *testing.T) {
	b := NewByte("b", -1)
	if v, ok := b.AsByte(); !ok || v != -1 {
		t.Fatalf("AsByte() = %v, %v; want -1, true", v, ok)
	}

	s := NewShort("s", 1000)
	if v, ok := s.AsShort(); !ok || v != 1000 {
		t.Fatalf("AsShort() = %v, %v; want 1000, true", v, ok)
	}

	i := NewInt("i", -42)
	if v, ok := i.AsInt(); !ok || v != -42 {
		t.Fatalf("AsInt() = %v, %v; want -42, true", v, ok)
	}

	l := NewLong("l", 1<<40)
	if v, ok := l.AsLong(); !ok || v != 1<<40 {
		t.Fatalf("AsLong() = %v, %v; want %v, true", v, ok, int64(1)<<40)
	}

	f := NewFloat("f", 1.5)
	if v, ok := f.AsFloat(); !ok || v != 1.5 {
		t.Fatalf("AsFloat() = %v, %v; want 1.5, true", v, ok)
	}

	d := NewDouble("d", 2.25)
	if v, ok := d.AsDouble(); !ok || v != 2.25 {
		t.Fatalf("AsDouble() = %v, %v; want 2.25, true", v, ok)
	}
}

func TestArrayConstructorsCopyInput(t *testing.T) {
	src := []byte{1, 2, 3}
	ba := NewByteArray("ba", src)
	src[0] = 99
	got, ok := ba.AsByteArray()
	if !ok || got[0] != 1 {
		t.Fatalf("NewByteArray aliased caller's slice: got %v", got)
	}

	ints := []int32{1, 2}
	ia := NewIntArray("ia", ints)
	ints[0] = 99
	gotInts, _ := ia.AsIntArray()
	if gotInts[0] != 1 {
		t.Fatalf("NewIntArray aliased caller's slice: got %v", gotInts)
	}

	longs := []int64{1, 2}
	la := NewLongArray("la", longs)
	longs[0] = 99
	gotLongs, _ := la.AsLongArray()
	if gotLongs[0] != 1 {
		t.Fatalf("NewLongArray aliased caller's slice: got %v", gotLongs)
	}
}

func TestGettersReturnDefensiveCopies(t *testing.T) {
	ba := NewByteArray("ba", []byte{1, 2, 3})
	got, _ := ba.AsByteArray()
	got[0] = 99
	got2, _ := ba.AsByteArray()
	if got2[0] != 1 {
		t.Fatalf("AsByteArray leaked the node's internal buffer")
	}
}

func TestGettersFailOnKindMismatch(t *testing.T) {
	s := NewString("s", "hi")
	if _, ok := s.AsInt(); ok {
		t.Fatalf("expected AsInt on a TAG_String node to fail")
	}
	if v, ok := s.AsString(); !ok || v != "hi" {
		t.Fatalf("AsString() = %q, %v; want %q, true", v, ok, "hi")
	}
}

func TestNewListElemKindEnd(t *testing.T) {
	l := NewList("xs", KindEnd)
	if k, ok := l.ElemKind(); !ok || k != KindEnd {
		t.Fatalf("ElemKind() = %v, %v; want KindEnd, true", k, ok)
	}
	if l.ChildCount() != 0 {
		t.Fatalf("ChildCount() = %d, want 0", l.ChildCount())
	}
}
