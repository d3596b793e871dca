package nbt

import "testing"

func buildSampleTree(t *testing.T) *Node {
	t.Helper()
	root := NewCompound("")
	inner := NewCompound("inner")
	if err := inner.Append(NewInt("x", 1)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := root.Append(inner); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := root.Append(NewString("name", "steve")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	return root
}

func TestChildAt(t *testing.T) {
	root := buildSampleTree(t)
	c, ok := root.ChildAt(1)
	if !ok {
		t.Fatalf("ChildAt(1) failed")
	}
	if v, _ := c.AsString(); v != "steve" {
		t.Fatalf("ChildAt(1) = %v, want TAG_String(steve)", v)
	}
	if _, ok := root.ChildAt(5); ok {
		t.Fatalf("expected ChildAt out of range to fail")
	}
}

func TestChildByKeyFirstMatchOnly(t *testing.T) {
	root := NewCompound("")
	if err := root.Append(NewInt("dup", 1)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := root.Append(NewInt("dup", 2)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	c, ok := root.ChildByKey("dup")
	if !ok {
		t.Fatalf("ChildByKey(dup) failed")
	}
	if v, _ := c.AsInt(); v != 1 {
		t.Fatalf("ChildByKey resolved to %v, want the first match (1)", v)
	}
}

func TestChildByKeyOnNonCompound(t *testing.T) {
	l := NewList("xs", KindInt)
	if _, ok := l.ChildByKey("anything"); ok {
		t.Fatalf("expected ChildByKey on a list to fail")
	}
}

func TestPathWalksNestedKeys(t *testing.T) {
	root := buildSampleTree(t)
	leaf, ok := root.Path("inner", "x")
	if !ok {
		t.Fatalf("Path(inner, x) failed")
	}
	if v, _ := leaf.AsInt(); v != 1 {
		t.Fatalf("Path resolved to %v, want 1", v)
	}
	if _, ok := root.Path("inner", "missing"); ok {
		t.Fatalf("expected Path to fail on a missing key")
	}
	if _, ok := root.Path("name", "nested"); ok {
		t.Fatalf("expected Path to fail when stepping into a non-compound")
	}
}
