package buf

import "testing"

func TestU16RoundTrip(t *testing.T) {
	b := AppendU16(nil, 0xBEEF)
	if len(b) != 2 {
		t.Fatalf("expected 2 bytes, got %d", len(b))
	}
	if got := U16(b); got != 0xBEEF {
		t.Fatalf("U16 = %#x, want 0xbeef", got)
	}
	if b[0] != 0xBE || b[1] != 0xEF {
		t.Fatalf("expected big-endian byte order, got % x", b)
	}
}

func TestU32RoundTrip(t *testing.T) {
	b := AppendU32(nil, 0xDEADBEEF)
	if got := U32(b); got != 0xDEADBEEF {
		t.Fatalf("U32 = %#x, want 0xdeadbeef", got)
	}
}

func TestU64RoundTrip(t *testing.T) {
	b := AppendU64(nil, 0x0102030405060708)
	if got := U64(b); got != 0x0102030405060708 {
		t.Fatalf("U64 = %#x", got)
	}
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	for i, w := range want {
		if b[i] != w {
			t.Fatalf("byte %d = %#x, want %#x", i, b[i], w)
		}
	}
}

func TestPutHelpers(t *testing.T) {
	b := make([]byte, 8)
	PutU16(b, 0x1234)
	if U16(b) != 0x1234 {
		t.Fatalf("PutU16/U16 mismatch")
	}
	PutU32(b, 0x11223344)
	if U32(b) != 0x11223344 {
		t.Fatalf("PutU32/U32 mismatch")
	}
	PutU64(b, 0x0011223344556677)
	if U64(b) != 0x0011223344556677 {
		t.Fatalf("PutU64/U64 mismatch")
	}
}
