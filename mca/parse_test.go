package mca

import (
	"testing"

	"github.com/anvilfile/nbtkit/internal/mcaformat"
	"github.com/anvilfile/nbtkit/nbt"
)

func TestParseAllDecodesZlibCompressedChunk(t *testing.T) {
	tree := nbt.NewCompound("")
	if err := tree.Append(nbt.NewInt("xPos", 3)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	encoded, err := nbt.Encode(tree, nbt.ZLIB, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	r := &Region{}
	r.Slots[7] = &Slot{Raw: encoded, Compression: mcaformat.CompressionZlib}

	if errs := ParseAll(r, nil); len(errs) != 0 {
		t.Fatalf("ParseAll errors: %v", errs)
	}
	if r.Slots[7].Tree == nil {
		t.Fatalf("expected slot 7's Tree to be populated")
	}
	xPos, ok := r.Slots[7].Tree.ChildByKey("xPos")
	if !ok {
		t.Fatalf("decoded tree missing xPos")
	}
	if v, _ := xPos.AsInt(); v != 3 {
		t.Fatalf("xPos = %d, want 3", v)
	}
}

func TestParseAllReportsPerSlotError(t *testing.T) {
	r := &Region{}
	r.Slots[2] = &Slot{Raw: []byte{0xFF, 0xFF, 0xFF}, Compression: mcaformat.CompressionZlib}

	errs := ParseAll(r, nil)
	if len(errs) != 1 || errs[0].Index != 2 {
		t.Fatalf("ParseAll errors = %+v, want one error at index 2", errs)
	}
	if r.Slots[2].Tree != nil {
		t.Fatalf("expected Tree to remain nil after a decode failure")
	}
}

func TestParseAllUncompressedSlot(t *testing.T) {
	tree := nbt.NewByte("flag", 1)
	encoded, err := nbt.Encode(tree, nbt.Raw, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	raw, err := nbt.DefaultCodec.Decompress(nbt.Raw, encoded)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}

	r := &Region{}
	r.Slots[0] = &Slot{Raw: raw, Compression: mcaformat.CompressionNone}

	if errs := ParseAll(r, nil); len(errs) != 0 {
		t.Fatalf("ParseAll errors: %v", errs)
	}
	if v, _ := r.Slots[0].Tree.AsByte(); v != 1 {
		t.Fatalf("decoded byte = %d, want 1", v)
	}
}
