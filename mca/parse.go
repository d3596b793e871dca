package mca

import (
	"github.com/anvilfile/nbtkit/internal/mcaformat"
	"github.com/anvilfile/nbtkit/nbt"
)

// ParseError records a single slot's decode failure from ParseAll.
type ParseError struct {
	Index int
	Err   error
}

func (e ParseError) Error() string {
	return e.Err.Error()
}

// passthroughCodec hands back already-decompressed bytes unchanged. It
// lets ParseAll decompress a slot according to its own declared
// compression kind (rather than nbt.Decode's GZIP/ZLIB/raw sniff, which
// only treats input as uncompressed after it fails to inflate as raw
// DEFLATE) and still reuse nbt.Decode for the recursive parse.
type passthroughCodec struct{}

func (passthroughCodec) Decompress(_ nbt.CompressionFormat, data []byte) ([]byte, error) {
	return data, nil
}

func (passthroughCodec) Compress(_ nbt.CompressionFormat, data []byte) ([]byte, error) {
	return data, nil
}

// DecompressSlot returns s's chunk payload with its MCA-level compression
// (gzip, zlib, or none) undone, independent of any compression NBT's own
// decoder would otherwise sniff.
func DecompressSlot(s *Slot) ([]byte, error) {
	switch s.Compression {
	case mcaformat.CompressionGZip:
		return nbt.DefaultCodec.Decompress(nbt.GZIP, s.Raw)
	case mcaformat.CompressionZlib:
		return nbt.DefaultCodec.Decompress(nbt.ZLIB, s.Raw)
	case mcaformat.CompressionNone:
		return s.Raw, nil
	default:
		return nil, invalidDataf("mca: unsupported compression kind %v", s.Compression)
	}
}

// ParseAll decodes the NBT tree for every non-null slot in r, storing the
// result on Slot.Tree. It returns one ParseError per slot that failed to
// decompress or decode; an empty region (or one with no malformed slots)
// returns nil.
func ParseAll(r *Region, opts *nbt.DecodeOptions) []ParseError {
	var errs []ParseError
	codec := passthroughCodec{}

	for i, slot := range r.Slots {
		if slot == nil {
			continue
		}
		raw, err := DecompressSlot(slot)
		if err != nil {
			errs = append(errs, ParseError{Index: i, Err: err})
			continue
		}

		slotOpts := cloneDecodeOptions(opts)
		slotOpts.Codec = codec

		tree, err := nbt.Decode(raw, slotOpts)
		if err != nil {
			errs = append(errs, ParseError{Index: i, Err: err})
			continue
		}
		slot.Tree = tree
	}
	return errs
}

func cloneDecodeOptions(opts *nbt.DecodeOptions) *nbt.DecodeOptions {
	if opts == nil {
		return &nbt.DecodeOptions{}
	}
	cp := *opts
	return &cp
}
