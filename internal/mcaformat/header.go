package mcaformat

import (
	"github.com/anvilfile/nbtkit/internal/buf"
	"github.com/anvilfile/nbtkit/nbterr"
)

// Location is one slot's entry in the region file's location table: where
// its chunk payload starts, and how many sectors it spans. A zero value
// (SectorOffset == 0 and SectorCount == 0) means the slot is empty.
type Location struct {
	SectorOffset uint32 // 24-bit value on the wire
	SectorCount  uint8
}

// Empty reports whether the slot has no chunk stored.
func (l Location) Empty() bool {
	return l.SectorOffset == 0 && l.SectorCount == 0
}

// ByteOffset and ByteEnd convert the sector-granularity location into the
// byte range its payload sectors occupy in the file.
func (l Location) ByteOffset() int64 { return int64(l.SectorOffset) * SectorSize }
func (l Location) ByteEnd() int64 {
	return l.ByteOffset() + int64(l.SectorCount)*SectorSize
}

// Header is the parsed form of an MCA file's 8 KiB location+timestamp
// header.
type Header struct {
	Locations  [SlotCount]Location
	Timestamps [SlotCount]uint32
}

// ParseHeader reads the location and timestamp tables from the first
// HeaderSize bytes of data.
func ParseHeader(data []byte) (*Header, error) {
	if !buf.Has(data, 0, HeaderSize) {
		return nil, nbterr.ErrEarlyEOF
	}
	h := &Header{}
	for i := 0; i < SlotCount; i++ {
		off := LocationTableOffset + i*LocationEntrySize
		v := buf.U32(data[off:])
		h.Locations[i] = Location{
			SectorOffset: v >> 8,
			SectorCount:  uint8(v & 0xFF),
		}
	}
	for i := 0; i < SlotCount; i++ {
		off := TimestampTableOffset + i*TimestampEntrySize
		h.Timestamps[i] = buf.U32(data[off:])
	}
	return h, nil
}

// Encode writes the header back out to its 8 KiB wire form.
func (h *Header) Encode() []byte {
	out := make([]byte, HeaderSize)
	for i := 0; i < SlotCount; i++ {
		loc := h.Locations[i]
		v := loc.SectorOffset<<8 | uint32(loc.SectorCount)
		buf.PutU32(out[LocationTableOffset+i*LocationEntrySize:], v)
	}
	for i := 0; i < SlotCount; i++ {
		buf.PutU32(out[TimestampTableOffset+i*TimestampEntrySize:], h.Timestamps[i])
	}
	return out
}
