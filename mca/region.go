package mca

import (
	"github.com/anvilfile/nbtkit/internal/buf"
	"github.com/anvilfile/nbtkit/internal/mcaformat"
)

// Region is the in-memory form of an MCA container: 1024 chunk slots
// indexed by `z*32 + x` within the region, plus the region's own
// coordinates when known (see ParseFilename).
type Region struct {
	Slots       [mcaformat.SlotCount]*Slot
	X, Z        int
	HasPosition bool
}

// ReadOptions configures ReadRegion's tolerance of malformed slots.
type ReadOptions struct {
	// Lenient, when true, nulls out a slot whose sector range or chunk
	// header is malformed instead of failing the whole read, and accepts
	// chunks of any compression kind rather than only zlib.
	Lenient bool
}

// ReadRegion parses data as an Anvil region (.mca) file: an 8 KiB header
// of 1024 sector-location entries followed by 1024 sector-aligned
// timestamps, then the chunk payload sectors themselves.
func ReadRegion(data []byte, opts *ReadOptions) (*Region, error) {
	lenient := opts != nil && opts.Lenient

	// An all-zero, exactly-header-sized file (no chunk payloads at all)
	// is a valid, fully empty region, so the length floor admits equality
	// rather than requiring strictly more than the header size.
	if len(data) < mcaformat.HeaderSize {
		return nil, invalidDataf("mca: file length %d is smaller than the %d-byte header", len(data), mcaformat.HeaderSize)
	}
	header, err := mcaformat.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	r := &Region{}
	for i := 0; i < mcaformat.SlotCount; i++ {
		loc := header.Locations[i]
		if loc.Empty() {
			continue
		}

		byteOffset, byteEnd := loc.ByteOffset(), loc.ByteEnd()
		if byteEnd > int64(len(data)) {
			if lenient {
				log.Warn("mca: skipping slot with sector range past end of file",
					"slot", i, "byteOffset", byteOffset, "byteEnd", byteEnd, "fileSize", len(data))
				continue
			}
			return nil, invalidDataf("mca: slot %d sector range [%d,%d) runs past end of file (%d bytes)", i, byteOffset, byteEnd, len(data))
		}

		slot, err := readSlot(data, int(byteOffset), header.Timestamps[i], lenient)
		if err != nil {
			if lenient {
				log.Warn("mca: skipping malformed slot", "slot", i, "error", err)
				continue
			}
			return nil, err
		}
		if slot != nil {
			r.Slots[i] = slot
		}
	}
	return r, nil
}

func readSlot(data []byte, byteOffset int, timestamp uint32, lenient bool) (*Slot, error) {
	if !buf.Has(data, byteOffset, mcaformat.ChunkHeaderSize) {
		return nil, invalidDataf("mca: chunk header at byte %d runs past end of file", byteOffset)
	}
	length := buf.U32(data[byteOffset:])
	kind := mcaformat.CompressionKind(data[byteOffset+4])
	if kind != mcaformat.CompressionZlib && !lenient {
		return nil, invalidDataf("mca: chunk at byte %d has unsupported compression kind %v", byteOffset, kind)
	}
	if length == 0 {
		return nil, invalidDataf("mca: chunk at byte %d has zero length", byteOffset)
	}
	payloadLen := int(length) - 1
	payloadStart := byteOffset + mcaformat.ChunkHeaderSize
	if payloadLen < 0 || !buf.Has(data, payloadStart, payloadLen) {
		return nil, invalidDataf("mca: chunk payload at byte %d runs past end of file", payloadStart)
	}
	raw := append([]byte(nil), data[payloadStart:payloadStart+payloadLen]...)
	return &Slot{Raw: raw, Compression: kind, Timestamp: timestamp}, nil
}

// WriteRegion serializes r into the bytes of an Anvil region (.mca)
// file, laying out chunk payloads back-to-back starting at sector 2 and
// padding each to a sector boundary. Per-slot timestamps are preserved
// exactly as recorded on each Slot, never overwritten with the current
// time.
func WriteRegion(r *Region) ([]byte, error) {
	header := &mcaformat.Header{}
	payload := make([]byte, 0, mcaformat.SectorSize*4)
	currentSector := 2

	for i, slot := range r.Slots {
		if slot == nil {
			continue
		}

		chunkHeader := make([]byte, mcaformat.ChunkHeaderSize)
		buf.PutU32(chunkHeader, uint32(len(slot.Raw)+1))
		chunkHeader[4] = byte(slot.Compression)

		payload = append(payload, chunkHeader...)
		payload = append(payload, slot.Raw...)

		writtenEnd := currentSector*mcaformat.SectorSize + len(chunkHeader) + len(slot.Raw)
		newSector := writtenEnd/mcaformat.SectorSize + 1
		sectorCount := newSector - currentSector
		if sectorCount > 0xFF {
			return nil, invalidDataf("mca: chunk %d spans %d sectors, more than the 1-byte sector count can hold", i, sectorCount)
		}

		header.Locations[i] = mcaformat.Location{
			SectorOffset: uint32(currentSector),
			SectorCount:  uint8(sectorCount),
		}
		header.Timestamps[i] = slot.Timestamp

		wantLen := (newSector - 2) * mcaformat.SectorSize
		if len(payload) < wantLen {
			payload = append(payload, make([]byte, wantLen-len(payload))...)
		}
		currentSector = newSector
	}

	out := append(header.Encode(), payload...)
	if rem := len(out) % mcaformat.SectorSize; rem != 0 {
		out = append(out, make([]byte, mcaformat.SectorSize-rem)...)
	}
	return out, nil
}
