package mcaformat

import (
	"errors"
	"testing"

	"github.com/anvilfile/nbtkit/nbterr"
)

func TestParseHeaderAllZeroIsEmptyRegion(t *testing.T) {
	data := make([]byte, HeaderSize)
	h, err := ParseHeader(data)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	for i, loc := range h.Locations {
		if !loc.Empty() {
			t.Fatalf("slot %d: expected empty location, got %+v", i, loc)
		}
	}
	for i, ts := range h.Timestamps {
		if ts != 0 {
			t.Fatalf("slot %d: expected zero timestamp, got %d", i, ts)
		}
	}
}

func TestParseHeaderTooShort(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	if !errors.Is(err, nbterr.ErrEarlyEOF) {
		t.Fatalf("expected ErrEarlyEOF, got %v", err)
	}
}

func TestHeaderEncodeRoundTrip(t *testing.T) {
	h := &Header{}
	h.Locations[5] = Location{SectorOffset: 2, SectorCount: 3}
	h.Timestamps[5] = 1_700_000_000

	encoded := h.Encode()
	if len(encoded) != HeaderSize {
		t.Fatalf("Encode() length = %d, want %d", len(encoded), HeaderSize)
	}

	got, err := ParseHeader(encoded)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if got.Locations[5] != h.Locations[5] {
		t.Fatalf("Locations[5] = %+v, want %+v", got.Locations[5], h.Locations[5])
	}
	if got.Timestamps[5] != h.Timestamps[5] {
		t.Fatalf("Timestamps[5] = %d, want %d", got.Timestamps[5], h.Timestamps[5])
	}
}

func TestLocationByteRange(t *testing.T) {
	loc := Location{SectorOffset: 2, SectorCount: 3}
	if loc.ByteOffset() != 2*SectorSize {
		t.Fatalf("ByteOffset() = %d, want %d", loc.ByteOffset(), 2*SectorSize)
	}
	if loc.ByteEnd() != 5*SectorSize {
		t.Fatalf("ByteEnd() = %d, want %d", loc.ByteEnd(), 5*SectorSize)
	}
}
