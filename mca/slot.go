package mca

import (
	"github.com/anvilfile/nbtkit/internal/mcaformat"
	"github.com/anvilfile/nbtkit/nbt"
)

// Slot holds one chunk's on-disk bytes as read from (or destined for) a
// region file. Raw is the chunk payload exactly as it appears after the
// chunk header's length and compression-kind byte — still compressed,
// unless Compression is CompressionNone. Tree is nil until ParseAll
// decodes it.
type Slot struct {
	Raw         []byte
	Compression mcaformat.CompressionKind
	Timestamp   uint32
	Tree        *nbt.Node
}

