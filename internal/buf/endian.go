package buf

import "encoding/binary"

// Minecraft's NBT format is big-endian throughout; these wrap
// encoding/binary.BigEndian so callers never need to spell it out at each
// call site. Callers are responsible for bounds-checking with Slice/Has
// before calling these; they panic on a short slice like the stdlib does.

func U16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func U32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
func U64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

func PutU16(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }
func PutU32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }
func PutU64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

// AppendU16 appends v in big-endian form to dst and returns the grown slice.
func AppendU16(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

// AppendU32 appends v in big-endian form to dst and returns the grown slice.
func AppendU32(dst []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, v)
}

// AppendU64 appends v in big-endian form to dst and returns the grown slice.
func AppendU64(dst []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(dst, v)
}
