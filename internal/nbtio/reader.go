// Package nbtio implements the bounded, big-endian byte cursor the NBT
// codec reads from and writes to. It knows nothing about tag kinds or the
// tree shape; it only guarantees that every access either succeeds or
// fails without partially advancing the cursor.
package nbtio

import (
	"math"

	"github.com/anvilfile/nbtkit/internal/buf"
	"github.com/anvilfile/nbtkit/internal/mutf8"
	"github.com/anvilfile/nbtkit/nbterr"
)

// Reader is a position-tracked cursor over an in-memory byte slice. Every
// accessor checks pos+n <= len(buf) before reading and, on failure,
// returns nbterr.ErrEarlyEOF without advancing the position.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps b for sequential, bounds-checked reads.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.buf) }

// Pos returns the current read position.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

func (r *Reader) require(n int) error {
	if !buf.Has(r.buf, r.pos, n) {
		return nbterr.ErrEarlyEOF
	}
	return nil
}

// U8 reads one unsigned byte.
func (r *Reader) U8() (byte, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// I8 reads one signed byte.
func (r *Reader) I8() (int8, error) {
	v, err := r.U8()
	return int8(v), err
}

// U16 reads a big-endian unsigned 16-bit integer.
func (r *Reader) U16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := buf.U16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

// I16 reads a big-endian signed 16-bit integer.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// U32 reads a big-endian unsigned 32-bit integer.
func (r *Reader) U32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := buf.U32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// I32 reads a big-endian signed 32-bit integer.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// U64 reads a big-endian unsigned 64-bit integer.
func (r *Reader) U64() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	v := buf.U64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// I64 reads a big-endian signed 64-bit integer.
func (r *Reader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err
}

// F32 reads a big-endian IEEE-754 32-bit float by bit-punning a U32.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// F64 reads a big-endian IEEE-754 64-bit float by bit-punning a U64.
func (r *Reader) F64() (float64, error) {
	v, err := r.U64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// Bytes reads and copies the next n bytes. n must already be validated as
// non-negative and fitting within an int by the caller (array/list length
// fields come from untrusted 32-bit input and must be range- and
// overflow-checked before reaching here).
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// Key reads a 16-bit length-prefixed Modified UTF-8 string, as used for
// both compound-entry keys and TAG_String payloads.
func (r *Reader) Key() (string, error) {
	n, err := r.U16()
	if err != nil {
		return "", err
	}
	raw, err := r.Bytes(int(n))
	if err != nil {
		return "", err
	}
	s, err := mutf8.Decode(raw)
	if err != nil {
		return "", nbterr.New(nbterr.KindInvalidData, "nbt: malformed mutf-8 string", err)
	}
	return s, nil
}
