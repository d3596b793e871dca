package nbtio

import (
	"math"

	"github.com/anvilfile/nbtkit/internal/buf"
	"github.com/anvilfile/nbtkit/internal/mutf8"
)

// Writer is an appendable big-endian byte vector, the output-side
// counterpart of Reader.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated output. The returned slice aliases the
// Writer's internal buffer and must not be mutated by the caller.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

func (w *Writer) U8(v byte) { w.buf = append(w.buf, v) }

func (w *Writer) I8(v int8) { w.U8(byte(v)) }

func (w *Writer) U16(v uint16) { w.buf = buf.AppendU16(w.buf, v) }

func (w *Writer) I16(v int16) { w.U16(uint16(v)) }

func (w *Writer) U32(v uint32) { w.buf = buf.AppendU32(w.buf, v) }

func (w *Writer) I32(v int32) { w.U32(uint32(v)) }

func (w *Writer) U64(v uint64) { w.buf = buf.AppendU64(w.buf, v) }

func (w *Writer) I64(v int64) { w.U64(uint64(v)) }

func (w *Writer) F32(v float32) { w.U32(math.Float32bits(v)) }

func (w *Writer) F64(v float64) { w.U64(math.Float64bits(v)) }

// Raw appends b verbatim.
func (w *Writer) Raw(b []byte) { w.buf = append(w.buf, b...) }

// Key writes s as a 16-bit length-prefixed Modified UTF-8 string. The
// MUTF-8 encoding of s must not exceed 65535 bytes; callers are expected
// to have validated this upstream (NBT keys and strings are realistically
// always far shorter).
func (w *Writer) Key(s string) {
	enc := mutf8.Encode(s)
	w.U16(uint16(len(enc)))
	w.Raw(enc)
}
