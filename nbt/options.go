package nbt

import (
	"context"

	"github.com/anvilfile/nbtkit/internal/progress"
	"github.com/anvilfile/nbtkit/internal/zcodec"
)

// CompressionFormat selects the on-wire compression wrapper Encode applies,
// and names the wrapper Decode sniffs from its input and hands to the codec.
type CompressionFormat int

const (
	// Raw is DEFLATE with no gzip or zlib framing.
	Raw CompressionFormat = CompressionFormat(zcodec.Raw)
	// GZIP is RFC 1952 framing, the form used by Minecraft's player-data
	// and level files.
	GZIP CompressionFormat = CompressionFormat(zcodec.GZIP)
	// ZLIB is RFC 1950 framing, the form used inside MCA chunk payloads.
	ZLIB CompressionFormat = CompressionFormat(zcodec.ZLIB)
)

func (f CompressionFormat) String() string {
	return zcodec.Format(f).String()
}

// Codec is the compression collaborator Encode and Decode compress and
// decompress through. Callers may supply their own implementation (e.g.
// to plug in a faster or hardware-accelerated DEFLATE); DefaultCodec
// wraps the standard library.
type Codec interface {
	Decompress(format CompressionFormat, data []byte) ([]byte, error)
	Compress(format CompressionFormat, data []byte) ([]byte, error)
}

type defaultCodec struct{}

// DefaultCodec is the library's built-in Codec, backed by compress/gzip,
// compress/zlib, and compress/flate.
var DefaultCodec Codec = defaultCodec{}

func (defaultCodec) Decompress(format CompressionFormat, data []byte) ([]byte, error) {
	return zcodec.Decompress(zcodec.Format(format), data)
}

func (defaultCodec) Compress(format CompressionFormat, data []byte) ([]byte, error) {
	return zcodec.Compress(zcodec.Format(format), data)
}

// sniffFormat inspects data's leading bytes for a gzip or zlib magic
// number, falling back to Raw when neither matches.
func sniffFormat(data []byte) CompressionFormat {
	return CompressionFormat(zcodec.Sniff(data))
}

// ProgressFunc reports decode/encode progress. See internal/progress.Func.
type ProgressFunc = progress.Func

// DecodeOptions configures Decode. The zero value decodes uncompressed
// input with no progress reporting and no cancellation.
type DecodeOptions struct {
	// Codec performs decompression. Nil uses DefaultCodec.
	Codec Codec
	// Progress, if non-nil, is invoked with throttled percent-complete
	// updates as decoding proceeds.
	Progress ProgressFunc
	// Min and Max bound the percent range reported to Progress, letting
	// a caller embed a decode inside a larger multi-phase operation.
	// The zero value for both is treated as the full [0,100] range.
	Min, Max int
	// Ctx, if non-nil, is polled for cancellation at every node.
	Ctx context.Context
}

func (o *DecodeOptions) codec() Codec {
	if o == nil || o.Codec == nil {
		return DefaultCodec
	}
	return o.Codec
}

func (o *DecodeOptions) progressFunc() ProgressFunc {
	if o == nil {
		return nil
	}
	return o.Progress
}

func (o *DecodeOptions) progressRange() (min, max int) {
	if o == nil || (o.Min == 0 && o.Max == 0) {
		return 0, 100
	}
	return o.Min, o.Max
}

func (o *DecodeOptions) context() context.Context {
	if o == nil {
		return nil
	}
	return o.Ctx
}

// EncodeOptions configures Encode. The zero value compresses through
// DefaultCodec, with no progress reporting and no cancellation.
type EncodeOptions struct {
	// Codec performs compression. Nil uses DefaultCodec.
	Codec Codec
	// Progress, if non-nil, is invoked with throttled percent-complete
	// updates as encoding proceeds.
	Progress ProgressFunc
	// Min and Max bound the percent range reported to Progress.
	Min, Max int
	// Ctx, if non-nil, is polled for cancellation at every node.
	Ctx context.Context
}

func (o *EncodeOptions) codec() Codec {
	if o == nil || o.Codec == nil {
		return DefaultCodec
	}
	return o.Codec
}

func (o *EncodeOptions) progressFunc() ProgressFunc {
	if o == nil {
		return nil
	}
	return o.Progress
}

func (o *EncodeOptions) progressRange() (min, max int) {
	if o == nil || (o.Min == 0 && o.Max == 0) {
		return 0, 100
	}
	return o.Min, o.Max
}

func (o *EncodeOptions) context() context.Context {
	if o == nil {
		return nil
	}
	return o.Ctx
}
