// Package zcodec is the default codec collaborator: GZIP, ZLIB, and RAW
// (unwrapped DEFLATE) in both directions, built entirely on the standard
// library's compress/* packages — the same choice the rest of the Go
// ecosystem makes for DEFLATE-derived formats (third-party gzip/zlib
// reimplementations exist only for exotic needs neither NBT nor MCA has).
package zcodec

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/anvilfile/nbtkit/nbterr"
)

// Format identifies which of the three wire forms a byte stream uses.
type Format int

const (
	// Raw is DEFLATE with no gzip or zlib wrapper.
	Raw Format = iota
	// GZIP is RFC 1952 gzip framing around a DEFLATE stream.
	GZIP
	// ZLIB is RFC 1950 zlib framing around a DEFLATE stream.
	ZLIB
)

func (f Format) String() string {
	switch f {
	case GZIP:
		return "gzip"
	case ZLIB:
		return "zlib"
	case Raw:
		return "raw"
	default:
		return "unknown"
	}
}

// Sniff inspects the leading bytes of b to guess its compression format:
// a GZIP magic (1F 8B) or a ZLIB header byte (0x78) are recognized;
// anything else is assumed to be unwrapped DEFLATE.
func Sniff(b []byte) Format {
	if len(b) >= 2 && b[0] == 0x1F && b[1] == 0x8B {
		return GZIP
	}
	if len(b) >= 1 && b[0] == 0x78 {
		return ZLIB
	}
	return Raw
}

// Decompress inflates data according to format, growing its output buffer
// as needed regardless of the uncompressed size.
func Decompress(format Format, data []byte) ([]byte, error) {
	var rc io.ReadCloser
	var err error

	switch format {
	case GZIP:
		rc, err = gzip.NewReader(bytes.NewReader(data))
	case ZLIB:
		rc, err = zlib.NewReader(bytes.NewReader(data))
	case Raw:
		rc = flate.NewReader(bytes.NewReader(data))
	default:
		return nil, nbterr.Kindf(nbterr.KindInternal, "zcodec: unknown format %v", format)
	}
	if err != nil {
		return nil, nbterr.New(nbterr.KindUncompressError, "zcodec: opening "+format.String()+" stream", err)
	}
	defer rc.Close()

	out, err := io.ReadAll(rc)
	if err != nil {
		return nil, nbterr.New(nbterr.KindUncompressError, "zcodec: inflating "+format.String()+" stream", err)
	}
	return out, nil
}

// Compress deflates data according to format, requesting
// flate.BestCompression explicitly for all three formats since
// best-compression-by-default isn't guaranteed across library versions.
func Compress(format Format, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	var wc io.WriteCloser
	var err error

	switch format {
	case GZIP:
		wc, err = gzip.NewWriterLevel(&buf, gzip.BestCompression)
	case ZLIB:
		wc, err = zlib.NewWriterLevel(&buf, zlib.BestCompression)
	case Raw:
		wc, err = flate.NewWriter(&buf, flate.BestCompression)
	default:
		return nil, nbterr.Kindf(nbterr.KindInternal, "zcodec: unknown format %v", format)
	}
	if err != nil {
		return nil, nbterr.New(nbterr.KindUncompressError, "zcodec: opening "+format.String()+" writer", err)
	}

	if _, err := wc.Write(data); err != nil {
		return nil, nbterr.New(nbterr.KindUncompressError, "zcodec: writing "+format.String()+" stream", err)
	}
	if err := wc.Close(); err != nil {
		return nil, nbterr.New(nbterr.KindUncompressError, "zcodec: closing "+format.String()+" stream", err)
	}
	return buf.Bytes(), nil
}
