package nbt

import "github.com/anvilfile/nbtkit/nbterr"

// Error, ErrKind, and the sentinel Err* values are re-exported from
// nbterr so callers working only with this package never need a second
// import to do errors.As/errors.Is error-kind checks.
type (
	Error   = nbterr.Error
	ErrKind = nbterr.Kind
)

const (
	ErrKindInternal        = nbterr.KindInternal
	ErrKindEarlyEOF        = nbterr.KindEarlyEOF
	ErrKindInvalidTag      = nbterr.KindInvalidTag
	ErrKindInvalidData     = nbterr.KindInvalidData
	ErrKindLeftoverData    = nbterr.KindLeftoverData
	ErrKindUncompressError = nbterr.KindUncompressError
	ErrKindBufferOverflow  = nbterr.KindBufferOverflow
	ErrKindCancelled       = nbterr.KindCancelled
)

var (
	ErrEarlyEOF        = nbterr.ErrEarlyEOF
	ErrInvalidTag      = nbterr.ErrInvalidTag
	ErrInvalidData     = nbterr.ErrInvalidData
	ErrLeftoverData    = nbterr.ErrLeftoverData
	ErrUncompressError = nbterr.ErrUncompressError
	ErrBufferOverflow  = nbterr.ErrBufferOverflow
	ErrCancelled       = nbterr.ErrCancelled
	ErrInternal        = nbterr.ErrInternal
)

func invalidDataf(format string, args ...any) *nbterr.Error {
	return nbterr.Kindf(nbterr.KindInvalidData, format, args...)
}

func invalidTagf(format string, args ...any) *nbterr.Error {
	return nbterr.Kindf(nbterr.KindInvalidTag, format, args...)
}

func internalf(format string, args ...any) *nbterr.Error {
	return nbterr.Kindf(nbterr.KindInternal, format, args...)
}
