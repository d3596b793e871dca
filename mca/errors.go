package mca

import "github.com/anvilfile/nbtkit/nbterr"

type (
	Error   = nbterr.Error
	ErrKind = nbterr.Kind
)

const (
	ErrKindInternal        = nbterr.KindInternal
	ErrKindEarlyEOF        = nbterr.KindEarlyEOF
	ErrKindInvalidData     = nbterr.KindInvalidData
	ErrKindUncompressError = nbterr.KindUncompressError
)

var (
	ErrEarlyEOF        = nbterr.ErrEarlyEOF
	ErrInvalidData     = nbterr.ErrInvalidData
	ErrUncompressError = nbterr.ErrUncompressError
	ErrInternal        = nbterr.ErrInternal
)

func invalidDataf(format string, args ...any) *nbterr.Error {
	return nbterr.Kindf(nbterr.KindInvalidData, format, args...)
}
