// Package nbterr defines the typed error vocabulary shared by the nbt and
// mca packages, so callers can branch on intent with errors.As instead of
// matching error strings.
package nbterr

import "fmt"

// Kind classifies an error so callers can branch on the failure category
// rather than its text.
type Kind int

const (
	// KindInternal marks an invariant violation or unreachable branch.
	KindInternal Kind = iota
	// KindEarlyEOF marks a read that would run past the end of the buffer.
	KindEarlyEOF
	// KindInvalidTag marks a tag-kind byte outside (End, LongArray].
	KindInvalidTag
	// KindInvalidData marks a structurally invalid payload: a negative
	// length, a non-empty list of End, a malformed string, and similar.
	KindInvalidData
	// KindLeftoverData marks a successful decode that did not consume the
	// whole buffer. It is non-fatal; the tree is still returned.
	KindLeftoverData
	// KindUncompressError marks a failure in the codec collaborator.
	KindUncompressError
	// KindBufferOverflow marks a caller-supplied buffer too small for an
	// in-place compression API.
	KindBufferOverflow
	// KindCancelled marks an operation that observed a cancelled context.
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindEarlyEOF:
		return "early-eof"
	case KindInvalidTag:
		return "invalid-tag"
	case KindInvalidData:
		return "invalid-data"
	case KindLeftoverData:
		return "leftover-data"
	case KindUncompressError:
		return "uncompress-error"
	case KindBufferOverflow:
		return "buffer-overflow"
	case KindCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error carrying a Kind, a human-readable message, and an
// optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, nbterr.ErrEarlyEOF) as a kind-only check.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an *Error of the given kind wrapping cause (which may be nil).
func New(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Sentinels for use with errors.Is. Each carries no wrapped cause; build a
// more specific *Error with New when a cause or extra context is available.
var (
	ErrInternal        = &Error{Kind: KindInternal, Msg: "nbt: internal error"}
	ErrEarlyEOF        = &Error{Kind: KindEarlyEOF, Msg: "nbt: early end of buffer"}
	ErrInvalidTag      = &Error{Kind: KindInvalidTag, Msg: "nbt: invalid tag kind"}
	ErrInvalidData     = &Error{Kind: KindInvalidData, Msg: "nbt: invalid data"}
	ErrLeftoverData    = &Error{Kind: KindLeftoverData, Msg: "nbt: leftover data after decode"}
	ErrUncompressError = &Error{Kind: KindUncompressError, Msg: "nbt: decompression failed"}
	ErrBufferOverflow  = &Error{Kind: KindBufferOverflow, Msg: "nbt: destination buffer too small"}
	ErrCancelled       = &Error{Kind: KindCancelled, Msg: "nbt: operation cancelled"}
)

// Kindf builds an *Error of the given kind with a formatted message.
func Kindf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
