// Package serialize implements the byte-stream abstractions used to
// encode and decode the Bitcoin P2P wire format: abstract Source/Sink
// interfaces, Bitcoin-flavored varint, fixed-endianness primitive
// readers/writers, and the buffered/limited/tapping adapters that let a
// message be parsed in one pass while its checksum is computed alongside.
package serialize

import "fmt"

// Kind enumerates the typed error conditions a Source or Sink can fail with.
type Kind int

const (
	// UnexpectedEOF means the stream ended before a field was complete.
	UnexpectedEOF Kind = iota
	// Truncated means a length-prefixed value declared more bytes than
	// were available within an enclosing limit.
	Truncated
	// InvalidFormat means a structural constraint was violated.
	InvalidFormat
	// InvalidChecksum means a SHA256d-truncated checksum did not match.
	InvalidChecksum
	// InvalidMagic means a message frame carried the wrong network magic.
	InvalidMagic
	// Overflow means a varint exceeded the caller's target width.
	Overflow
	// LengthOverflow means a script push-data length exceeded uint32 range.
	LengthOverflow
	// IO wraps an error returned by the underlying byte stream.
	IO
)

func (k Kind) String() string {
	switch k {
	case UnexpectedEOF:
		return "unexpected EOF"
	case Truncated:
		return "truncated"
	case InvalidFormat:
		return "invalid format"
	case InvalidChecksum:
		return "invalid checksum"
	case InvalidMagic:
		return "invalid magic"
	case Overflow:
		return "overflow"
	case LengthOverflow:
		return "length overflow"
	case IO:
		return "io error"
	default:
		return "unknown error"
	}
}

// Error is the typed error every Source/Sink operation in this module
// fails with. Context carries the field name, command, or byte position
// useful for operational diagnosis, per the error-handling design.
type Error struct {
	Kind    Kind
	Context string
	Cause   error
}

func (e *Error) Error() string {
	if e.Context != "" && e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.Cause)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Context)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, serialize.ErrUnexpectedEOF) style checks via
// the package-level sentinel constructors below.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == te.Kind
}

func newErr(kind Kind, context string, cause error) *Error {
	return &Error{Kind: kind, Context: context, Cause: cause}
}

// ErrUnexpectedEOF, ErrInvalidMagic etc. are Kind-only sentinels suitable
// for errors.Is comparisons against the Kind only (Context/Cause ignored
// by Error.Is).
var (
	ErrUnexpectedEOF    = &Error{Kind: UnexpectedEOF}
	ErrTruncated        = &Error{Kind: Truncated}
	ErrInvalidFormat    = &Error{Kind: InvalidFormat}
	ErrInvalidChecksum  = &Error{Kind: InvalidChecksum}
	ErrInvalidMagic     = &Error{Kind: InvalidMagic}
	ErrOverflow         = &Error{Kind: Overflow}
	ErrLengthOverflow   = &Error{Kind: LengthOverflow}
)

// NewInvalidFormat builds an InvalidFormat error carrying diagnostic
// context (field name, command, or byte position), for use outside this
// package where a structural constraint defined elsewhere is violated.
func NewInvalidFormat(context string) error { return newErr(InvalidFormat, context, nil) }

// NewInvalidMagic builds an InvalidMagic error with context.
func NewInvalidMagic(context string) error { return newErr(InvalidMagic, context, nil) }

// NewOverflow builds an Overflow error with context.
func NewOverflow(context string) error { return newErr(Overflow, context, nil) }

func unexpectedEOF(context string, cause error) error { return newErr(UnexpectedEOF, context, cause) }
func truncated(context string) error                  { return newErr(Truncated, context, nil) }
func invalidFormat(context string) error               { return newErr(InvalidFormat, context, nil) }
func invalidChecksum(context string) error              { return newErr(InvalidChecksum, context, nil) }
func invalidMagic(context string) error                 { return newErr(InvalidMagic, context, nil) }
func overflow(context string) error                      { return newErr(Overflow, context, nil) }
func lengthOverflow(context string) error                { return newErr(LengthOverflow, context, nil) }
func ioErr(context string, cause error) error            { return newErr(IO, context, cause) }
