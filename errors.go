package pixconv

import "fmt"

// ErrorKind classifies a conversion failure into one of the three kinds the
// engine can produce. Callers that need to distinguish failure modes (retry
// vs. abort vs. report a bug) should switch on this rather than string-match
// the error text.
type ErrorKind int

const (
	// BadMode means a mode string was not recognized, or a source image
	// had no palette when one was required (e.g. P-mode source, or a
	// nil destination mode on a non-palette source).
	BadMode ErrorKind = iota
	// ConversionNotSupported means the (src, dst) mode pair has no
	// shuffler and is not handled by a palette or dither special case.
	ConversionNotSupported
	// OutOfMemory means allocation of the output image, palette, cache,
	// or scratch error-diffusion buffer failed.
	OutOfMemory
)

func (k ErrorKind) String() string {
	switch k {
	case BadMode:
		return "bad mode"
	case ConversionNotSupported:
		return "conversion not supported"
	case OutOfMemory:
		return "out of memory"
	default:
		return "unknown error"
	}
}

// ConvertError is the error type returned by every failing conversion. It
// carries a Kind for programmatic dispatch and a human-readable Msg for
// diagnostics; nothing else is logged.
type ConvertError struct {
	Kind ErrorKind
	Msg  string
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("pixconv: %s: %s", e.Kind, e.Msg)
}

func errBadMode(format string, args ...any) *ConvertError {
	return &ConvertError{Kind: BadMode, Msg: fmt.Sprintf(format, args...)}
}

func errNotSupported(src, dst Mode) *ConvertError {
	return &ConvertError{
		Kind: ConversionNotSupported,
		Msg:  fmt.Sprintf("%s -> %s", src, dst),
	}
}

// NewConvertError builds a ConvertError of the given kind. Container and
// Image implementations outside this package use it to report
// OutOfMemory and BadMode failures (e.g. a shape/mode mismatch on a
// preallocated output, or an allocation request too large to satisfy) in
// terms the rest of the engine already understands.
func NewConvertError(kind ErrorKind, format string, args ...any) *ConvertError {
	return &ConvertError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
