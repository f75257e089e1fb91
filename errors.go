package pixconv

import "fmt"

// Kind identifies which precondition a SizeError reports.
type Kind int

const (
	// InputNotMultipleOfBpp: a source buffer's length is not an exact
	// multiple of its layout's bytes-per-pixel.
	InputNotMultipleOfBpp Kind = iota
	// OutputNotMultipleOfBpp: a destination buffer's length is not an
	// exact multiple of its layout's bytes-per-pixel.
	OutputNotMultipleOfBpp
	// LengthMismatch: source and destination pixel counts disagree.
	LengthMismatch
	// StrideTooSmall: a stride is less than width*bpp for its side.
	StrideTooSmall
	// BufferTooShort: a buffer cannot hold height rows at the given
	// stride and width.
	BufferTooShort
)

func (k Kind) String() string {
	switch k {
	case InputNotMultipleOfBpp:
		return "input length not a multiple of bytes per pixel"
	case OutputNotMultipleOfBpp:
		return "output length not a multiple of bytes per pixel"
	case LengthMismatch:
		return "source and destination pixel counts differ"
	case StrideTooSmall:
		return "stride smaller than width times bytes per pixel"
	case BufferTooShort:
		return "buffer too short for stride, width and height"
	default:
		return "unknown size error"
	}
}

// SizeError is the only error kind this package returns. It always
// means a size, length, or stride precondition failed validation
// before any buffer was touched.
type SizeError struct {
	Kind Kind

	// Got and Want carry the offending numeric values, when the Kind
	// has a natural got/want pair (e.g. LengthMismatch: Got is the
	// source count, Want is the destination count). Kinds for which
	// no single pair applies leave both at zero.
	Got, Want int
}

func (e *SizeError) Error() string {
	if e.Got == 0 && e.Want == 0 {
		return fmt.Sprintf("pixconv: %s", e.Kind)
	}
	return fmt.Sprintf("pixconv: %s (got %d, want %d)", e.Kind, e.Got, e.Want)
}
