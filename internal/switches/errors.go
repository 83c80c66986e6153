package switches

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSwitch is returned when a token is not found in the switch table.
	ErrUnknownSwitch = errors.New("unknown switch")

	// ErrMissingValue is returned when a switch needs a value and none follows.
	ErrMissingValue = errors.New("missing value")

	// ErrInvalidNumericValue is returned for non-numeric or out-of-range values.
	ErrInvalidNumericValue = errors.New("invalid numeric value")

	// ErrInvalidValue is returned for values outside an enumeration or malformed specs.
	ErrInvalidValue = errors.New("invalid value")

	// ErrFileNameCount is returned when the positional file names don't add up.
	ErrFileNameCount = errors.New("must name one input and one output file")

	// ErrIO is returned when opening the input or creating the output fails.
	ErrIO = errors.New("i/o failure")
)

// Kind discriminates resolution failures.
type Kind int

const (
	KindNone Kind = iota
	KindUnknownSwitch
	KindMissingValue
	KindInvalidNumericValue
	KindInvalidValue
	KindFileNameCountMismatch
	KindIOError
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnknownSwitch:
		return "UnknownSwitch"
	case KindMissingValue:
		return "MissingValue"
	case KindInvalidNumericValue:
		return "InvalidNumericValue"
	case KindInvalidValue:
		return "InvalidValue"
	case KindFileNameCountMismatch:
		return "FileNameCountMismatch"
	case KindIOError:
		return "IOError"
	default:
		return "Other"
	}
}

// KindOf reports which failure kind err carries.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrUnknownSwitch):
		return KindUnknownSwitch
	case errors.Is(err, ErrMissingValue):
		return KindMissingValue
	case errors.Is(err, ErrInvalidNumericValue):
		return KindInvalidNumericValue
	case errors.Is(err, ErrInvalidValue):
		return KindInvalidValue
	case errors.Is(err, ErrFileNameCount):
		return KindFileNameCountMismatch
	case errors.Is(err, ErrIO):
		return KindIOError
	default:
		return KindOther
	}
}

// Error is a failure tied to one argument token.
type Error struct {
	Arg   string // switch token as given, including the hyphen
	Index int    // position of Arg in the argument list
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (argument %d): %v", e.Arg, e.Index, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IOError wraps an operating system failure so that both ErrIO and the
// underlying error match errors.Is.
func IOError(op, name string, err error) error {
	return fmt.Errorf("%w: can't %s %s: %w", ErrIO, op, name, err)
}
