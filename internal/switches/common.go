package switches

import (
	"fmt"
	"strconv"
)

// DCTMethod selects the discrete cosine transform implementation.
type DCTMethod int

const (
	DCTInt DCTMethod = iota
	DCTFast
	DCTFloat
)

func (m DCTMethod) String() string {
	switch m {
	case DCTFast:
		return "fast"
	case DCTFloat:
		return "float"
	default:
		return "int"
	}
}

// ParseDCT accepts the abbreviations int, fa[st] and fl[oat].
func ParseDCT(value string) (DCTMethod, error) {
	switch {
	case Keymatch(value, "int", 1):
		return DCTInt, nil
	case Keymatch(value, "fast", 2):
		return DCTFast, nil
	case Keymatch(value, "float", 2):
		return DCTFloat, nil
	}
	return DCTInt, fmt.Errorf("%w: dct method %q", ErrInvalidValue, value)
}

// Common holds the fields both the compress and decompress records carry.
type Common struct {
	OutputFile string
	TraceLevel int
	DCT        DCTMethod
	Grayscale  bool
}

// ParseInt parses value as a decimal integer in [lo, hi].
func ParseInt(value string, lo, hi int) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidNumericValue, value)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidNumericValue, v, lo, hi)
	}
	return v, nil
}
