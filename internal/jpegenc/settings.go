// Package jpegenc holds the codec-side compression settings that the
// compress front-end configures, and the native encoder that consumes them.
package jpegenc

import (
	"errors"
	"fmt"

	"github.com/yegorkir/jpegcli/internal/switches"
)

const (
	NumQuantTables = 4
	MaxComponents  = 10
	MaxCompsInScan = 4
	MaxSampFactor  = 4
)

var (
	ErrBadColorSpace = errors.New("jpegenc: bad colour space")
	ErrTooManyTables = errors.New("jpegenc: too many tables in file")
	ErrBadTableData  = errors.New("jpegenc: invalid table data")
)

// ColorSpace identifies a pixel encoding on either side of the codec.
type ColorSpace int

const (
	ColorUnknown ColorSpace = iota
	ColorGray
	ColorRGB
	ColorYCbCr
	ColorCMYK
	ColorYCCK
)

func (c ColorSpace) String() string {
	switch c {
	case ColorGray:
		return "grayscale"
	case ColorRGB:
		return "rgb"
	case ColorYCbCr:
		return "ycbcr"
	case ColorCMYK:
		return "cmyk"
	case ColorYCCK:
		return "ycck"
	default:
		return "unknown"
	}
}

// Component is one JPEG colour component.
type Component struct {
	ID        int
	H, V      int
	QuantSlot int
}

// QuantTable holds 64 quantizer values in natural order.
type QuantTable [64]uint16

// Scan is one entry of a progressive scan script.
type Scan struct {
	Components []int
	Ss, Se     int
	Ah, Al     int
}

// Settings is the compression state the front-end configures between
// reading the input header and starting the encoder.
type Settings struct {
	InColorSpace    ColorSpace
	InputComponents int

	ColorSpace  ColorSpace
	Components  []Component
	QuantTables [NumQuantTables]*QuantTable

	// Quality is the last value passed to SetQuality. Encoders that only
	// take a quality rating use it instead of QuantTables.
	Quality       int
	CustomTables  bool
	DCT           switches.DCTMethod
	Optimize      bool
	Smoothing     int
	RestartRows   int
	RestartBlocks int
	Scans         []Scan
	TraceLevel    int
}

// New returns settings initialised for an RGB input; the colour space is a
// guess until the caller has read the input header.
func New() *Settings {
	s := &Settings{InColorSpace: ColorRGB, InputComponents: 3}
	if err := s.SetDefaults(); err != nil {
		// RGB with three components always has a default.
		panic(err)
	}
	return s
}

// SetDefaults resets every parameter to its default for the current input
// colour space.
func (s *Settings) SetDefaults() error {
	s.SetQuality(75, true)
	s.CustomTables = false
	s.DCT = switches.DCTInt
	s.Optimize = false
	s.Smoothing = 0
	s.RestartRows = 0
	s.RestartBlocks = 0
	s.Scans = nil
	return s.DefaultColorSpace()
}

// DefaultColorSpace picks the JPEG colour space for the input colour space.
func (s *Settings) DefaultColorSpace() error {
	switch s.InColorSpace {
	case ColorGray:
		return s.SetColorSpace(ColorGray)
	case ColorRGB, ColorYCbCr:
		return s.SetColorSpace(ColorYCbCr)
	case ColorCMYK:
		return s.SetColorSpace(ColorCMYK)
	case ColorYCCK:
		return s.SetColorSpace(ColorYCCK)
	case ColorUnknown:
		return s.SetColorSpace(ColorUnknown)
	}
	return fmt.Errorf("%w: input %d", ErrBadColorSpace, s.InColorSpace)
}

// SetColorSpace selects the JPEG colour space and resets the per-component
// sampling factors and quantization slots to that space's defaults.
func (s *Settings) SetColorSpace(cs ColorSpace) error {
	s.ColorSpace = cs
	switch cs {
	case ColorGray:
		s.Components = []Component{{1, 1, 1, 0}}
	case ColorRGB:
		s.Components = []Component{{'R', 1, 1, 0}, {'G', 1, 1, 0}, {'B', 1, 1, 0}}
	case ColorYCbCr:
		s.Components = []Component{{1, 2, 2, 0}, {2, 1, 1, 1}, {3, 1, 1, 1}}
	case ColorCMYK:
		s.Components = []Component{{'C', 1, 1, 0}, {'M', 1, 1, 0}, {'Y', 1, 1, 0}, {'K', 1, 1, 0}}
	case ColorYCCK:
		s.Components = []Component{{1, 2, 2, 0}, {2, 1, 1, 1}, {3, 1, 1, 1}, {4, 2, 2, 0}}
	case ColorUnknown:
		n := s.InputComponents
		if n < 1 || n > MaxComponents {
			return fmt.Errorf("%w: %d components", ErrBadColorSpace, n)
		}
		s.Components = make([]Component, n)
		for ci := range s.Components {
			s.Components[ci] = Component{ID: ci, H: 1, V: 1}
		}
	default:
		return fmt.Errorf("%w: %d", ErrBadColorSpace, cs)
	}
	return nil
}

// SetGrayscale forces a monochrome JPEG.
func (s *Settings) SetGrayscale() error {
	return s.SetColorSpace(ColorGray)
}
