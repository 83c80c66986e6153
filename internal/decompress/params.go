package decompress

import (
	"fmt"
	"strconv"

	"github.com/yegorkir/jpegcli/internal/imageutil"
	"github.com/yegorkir/jpegcli/internal/switches"
)

// Format is the output file format.
type Format int

const (
	FormatBMP Format = iota
	FormatOS2
	FormatGIF
	FormatPNM
)

func (f Format) String() string {
	switch f {
	case FormatOS2:
		return "os2"
	case FormatGIF:
		return "gif"
	case FormatPNM:
		return "pnm"
	default:
		return "bmp"
	}
}

// Params is the decompress-side parameter record.
type Params struct {
	switches.Common

	Format Format

	QuantizeColors bool
	Colors         int
	Dither         imageutil.Dither
	OnePass        bool
	MapFile        string

	Fast       bool
	NoSmooth   bool
	ScaleNum   int
	ScaleDenom int
}

// DefaultParams returns the record before any switch is applied.
func DefaultParams() Params {
	return Params{
		Colors:     256,
		Dither:     imageutil.DitherFS,
		ScaleNum:   1,
		ScaleDenom: 1,
	}
}

// Scaled reports whether -scale asks for anything but 1/1.
func (p *Params) Scaled() bool {
	return p.ScaleNum != p.ScaleDenom
}

// Switches renders the record as canonical djpeg switches that resolve
// back to an equal record. -fast goes first since it overrides several
// fields; the output file name is not included.
func (p *Params) Switches() []string {
	var args []string
	dct, dither := switches.DCTInt, imageutil.DitherFS
	if p.Fast {
		args = append(args, "-fast")
		dct, dither = switches.DCTFast, imageutil.DitherOrdered
	}
	switch p.Format {
	case FormatOS2:
		args = append(args, "-os2")
	case FormatGIF:
		args = append(args, "-gif")
	case FormatPNM:
		args = append(args, "-pnm")
	}
	if p.DCT != dct {
		args = append(args, "-dct", p.DCT.String())
	}
	if p.Dither != dither {
		args = append(args, "-dither", p.Dither.String())
	}
	for i := 0; i < p.TraceLevel; i++ {
		args = append(args, "-verbose")
	}
	if p.Grayscale {
		args = append(args, "-grayscale")
	}
	if p.QuantizeColors {
		implied := p.MapFile != "" || p.Format == FormatGIF
		if p.Colors != 256 || !implied {
			args = append(args, "-colors", strconv.Itoa(p.Colors))
		}
	}
	if p.MapFile != "" {
		args = append(args, "-map", p.MapFile)
	}
	if p.NoSmooth && !p.Fast {
		args = append(args, "-nosmooth")
	}
	if p.OnePass && !p.Fast {
		args = append(args, "-onepass")
	}
	if p.ScaleNum != 1 || p.ScaleDenom != 1 {
		args = append(args, "-scale", fmt.Sprintf("%d/%d", p.ScaleNum, p.ScaleDenom))
	}
	return args
}
