package decompress

import (
	"fmt"
	"strings"

	"github.com/yegorkir/jpegcli/internal/imageutil"
	"github.com/yegorkir/jpegcli/internal/switches"
)

// Table is the decompress switch table. The output format switches are
// pass-independent because the output writer is chosen from the trial
// record.
var Table = switches.Table[Params]{
	{Names: []string{"bmp"}, MinLen: 1, Independent: true,
		Apply: func(p *Params, _ string) error {
			p.Format = FormatBMP
			return nil
		}},
	{Names: []string{"colors", "colours", "quantize", "quantise"}, MinLen: 1, Arity: 1,
		Apply: func(p *Params, v string) error {
			n, err := switches.ParseInt(v, 2, 256)
			if err != nil {
				return err
			}
			p.Colors = n
			p.QuantizeColors = true
			return nil
		}},
	{Names: []string{"dct"}, MinLen: 2, Arity: 1, Independent: true,
		Apply: func(p *Params, v string) error {
			m, err := switches.ParseDCT(v)
			if err != nil {
				return err
			}
			p.DCT = m
			return nil
		}},
	{Names: []string{"dither"}, MinLen: 2, Arity: 1,
		Apply: func(p *Params, v string) error {
			d, err := parseDither(v)
			if err != nil {
				return err
			}
			p.Dither = d
			return nil
		}},
	{Names: []string{"debug", "verbose"}, MinLen: 1, Independent: true, Banner: true,
		Apply: func(p *Params, _ string) error {
			p.TraceLevel++
			return nil
		}},
	{Names: []string{"fast"}, MinLen: 1,
		Apply: func(p *Params, _ string) error {
			p.Fast = true
			p.Dither = imageutil.DitherOrdered
			p.OnePass = true
			p.DCT = switches.DCTFast
			p.NoSmooth = true
			return nil
		}},
	{Names: []string{"gif"}, MinLen: 1, Independent: true,
		Apply: func(p *Params, _ string) error {
			p.Format = FormatGIF
			p.QuantizeColors = true
			return nil
		}},
	{Names: []string{"grayscale", "greyscale"}, MinLen: 2, Independent: true,
		Apply: func(p *Params, _ string) error {
			p.Grayscale = true
			return nil
		}},
	{Names: []string{"map"}, MinLen: 3, Arity: 1,
		Apply: func(p *Params, v string) error {
			p.MapFile = v
			p.QuantizeColors = true
			return nil
		}},
	{Names: []string{"nosmooth"}, MinLen: 3,
		Apply: func(p *Params, _ string) error {
			p.NoSmooth = true
			return nil
		}},
	{Names: []string{"onepass"}, MinLen: 3,
		Apply: func(p *Params, _ string) error {
			p.OnePass = true
			return nil
		}},
	{Names: []string{"os2"}, MinLen: 3, Independent: true,
		Apply: func(p *Params, _ string) error {
			p.Format = FormatOS2
			return nil
		}},
	{Names: []string{"outfile"}, MinLen: 4, Arity: 1, Independent: true,
		Apply: func(p *Params, v string) error {
			p.OutputFile = v
			return nil
		}},
	{Names: []string{"pnm", "ppm"}, MinLen: 1, Independent: true,
		Apply: func(p *Params, _ string) error {
			p.Format = FormatPNM
			return nil
		}},
	{Names: []string{"scale"}, MinLen: 1, Arity: 1,
		Apply: func(p *Params, v string) error {
			num, denom, ok := strings.Cut(v, "/")
			if !ok {
				return fmt.Errorf("%w: scale %q is not M/N", switches.ErrInvalidNumericValue, v)
			}
			m, err := switches.ParseInt(num, 1, 16)
			if err != nil {
				return err
			}
			n, err := switches.ParseInt(denom, 1, 16)
			if err != nil {
				return err
			}
			p.ScaleNum, p.ScaleDenom = m, n
			return nil
		}},
}

func parseDither(v string) (imageutil.Dither, error) {
	switch {
	case switches.Keymatch(v, "fs", 2):
		return imageutil.DitherFS, nil
	case switches.Keymatch(v, "none", 2):
		return imageutil.DitherNone, nil
	case switches.Keymatch(v, "ordered", 2):
		return imageutil.DitherOrdered, nil
	}
	return imageutil.DitherFS, fmt.Errorf("%w: dither method %q", switches.ErrInvalidValue, v)
}
