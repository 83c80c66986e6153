package compress

import (
	"strings"

	"github.com/yegorkir/jpegcli/internal/jpegenc"
	"github.com/yegorkir/jpegcli/internal/switches"
)

// Table is the compress switch table. Entries are matched in order, so
// every abbreviation reaches the entry the usage text promises.
var Table = switches.Table[Params]{
	{Names: []string{"baseline"}, MinLen: 1, Independent: true,
		Apply: func(p *Params, _ string) error {
			p.ForceBaseline = true
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
	{Names: []string{"debug", "verbose"}, MinLen: 1, Independent: true, Banner: true,
		Apply: func(p *Params, _ string) error {
			p.TraceLevel++
			return nil
		}},
	{Names: []string{"grayscale", "greyscale"}, MinLen: 2, Independent: true,
		Apply: func(p *Params, _ string) error {
			p.Grayscale = true
			return nil
		}},
	{Names: []string{"optimize", "optimise"}, MinLen: 1, Independent: true,
		Apply: func(p *Params, _ string) error {
			p.Optimize = true
			return nil
		}},
	{Names: []string{"outfile"}, MinLen: 4, Arity: 1, Independent: true,
		Apply: func(p *Params, v string) error {
			p.OutputFile = v
			return nil
		}},
	{Names: []string{"progressive"}, MinLen: 1,
		Apply: func(p *Params, _ string) error {
			p.SimpleProgressive = true
			return nil
		}},
	{Names: []string{"quality"}, MinLen: 1, Arity: 1,
		Apply: func(p *Params, v string) error {
			q, err := switches.ParseInt(v, 0, 100)
			if err != nil {
				return err
			}
			p.Quality = q
			p.QScaleFactor = jpegenc.QualityScaling(q)
			return nil
		}},
	{Names: []string{"qslots"}, MinLen: 2, Arity: 1,
		Apply: func(p *Params, v string) error {
			p.QSlots = v
			return nil
		}},
	{Names: []string{"qtables"}, MinLen: 2, Arity: 1,
		Apply: func(p *Params, v string) error {
			p.QTableFile = v
			return nil
		}},
	{Names: []string{"restart"}, MinLen: 1, Arity: 1,
		Apply: func(p *Params, v string) error {
			digits := v
			inBlocks := strings.HasSuffix(v, "b") || strings.HasSuffix(v, "B")
			if inBlocks {
				digits = v[:len(v)-1]
			}
			n, err := switches.ParseInt(digits, 0, 65535)
			if err != nil {
				return err
			}
			if inBlocks {
				p.RestartInterval = n
				p.RestartInRows = 0
			} else {
				p.RestartInRows = n
			}
			return nil
		}},
	{Names: []string{"sample"}, MinLen: 2, Arity: 1,
		Apply: func(p *Params, v string) error {
			p.Sample = v
			return nil
		}},
	{Names: []string{"smooth"}, MinLen: 2, Arity: 1,
		Apply: func(p *Params, v string) error {
			n, err := switches.ParseInt(v, 0, 100)
			if err != nil {
				return err
			}
			p.Smoothing = n
			return nil
		}},
}
