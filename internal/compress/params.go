package compress

import (
	"strconv"

	"github.com/yegorkir/jpegcli/internal/jpegenc"
	"github.com/yegorkir/jpegcli/internal/switches"
)

// Params is the compress-side parameter record. It is rebuilt from the
// defaults at the start of every pass.
type Params struct {
	switches.Common

	Quality       int
	QScaleFactor  int // scaling for -qtables; follows Quality once -quality is given
	ForceBaseline bool
	Optimize      bool

	// Deferred until the colour space is fixed.
	SimpleProgressive bool
	QTableFile        string
	QSlots            string
	Sample            string

	// RestartInRows wins over RestartInterval when non-zero.
	RestartInterval int
	RestartInRows   int
	Smoothing       int
}

// DefaultParams returns the record before any switch is applied. The
// default quality does not match the default -qtables scaling.
func DefaultParams() Params {
	return Params{
		Quality:      75,
		QScaleFactor: 100,
	}
}

// Restart returns the restart value that takes effect and whether it
// counts block rows rather than blocks.
func (p *Params) Restart() (int, bool) {
	if p.RestartInRows > 0 {
		return p.RestartInRows, true
	}
	return p.RestartInterval, false
}

// Switches renders the record as canonical switches that resolve back to
// an equal record. The output file name is not included.
func (p *Params) Switches() []string {
	var args []string
	if p.ForceBaseline {
		args = append(args, "-baseline")
	}
	if p.DCT != switches.DCTInt {
		args = append(args, "-dct", p.DCT.String())
	}
	for i := 0; i < p.TraceLevel; i++ {
		args = append(args, "-verbose")
	}
	if p.Grayscale {
		args = append(args, "-grayscale")
	}
	if p.Optimize {
		args = append(args, "-optimize")
	}
	if p.SimpleProgressive {
		args = append(args, "-progressive")
	}
	// -quality resets the -qtables scaling, so a record with an explicit
	// scale that disagrees with its quality can't be rendered exactly.
	if p.Quality != 75 || p.QScaleFactor != 100 {
		args = append(args, "-quality", strconv.Itoa(p.Quality))
	}
	if p.QSlots != "" {
		args = append(args, "-qslots", p.QSlots)
	}
	if p.QTableFile != "" {
		args = append(args, "-qtables", p.QTableFile)
	}
	if p.RestartInterval != 0 {
		args = append(args, "-restart", strconv.Itoa(p.RestartInterval)+"B")
	}
	if p.RestartInRows != 0 {
		args = append(args, "-restart", strconv.Itoa(p.RestartInRows))
	}
	if p.Sample != "" {
		args = append(args, "-sample", p.Sample)
	}
	if p.Smoothing != 0 {
		args = append(args, "-smooth", strconv.Itoa(p.Smoothing))
	}
	return args
}

// configure copies the settings that need no ordering onto the codec.
func (p *Params) configure(s *jpegenc.Settings) {
	s.DCT = p.DCT
	s.Optimize = p.Optimize
	s.Smoothing = p.Smoothing
	s.TraceLevel = p.TraceLevel
	if v, rows := p.Restart(); rows {
		s.RestartRows, s.RestartBlocks = v, 0
	} else {
		s.RestartRows, s.RestartBlocks = 0, v
	}
}
