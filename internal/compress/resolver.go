package compress

import (
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"

	"github.com/yegorkir/jpegcli/internal/common"
	"github.com/yegorkir/jpegcli/internal/jpegenc"
	"github.com/yegorkir/jpegcli/internal/switches"
)

// Target is the codec side of the commit pass. Its methods are called in
// declaration order, each only when the matching switch was given, apart
// from SetQuality which always runs.
type Target interface {
	SetGrayscale() error
	SetQuality(quality int, forceBaseline bool)
	ReadQuantTables(path string, scaleFactor int, forceBaseline bool) error
	SetQuantSlots(spec string) error
	SetSampleFactors(spec string) error
	SimpleProgression()
}

var _ Target = (*jpegenc.Settings)(nil)

// Resolver runs the two compress passes over one argument list.
type Resolver struct {
	sw     *switches.Resolver[Params]
	logger *log.Logger
}

// NewResolver returns a resolver that writes the version banner to out.
func NewResolver(out io.Writer, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.NewWithConfig(log.DefaultConfig())
	}
	return &Resolver{
		sw:     switches.NewResolver(Table, common.Banner("compress"), out, logger),
		logger: logger,
	}
}

// Trial scans args to locate the first file name. Only pass-independent
// switches reach the returned record; the rest are checked and dropped.
func (r *Resolver) Trial(args []string) (Params, int, error) {
	p := DefaultParams()
	idx, err := r.sw.Scan(&p, args, false)
	return p, idx, err
}

// Commit rescans args with every effect applied and then configures t in
// a fixed order: colour space, quality, quantization tables, table slots,
// sampling factors, progressive script.
//
// The caller must have read the input header and let the codec choose its
// default colour space before calling Commit. On failure the returned
// record and t hold whatever was applied before the failing step.
func (r *Resolver) Commit(args []string, t Target) (Params, int, error) {
	p := DefaultParams()
	idx, err := r.sw.Scan(&p, args, true)
	if err != nil {
		return p, idx, err
	}
	return p, idx, r.apply(&p, t)
}

func (r *Resolver) apply(p *Params, t Target) error {
	if p.Grayscale {
		if err := t.SetGrayscale(); err != nil {
			return fmt.Errorf("-grayscale: %w: %w", switches.ErrInvalidValue, err)
		}
	}

	t.SetQuality(p.Quality, p.ForceBaseline)

	if p.QTableFile != "" {
		r.logger.Debug("Reading quantization tables",
			log.String("file", p.QTableFile),
			log.Int("scale", p.QScaleFactor))
		if err := t.ReadQuantTables(p.QTableFile, p.QScaleFactor, p.ForceBaseline); err != nil {
			return fmt.Errorf("-qtables: %w", err)
		}
	}
	if p.QSlots != "" {
		if err := t.SetQuantSlots(p.QSlots); err != nil {
			return fmt.Errorf("-qslots: %w", err)
		}
	}
	if p.Sample != "" {
		if err := t.SetSampleFactors(p.Sample); err != nil {
			return fmt.Errorf("-sample: %w", err)
		}
	}
	if p.SimpleProgressive {
		t.SimpleProgression()
	}
	return nil
}
