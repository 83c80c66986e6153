package jpegenc

import (
	"fmt"
	"image"
	"io"

	"github.com/dlecorfec/progjpeg"

	"github.com/yegorkir/jpegcli/internal/imageutil"
)

// Encode writes img to w with the in-process encoder. It honours the
// quality rating, the colour space (grayscale or not) and the first-pass
// scans of a progressive script; the encoder has no hooks for custom
// tables, sampling factors or successive-approximation refinement.
func Encode(w io.Writer, img image.Image, s *Settings) error {
	if s.ColorSpace == ColorGray {
		img = imageutil.ToGray(img)
	} else if len(s.Components) != 3 {
		return fmt.Errorf("jpegenc: native encoder can't write %d-component %s", len(s.Components), s.ColorSpace)
	}

	quality := s.Quality
	if quality < 1 {
		quality = 1
	}
	opts := &progjpeg.Options{
		Quality:     quality,
		Progressive: s.Progressive(),
	}
	if opts.Progressive {
		opts.ScanScript = s.SpectralScript()
	}
	return progjpeg.Encode(w, img, opts)
}

// SpectralScript returns the scans of the script that carry new
// coefficients (Ah == 0), with the point transform dropped.
func (s *Settings) SpectralScript() progjpeg.ScanScript {
	var script progjpeg.ScanScript
	for _, sc := range s.Scans {
		if sc.Ah != 0 {
			continue
		}
		component := sc.Components[0]
		if len(sc.Components) > 1 {
			component = -1
		}
		script = append(script, progjpeg.ProgressiveScan{
			Component:     component,
			SpectralStart: sc.Ss,
			SpectralEnd:   sc.Se,
		})
	}
	return script
}

// Unsupported lists the settings Encode ignores, for diagnostics.
func (s *Settings) Unsupported() []string {
	var out []string
	if s.CustomTables {
		out = append(out, "qtables")
	}
	for ci, c := range s.Components {
		if c.QuantSlot != defaultSlot(s.ColorSpace, ci) {
			out = append(out, "qslots")
			break
		}
	}
	for ci, c := range s.Components {
		h, v := defaultSampling(s.ColorSpace, ci)
		if c.H != h || c.V != v {
			out = append(out, "sample")
			break
		}
	}
	if s.Optimize {
		out = append(out, "optimize")
	}
	if s.RestartRows != 0 || s.RestartBlocks != 0 {
		out = append(out, "restart")
	}
	if s.Smoothing != 0 {
		out = append(out, "smooth")
	}
	return out
}

func defaultSlot(cs ColorSpace, ci int) int {
	if cs == ColorYCbCr && ci > 0 {
		return 1
	}
	return 0
}

func defaultSampling(cs ColorSpace, ci int) (int, int) {
	if cs == ColorYCbCr && ci == 0 {
		return 2, 2
	}
	return 1, 1
}
