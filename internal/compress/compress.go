package compress

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/retroenv/retrogolib/log"

	"github.com/yegorkir/jpegcli/internal/common"
	"github.com/yegorkir/jpegcli/internal/imageutil"
	"github.com/yegorkir/jpegcli/internal/jpegenc"
	"github.com/yegorkir/jpegcli/internal/mozjpeg"
)

// Backend selects the codec that writes the JPEG.
type Backend string

const (
	BackendNative  Backend = "native"
	BackendMozJPEG Backend = "mozjpeg"
)

// Options configures Run. The zero value uses the native backend and
// writes to the process's standard streams.
type Options struct {
	Backend Backend
	Logger  *log.Logger
	Stdout  io.Writer
	Stderr  io.Writer
}

func (o *Options) defaults() {
	if o.Backend == "" {
		o.Backend = BackendNative
	}
	if o.Logger == nil {
		o.Logger = log.NewWithConfig(log.DefaultConfig())
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Run compresses one image as described by the cjpeg-style args.
func Run(ctx context.Context, args []string, opt Options) error {
	opt.defaults()
	logger := opt.Logger
	r := NewResolver(opt.Stdout, logger)

	// Scan once to find the file names; the values are recomputed after
	// the input header is known.
	p, fileIndex, err := r.Trial(args)
	if err != nil {
		Usage(opt.Stderr)
		return err
	}
	inName, outName, err := common.FileNames(args, fileIndex, p.OutputFile)
	if err != nil {
		Usage(opt.Stderr)
		return err
	}

	in, err := common.OpenInput(inName)
	if err != nil {
		return err
	}
	defer in.Close()

	hdr, err := imageutil.ReadHeader(in)
	if err != nil {
		return fmt.Errorf("%s: %w", inName, err)
	}
	logger.Debug("Input header read",
		log.String("file", inName),
		log.String("format", hdr.Format),
		log.Int("width", hdr.Width),
		log.Int("height", hdr.Height),
		log.Int("components", hdr.Components))

	settings := jpegenc.New()
	settings.InColorSpace, settings.InputComponents = inputColorSpace(hdr)
	if err := settings.DefaultColorSpace(); err != nil {
		return err
	}

	p, _, err = r.Commit(args, settings)
	if err != nil {
		Usage(opt.Stderr)
		return err
	}
	p.configure(settings)

	start := time.Now()
	size, err := write(ctx, in, outName, settings, &p, opt)
	if err != nil {
		return err
	}

	fmt.Fprintf(opt.Stdout, "[OK] %s -> %s (%dx%d %s) q=%d size=%.1fKB in %s\n",
		filepath.Base(inName),
		outName,
		hdr.Width,
		hdr.Height,
		settings.ColorSpace,
		p.Quality,
		float64(size)/1024,
		time.Since(start).Truncate(time.Millisecond),
	)
	return nil
}

// write encodes the image behind in to dest with the selected backend.
func write(ctx context.Context, in io.Reader, dest string, s *jpegenc.Settings, p *Params, opt Options) (int64, error) {
	switch opt.Backend {
	case BackendNative:
		if skipped := s.Unsupported(); len(skipped) > 0 {
			opt.Logger.Warn("Native encoder ignores switches",
				log.String("switches", strings.Join(skipped, ",")))
		}
		img, _, err := imageutil.Decode(in)
		if err != nil {
			return 0, err
		}
		return common.WriteFile(dest, func(w io.Writer) error {
			return jpegenc.Encode(w, img, s)
		})
	case BackendMozJPEG:
		tc, err := mozjpeg.Locate(ctx)
		if err != nil {
			return 0, fmt.Errorf("prepare mozjpeg: %w", err)
		}
		args := p.Switches()
		opt.Logger.Debug("Running cjpeg",
			log.String("path", tc.CJPEG),
			log.String("args", strings.Join(args, " ")))
		return common.WriteFile(dest, func(w io.Writer) error {
			return mozjpeg.Compress(ctx, tc, args, in, w)
		})
	default:
		return 0, fmt.Errorf("unknown backend %q", opt.Backend)
	}
}

func inputColorSpace(h imageutil.Header) (jpegenc.ColorSpace, int) {
	switch {
	case h.Gray:
		return jpegenc.ColorGray, 1
	case h.CMYK:
		return jpegenc.ColorCMYK, 4
	default:
		return jpegenc.ColorRGB, 3
	}
}

// Usage prints the compress switch summary.
func Usage(w io.Writer) {
	fmt.Fprint(w, `usage: jpegcli compress [switches] inputfile outputfile
       jpegcli compress [switches] -outfile name inputfile
Switches (names may be abbreviated):
  -quality N     Compression quality (0..100; 5-95 is useful range)
  -grayscale (-gr)  Create monochrome JPEG file
  -optimize      Optimize Huffman table (smaller file, but slow compression)
  -progressive   Create progressive JPEG file
Switches for advanced users:
  -dct int       Use integer DCT method (default)
  -dct fast      Use fast integer DCT (less accurate)
  -dct float     Use floating-point DCT method
  -restart N     Set restart interval in rows, or in blocks with B
  -smooth N      Smooth dithered input (N=1..100 is strength)
  -outfile name  Specify name for output file
  -verbose  or  -debug   Emit debug output
Switches for wizards:
  -baseline      Force baseline quantization tables
  -qtables file  Use quantization tables given in file
  -qslots N[,...]    Set component quantization tables
  -sample HxV[,...]  Set component sampling factors
`)
}
