package decompress

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/bmp"

	"github.com/yegorkir/jpegcli/internal/common"
	"github.com/yegorkir/jpegcli/internal/imageutil"
	"github.com/yegorkir/jpegcli/internal/mozjpeg"
	"github.com/yegorkir/jpegcli/internal/switches"
)

// ErrNotJPEG is returned when the input file is not a JPEG image.
var ErrNotJPEG = errors.New("not a JPEG file")

// Backend selects the codec that reads the JPEG.
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

// Run decompresses one JPEG as described by the djpeg-style args.
func Run(ctx context.Context, args []string, opt Options) error {
	opt.defaults()
	logger := opt.Logger
	r := NewResolver(opt.Stdout, logger)

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
	logger.Debug("Output format selected", log.String("format", p.Format.String()))

	in, err := common.OpenInput(inName)
	if err != nil {
		return err
	}
	defer in.Close()

	hdr, err := imageutil.ReadHeader(in)
	if err != nil {
		return fmt.Errorf("%s: %w", inName, err)
	}
	if hdr.Format != "jpeg" {
		return fmt.Errorf("%s: %w (found %s)", inName, ErrNotJPEG, hdr.Format)
	}

	p, _, err = r.Commit(args)
	if err != nil {
		Usage(opt.Stderr)
		return err
	}

	start := time.Now()
	var size int64
	processed := [2]int{hdr.Width, hdr.Height}
	switch opt.Backend {
	case BackendNative:
		var img image.Image
		img, err = render(in, &p, logger)
		if err != nil {
			return err
		}
		b := img.Bounds()
		processed = [2]int{b.Dx(), b.Dy()}
		size, err = common.WriteFile(outName, func(w io.Writer) error {
			return encode(w, img, p.Format)
		})
	case BackendMozJPEG:
		var tc *mozjpeg.Toolchain
		tc, err = mozjpeg.Locate(ctx)
		if err != nil {
			return fmt.Errorf("prepare mozjpeg: %w", err)
		}
		djpegArgs := p.Switches()
		logger.Debug("Running djpeg",
			log.String("path", tc.DJPEG),
			log.String("args", strings.Join(djpegArgs, " ")))
		processed[0], processed[1] = imageutil.ScaledSize(hdr.Width, hdr.Height, p.ScaleNum, p.ScaleDenom)
		size, err = common.WriteFile(outName, func(w io.Writer) error {
			return mozjpeg.Decompress(ctx, tc, djpegArgs, in, w)
		})
	default:
		err = fmt.Errorf("unknown backend %q", opt.Backend)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(opt.Stdout, "[OK] %s -> %s (%s %s) size=%.1fKB in %s\n",
		filepath.Base(inName),
		outName,
		imageutil.FormatDimensionNote([2]int{hdr.Width, hdr.Height}, processed),
		p.Format,
		float64(size)/1024,
		time.Since(start).Truncate(time.Millisecond),
	)
	return nil
}

// render decodes the JPEG and applies the colour conversion, scaling and
// quantization the record asks for.
func render(in io.Reader, p *Params, logger *log.Logger) (image.Image, error) {
	var ignored []string
	if p.DCT != switches.DCTInt {
		ignored = append(ignored, "dct")
	}
	if p.Format == FormatOS2 {
		ignored = append(ignored, "os2")
	}
	if len(ignored) > 0 {
		logger.Warn("Native decoder ignores switches", log.String("switches", strings.Join(ignored, ",")))
	}

	img, _, err := imageutil.Decode(in)
	if err != nil {
		return nil, err
	}
	if p.Grayscale {
		img = imageutil.ToGray(img)
	}
	if p.Scaled() {
		img = imageutil.Scale(img, p.ScaleNum, p.ScaleDenom, !p.NoSmooth)
	}
	if !p.QuantizeColors {
		return img, nil
	}

	pal, err := palette(img, p)
	if err != nil {
		return nil, err
	}
	logger.Debug("Quantizing",
		log.Int("colors", len(pal)),
		log.String("dither", p.Dither.String()),
		log.Bool("onepass", p.OnePass))
	return imageutil.Quantize(img, pal, p.Dither), nil
}

func palette(img image.Image, p *Params) (color.Palette, error) {
	if p.MapFile != "" {
		pal, err := imageutil.LoadPalette(p.MapFile)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
				return nil, switches.IOError("open", p.MapFile, err)
			}
			return nil, fmt.Errorf("-map: %w", err)
		}
		return pal, nil
	}
	_, gray := img.(*image.Gray)
	if p.OnePass && !gray && p.Colors < imageutil.MinCubeColors {
		return nil, fmt.Errorf("-colors: %w: one-pass quantization needs at least %d colours, got %d",
			switches.ErrInvalidValue, imageutil.MinCubeColors, p.Colors)
	}
	if p.OnePass || gray {
		return imageutil.ColorCube(p.Colors, gray), nil
	}
	return imageutil.AdaptivePalette(img, p.Colors), nil
}

func encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatGIF:
		return gif.Encode(w, img, &gif.Options{NumColors: 256})
	case FormatPNM:
		return imageutil.WritePNM(w, img)
	default:
		return bmp.Encode(w, img)
	}
}

// Usage prints the decompress switch summary.
func Usage(w io.Writer) {
	fmt.Fprint(w, `usage: jpegcli decompress [switches] inputfile outputfile
       jpegcli decompress [switches] -outfile name inputfile
Switches (names may be abbreviated):
  -colors N      Reduce image to no more than N colors
  -fast          Fast, low-quality processing
  -grayscale (-gr)  Force grayscale output
  -scale M/N     Scale output image by fraction M/N, eg, 1/8
  -bmp           Select BMP output format (Windows style)
  -gif           Select GIF output format
  -os2           Select BMP output format (OS/2 style)
  -pnm           Select PBMPLUS (PPM/PGM) output format
Switches for advanced users:
  -dct int       Use integer DCT method (default)
  -dct fast      Use fast integer DCT (less accurate)
  -dct float     Use floating-point DCT method
  -dither fs     Use F-S dithering (default)
  -dither none   Don't use dithering in quantization
  -dither ordered  Use ordered dither (medium speed, quality)
  -map FILE      Map to colors used in named image file
  -nosmooth      Don't use high-quality upsampling
  -onepass       Use 1-pass quantization (fast, low quality)
  -outfile name  Specify name for output file
  -verbose  or  -debug   Emit debug output
`)
}
