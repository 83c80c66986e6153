package imageutil

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

// Dither selects how colour quantization spreads its error.
type Dither int

const (
	DitherFS Dither = iota
	DitherNone
	DitherOrdered
)

func (d Dither) String() string {
	switch d {
	case DitherNone:
		return "none"
	case DitherOrdered:
		return "ordered"
	default:
		return "fs"
	}
}

// MinCubeColors is the smallest colour budget a colour cube can meet.
const MinCubeColors = 8

// ColorCube returns an evenly spaced palette of at most n colours. Gray
// images get n gray levels; colour images get a cube whose green axis is
// refined first, then red, then blue. Callers must reject colour budgets
// below MinCubeColors; ColorCube falls back to gray levels for them.
func ColorCube(n int, gray bool) color.Palette {
	if n < 2 {
		n = 2
	}
	if n > 256 {
		n = 256
	}
	if gray || n < MinCubeColors {
		pal := make(color.Palette, n)
		for i := range pal {
			pal[i] = color.Gray{Y: level(i, n)}
		}
		return pal
	}

	root := 1
	for (root+1)*(root+1)*(root+1) <= n {
		root++
	}
	levels := [3]int{root, root, root}
	for changed := true; changed; {
		changed = false
		for _, c := range [3]int{1, 0, 2} {
			total := levels[0] * levels[1] * levels[2]
			if total/levels[c]*(levels[c]+1) > n {
				break
			}
			levels[c]++
			changed = true
		}
	}

	pal := make(color.Palette, 0, levels[0]*levels[1]*levels[2])
	for r := 0; r < levels[0]; r++ {
		for g := 0; g < levels[1]; g++ {
			for b := 0; b < levels[2]; b++ {
				pal = append(pal, color.RGBA{
					R: level(r, levels[0]),
					G: level(g, levels[1]),
					B: level(b, levels[2]),
					A: 0xff,
				})
			}
		}
	}
	return pal
}

func level(i, n int) uint8 {
	return uint8((255*i + (n-1)/2) / (n - 1))
}

var bayer4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Quantize maps src onto pal.
func Quantize(src image.Image, pal color.Palette, dither Dither) *image.Paletted {
	b := src.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), pal)
	switch dither {
	case DitherFS:
		draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, b.Min)
	case DitherOrdered:
		nrgba := ToNRGBA(src)
		spread := 255 / max(1, cubeRoot(len(pal)))
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				i := nrgba.PixOffset(nrgba.Rect.Min.X+x, nrgba.Rect.Min.Y+y)
				c := color.NRGBA{R: nrgba.Pix[i], G: nrgba.Pix[i+1], B: nrgba.Pix[i+2], A: nrgba.Pix[i+3]}
				off := (bayer4[y&3][x&3]*2 - 15) * spread / 32
				c.R = clamp8(int(c.R) + off)
				c.G = clamp8(int(c.G) + off)
				c.B = clamp8(int(c.B) + off)
				dst.SetColorIndex(x, y, uint8(pal.Index(c)))
			}
		}
	default:
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	}
	return dst
}

func cubeRoot(n int) int {
	r := 1
	for (r+1)*(r+1)*(r+1) <= n {
		r++
	}
	return r
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// LoadPalette reads the colours of the image at path for use as a fixed
// colour map. Paletted images contribute their palette; others contribute
// their first 256 distinct colours.
func LoadPalette(path string) (color.Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p, ok := img.(*image.Paletted); ok {
		return p.Palette, nil
	}

	seen := make(map[color.NRGBA]bool)
	var pal color.Palette
	nrgba := ToNRGBA(img)
	for i := 0; i+3 < len(nrgba.Pix) && len(pal) < 256; i += 4 {
		c := color.NRGBA{R: nrgba.Pix[i], G: nrgba.Pix[i+1], B: nrgba.Pix[i+2], A: nrgba.Pix[i+3]}
		if !seen[c] {
			seen[c] = true
			pal = append(pal, c)
		}
	}
	if len(pal) == 0 {
		return nil, fmt.Errorf("%s: no colours", path)
	}
	return pal, nil
}

// AdaptivePalette picks up to n colours for src by median cut.
func AdaptivePalette(src image.Image, n int) color.Palette {
	q := quantize.MedianCutQuantizer{Aggregation: quantize.Mean}
	pal := q.Quantize(make(color.Palette, 0, n), src)
	if len(pal) == 0 {
		pal = append(pal, color.RGBA{A: 0xff})
	}
	return pal
}
