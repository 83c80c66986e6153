package imageutil

import (
	"fmt"
	"image"
	"image/color"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Header is what the source reader learns before any pixels are decoded.
type Header struct {
	Format     string
	Width      int
	Height     int
	Components int
	Gray       bool
	CMYK       bool
}

// ReadHeader reads the image configuration from r and rewinds it so the
// pixels can be decoded afterwards.
func ReadHeader(r io.ReadSeeker) (Header, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Header{}, fmt.Errorf("read header: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Header{}, err
	}

	h := Header{Format: format, Width: cfg.Width, Height: cfg.Height, Components: 3}
	switch cfg.ColorModel {
	case color.GrayModel, color.Gray16Model:
		h.Gray = true
		h.Components = 1
	case color.CMYKModel:
		h.CMYK = true
		h.Components = 4
	}
	return h, nil
}

// Decode decodes the whole image from r.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode: %w", err)
	}
	return img, format, nil
}

// ToGray converts src to an 8-bit grayscale image.
func ToGray(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// ToNRGBA converts src to a tightly packed NRGBA image.
func ToNRGBA(src image.Image) *image.NRGBA {
	if nrgba, ok := src.(*image.NRGBA); ok && nrgba.Stride == nrgba.Rect.Dx()*4 {
		return nrgba
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Scale resizes src by num/denom. smooth selects Catmull-Rom filtering,
// otherwise nearest-neighbour sampling is used.
func Scale(src image.Image, num, denom int, smooth bool) image.Image {
	b := src.Bounds()
	w, h := ScaledSize(b.Dx(), b.Dy(), num, denom)
	if w == b.Dx() && h == b.Dy() {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	var scaler draw.Scaler = draw.NearestNeighbor
	if smooth {
		scaler = draw.CatmullRom
	}
	scaler.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	if _, ok := src.(*image.Gray); ok {
		return ToGray(dst)
	}
	return dst
}
