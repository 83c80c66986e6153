package imageutil

import (
	"image"
	"image/color"
	"io"

	"github.com/spakin/netpbm"
)

// WritePNM writes img as binary PGM when it is grayscale, PPM otherwise.
func WritePNM(w io.Writer, img image.Image) error {
	format := netpbm.PPM
	if isGray(img) {
		format = netpbm.PGM
	}
	return netpbm.Encode(w, img, &netpbm.EncodeOptions{
		Format:   format,
		MaxValue: 255,
	})
}

func isGray(img image.Image) bool {
	switch m := img.(type) {
	case *image.Gray:
		return true
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, ok := c.(color.Gray); !ok {
				return false
			}
		}
		return len(m.Palette) > 0
	}
	return false
}
