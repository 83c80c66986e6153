package imageutil

import (
	"fmt"
)

// ScaledSize returns width and height multiplied by num/denom, rounded up
// and never below one pixel.
func ScaledSize(width, height, num, denom int) (int, int) {
	if num <= 0 || denom <= 0 {
		return width, height
	}
	w := (width*num + denom - 1) / denom
	h := (height*num + denom - 1) / denom
	return max(1, w), max(1, h)
}

// FormatDimensionNote describes a size change for status lines.
func FormatDimensionNote(original, processed [2]int) string {
	note := fmt.Sprintf("%dx%d", original[0], original[1])
	if original == processed {
		return note
	}
	return fmt.Sprintf("%s->%dx%d", note, processed[0], processed[1])
}
