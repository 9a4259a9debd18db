package flixel

import (
	"fmt"
	"image"
	"io"
	"strings"

	// Decoders accepted by DecodeImageToCSV.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// ImageToCSV converts a raster image into the text form NewTilemap
// consumes. Pixels with any nonzero color channel become tile id 1 and
// black pixels id 0, or the reverse when invert is set. scale repeats
// every pixel that many times in both axes; values below 1 mean 1.
func ImageToCSV(img image.Image, invert bool, scale int) string {
	if scale < 1 {
		scale = 1
	}
	bounds := img.Bounds()
	var b strings.Builder
	first := true
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for repeat := 0; repeat < scale; repeat++ {
			if !first {
				b.WriteByte('\n')
			}
			first = false
			writeImageRow(&b, img, y, invert, scale)
		}
	}
	return b.String()
}

// writeImageRow emits one pixel row as comma-separated tile ids.
func writeImageRow(b *strings.Builder, img image.Image, y int, invert bool, scale int) {
	bounds := img.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		r, g, bl, _ := img.At(x, y).RGBA()
		solid := r|g|bl != 0
		if invert {
			solid = !solid
		}
		id := byte('0')
		if solid {
			id = '1'
		}
		for repeat := 0; repeat < scale; repeat++ {
			if x > bounds.Min.X || repeat > 0 {
				b.WriteByte(',')
			}
			b.WriteByte(id)
		}
	}
}

// DecodeImageToCSV decodes PNG, GIF, or BMP data from r and converts it
// with ImageToCSV.
func DecodeImageToCSV(r io.Reader, invert bool, scale int) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("flixel: decode map image: %w", err)
	}
	return ImageToCSV(img, invert, scale), nil
}
