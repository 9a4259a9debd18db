package flixel

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

// checkerImage builds a 2x2 image with white top-left and bottom-right
// pixels.
func checkerImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	img.Set(1, 1, color.White)
	return img
}

// TestImageToCSV_Checker verifies nonzero pixels become id 1.
func TestImageToCSV_Checker(t *testing.T) {
	got := ImageToCSV(checkerImage(), false, 1)
	if got != "1,0\n0,1" {
		t.Errorf("ImageToCSV = %q, want %q", got, "1,0\n0,1")
	}
}

// TestImageToCSV_Invert verifies invert swaps solid and empty.
func TestImageToCSV_Invert(t *testing.T) {
	got := ImageToCSV(checkerImage(), true, 1)
	if got != "0,1\n1,0" {
		t.Errorf("ImageToCSV = %q, want %q", got, "0,1\n1,0")
	}
}

// TestImageToCSV_Scale verifies each pixel repeats scale times in both
// axes.
func TestImageToCSV_Scale(t *testing.T) {
	got := ImageToCSV(checkerImage(), false, 2)
	want := "1,1,0,0\n1,1,0,0\n0,0,1,1\n0,0,1,1"
	if got != want {
		t.Errorf("ImageToCSV = %q, want %q", got, want)
	}
}

// TestImageToCSV_ScaleBelowOne verifies scale 0 behaves as 1.
func TestImageToCSV_ScaleBelowOne(t *testing.T) {
	if got := ImageToCSV(checkerImage(), false, 0); got != "1,0\n0,1" {
		t.Errorf("ImageToCSV = %q, want %q", got, "1,0\n0,1")
	}
}

// TestImageToCSV_OffsetBounds verifies images whose bounds do not start
// at the origin convert the same as origin-anchored ones.
func TestImageToCSV_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(3, 5, 5, 7))
	img.Set(3, 5, color.White)
	img.Set(4, 6, color.White)
	if got := ImageToCSV(img, false, 1); got != "1,0\n0,1" {
		t.Errorf("ImageToCSV = %q, want %q", got, "1,0\n0,1")
	}
}

// TestDecodeImageToCSV_PNG verifies the PNG decode path end to end.
func TestDecodeImageToCSV_PNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, checkerImage()); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	got, err := DecodeImageToCSV(&buf, false, 1)
	if err != nil {
		t.Fatalf("DecodeImageToCSV: %v", err)
	}
	if got != "1,0\n0,1" {
		t.Errorf("DecodeImageToCSV = %q, want %q", got, "1,0\n0,1")
	}
}

// TestDecodeImageToCSV_BMP verifies the BMP decode path end to end.
func TestDecodeImageToCSV_BMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, checkerImage()); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}
	got, err := DecodeImageToCSV(&buf, false, 1)
	if err != nil {
		t.Fatalf("DecodeImageToCSV: %v", err)
	}
	if got != "1,0\n0,1" {
		t.Errorf("DecodeImageToCSV = %q, want %q", got, "1,0\n0,1")
	}
}

// TestDecodeImageToCSV_BadData verifies garbage input surfaces a decode
// error.
func TestDecodeImageToCSV_BadData(t *testing.T) {
	if _, err := DecodeImageToCSV(bytes.NewReader([]byte("not an image")), false, 1); err == nil {
		t.Error("DecodeImageToCSV accepted garbage input")
	}
}

// TestImageToCSV_LoadsAsTilemap verifies the emitted text parses through
// NewTilemap.
func TestImageToCSV_LoadsAsTilemap(t *testing.T) {
	m, err := NewTilemap(ImageToCSV(checkerImage(), false, 1), Config{
		SheetWidth:  32,
		SheetHeight: 16,
		TileWidth:   16,
	})
	if err != nil {
		t.Fatalf("NewTilemap: %v", err)
	}
	if m.GetTile(0, 0) != 1 || m.GetTile(1, 0) != 0 {
		t.Errorf("loaded grid = %d,%d / %d,%d, want 1,0 / 0,1",
			m.GetTile(0, 0), m.GetTile(1, 0), m.GetTile(0, 1), m.GetTile(1, 1))
	}
}
