package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/eduardonunesp/flixel"
)

// Wall art palette.
var (
	wallFillColor = color.RGBA{R: 0x3a, G: 0x4a, B: 0x6b, A: 0xff}
	wallEdgeColor = color.RGBA{R: 0x6d, G: 0x84, B: 0xb3, A: 0xff}
)

// buildWallSheet paints the sixteen wall cells at startup. The cell for
// each neighbor mask gets a lighter strip along every exposed side, so
// autotiled walls read as connected runs.
func buildWallSheet() *flixel.TileSheet {
	img := ebiten.NewImage(16*tileSize, tileSize)
	for mask := 0; mask < 16; mask++ {
		x0 := mask * tileSize
		fill(img, x0, 0, x0+tileSize, tileSize, wallFillColor)
		if mask&1 == 0 {
			fill(img, x0, 0, x0+tileSize, 2, wallEdgeColor)
		}
		if mask&2 == 0 {
			fill(img, x0+tileSize-2, 0, x0+tileSize, tileSize, wallEdgeColor)
		}
		if mask&4 == 0 {
			fill(img, x0, tileSize-2, x0+tileSize, tileSize, wallEdgeColor)
		}
		if mask&8 == 0 {
			fill(img, x0, 0, x0+2, tileSize, wallEdgeColor)
		}
	}
	return flixel.NewTileSheet(img, tileSize, tileSize)
}

// fill paints a rectangle of img, in image coordinates.
func fill(img *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	img.SubImage(image.Rect(x0, y0, x1, y1)).(*ebiten.Image).Fill(clr)
}
