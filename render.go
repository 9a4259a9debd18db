package flixel

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Debug overlay colors, one per collision class.
var (
	debugSolidColor   = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff} // full mask
	debugPartialColor = color.RGBA{R: 0xff, G: 0x9c, B: 0xe0, A: 0xff} // partial mask
)

// TileSheet is tile art split into fixed-size cells, running left to
// right, top to bottom.
type TileSheet struct {
	tileWidth  int
	tileHeight int
	cells      []*ebiten.Image
}

// NewTileSheet splits img into tileWidth by tileHeight cells.
func NewTileSheet(img *ebiten.Image, tileWidth, tileHeight int) *TileSheet {
	bounds := img.Bounds()
	columns := bounds.Dx() / tileWidth
	rows := bounds.Dy() / tileHeight
	s := &TileSheet{
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		cells:      make([]*ebiten.Image, 0, columns*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			r := image.Rect(col*tileWidth, row*tileHeight, (col+1)*tileWidth, (row+1)*tileHeight)
			s.cells = append(s.cells, img.SubImage(r.Add(bounds.Min)).(*ebiten.Image))
		}
	}
	return s
}

// Cells returns the number of tile cells on the sheet.
func (s *TileSheet) Cells() int { return len(s.cells) }

// Draw renders the map's visible tile window onto dst, offset by the
// camera's world position. Cells whose render index is -1, or that the
// sheet has no art for, draw nothing.
func (m *Tilemap) Draw(dst *ebiten.Image, sheet *TileSheet, camX, camY float64) {
	if sheet == nil {
		return
	}
	view := dst.Bounds()
	colLo, colHi := tileWindow(camX-m.X, m.tileWidth, m.widthInTiles, float64(view.Dx()))
	rowLo, rowHi := tileWindow(camY-m.Y, m.tileHeight, m.heightInTiles, float64(view.Dy()))

	op := &ebiten.DrawImageOptions{}
	for row := rowLo; row < rowHi; row++ {
		for col := colLo; col < colHi; col++ {
			cell := m.renderIndex[row*m.widthInTiles+col]
			if cell < 0 || cell >= len(sheet.cells) {
				continue
			}
			op.GeoM.Reset()
			op.GeoM.Translate(m.X+float64(col)*m.tileWidth-camX, m.Y+float64(row)*m.tileHeight-camY)
			dst.DrawImage(sheet.cells[cell], op)
		}
	}
}

// DrawDebug outlines every collidable tile in the visible window, one
// color for full masks and another for partial ones.
func (m *Tilemap) DrawDebug(dst *ebiten.Image, camX, camY float64) {
	view := dst.Bounds()
	colLo, colHi := tileWindow(camX-m.X, m.tileWidth, m.widthInTiles, float64(view.Dx()))
	rowLo, rowHi := tileWindow(camY-m.Y, m.tileHeight, m.heightInTiles, float64(view.Dy()))

	for row := rowLo; row < rowHi; row++ {
		for col := colLo; col < colHi; col++ {
			tile := m.tiles[m.data[row*m.widthInTiles+col]]
			if tile.Collision == SideNone {
				continue
			}
			clr := debugPartialColor
			if tile.Collision == SideAll {
				clr = debugSolidColor
			}
			x0 := int(m.X + float64(col)*m.tileWidth - camX)
			y0 := int(m.Y + float64(row)*m.tileHeight - camY)
			x1 := x0 + int(m.tileWidth) - 1
			y1 := y0 + int(m.tileHeight) - 1
			drawLine(dst, x0, y0, x1, y0, clr)
			drawLine(dst, x1, y0, x1, y1, clr)
			drawLine(dst, x1, y1, x0, y1, clr)
			drawLine(dst, x0, y1, x0, y0, clr)
		}
	}
}

// DrawPath draws a waypoint polyline offset by the camera's world
// position.
func DrawPath(dst *ebiten.Image, path []Point, camX, camY float64, clr color.Color) {
	for i := 1; i < len(path); i++ {
		drawLine(dst,
			int(path[i-1].X-camX), int(path[i-1].Y-camY),
			int(path[i].X-camX), int(path[i].Y-camY), clr)
	}
}

// tileWindow computes the [lo, hi) cell range covering a view span that
// starts offset world units into the grid.
func tileWindow(offset, tileSpan float64, cells int, viewSpan float64) (lo, hi int) {
	lo = int(math.Floor(offset / tileSpan))
	hi = int(math.Ceil((offset + viewSpan) / tileSpan))
	lo = clampCoord(lo, 0, cells)
	hi = clampCoord(hi, 0, cells)
	return lo, hi
}

// drawLine plots a line segment using Bresenham's integer algorithm,
// clipped to dst.
func drawLine(dst *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	bounds := dst.Bounds()
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= bounds.Min.X && x0 < bounds.Max.X && y0 >= bounds.Min.Y && y0 < bounds.Max.Y {
			dst.Set(x0, y0, clr)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
