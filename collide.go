package flixel

import "math"

// OverlapCallback is a caller-supplied overlap test between the moving
// object and a positioned tile collider. Returning true counts the pair
// as overlapping.
type OverlapCallback func(obj *Object, tile *Tile) bool

// OverlapsWithCallback checks obj against every tile in the grid window
// around its bounding box. Each collidable tile is positioned as a
// transient collider and run through the overlap test, the callback when
// given and a strict AABB check otherwise; overlapping tiles with a
// reaction handler fire it. Tiles with no collision mask but a handler
// fire on plain pass-over. Reports whether any collidable tile
// overlapped.
func (m *Tilemap) OverlapsWithCallback(obj *Object, callback OverlapCallback) bool {
	results := false

	// One tile of slack on every side catches boxes straddling cell
	// boundaries and last-frame positions used by swept separation.
	ix := int(math.Floor((obj.X-m.X)/m.tileWidth)) - 1
	iy := int(math.Floor((obj.Y-m.Y)/m.tileHeight)) - 1
	iw := int(math.Floor((obj.X-m.X+obj.Width)/m.tileWidth)) + 2
	ih := int(math.Floor((obj.Y-m.Y+obj.Height)/m.tileHeight)) + 2

	ix = clampCoord(ix, 0, m.widthInTiles)
	iy = clampCoord(iy, 0, m.heightInTiles)
	iw = clampCoord(iw, 0, m.widthInTiles)
	ih = clampCoord(ih, 0, m.heightInTiles)

	deltaX := m.X - m.last.X
	deltaY := m.Y - m.last.Y

	for row := iy; row < ih; row++ {
		for col := ix; col < iw; col++ {
			index := row*m.widthInTiles + col
			tile := m.tiles[m.data[index]]
			if tile.Collision != SideNone {
				tile.X = m.X + float64(col)*m.tileWidth
				tile.Y = m.Y + float64(row)*m.tileHeight
				tile.Last.X = tile.X - deltaX
				tile.Last.Y = tile.Y - deltaY

				overlap := false
				if callback != nil {
					overlap = callback(obj, tile)
				} else {
					overlap = obj.X+obj.Width > tile.X && obj.X < tile.X+tile.Width &&
						obj.Y+obj.Height > tile.Y && obj.Y < tile.Y+tile.Height
				}
				if overlap {
					if tile.reactor != nil && (tile.filter == KindAny || obj.Kind == tile.filter) {
						tile.MapIndex = index
						tile.reactor.React(tile, obj)
					}
					results = true
				}
			} else if tile.reactor != nil && (tile.filter == KindAny || obj.Kind == tile.filter) {
				// No mask to collide with, but a handler is bound: fire
				// without an overlap test and leave the result alone.
				tile.MapIndex = index
				tile.reactor.React(tile, obj)
			}
		}
	}
	return results
}

// OverlapsPoint reports whether the world point lies in a collidable
// cell.
func (m *Tilemap) OverlapsPoint(p Point) bool {
	index := m.TileIndexAt(p)
	if index < 0 {
		return false
	}
	return m.tiles[m.data[index]].Collision != SideNone
}
