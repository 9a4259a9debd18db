package flixel

// autotileIDs is the number of ids the 4-bit derivation can produce; ids
// run [1, autotileIDs] after the +1 shift that keeps 0 meaning "no tile".
const autotileIDs = 16

// Interior-corner ids overwrite a fully-enclosed cell's mask to select
// corner art. Values stay single bits so the +1 shift lands inside the
// normal sheet range.
const (
	cornerBottomLeft  = 1
	cornerTopLeft     = 2
	cornerTopRight    = 4
	cornerBottomRight = 8
)

// autotileAll rewrites every cell from an occupancy snapshot taken before
// the pass, so sweep order cannot influence the result.
func (m *Tilemap) autotileAll() {
	occupied := make([]bool, m.totalTiles)
	for i, v := range m.data {
		occupied[i] = v > 0
	}
	solid := func(index int) bool { return occupied[index] }
	for i := range m.data {
		m.deriveTile(i, solid)
	}
	Logger().Debug("autotile pass complete", "cells", m.totalTiles, "mode", m.mode.String())
}

// autotile rewrites a single cell from live grid data. Occupancy (the
// nonzero-ness of values) is invariant under autotiling, so reading
// neighbors mid-edit is exact.
func (m *Tilemap) autotile(index int) {
	m.deriveTile(index, func(i int) bool { return m.data[i] > 0 })
}

// deriveTile computes the bitmask id for one cell. Empty cells stay
// empty; grid edges count as occupied neighbors.
func (m *Tilemap) deriveTile(index int, solid func(int) bool) {
	if m.data[index] == 0 {
		return
	}
	w := m.widthInTiles
	col := index % w
	row := index / w
	lastRow := m.heightInTiles - 1

	id := 0
	if row == 0 || solid(index-w) {
		id |= int(SideUp)
	}
	if col == w-1 || solid(index+1) {
		id |= int(SideRight)
	}
	if row == lastRow || solid(index+w) {
		id |= int(SideDown)
	}
	if col == 0 || solid(index-1) {
		id |= int(SideLeft)
	}

	if m.mode == AutotileCorners && id == int(SideAll) {
		// Fully enclosed: open diagonals pick interior-corner art. The
		// scan order is fixed and the last open corner wins.
		if col > 0 && row < lastRow && !solid(index+w-1) {
			id = cornerBottomLeft
		}
		if col > 0 && row > 0 && !solid(index-w-1) {
			id = cornerTopLeft
		}
		if col < w-1 && row > 0 && !solid(index-w+1) {
			id = cornerTopRight
		}
		if col < w-1 && row < lastRow && !solid(index+w+1) {
			id = cornerBottomRight
		}
	}

	m.data[index] = id + 1
}
