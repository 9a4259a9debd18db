package flixel

import (
	"fmt"
	"math"
)

// AutotileMode selects how raw grid values are rewritten into art ids.
type AutotileMode uint8

const (
	// AutotileOff leaves ingested values untouched.
	AutotileOff AutotileMode = iota

	// AutotileEdges derives each occupied cell's id from its four
	// orthogonal neighbors.
	AutotileEdges

	// AutotileCorners additionally selects interior-corner art when all
	// four orthogonal neighbors are occupied.
	AutotileCorners
)

// String names the mode for logs and flag values.
func (a AutotileMode) String() string {
	switch a {
	case AutotileEdges:
		return "edges"
	case AutotileCorners:
		return "corners"
	default:
		return "off"
	}
}

// Config describes the tile sheet and id thresholds for NewTilemap.
type Config struct {
	// SheetWidth and SheetHeight are the tile-sheet dimensions in pixels.
	SheetWidth  int
	SheetHeight int

	// TileWidth is the tile cell width in pixels; 0 means the sheet
	// height. TileHeight 0 means TileWidth.
	TileWidth  int
	TileHeight int

	// Autotile selects id rewriting at load and after edits.
	Autotile AutotileMode

	// StartingIndex is the raw id drawn with sheet cell 0. Autotiling
	// forces it to 1, along with DrawIndex and CollideIndex.
	StartingIndex int

	// DrawIndex is the first id that draws art; 0 means 1.
	DrawIndex int

	// CollideIndex is the first id that collides; 0 means 1.
	CollideIndex int
}

// Tilemap is a world-positioned grid of tile ids with a type registry and
// autotiling, pathfinding, collision, and raycasting queries. Queries are
// pure while the grid goes unmutated.
type Tilemap struct {
	// X and Y position the map's top-left corner in world units.
	X float64
	Y float64

	// Width and Height are the map's world-space dimensions.
	Width  float64
	Height float64

	last          Point // position on the previous frame, for moving maps
	widthInTiles  int
	heightInTiles int
	totalTiles    int
	tileWidth     float64
	tileHeight    float64
	data          []int
	renderIndex   []int // per-cell sheet cell, -1 draws nothing
	tiles         []*Tile
	mode          AutotileMode
	startingIndex int
}

// NewTilemap parses mapData (see parseGrid for the format), builds the
// tile-type registry described by cfg, and runs the initial autotile pass
// when one is configured.
func NewTilemap(mapData string, cfg Config) (*Tilemap, error) {
	data, widthInTiles, err := parseGrid(mapData)
	if err != nil {
		return nil, err
	}

	tileWidth := cfg.TileWidth
	if tileWidth == 0 {
		tileWidth = cfg.SheetHeight
	}
	tileHeight := cfg.TileHeight
	if tileHeight == 0 {
		tileHeight = tileWidth
	}
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("flixel: tile size %dx%d is not positive", tileWidth, tileHeight)
	}
	if cfg.SheetWidth < tileWidth || cfg.SheetHeight < tileHeight {
		return nil, fmt.Errorf("flixel: tile sheet %dx%d holds no %dx%d tiles",
			cfg.SheetWidth, cfg.SheetHeight, tileWidth, tileHeight)
	}
	sheetCells := (cfg.SheetWidth / tileWidth) * (cfg.SheetHeight / tileHeight)

	startingIndex := cfg.StartingIndex
	drawIndex := cfg.DrawIndex
	if drawIndex == 0 {
		drawIndex = 1
	}
	collideIndex := cfg.CollideIndex
	if collideIndex == 0 {
		collideIndex = 1
	}

	registrySize := sheetCells
	if cfg.Autotile != AutotileOff {
		if sheetCells < autotileIDs {
			return nil, fmt.Errorf("flixel: autotiling needs a sheet of %d tiles, have %d", autotileIDs, sheetCells)
		}
		// Derived ids start at 1, so the sheet's first cell is id 1 and
		// the registry gains a slot for the reserved empty id 0.
		startingIndex = 1
		drawIndex = 1
		collideIndex = 1
		registrySize++
	}

	m := &Tilemap{
		widthInTiles:  widthInTiles,
		heightInTiles: len(data) / widthInTiles,
		tileWidth:     float64(tileWidth),
		tileHeight:    float64(tileHeight),
		data:          data,
		mode:          cfg.Autotile,
		startingIndex: startingIndex,
	}
	m.totalTiles = m.widthInTiles * m.heightInTiles
	m.Width = float64(m.widthInTiles) * m.tileWidth
	m.Height = float64(m.heightInTiles) * m.tileHeight
	m.renderIndex = make([]int, m.totalTiles)

	m.tiles = make([]*Tile, registrySize)
	for id := range m.tiles {
		t := &Tile{ID: id, Visible: id >= drawIndex}
		t.Width = m.tileWidth
		t.Height = m.tileHeight
		if id >= collideIndex {
			t.Collision = SideAll
		}
		m.tiles[id] = t
	}

	if m.mode != AutotileOff {
		m.autotileAll()
	}
	for i, id := range m.data {
		if id >= len(m.tiles) {
			return nil, fmt.Errorf("flixel: tile id %d at cell %d exceeds the %d-entry registry", id, i, len(m.tiles))
		}
		m.updateTileIndex(i)
	}

	Logger().Debug("tilemap loaded",
		"widthInTiles", m.widthInTiles,
		"heightInTiles", m.heightInTiles,
		"tileTypes", len(m.tiles),
		"autotile", m.mode.String())
	return m, nil
}

// WidthInTiles returns the number of grid columns.
func (m *Tilemap) WidthInTiles() int { return m.widthInTiles }

// HeightInTiles returns the number of grid rows.
func (m *Tilemap) HeightInTiles() int { return m.heightInTiles }

// TotalTiles returns the number of grid cells.
func (m *Tilemap) TotalTiles() int { return m.totalTiles }

// TileWidth returns a tile cell's width in world units.
func (m *Tilemap) TileWidth() float64 { return m.tileWidth }

// TileHeight returns a tile cell's height in world units.
func (m *Tilemap) TileHeight() float64 { return m.tileHeight }

// Bounds returns the map's world-space rectangle.
func (m *Tilemap) Bounds() Rect {
	return Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height}
}

// MoveTo moves the map to a new world position, remembering the old one
// as the previous-frame position that collision passes use for the
// moving-map delta.
func (m *Tilemap) MoveTo(x, y float64) {
	m.last = Point{X: m.X, Y: m.Y}
	m.X = x
	m.Y = y
}

// GetTile returns the id at the given tile coordinates, or 0 when the
// coordinates fall outside the grid.
func (m *Tilemap) GetTile(col, row int) int {
	if col < 0 || col >= m.widthInTiles || row < 0 || row >= m.heightInTiles {
		return 0
	}
	return m.data[row*m.widthInTiles+col]
}

// GetTileByIndex returns the id at a flat cell index, or 0 out of range.
func (m *Tilemap) GetTileByIndex(index int) int {
	if index < 0 || index >= m.totalTiles {
		return 0
	}
	return m.data[index]
}

// TileIndexAt returns the flat index of the cell containing the world
// point, or -1 outside the map.
func (m *Tilemap) TileIndexAt(p Point) int {
	col := int(math.Floor((p.X - m.X) / m.tileWidth))
	row := int(math.Floor((p.Y - m.Y) / m.tileHeight))
	if col < 0 || col >= m.widthInTiles || row < 0 || row >= m.heightInTiles {
		return -1
	}
	return row*m.widthInTiles + col
}

// TileAt returns the id under the world point, or 0 outside the map.
func (m *Tilemap) TileAt(p Point) int {
	index := m.TileIndexAt(p)
	if index < 0 {
		return 0
	}
	return m.data[index]
}

// TileType returns the registry entry for an id, or nil out of range.
// Mutating the entry changes every cell holding that id.
func (m *Tilemap) TileType(id int) *Tile {
	if id < 0 || id >= len(m.tiles) {
		return nil
	}
	return m.tiles[id]
}

// SetTile writes a raw id at tile coordinates. With updateGraphics it
// re-autotiles the surrounding 3x3 window (when autotiling is on) and
// refreshes render indices. It reports whether anything was written;
// out-of-grid coordinates and ids outside the registry are rejected.
func (m *Tilemap) SetTile(col, row, value int, updateGraphics bool) bool {
	if col < 0 || col >= m.widthInTiles || row < 0 || row >= m.heightInTiles {
		return false
	}
	return m.SetTileByIndex(row*m.widthInTiles+col, value, updateGraphics)
}

// SetTileByIndex is SetTile addressed by flat cell index.
func (m *Tilemap) SetTileByIndex(index, value int, updateGraphics bool) bool {
	if index < 0 || index >= m.totalTiles {
		return false
	}
	if value < 0 || value >= len(m.tiles) {
		return false
	}
	m.data[index] = value
	if !updateGraphics {
		return true
	}
	if m.mode == AutotileOff {
		m.updateTileIndex(index)
		return true
	}

	// Re-derive the edited cell and every in-bounds neighbor; cells
	// outside the 3x3 window cannot change.
	col := index % m.widthInTiles
	row := index / m.widthInTiles
	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= m.heightInTiles {
			continue
		}
		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= m.widthInTiles {
				continue
			}
			i := r*m.widthInTiles + c
			m.autotile(i)
			m.updateTileIndex(i)
		}
	}
	return true
}

// SetTileProperties configures count consecutive registry entries
// starting at id: the collision mask, the reaction handler, and the Kind
// filter objects must match for the handler to fire. count below 1 means
// 1, and the range is clamped to the registry.
func (m *Tilemap) SetTileProperties(id int, mask Sides, reactor TileReactor, filter Kind, count int) {
	if count < 1 {
		count = 1
	}
	start := clampCoord(id, 0, len(m.tiles))
	end := clampCoord(id+count, 0, len(m.tiles))
	for i := start; i < end; i++ {
		t := m.tiles[i]
		t.Collision = mask
		t.reactor = reactor
		t.filter = filter
	}
}

// updateTileIndex re-derives one cell's render index: the sheet cell for
// its id, or -1 when the id draws nothing.
func (m *Tilemap) updateTileIndex(index int) {
	id := m.data[index]
	cell := -1
	if m.tiles[id].Visible {
		cell = id - m.startingIndex
	}
	if cell < 0 {
		cell = -1
	}
	m.renderIndex[index] = cell
}

// tileCenter returns the world-space center of a cell.
func (m *Tilemap) tileCenter(index int) Point {
	col := index % m.widthInTiles
	row := index / m.widthInTiles
	return Point{
		X: m.X + (float64(col)+0.5)*m.tileWidth,
		Y: m.Y + (float64(row)+0.5)*m.tileHeight,
	}
}
