package flixel

import "strings"

// Sides is a bitset over the four grid directions. It serves both as the
// neighbor bitmask driving autotile ids and as a tile's collision mask.
type Sides uint8

const (
	SideNone  Sides = 0
	SideUp    Sides = 1
	SideRight Sides = 2
	SideDown  Sides = 4
	SideLeft  Sides = 8
	SideAll   Sides = SideUp | SideRight | SideDown | SideLeft
)

// String spells out the set for debug output, e.g. "up|left".
func (s Sides) String() string {
	if s == SideNone {
		return "none"
	}
	if s == SideAll {
		return "all"
	}
	parts := make([]string, 0, 4)
	if s&SideUp != 0 {
		parts = append(parts, "up")
	}
	if s&SideRight != 0 {
		parts = append(parts, "right")
	}
	if s&SideDown != 0 {
		parts = append(parts, "down")
	}
	if s&SideLeft != 0 {
		parts = append(parts, "left")
	}
	return strings.Join(parts, "|")
}

// TileReactor handles tiles an object touched during
// OverlapsWithCallback. The tile's MapIndex identifies the grid cell.
type TileReactor interface {
	React(tile *Tile, obj *Object)
}

// ReactorFunc adapts a plain function to the TileReactor interface.
type ReactorFunc func(tile *Tile, obj *Object)

// React calls f.
func (f ReactorFunc) React(tile *Tile, obj *Object) { f(tile, obj) }

// Tile is a tile-type registry entry. One Tile exists per id; during a
// collision pass it doubles as the transient collider positioned at each
// overlapped cell, so its Object fields are only meaningful inside a
// reaction handler or overlap callback.
type Tile struct {
	Object

	// ID is the registry id, equal to the grid values that map here.
	ID int

	// MapIndex is the grid cell the tile was last positioned at during a
	// collision pass.
	MapIndex int

	// Collision is the set of solid sides. SideNone never collides.
	Collision Sides

	// Visible selects whether cells with this id draw sheet art.
	Visible bool

	reactor TileReactor
	filter  Kind
}
