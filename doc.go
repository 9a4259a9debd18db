// Package flixel implements the tile-map spatial core of a 2D game
// framework for Ebitengine: a world-positioned occupancy grid with bitmask
// autotiling, flood-fill pathfinding, tile-granularity collision callbacks,
// and sub-tile raycasting.
//
// A Tilemap is loaded from comma-separated rows of tile ids with
// NewTilemap, edited and queried by a caller-owned game loop, and rendered
// with Draw. All methods are synchronous and the package starts no
// goroutines; callers that share a Tilemap across goroutines must
// serialize mutation against queries themselves.
package flixel
