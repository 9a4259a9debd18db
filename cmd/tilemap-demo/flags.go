package main

import "flag"

// Command-line flags that control the generated level, rendering overlays,
// and runtime behavior.
var (
	// mapWidthFlag and mapHeightFlag size the generated level in tiles.
	mapWidthFlag  = flag.Int("map-width", defaultMapWidth, "level width in tiles")
	mapHeightFlag = flag.Int("map-height", defaultMapHeight, "level height in tiles")

	// seedFlag fixes the level generator; 0 seeds from the clock.
	seedFlag = flag.Int64("seed", 0, "level generator seed (0 picks one from the clock)")

	// autotileFlag selects how wall art is derived from the grid.
	autotileFlag = flag.String("autotile", "edges", "autotile mode: off, edges, or corners")

	// debugFlag enables the FPS overlay and collision outlines.
	debugFlag = flag.Bool("debug", false, "show the FPS overlay and collision outlines")

	// autoWalkFlag replaces WASD input with scripted wandering.
	autoWalkFlag = flag.Bool("auto-walk", false, "walk randomly instead of reading WASD")

	// recordDefaultPGO triggers a scripted walk to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "walk randomly for 15s while capturing default.pgo")

	// verboseFlag surfaces the library's debug records on stderr.
	verboseFlag = flag.Bool("verbose", false, "log tilemap debug records to stderr")
)
