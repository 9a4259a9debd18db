package main

import "time"

// Rendering, level-generation, and movement constants used throughout the
// demo. These values define the logical screen, the tile grid, and the
// procedural wall layout the player walks through.
const (
	screenW, screenH = 640, 480
	windowScale      = 2
	tileSize         = 16

	defaultMapWidth  = 40
	defaultMapHeight = 30

	playerSize = 10
	moveSpeed  = 2

	wallSegments          = 14
	wallMinLen            = 4
	wallMaxLen            = 12
	wallExclusionRadius   = 3
	wallThicknessVariance = 1

	rayResolution     = 4
	repathFrames      = 30
	pgoRecordDuration = 15 * time.Second
)
