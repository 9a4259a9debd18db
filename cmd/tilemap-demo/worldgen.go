package main

import (
	"math/rand"

	"github.com/eduardonunesp/flixel"
)

// generateLevel procedurally lays wall segments into a tile grid and
// returns it in the comma-separated form flixel.NewTilemap ingests. The
// border ring is always solid and a clearing around the spawn cell at the
// center stays open.
func generateLevel(rng *rand.Rand, widthInTiles, heightInTiles int) string {
	grid := make([]int, widthInTiles*heightInTiles)
	for col := 0; col < widthInTiles; col++ {
		grid[col] = 1
		grid[(heightInTiles-1)*widthInTiles+col] = 1
	}
	for row := 0; row < heightInTiles; row++ {
		grid[row*widthInTiles] = 1
		grid[row*widthInTiles+widthInTiles-1] = 1
	}

	spawnCol := widthInTiles / 2
	spawnRow := heightInTiles / 2
	for s := 0; s < wallSegments; s++ {
		lengthRange := wallMaxLen - wallMinLen + 1
		if lengthRange <= 0 {
			lengthRange = 1
		}
		length := wallMinLen + rng.Intn(lengthRange)
		thickness := 0
		if wallThicknessVariance > 0 {
			thickness = rng.Intn(wallThicknessVariance + 1)
		}
		horizontal := rng.Intn(2) == 0
		col := rng.Intn(widthInTiles-4) + 2
		row := rng.Intn(heightInTiles-4) + 2
		dc, dr := 0, 1
		if horizontal {
			dc, dr = 1, 0
		}
		perpC, perpR := dr, dc
		for l := 0; l < length; l++ {
			if col <= 1 || col >= widthInTiles-1 || row <= 1 || row >= heightInTiles-1 {
				break
			}
			for t := -thickness; t <= thickness; t++ {
				trySetWall(grid, widthInTiles, heightInTiles, col+perpC*t, row+perpR*t, spawnCol, spawnRow)
			}
			col += dc
			row += dr
		}
	}
	return flixel.GridToCSV(grid, widthInTiles)
}

// trySetWall marks a grid cell solid while enforcing the border and the
// spawn clearing.
func trySetWall(grid []int, widthInTiles, heightInTiles, col, row, spawnCol, spawnRow int) {
	if col <= 0 || col >= widthInTiles-1 || row <= 0 || row >= heightInTiles-1 {
		return
	}
	dc := col - spawnCol
	dr := row - spawnRow
	if dc*dc+dr*dr < wallExclusionRadius*wallExclusionRadius {
		return
	}
	grid[row*widthInTiles+col] = 1
}
