package flixel

import (
	"fmt"
	"strconv"
	"strings"
)

// parseGrid converts row-delimited, comma-separated tile ids into a flat
// row-major grid. Rows with fewer than two fields (blank lines, stray
// fragments) are skipped; the first surviving row fixes the grid width.
func parseGrid(mapData string) ([]int, int, error) {
	widthInTiles := 0
	rowIndex := 0
	var data []int
	for _, row := range strings.Split(mapData, "\n") {
		cols := strings.Split(strings.TrimRight(row, "\r"), ",")
		if len(cols) <= 1 {
			continue
		}
		if widthInTiles == 0 {
			widthInTiles = len(cols)
		} else if len(cols) != widthInTiles {
			return nil, 0, fmt.Errorf("flixel: map row %d has %d tiles, want %d", rowIndex, len(cols), widthInTiles)
		}
		for colIndex, col := range cols {
			id, err := strconv.Atoi(strings.TrimSpace(col))
			if err != nil {
				return nil, 0, fmt.Errorf("flixel: map row %d col %d: bad tile id %q", rowIndex, colIndex, col)
			}
			if id < 0 {
				return nil, 0, fmt.Errorf("flixel: map row %d col %d: negative tile id %d", rowIndex, colIndex, id)
			}
			data = append(data, id)
		}
		rowIndex++
	}
	if widthInTiles == 0 {
		return nil, 0, fmt.Errorf("flixel: map data contains no tile rows")
	}
	return data, widthInTiles, nil
}

// GridToCSV renders a flat row-major grid back into the text form
// NewTilemap consumes.
func GridToCSV(data []int, widthInTiles int) string {
	var b strings.Builder
	for i, id := range data {
		if i > 0 {
			if i%widthInTiles == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(',')
			}
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}
