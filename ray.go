package flixel

import "math"

// Ray casts from start toward end and reports true when nothing solid
// blocks the segment. On a hit it stores the world-space crossing point
// in result (when non-nil) and returns false. resolution raises the
// sampling density from one sample per tile span of travel along the
// shorter tile axis; values below 1 mean 1.
func (m *Tilemap) Ray(start, end Point, result *Point, resolution int) bool {
	if resolution < 1 {
		resolution = 1
	}
	step := m.tileWidth
	if m.tileHeight < m.tileWidth {
		step = m.tileHeight
	}
	step /= float64(resolution)

	dx := end.X - start.X
	dy := end.Y - start.Y
	distance := math.Sqrt(dx*dx + dy*dy)
	steps := int(math.Ceil(distance / step))
	if steps == 0 {
		return true
	}
	stepX := dx / float64(steps)
	stepY := dy / float64(steps)

	// March in map-local coordinates, starting one step back so the
	// first advance lands on start.
	curX := start.X - m.X - stepX
	curY := start.Y - m.Y - stepY
	for i := 0; i < steps; i++ {
		curX += stepX
		curY += stepY
		if curX < 0 || curX > m.Width || curY < 0 || curY > m.Height {
			continue
		}

		tileX := int(curX / m.tileWidth)
		tileY := int(curY / m.tileHeight)
		if tileX >= m.widthInTiles || tileY >= m.heightInTiles {
			continue
		}
		if m.tiles[m.data[tileY*m.widthInTiles+tileX]].Collision == SideNone {
			continue
		}

		// Solid sample: recover where the segment entered the tile.
		// The near X boundary is tested first, then the near Y
		// boundary; both demand a crossing strictly inside the tile's
		// extent on the other axis, so a segment grazing only the
		// corner reports clear.
		tileLeft := float64(tileX) * m.tileWidth
		tileTop := float64(tileY) * m.tileHeight
		prevX := curX - stepX
		prevY := curY - stepY

		boundary := tileLeft
		if dx < 0 {
			boundary += m.tileWidth
		}
		crossY := prevY + stepY*((boundary-prevX)/stepX)
		if crossY > tileTop && crossY < tileTop+m.tileHeight {
			if result != nil {
				result.X = boundary + m.X
				result.Y = crossY + m.Y
			}
			return false
		}

		boundary = tileTop
		if dy < 0 {
			boundary += m.tileHeight
		}
		crossX := prevX + stepX*((boundary-prevY)/stepY)
		if crossX > tileLeft && crossX < tileLeft+m.tileWidth {
			if result != nil {
				result.X = crossX + m.X
				result.Y = boundary + m.Y
			}
			return false
		}
		return true
	}
	return true
}
