package flixel

// Distance-field cell markers. Nonnegative values are BFS layer
// distances from the start cell.
const (
	cellBlocked   = -2
	cellUnvisited = -1
)

// pathNeighbors lists neighbor offsets as column and row deltas,
// orthogonals before diagonals. The order is normative for the descent
// walk, which takes the first improving neighbor.
var pathNeighbors = [8][2]int{
	{0, -1},  // up
	{1, 0},   // right
	{0, 1},   // down
	{-1, 0},  // left
	{1, -1},  // up-right
	{1, 1},   // down-right
	{-1, 1},  // down-left
	{-1, -1}, // up-left
}

// FindPath routes between two world points across non-colliding cells.
// It returns waypoints ordered start to end, with the endpoints snapped
// to the exact query points, or nil when no route exists. With simplify,
// waypoints on straight runs and waypoints visible by ray from an
// earlier one are dropped.
func (m *Tilemap) FindPath(start, end Point, simplify bool) []Point {
	startIndex := m.TileIndexAt(start)
	endIndex := m.TileIndexAt(end)
	if startIndex < 0 || endIndex < 0 {
		return nil
	}
	if m.tiles[m.data[startIndex]].Collision != SideNone ||
		m.tiles[m.data[endIndex]].Collision != SideNone {
		return nil
	}

	distances := m.distanceField(startIndex, endIndex)
	if distances == nil {
		return nil
	}
	points := m.walkPath(distances, endIndex)

	// The walk runs end to start; pin its endpoints to the queries.
	points[0] = end
	points[len(points)-1] = start

	if simplify {
		points = simplifyPath(points)
		points = m.raySimplifyPath(points)
	}

	// Reverse into start-to-end order.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points
}

// distanceField flood-fills BFS layer distances outward from startIndex,
// stopping as soon as endIndex comes off a frontier. It returns nil when
// endIndex is unreachable.
func (m *Tilemap) distanceField(startIndex, endIndex int) []int {
	w := m.widthInTiles
	distances := make([]int, m.totalTiles)
	for i := range distances {
		if m.tiles[m.data[i]].Collision != SideNone {
			distances[i] = cellBlocked
		} else {
			distances[i] = cellUnvisited
		}
	}
	distances[startIndex] = 0

	frontier := []int{startIndex}
	next := make([]int, 0, 8)
	distance := 1
	foundEnd := false
	for len(frontier) > 0 && !foundEnd {
		next = next[:0]
		for _, current := range frontier {
			if current == endIndex {
				foundEnd = true
				break
			}
			col := current % w
			row := current / w
			for dir, d := range pathNeighbors {
				nc := col + d[0]
				nr := row + d[1]
				if nc < 0 || nc >= w || nr < 0 || nr >= m.heightInTiles {
					continue
				}
				ni := nr*w + nc
				if distances[ni] != cellUnvisited {
					continue
				}
				// A diagonal move must not cut a wall corner: both
				// bracketing orthogonal cells have to be passable.
				if dir >= 4 && (distances[row*w+nc] == cellBlocked || distances[nr*w+col] == cellBlocked) {
					continue
				}
				distances[ni] = distance
				next = append(next, ni)
			}
		}
		frontier, next = next, frontier
		distance++
	}
	if !foundEnd {
		return nil
	}
	return distances
}

// walkPath descends the distance field from the end cell to distance 0,
// collecting cell centers. The field must be intact: every step finds a
// strictly smaller neighbor and the walk can never outlast the grid, so
// either failure panics rather than looping.
func (m *Tilemap) walkPath(distances []int, end int) []Point {
	w := m.widthInTiles
	points := make([]Point, 0, distances[end]+1)
	index := end
	for steps := 0; ; steps++ {
		if steps >= m.totalTiles {
			panic("flixel: path walk exceeded the cell count, distance field is corrupt")
		}
		points = append(points, m.tileCenter(index))
		if distances[index] == 0 {
			return points
		}
		col := index % w
		row := index / w
		moved := false
		for _, d := range pathNeighbors {
			nc := col + d[0]
			nr := row + d[1]
			if nc < 0 || nc >= w || nr < 0 || nr >= m.heightInTiles {
				continue
			}
			ni := nr*w + nc
			if distances[ni] >= 0 && distances[ni] < distances[index] {
				index = ni
				moved = true
				break
			}
		}
		if !moved {
			panic("flixel: path walk found no descending neighbor, distance field is corrupt")
		}
	}
}

// simplifyPath drops interior waypoints that continue a straight run:
// the two neighbors share a column, share a row, or the segment slopes
// match. Slopes compare by cross-multiplication, so axis-aligned runs
// divide by nothing.
func simplifyPath(points []Point) []Point {
	if len(points) < 3 {
		return points
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	last := points[0]
	for i := 1; i < len(points)-1; i++ {
		node := points[i]
		next := points[i+1]
		dpx := node.X - last.X
		dpy := node.Y - last.Y
		dnx := node.X - next.X
		dny := node.Y - next.Y
		colinear := last.X == next.X || last.Y == next.Y || dpx*dny == dnx*dpy
		if !colinear {
			out = append(out, node)
			last = node
		}
	}
	out = append(out, points[len(points)-1])
	return out
}

// raySimplifyPath drops every waypoint the last retained waypoint can
// already see by ray. A blocked ray promotes the previous waypoint to
// the new source; the first and final waypoints always survive.
func (m *Tilemap) raySimplifyPath(points []Point) []Point {
	if len(points) < 3 {
		return points
	}
	keep := make([]bool, len(points))
	for i := range keep {
		keep[i] = true
	}
	source := points[0]
	lastIndex := -1
	for i := 1; i < len(points); i++ {
		if m.Ray(source, points[i], nil, 1) {
			if lastIndex >= 0 {
				keep[lastIndex] = false
			}
		} else if lastIndex >= 0 {
			source = points[lastIndex]
		}
		lastIndex = i
	}
	out := make([]Point, 0, len(points))
	for i, p := range points {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}
