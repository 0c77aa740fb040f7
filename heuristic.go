package gridastar

// Heuristic returns the estimated number of moves from one cell to another.
type Heuristic func(from, to Cell) int

// SourceManhattan is |a.X-b.X| + |a.Y+b.Y|. The y term adds the coordinates;
// results produced by earlier versions of this search depend on it.
func SourceManhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y+b.Y)
}

// Manhattan is the 4-directional distance |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
