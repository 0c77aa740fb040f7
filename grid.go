package gridastar

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Add returns c moved by delta.
func (c Cell) Add(delta Cell) Cell {
	return Cell{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// Grid is the immutable search space. It is safe for concurrent readers.
type Grid struct {
	width     int
	height    int
	start     Cell
	goal      Cell
	obstacles map[Cell]struct{}
	passable  int
}

// NewGrid builds a grid. Nothing is validated: a start or goal outside the
// bounds or on an obstacle is accepted and simply leads to an unreachable
// result.
func NewGrid(width, height int, start, goal Cell, obstacles []Cell) *Grid {
	g := &Grid{
		width:     width,
		height:    height,
		start:     start,
		goal:      goal,
		obstacles: make(map[Cell]struct{}, len(obstacles)),
	}
	for _, obstacle := range obstacles {
		g.obstacles[obstacle] = struct{}{}
	}
	if width > 0 && height > 0 {
		// Saturate instead of wrapping on huge dimensions.
		if width > math.MaxInt/height {
			g.passable = math.MaxInt
		} else {
			g.passable = width * height
		}
		for obstacle := range g.obstacles {
			if g.InBounds(obstacle) {
				g.passable--
			}
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Start() Cell { return g.start }
func (g *Grid) Goal() Cell  { return g.goal }

// Obstacles returns a copy of the obstacle set ordered by (y, x).
func (g *Grid) Obstacles() []Cell {
	out := make([]Cell, 0, len(g.obstacles))
	for obstacle := range g.obstacles {
		out = append(out, obstacle)
	}
	slices.SortFunc(out, func(a, b Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// InBounds reports whether 1 <= c.X <= width and 1 <= c.Y <= height.
func (g *Grid) InBounds(c Cell) bool {
	return c.X > 0 && c.Y > 0 && c.X <= g.width && c.Y <= g.height
}

func (g *Grid) IsObstacle(c Cell) bool {
	_, blocked := g.obstacles[c]
	return blocked
}

// IsPassable reports whether c is in bounds and not an obstacle.
func (g *Grid) IsPassable(c Cell) bool {
	return g.InBounds(c) && !g.IsObstacle(c)
}

// PassableCount is the number of in-bounds cells that are not obstacles.
func (g *Grid) PassableCount() int { return g.passable }
