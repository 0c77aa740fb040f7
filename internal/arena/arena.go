// Package arena stores search nodes in an append-only slice and links them
// to their parents by index.
package arena

// NoParent marks a root node.
const NoParent = -1

// Node is one entry of the arena.
type Node[PositionType any] struct {
	Position PositionType
	Cost     int
	Parent   int
}

// Arena is an append-only node store. Indices stay valid for its lifetime.
type Arena[PositionType any] struct {
	nodes []Node[PositionType]
}

// Add appends a node and returns its index.
func (a *Arena[PositionType]) Add(position PositionType, cost int, parent int) int {
	a.nodes = append(a.nodes, Node[PositionType]{Position: position, Cost: cost, Parent: parent})
	return len(a.nodes) - 1
}

// At returns the node stored at index.
func (a *Arena[PositionType]) At(index int) Node[PositionType] {
	return a.nodes[index]
}

func (a *Arena[PositionType]) Len() int { return len(a.nodes) }

// Path walks parent links from index back to the root and returns the
// positions in root-to-index order. The root itself is not included.
func (a *Arena[PositionType]) Path(index int) []PositionType {
	var path []PositionType
	for current := index; a.nodes[current].Parent != NoParent; current = a.nodes[current].Parent {
		path = append(path, a.nodes[current].Position)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
