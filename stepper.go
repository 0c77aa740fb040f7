package gridastar

import (
	"container/heap"
	"log/slog"

	"github.com/pdrpinto/gridastar/internal/arena"
)

// moves lists successor directions in expansion order: up, down, right, left.
var moves = [...]Cell{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	StepIndex int

	// Removed is false when the call found the frontier empty or the
	// search had already finished. Current, Cost and Estimate are unset then.
	Removed  bool
	Current  Cell
	Cost     int
	Estimate int

	// Skipped is set when Current had already been expanded at the same cost.
	Skipped bool

	Frontier map[Cell]bool
	Visited  map[Cell]bool
	Done     bool
	Found    bool
	Path     []Cell
}

type visitKey struct {
	position Cell
	cost     int
}

// Stepper runs the search one frontier removal at a time. It is not safe for
// concurrent use.
type Stepper struct {
	grid        *Grid
	heuristic   Heuristic
	logger      *slog.Logger
	costCeiling int

	nodes    arena.Arena[Cell]
	frontier priorityQueue
	visited  map[visitKey]struct{}

	// frontierEstimates counts frontier entries per position and estimate.
	frontierEstimates map[Cell]map[int]int

	// visitedMax is the greatest estimate expanded at each position.
	visitedMax map[Cell]int

	sequence  int
	stepCount int
	expanded  int
	done      bool
	found     bool
	goalNode  int
}

// NewStepper prepares a search over grid with the start node in the frontier.
func NewStepper(grid *Grid, options ...Option) *Stepper {
	opts := applyOptions(options)
	s := &Stepper{
		grid:              grid,
		heuristic:         opts.Heuristic,
		logger:            opts.Logger,
		costCeiling:       grid.PassableCount(),
		frontier:          make(priorityQueue, 0),
		visited:           make(map[visitKey]struct{}),
		frontierEstimates: make(map[Cell]map[int]int),
		visitedMax:        make(map[Cell]int),
		goalNode:          arena.NoParent,
	}
	heap.Init(&s.frontier)
	s.push(s.nodes.Add(grid.Start(), 0, arena.NoParent))
	return s
}

func (s *Stepper) estimate(position Cell, cost int) int {
	return cost + s.heuristic(position, s.grid.Goal())
}

func (s *Stepper) push(node int) {
	n := s.nodes.At(node)
	item := &queueItem{
		node:     node,
		position: n.Position,
		estimate: s.estimate(n.Position, n.Cost),
		sequence: s.sequence,
	}
	heap.Push(&s.frontier, item)
	s.sequence++

	counts := s.frontierEstimates[item.position]
	if counts == nil {
		counts = make(map[int]int)
		s.frontierEstimates[item.position] = counts
	}
	counts[item.estimate]++
}

func (s *Stepper) pop() *queueItem {
	item := heap.Pop(&s.frontier).(*queueItem)
	counts := s.frontierEstimates[item.position]
	if counts[item.estimate]--; counts[item.estimate] == 0 {
		delete(counts, item.estimate)
	}
	if len(counts) == 0 {
		delete(s.frontierEstimates, item.position)
	}
	return item
}

// dominated applies the duplicate rules to a candidate successor. A candidate
// is dropped when a frontier entry at the same position has a greater
// estimate, or when the same (position, cost) was visited and some visited
// entry at that position has a greater estimate.
func (s *Stepper) dominated(position Cell, cost, estimate int) bool {
	for frontierEstimate := range s.frontierEstimates[position] {
		if frontierEstimate > estimate {
			return true
		}
	}
	if _, seen := s.visited[visitKey{position: position, cost: cost}]; seen {
		return s.visitedMax[position] > estimate
	}
	return false
}

// advance removes one node from the frontier and processes it. It returns
// the arena index of that node, or NoParent when nothing was removed.
func (s *Stepper) advance() (node int, skipped bool) {
	if s.done {
		return arena.NoParent, false
	}
	if s.frontier.Len() == 0 {
		s.done = true
		s.logger.Debug("frontier exhausted", "goal", s.grid.Goal(), "expanded", s.expanded)
		return arena.NoParent, false
	}

	s.stepCount++
	item := s.pop()
	current := s.nodes.At(item.node)
	key := visitKey{position: current.Position, cost: current.Cost}

	// Skip if already expanded at this cost
	if _, seen := s.visited[key]; seen {
		return item.node, true
	}
	s.expanded++

	// Goal check
	if current.Position == s.grid.Goal() {
		s.done = true
		s.found = true
		s.goalNode = item.node
		s.logger.Debug("goal reached", "goal", current.Position, "cost", current.Cost, "expanded", s.expanded)
		return item.node, false
	}

	for _, move := range moves {
		position := current.Position.Add(move)
		cost := current.Cost + 1
		if !s.grid.IsPassable(position) || cost > s.costCeiling {
			continue
		}
		if s.dominated(position, cost, s.estimate(position, cost)) {
			continue
		}
		s.push(s.nodes.Add(position, cost, item.node))
	}

	s.visited[key] = struct{}{}
	if highest, ok := s.visitedMax[current.Position]; !ok || item.estimate > highest {
		s.visitedMax[current.Position] = item.estimate
	}
	s.logger.Debug("expanded node",
		"position", current.Position,
		"cost", current.Cost,
		"estimate", item.estimate,
		"frontier", s.frontier.Len(),
	)
	return item.node, false
}

// Step advances the search by one frontier removal and returns a snapshot.
// Once the search is done further calls return the final state.
func (s *Stepper) Step() StepSnapshot {
	node, skipped := s.advance()
	snapshot := StepSnapshot{
		StepIndex: s.stepCount,
		Skipped:   skipped,
		Frontier:  s.frontierCells(),
		Visited:   s.visitedCells(),
		Done:      s.done,
		Found:     s.found,
	}
	if node != arena.NoParent {
		n := s.nodes.At(node)
		snapshot.Removed = true
		snapshot.Current = n.Position
		snapshot.Cost = n.Cost
		snapshot.Estimate = s.estimate(n.Position, n.Cost)
	}
	if s.found {
		snapshot.Path = s.path()
	}
	return snapshot
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.done }

// Result returns the outcome so far. Found is false until the goal is reached.
func (s *Stepper) Result() Result {
	result := Result{Expanded: s.expanded, Found: s.found}
	if s.found {
		result.Path = s.path()
		result.Cost = s.nodes.At(s.goalNode).Cost
	}
	return result
}

func (s *Stepper) path() []Cell {
	path := s.nodes.Path(s.goalNode)
	if path == nil {
		path = []Cell{}
	}
	return path
}

func (s *Stepper) frontierCells() map[Cell]bool {
	m := make(map[Cell]bool, len(s.frontierEstimates))
	for position := range s.frontierEstimates {
		m[position] = true
	}
	return m
}

func (s *Stepper) visitedCells() map[Cell]bool {
	m := make(map[Cell]bool, len(s.visitedMax))
	for position := range s.visitedMax {
		m[position] = true
	}
	return m
}
