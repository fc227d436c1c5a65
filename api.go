package gridpath

import (
	"context"
	"slices"

	"github.com/pdrpinto/gridpath/internal/route"
)

// Graph is what the search engine needs from a grid.
// *WeightedGrid implements it.
type Graph interface {
	Neighbors(node Coord) []Coord
	Cost(from, to Coord) int
	InBounds(node Coord) bool
	Size() int
}

// Result contains the outcome of a search.
//
// CameFrom maps every discovered node to its predecessor. The start maps to
// nil. CostSoFar holds the best known cost from the start to each discovered
// node. When the goal is unreachable it is absent from both maps.
type Result struct {
	Start     Coord
	Goal      Coord
	Algorithm Algorithm
	CameFrom  map[Coord]*Coord
	CostSoFar map[Coord]int
	// Expanded counts frontier pops, including repeated pops of one node.
	Expanded int
	Found    bool

	limit int
}

// Search runs alg from start until it pops goal or the frontier drains.
// An unreachable goal is not an error: Found is false and the result holds
// everything reachable from start.
func Search(
	contextObject context.Context,
	graph Graph,
	startNode Coord,
	goalNode Coord,
	alg Algorithm,
) (*Result, error) {
	search, err := newEngine(graph, startNode, goalNode, alg)
	if err != nil {
		return nil, err
	}

	for {
		if err := contextObject.Err(); err != nil {
			return search.result, err
		}
		if expansion := search.expand(false); expansion.done {
			return search.result, nil
		}
	}
}

// Reached reports whether node was discovered.
func (r *Result) Reached(node Coord) bool {
	_, ok := r.CostSoFar[node]
	return ok
}

// Cost returns the best known cost from the start to node.
func (r *Result) Cost(node Coord) (int, bool) {
	cost, ok := r.CostSoFar[node]
	return cost, ok
}

// TotalCost is the cost of the route to the goal, or 0 when none was found.
func (r *Result) TotalCost() int {
	if !r.Found {
		return 0
	}
	return r.CostSoFar[r.Goal]
}

// Predecessor returns the node node was reached from. It reports false for
// the start and for undiscovered nodes.
func (r *Result) Predecessor(node Coord) (Coord, bool) {
	previous, ok := r.CameFrom[node]
	if !ok || previous == nil {
		return Coord{}, false
	}
	return *previous, true
}

// Direction returns the offset from node back to its predecessor, which is
// the direction an arrow drawn on node points in.
func (r *Result) Direction(node Coord) (Coord, bool) {
	previous, ok := r.Predecessor(node)
	if !ok {
		return Coord{}, false
	}
	return previous.Sub(node), true
}

// Walk follows predecessors from node back toward the start. The walk is
// capped at the grid size and stops at the first undiscovered node.
// It returns nil when node itself was never discovered.
func (r *Result) Walk(node Coord) []Coord {
	if _, ok := r.CameFrom[node]; !ok {
		return nil
	}
	return route.Walk(r.Predecessor, node, r.limit)
}

// Path returns the route from start to goal, or nil when none was found.
func (r *Result) Path() []Coord {
	if !r.Found {
		return nil
	}
	return route.Reverse(r.Walk(r.Goal))
}

// ExploredCells returns every discovered node sorted by Coord order.
func (r *Result) ExploredCells() []Coord {
	cells := make([]Coord, 0, len(r.CostSoFar))
	for cell := range r.CostSoFar {
		cells = append(cells, cell)
	}
	slices.SortFunc(cells, Coord.Compare)
	return cells
}
