package gridpath

import (
	"fmt"
	"strings"
)

// Algorithm selects the priority a relaxed node enters the frontier with.
type Algorithm int

const (
	// AStar orders by cost so far plus the heuristic estimate to the goal.
	AStar Algorithm = iota
	// Greedy orders by the heuristic estimate alone.
	Greedy
	// BreadthFirst is uniform-cost search: it orders by cost so far.
	BreadthFirst
	// GreedyLegacy orders by cost so far, like BreadthFirst. It is the greedy
	// mode from before Greedy switched to the heuristic.
	GreedyLegacy
)

// Algorithms lists every variant in key-binding order.
var Algorithms = []Algorithm{AStar, Greedy, BreadthFirst, GreedyLegacy}

var algorithmNames = map[Algorithm]string{
	AStar:        "a_star",
	Greedy:       "greedy",
	BreadthFirst: "breadth_first",
	GreedyLegacy: "greedy_legacy",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a name such as "a_star", "astar", "greedy", "bfs" or
// "breadth_first" to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a_star", "astar", "a*":
		return AStar, nil
	case "greedy", "greedy_best_first":
		return Greedy, nil
	case "breadth_first", "bfs", "ucs", "uniform_cost", "dijkstra":
		return BreadthFirst, nil
	case "greedy_legacy":
		return GreedyLegacy, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

// PriorityFunc computes the frontier priority of next, reached at nextCost.
type PriorityFunc func(nextCost int, next, goal Coord) int

func aStarPriority(nextCost int, next, goal Coord) int {
	return nextCost + Heuristic(goal, next)
}

func greedyPriority(_ int, next, goal Coord) int {
	return Heuristic(goal, next)
}

func uniformCostPriority(nextCost int, _, _ Coord) int {
	return nextCost
}

// Priority returns the priority function of a.
func (a Algorithm) Priority() (PriorityFunc, error) {
	switch a {
	case AStar:
		return aStarPriority, nil
	case Greedy:
		return greedyPriority, nil
	case BreadthFirst, GreedyLegacy:
		return uniformCostPriority, nil
	}
	return nil, fmt.Errorf("%v: %w", a, ErrUnknownAlgorithm)
}
