package gridpath

import "fmt"

// engine holds the state of one search. Search and Stepper both drive it, so
// every algorithm shares the same expansion loop.
type engine struct {
	graph    Graph
	goal     Coord
	priority PriorityFunc
	frontier *PriorityQueue
	result   *Result
}

// expansion describes one pass of the loop.
type expansion struct {
	current Coord
	popped  bool
	relaxed []Relaxation
	done    bool
}

func newEngine(graph Graph, startNode, goalNode Coord, alg Algorithm) (*engine, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	if !graph.InBounds(startNode) {
		return nil, fmt.Errorf("start %v: %w", startNode, ErrOutOfBounds)
	}
	if !graph.InBounds(goalNode) {
		return nil, fmt.Errorf("goal %v: %w", goalNode, ErrOutOfBounds)
	}
	priority, err := alg.Priority()
	if err != nil {
		return nil, err
	}

	frontier := NewPriorityQueue()
	frontier.Put(startNode, 0)

	return &engine{
		graph:    graph,
		goal:     goalNode,
		priority: priority,
		frontier: frontier,
		result: &Result{
			Start:     startNode,
			Goal:      goalNode,
			Algorithm: alg,
			CameFrom:  map[Coord]*Coord{startNode: nil},
			CostSoFar: map[Coord]int{startNode: 0},
			limit:     graph.Size(),
		},
	}, nil
}

// expand pops one node and relaxes its neighbors. A node popped again after
// a cheaper route to it was found is expanded again rather than skipped.
// When record is set the relaxations are returned.
func (e *engine) expand(record bool) expansion {
	if e.frontier.Empty() {
		return expansion{done: true}
	}

	current := e.frontier.Get()
	e.result.Expanded++
	if current == e.goal {
		e.result.Found = true
		return expansion{current: current, popped: true, done: true}
	}

	var relaxed []Relaxation
	costSoFar := e.result.CostSoFar
	for _, next := range e.graph.Neighbors(current) {
		nextCost := costSoFar[current] + e.graph.Cost(current, next)
		if knownCost, seen := costSoFar[next]; seen && nextCost >= knownCost {
			continue
		}
		costSoFar[next] = nextCost
		priority := e.priority(nextCost, next, e.goal)
		e.frontier.Put(next, priority)
		previous := current
		e.result.CameFrom[next] = &previous
		if record {
			relaxed = append(relaxed, Relaxation{From: current, To: next, Cost: nextCost, Priority: priority})
		}
	}

	return expansion{current: current, popped: true, relaxed: relaxed}
}
