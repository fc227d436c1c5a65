package gridpath

import (
	"context"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Coord
	Frontier  []Coord
	Explored  []Coord
	Relaxed   []Relaxation
	Done      bool
	Found     bool
	Path      []Coord
	StepIndex int
}

// Options defines parameters for a Stepper.
type Options struct {
	MaxSteps int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxSteps stops the stepper after the given number of expansions.
// Zero means no limit.
func WithMaxSteps(maxSteps int) Option {
	return func(options *Options) { options.MaxSteps = maxSteps }
}

// Stepper runs a search one frontier pop at a time, for visualizers and
// debugging tools. Driven until Done it ends in the same state as Search.
type Stepper struct {
	ctx      context.Context
	cancel   context.CancelFunc
	engine   *engine
	explored mapset.Set[Coord]
	maxSteps int

	stepCount int
	done      bool
}

// NewStepper validates its arguments like Search and returns a stepper that
// has not expanded anything yet.
func NewStepper(
	parent context.Context,
	graph Graph,
	startNode Coord,
	goalNode Coord,
	alg Algorithm,
	options ...Option,
) (*Stepper, error) {
	var opts Options
	for _, o := range options {
		o(&opts)
	}

	e, err := newEngine(graph, startNode, goalNode, alg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(parent)
	return &Stepper{
		ctx:      ctx,
		cancel:   cancel,
		engine:   e,
		explored: mapset.New[Coord](),
		maxSteps: opts.MaxSteps,
	}, nil
}

// Close stops the stepper. Later calls to Step return the context error.
func (s *Stepper) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Result returns the search state so far. It is final once Step reports Done.
func (s *Stepper) Result() *Result { return s.engine.result }

// Step advances the search by one node expansion and returns a snapshot
func (s *Stepper) Step() (StepSnapshot, error) {
	if err := s.ctx.Err(); err != nil {
		s.done = true
		return s.snapshot(Coord{}, nil), err
	}
	if s.done {
		return s.snapshot(Coord{}, nil), nil
	}
	if s.maxSteps > 0 && s.stepCount >= s.maxSteps {
		s.done = true
		return s.snapshot(Coord{}, nil), nil
	}

	expansion := s.engine.expand(true)
	if expansion.popped {
		s.stepCount++
		s.explored.Put(expansion.current)
	}
	s.done = expansion.done
	return s.snapshot(expansion.current, expansion.relaxed), nil
}

func (s *Stepper) snapshot(current Coord, relaxed []Relaxation) StepSnapshot {
	explored := make([]Coord, 0, s.explored.Size())
	s.explored.Each(func(c Coord) {
		explored = append(explored, c)
	})
	slices.SortFunc(explored, Coord.Compare)

	result := s.engine.result
	return StepSnapshot{
		Current:   current,
		Frontier:  s.engine.frontier.Nodes(),
		Explored:  explored,
		Relaxed:   relaxed,
		Done:      s.done,
		Found:     result.Found,
		Path:      result.Path(),
		StepIndex: s.stepCount,
	}
}
