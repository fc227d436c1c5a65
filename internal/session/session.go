// Package session keeps one editable grid together with the result of
// searching it. Every edit re-runs the search from scratch.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pdrpinto/gridpath"
)

// ErrOccupied is returned for edits that would put the start on a wall.
var ErrOccupied = errors.New("cell is occupied")

// Step is one cell of a displayed route with the direction to the next cell.
type Step struct {
	Cell      gridpath.Coord `json:"cell"`
	Direction gridpath.Coord `json:"direction"`
}

// View is a consistent copy of the session state for rendering.
type View struct {
	Width     int                    `json:"width"`
	Height    int                    `json:"height"`
	Walls     []gridpath.Coord       `json:"walls"`
	Weights   map[gridpath.Coord]int `json:"-"`
	Start     gridpath.Coord         `json:"start"`
	Goal      gridpath.Coord         `json:"goal"`
	Algorithm gridpath.Algorithm     `json:"-"`
	Explored  []gridpath.Coord       `json:"explored"`
	Route     []Step                 `json:"route"`
	Found     bool                   `json:"found"`
	Cost      int                    `json:"cost"`
	Expanded  int                    `json:"expanded"`
}

// Session owns a grid, its endpoints and the latest search result.
//
// The search is rooted at the goal, so the predecessor of every explored
// cell is its next step toward the goal. An edit and the search it triggers
// run under the write lock, so a search never sees a half-made edit.
type Session struct {
	mu        sync.RWMutex
	grid      *gridpath.WeightedGrid
	start     gridpath.Coord
	goal      gridpath.Coord
	algorithm gridpath.Algorithm
	result    *gridpath.Result
	stepper   *gridpath.Stepper
}

// New creates a session and runs the first search.
func New(ctx context.Context, grid *gridpath.WeightedGrid, start, goal gridpath.Coord, alg gridpath.Algorithm) (*Session, error) {
	if grid == nil {
		return nil, gridpath.ErrNilGraph
	}
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("start %v: %w", start, gridpath.ErrOutOfBounds)
	}
	if !grid.InBounds(goal) {
		return nil, fmt.Errorf("goal %v: %w", goal, gridpath.ErrOutOfBounds)
	}
	if grid.IsWall(start) {
		return nil, fmt.Errorf("start %v: %w", start, ErrOccupied)
	}
	s := &Session{grid: grid, start: start, goal: goal, algorithm: alg}
	if err := s.research(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// research must be called with the write lock held, or before s is shared.
func (s *Session) research(ctx context.Context) error {
	if s.stepper != nil {
		s.stepper.Close()
		s.stepper = nil
	}
	result, err := gridpath.Search(ctx, s.grid, s.goal, s.start, s.algorithm)
	if err != nil {
		return err
	}
	s.result = result
	return nil
}

// commit re-searches after an edit. When the search fails, undo reverts the
// edit so the kept result still describes the grid.
func (s *Session) commit(ctx context.Context, undo func()) error {
	if err := s.research(ctx); err != nil {
		undo()
		return err
	}
	return nil
}

// ToggleWall flips a cell between wall and floor. The start cannot be walled.
func (s *Session) ToggleWall(ctx context.Context, c gridpath.Coord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == s.start {
		return false, fmt.Errorf("wall on start %v: %w", c, ErrOccupied)
	}
	isWall, err := s.grid.ToggleWall(c)
	if err != nil {
		return false, err
	}
	if err := s.commit(ctx, func() { _, _ = s.grid.ToggleWall(c) }); err != nil {
		return !isWall, err
	}
	return isWall, nil
}

// SetWeight sets the extra cost of entering c. Zero clears it.
func (s *Session) SetWeight(ctx context.Context, c gridpath.Coord, weight int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.grid.Weight(c)
	if err := s.grid.SetWeight(c, weight); err != nil {
		return err
	}
	return s.commit(ctx, func() { _ = s.grid.SetWeight(c, previous) })
}

// SetStart moves the start. It may not be placed on a wall.
func (s *Session) SetStart(ctx context.Context, c gridpath.Coord) error {
	return s.SetEndpoints(ctx, &c, nil)
}

// SetGoal moves the goal.
func (s *Session) SetGoal(ctx context.Context, c gridpath.Coord) error {
	return s.SetEndpoints(ctx, nil, &c)
}

// SetEndpoints moves the start, the goal or both in one edit. A nil
// endpoint stays where it is. Nothing moves unless both are valid.
func (s *Session) SetEndpoints(ctx context.Context, start, goal *gridpath.Coord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if start != nil {
		if !s.grid.InBounds(*start) {
			return fmt.Errorf("start %v: %w", *start, gridpath.ErrOutOfBounds)
		}
		if s.grid.IsWall(*start) {
			return fmt.Errorf("start %v: %w", *start, ErrOccupied)
		}
	}
	if goal != nil && !s.grid.InBounds(*goal) {
		return fmt.Errorf("goal %v: %w", *goal, gridpath.ErrOutOfBounds)
	}

	previousStart, previousGoal := s.start, s.goal
	if start != nil {
		s.start = *start
	}
	if goal != nil {
		s.goal = *goal
	}
	return s.commit(ctx, func() { s.start, s.goal = previousStart, previousGoal })
}

// SetAlgorithm switches the search algorithm.
func (s *Session) SetAlgorithm(ctx context.Context, alg gridpath.Algorithm) error {
	if _, err := alg.Priority(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.algorithm
	s.algorithm = alg
	return s.commit(ctx, func() { s.algorithm = previous })
}

func (s *Session) Algorithm() gridpath.Algorithm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.algorithm
}

// Walls returns the current walls sorted, for dumping.
func (s *Session) Walls() []gridpath.Coord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Walls()
}

// View returns a copy of everything a renderer needs.
func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := View{
		Width:     s.grid.Width(),
		Height:    s.grid.Height(),
		Walls:     s.grid.Walls(),
		Weights:   s.grid.Weights(),
		Start:     s.start,
		Goal:      s.goal,
		Algorithm: s.algorithm,
		Explored:  s.result.ExploredCells(),
		Expanded:  s.result.Expanded,
	}

	// Walking from the start follows predecessors toward the goal.
	cells := s.result.Walk(s.start)
	if len(cells) == 0 || cells[len(cells)-1] != s.goal {
		return view
	}
	view.Found = true
	view.Cost, _ = s.result.Cost(s.start)
	for _, cell := range cells[:len(cells)-1] {
		direction, _ := s.result.Direction(cell)
		view.Route = append(view.Route, Step{Cell: cell, Direction: direction})
	}
	return view
}

// Step advances a step-by-step replay of the current search, starting a new
// replay when none is running. Any edit discards the replay.
func (s *Session) Step(ctx context.Context, options ...gridpath.Option) (gridpath.StepSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stepper == nil {
		stepper, err := gridpath.NewStepper(ctx, s.grid, s.goal, s.start, s.algorithm, options...)
		if err != nil {
			return gridpath.StepSnapshot{}, err
		}
		s.stepper = stepper
	}
	snapshot, err := s.stepper.Step()
	if err != nil || snapshot.Done {
		s.stepper.Close()
		s.stepper = nil
	}
	return snapshot, err
}

// Close stops any running replay.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stepper != nil {
		s.stepper.Close()
		s.stepper = nil
	}
}
