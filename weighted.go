package gridpath

import (
	"fmt"
	"maps"
)

// Step costs. 10:14 approximates 1:sqrt(2) in integers.
const (
	OrthogonalCost = 10
	DiagonalCost   = 14
)

// WeightedGrid is a Grid whose cells may carry an extra cost for entering them.
type WeightedGrid struct {
	*Grid
	weights map[Coord]int
}

var _ Graph = (*WeightedGrid)(nil)

// NewWeightedGrid creates an empty width x height grid with no weights.
func NewWeightedGrid(width, height int, options ...GridOption) (*WeightedGrid, error) {
	grid, err := NewGrid(width, height, options...)
	if err != nil {
		return nil, err
	}
	return &WeightedGrid{Grid: grid, weights: make(map[Coord]int)}, nil
}

// SetWeight sets the extra cost of entering c. A zero weight clears it.
func (g *WeightedGrid) SetWeight(c Coord, weight int) error {
	if !g.InBounds(c) {
		return fmt.Errorf("weight %v: %w", c, ErrOutOfBounds)
	}
	if weight < 0 {
		return fmt.Errorf("weight %d at %v: %w", weight, c, ErrNegativeWeight)
	}
	if weight == 0 {
		delete(g.weights, c)
		return nil
	}
	g.weights[c] = weight
	return nil
}

func (g *WeightedGrid) ClearWeight(c Coord) { delete(g.weights, c) }

// Weight returns the extra cost of entering c, 0 when unset.
func (g *WeightedGrid) Weight(c Coord) int { return g.weights[c] }

// Weights returns a copy of all non-zero weights.
func (g *WeightedGrid) Weights() map[Coord]int { return maps.Clone(g.weights) }

// Cost is the price of stepping from one cell to an adjacent one: the
// destination weight plus 10 for an orthogonal step or 14 otherwise.
func (g *WeightedGrid) Cost(from, to Coord) int {
	if to.Sub(from).LengthSquared() == 1 {
		return g.weights[to] + OrthogonalCost
	}
	return g.weights[to] + DiagonalCost
}
