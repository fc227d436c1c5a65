package server

import (
	"math/rand"

	"github.com/pdrpinto/gridpath"
)

var walkSteps = []gridpath.Coord{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// randomLayout builds a grid of clustered walls grown by random walks, with
// distinct start and goal cells kept clear.
func randomLayout(rng *rand.Rand, width, height, clusters, steps int, density float64) (*gridpath.WeightedGrid, gridpath.Coord, gridpath.Coord, error) {
	grid, err := gridpath.NewWeightedGrid(width, height)
	if err != nil {
		return nil, gridpath.Coord{}, gridpath.Coord{}, err
	}

	var start, goal gridpath.Coord
	for start == goal {
		start = gridpath.Coord{X: rng.Intn(width), Y: rng.Intn(height)}
		goal = gridpath.Coord{X: rng.Intn(width), Y: rng.Intn(height)}
	}

	for range clusters {
		p := gridpath.Coord{X: rng.Intn(width), Y: rng.Intn(height)}
		for range steps {
			if rng.Float64() < density && p != start && p != goal {
				if err := grid.AddWall(p); err != nil {
					return nil, gridpath.Coord{}, gridpath.Coord{}, err
				}
			}
			if next := p.Add(walkSteps[rng.Intn(len(walkSteps))]); grid.InBounds(next) {
				p = next
			}
		}
	}
	return grid, start, goal, nil
}
