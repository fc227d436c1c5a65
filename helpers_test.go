package gridpath

import (
	"math/rand"
	"strings"
	"testing"
)

// parseGrid builds a grid from an ASCII picture.
// '#' is a wall, '1'-'9' is a weight of that many points, 'S' and 'G' mark
// the start and goal, anything else is floor.
func parseGrid(t *testing.T, connectivity Connectivity, picture string) (*WeightedGrid, Coord, Coord) {
	t.Helper()
	rows := strings.Split(strings.TrimSpace(picture), "\n")
	g, err := NewWeightedGrid(len(strings.TrimSpace(rows[0])), len(rows), WithConnectivity(connectivity))
	if err != nil {
		t.Fatalf("NewWeightedGrid: %v", err)
	}
	var start, goal Coord
	for y, row := range rows {
		for x, ch := range strings.TrimSpace(row) {
			c := Coord{x, y}
			switch {
			case ch == '#':
				if err := g.AddWall(c); err != nil {
					t.Fatalf("AddWall(%v): %v", c, err)
				}
			case ch >= '1' && ch <= '9':
				if err := g.SetWeight(c, int(ch-'0')); err != nil {
					t.Fatalf("SetWeight(%v): %v", c, err)
				}
			case ch == 'S':
				start = c
			case ch == 'G':
				goal = c
			}
		}
	}
	return g, start, goal
}

// randomGrid scatters walls and weights over a grid, keeping keep free.
func randomGrid(t *testing.T, rng *rand.Rand, width, height int, connectivity Connectivity, keep ...Coord) *WeightedGrid {
	t.Helper()
	g, err := NewWeightedGrid(width, height, WithConnectivity(connectivity))
	if err != nil {
		t.Fatalf("NewWeightedGrid: %v", err)
	}
	kept := make(map[Coord]bool, len(keep))
	for _, c := range keep {
		kept[c] = true
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{x, y}
			if kept[c] {
				continue
			}
			switch r := rng.Float64(); {
			case r < 0.2:
				_ = g.AddWall(c)
			case r < 0.45:
				_ = g.SetWeight(c, 1+rng.Intn(20))
			}
		}
	}
	return g
}

// bruteForceCosts enumerates every simple path from start and returns the
// cheapest cost found for each reachable cell.
func bruteForceCosts(g Graph, start Coord) map[Coord]int {
	best := map[Coord]int{start: 0}
	onPath := map[Coord]bool{start: true}
	var visit func(node Coord, cost int)
	visit = func(node Coord, cost int) {
		for _, next := range g.Neighbors(node) {
			if onPath[next] {
				continue
			}
			nextCost := cost + g.Cost(node, next)
			if known, ok := best[next]; !ok || nextCost < known {
				best[next] = nextCost
			}
			onPath[next] = true
			visit(next, nextCost)
			onPath[next] = false
		}
	}
	visit(start, 0)
	return best
}

func pathCost(g Graph, path []Coord) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += g.Cost(path[i-1], path[i])
	}
	return total
}
