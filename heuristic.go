package gridpath

// Manhattan returns the taxicab distance between a and b.
func Manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Heuristic estimates the cost between a and b as the Manhattan distance
// scaled by the orthogonal step cost.
func Heuristic(a, b Coord) int {
	return Manhattan(a, b) * OrthogonalCost
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
