package gridpath

import (
	"errors"
	"slices"
	"testing"
)

func TestNewGrid_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
	if _, err := NewGrid(3, 3, WithConnectivity(6)); !errors.Is(err, ErrInvalidConnectivity) {
		t.Errorf("NewGrid with connectivity 6: error = %v", err)
	}
}

func TestGrid_InBoundsAndPassable(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		c    Coord
		want bool
	}{
		{Coord{0, 0}, true},
		{Coord{3, 2}, true},
		{Coord{4, 2}, false},
		{Coord{3, 3}, false},
		{Coord{-1, 0}, false},
		{Coord{0, -1}, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.c); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}

	if err := g.AddWall(Coord{1, 1}); err != nil {
		t.Fatal(err)
	}
	if g.Passable(Coord{1, 1}) {
		t.Error("wall reported passable")
	}
	if !g.Passable(Coord{2, 1}) {
		t.Error("floor reported impassable")
	}
}

func TestGrid_Neighbors(t *testing.T) {
	tests := []struct {
		name         string
		connectivity Connectivity
		walls        []Coord
		node         Coord
		want         []Coord
	}{
		{
			name:         "center keeps connection order",
			connectivity: Diagonal,
			node:         Coord{1, 1},
			want: []Coord{
				{2, 1}, {0, 1}, {1, 2}, {1, 0},
				{2, 2}, {0, 2}, {2, 0}, {0, 0},
			},
		},
		{
			name:         "corner drops out of bounds cells",
			connectivity: Diagonal,
			node:         Coord{0, 0},
			want:         []Coord{{1, 0}, {0, 1}, {1, 1}},
		},
		{
			name:         "walls are filtered",
			connectivity: Diagonal,
			walls:        []Coord{{2, 1}, {0, 0}},
			node:         Coord{1, 1},
			want: []Coord{
				{0, 1}, {1, 2}, {1, 0},
				{2, 2}, {0, 2}, {2, 0},
			},
		},
		{
			name:         "orthogonal center",
			connectivity: Orthogonal,
			node:         Coord{1, 1},
			want:         []Coord{{2, 1}, {0, 1}, {1, 2}, {1, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(3, 3, WithConnectivity(tt.connectivity))
			if err != nil {
				t.Fatal(err)
			}
			for _, w := range tt.walls {
				if err := g.AddWall(w); err != nil {
					t.Fatal(err)
				}
			}
			if got := g.Neighbors(tt.node); !slices.Equal(got, tt.want) {
				t.Errorf("Neighbors(%v) = %v, want %v", tt.node, got, tt.want)
			}
		})
	}
}

func TestGrid_WallEditing(t *testing.T) {
	g, err := NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.AddWall(Coord{5, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("AddWall out of bounds: error = %v", err)
	}
	if _, err := g.ToggleWall(Coord{0, 9}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("ToggleWall out of bounds: error = %v", err)
	}

	for _, c := range []Coord{{3, 1}, {0, 4}, {3, 0}, {1, 2}} {
		if err := g.AddWall(c); err != nil {
			t.Fatal(err)
		}
	}
	want := []Coord{{0, 4}, {1, 2}, {3, 0}, {3, 1}}
	if got := g.Walls(); !slices.Equal(got, want) {
		t.Errorf("Walls() = %v, want %v", got, want)
	}

	isWall, err := g.ToggleWall(Coord{1, 2})
	if err != nil || isWall {
		t.Errorf("ToggleWall on wall = %v, %v; want false, nil", isWall, err)
	}
	isWall, err = g.ToggleWall(Coord{2, 2})
	if err != nil || !isWall {
		t.Errorf("ToggleWall on floor = %v, %v; want true, nil", isWall, err)
	}

	g.RemoveWall(Coord{2, 2})
	g.RemoveWall(Coord{4, 4})
	if g.IsWall(Coord{2, 2}) {
		t.Error("RemoveWall left the wall in place")
	}
}

func TestGrid_ConnectionsAreCopied(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	connections := g.Connections()
	if len(connections) != 8 {
		t.Fatalf("len(Connections()) = %d, want 8", len(connections))
	}
	connections[0] = Coord{5, 5}
	if got := g.Connections()[0]; got != (Coord{1, 0}) {
		t.Errorf("grid connections mutated through copy: %v", got)
	}
}

func TestWeightedGrid_Cost(t *testing.T) {
	g, err := NewWeightedGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetWeight(Coord{1, 1}, 15); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		from, to Coord
		want     int
	}{
		{"orthogonal", Coord{0, 0}, Coord{1, 0}, 10},
		{"diagonal", Coord{0, 0}, Coord{1, 1}, 29},
		{"orthogonal into weight", Coord{1, 0}, Coord{1, 1}, 25},
		{"weight of source is ignored", Coord{1, 1}, Coord{2, 1}, 10},
		{"diagonal no weight", Coord{2, 2}, Coord{3, 3}, 14},
	}
	for _, tt := range tests {
		if got := g.Cost(tt.from, tt.to); got != tt.want {
			t.Errorf("%s: Cost(%v, %v) = %d, want %d", tt.name, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestWeightedGrid_Weights(t *testing.T) {
	g, err := NewWeightedGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.SetWeight(Coord{0, 0}, -1); !errors.Is(err, ErrNegativeWeight) {
		t.Errorf("negative weight: error = %v", err)
	}
	if err := g.SetWeight(Coord{3, 0}, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out of bounds weight: error = %v", err)
	}

	// Weights may sit on walls; they only matter if the wall is removed.
	if err := g.AddWall(Coord{2, 2}); err != nil {
		t.Fatal(err)
	}
	if err := g.SetWeight(Coord{2, 2}, 7); err != nil {
		t.Fatal(err)
	}
	if got := g.Weight(Coord{2, 2}); got != 7 {
		t.Errorf("Weight = %d, want 7", got)
	}

	weights := g.Weights()
	weights[Coord{0, 0}] = 99
	if g.Weight(Coord{0, 0}) != 0 {
		t.Error("Weights() exposed internal map")
	}

	if err := g.SetWeight(Coord{2, 2}, 0); err != nil {
		t.Fatal(err)
	}
	if len(g.Weights()) != 0 {
		t.Errorf("zero weight kept: %v", g.Weights())
	}

	_ = g.SetWeight(Coord{1, 0}, 3)
	g.ClearWeight(Coord{1, 0})
	if g.Weight(Coord{1, 0}) != 0 {
		t.Error("ClearWeight left the weight")
	}
}

func TestHeuristic(t *testing.T) {
	tests := []struct {
		a, b Coord
		want int
	}{
		{Coord{0, 0}, Coord{0, 0}, 0},
		{Coord{0, 0}, Coord{2, 2}, 40},
		{Coord{5, 1}, Coord{2, 3}, 50},
		{Coord{2, 3}, Coord{5, 1}, 50},
	}
	for _, tt := range tests {
		if got := Heuristic(tt.a, tt.b); got != tt.want {
			t.Errorf("Heuristic(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
