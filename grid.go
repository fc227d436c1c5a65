package gridpath

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Coord is a cell position on the grid. It is the node type of every search.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add returns c translated by the offset o.
func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }

// Sub returns the offset that leads from o to c.
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y} }

// LengthSquared is the squared euclidean length of c seen as an offset.
func (c Coord) LengthSquared() int { return c.X*c.X + c.Y*c.Y }

// Less orders coordinates by X, then by Y.
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// Compare returns -1, 0 or 1 as c sorts before, equal to or after o.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.Less(o):
		return -1
	case o.Less(c):
		return 1
	}
	return 0
}

// Connectivity selects how many neighbors a cell has.
type Connectivity int

const (
	// Orthogonal allows moves along the axes only.
	Orthogonal Connectivity = 4
	// Diagonal additionally allows corner-adjacent moves.
	Diagonal Connectivity = 8
)

// offsets lists orthogonal moves first, then diagonal ones. The order decides
// which of several equal-priority routes is found first.
var offsets = [8]Coord{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// GridOption configures a Grid at construction time.
type GridOption func(*gridOptions)

type gridOptions struct {
	connectivity Connectivity
}

// WithConnectivity selects 4- or 8-directional adjacency. The default is Diagonal.
func WithConnectivity(connectivity Connectivity) GridOption {
	return func(options *gridOptions) { options.connectivity = connectivity }
}

// Grid is a dense rectangular grid of cells, some of which are walls.
//
// A Grid is not safe for concurrent mutation. Searches only read it, so
// callers sharing one must keep wall edits from overlapping a search.
type Grid struct {
	width       int
	height      int
	walls       mapset.Set[Coord]
	connections []Coord
}

// NewGrid creates an empty width x height grid.
func NewGrid(width, height int, options ...GridOption) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	gridOpts := gridOptions{connectivity: Diagonal}
	for _, option := range options {
		option(&gridOpts)
	}

	var connections []Coord
	switch gridOpts.connectivity {
	case Orthogonal:
		connections = slices.Clone(offsets[:4])
	case Diagonal:
		connections = slices.Clone(offsets[:])
	default:
		return nil, fmt.Errorf("connectivity %d: %w", gridOpts.connectivity, ErrInvalidConnectivity)
	}

	return &Grid{
		width:       width,
		height:      height,
		walls:       mapset.New[Coord](),
		connections: connections,
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Size is the number of cells, which bounds the length of any route.
func (g *Grid) Size() int { return g.width * g.height }

// Connections returns a copy of the neighbor offsets in expansion order.
func (g *Grid) Connections() []Coord { return slices.Clone(g.connections) }

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return 0 <= c.X && c.X < g.width && 0 <= c.Y && c.Y < g.height
}

// Passable reports whether c is not a wall.
func (g *Grid) Passable(c Coord) bool { return !g.walls.Has(c) }

// Neighbors returns the in-bounds, passable cells adjacent to c in
// connection order.
func (g *Grid) Neighbors(c Coord) []Coord {
	neighbors := make([]Coord, 0, len(g.connections))
	for _, offset := range g.connections {
		next := c.Add(offset)
		if g.InBounds(next) && g.Passable(next) {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// IsWall reports whether c is a wall.
func (g *Grid) IsWall(c Coord) bool { return g.walls.Has(c) }

// AddWall blocks c.
func (g *Grid) AddWall(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("wall %v: %w", c, ErrOutOfBounds)
	}
	g.walls.Put(c)
	return nil
}

// RemoveWall unblocks c. Removing a missing wall is a no-op.
func (g *Grid) RemoveWall(c Coord) { g.walls.Remove(c) }

// ToggleWall flips c between wall and floor and reports whether it is now a wall.
func (g *Grid) ToggleWall(c Coord) (bool, error) {
	if g.walls.Has(c) {
		g.walls.Remove(c)
		return false, nil
	}
	if err := g.AddWall(c); err != nil {
		return false, err
	}
	return true, nil
}

// Walls returns every wall sorted by X, then Y.
func (g *Grid) Walls() []Coord {
	walls := make([]Coord, 0, g.walls.Size())
	g.walls.Each(func(c Coord) {
		walls = append(walls, c)
	})
	slices.SortFunc(walls, Coord.Compare)
	return walls
}
