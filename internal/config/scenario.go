package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridpath"
)

// WeightSpec assigns an extra traversal cost to one cell.
type WeightSpec struct {
	Cell [2]int `yaml:"cell"`
	Cost int    `yaml:"cost"`
}

// Scenario is a grid layout plus the settings to display it with.
type Scenario struct {
	Config       `yaml:",inline"`
	Connectivity int          `yaml:"connectivity"`
	Algorithm    string       `yaml:"algorithm"`
	Start        [2]int       `yaml:"start"`
	Goal         [2]int       `yaml:"goal"`
	Walls        [][2]int     `yaml:"walls"`
	Weights      []WeightSpec `yaml:"weights"`
}

// Setup is a scenario turned into a grid ready for searching.
type Setup struct {
	Grid      *gridpath.WeightedGrid
	Start     gridpath.Coord
	Goal      gridpath.Coord
	Algorithm gridpath.Algorithm
}

// Load reads a YAML scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	scenario, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenario, nil
}

// Parse decodes a YAML scenario. Fields left out keep the values of
// DefaultScenario, except walls and weights which default to none.
func Parse(data []byte) (*Scenario, error) {
	scenario := DefaultScenario()
	scenario.Walls = nil
	scenario.Weights = nil
	if err := yaml.Unmarshal(data, scenario); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return scenario, nil
}

// Marshal encodes the scenario as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Build creates the grid described by s and checks the endpoints.
func (s *Scenario) Build() (*Setup, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	connectivity := gridpath.Connectivity(s.Connectivity)
	if s.Connectivity == 0 {
		connectivity = gridpath.Diagonal
	}
	grid, err := gridpath.NewWeightedGrid(s.Width, s.Height, gridpath.WithConnectivity(connectivity))
	if err != nil {
		return nil, err
	}
	for _, w := range s.Walls {
		if err := grid.AddWall(coord(w)); err != nil {
			return nil, err
		}
	}
	for _, w := range s.Weights {
		if err := grid.SetWeight(coord(w.Cell), w.Cost); err != nil {
			return nil, err
		}
	}

	alg := gridpath.AStar
	if s.Algorithm != "" {
		if alg, err = gridpath.ParseAlgorithm(s.Algorithm); err != nil {
			return nil, err
		}
	}

	start, goal := coord(s.Start), coord(s.Goal)
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("start %v: %w", start, gridpath.ErrOutOfBounds)
	}
	if !grid.InBounds(goal) {
		return nil, fmt.Errorf("goal %v: %w", goal, gridpath.ErrOutOfBounds)
	}
	return &Setup{Grid: grid, Start: start, Goal: goal, Algorithm: alg}, nil
}

func coord(p [2]int) gridpath.Coord { return gridpath.Coord{X: p[0], Y: p[1]} }

// DefaultScenario is the classic demo layout: a 28x15 maze with the start
// in the top right and the goal near the middle.
func DefaultScenario() *Scenario {
	return &Scenario{
		Config:       Default(),
		Connectivity: int(gridpath.Diagonal),
		Algorithm:    gridpath.AStar.String(),
		Start:        [2]int{20, 0},
		Goal:         [2]int{14, 8},
		Walls: [][2]int{
			{10, 7}, {11, 7}, {12, 7}, {13, 7}, {14, 7}, {15, 7}, {16, 7}, {7, 7}, {6, 7}, {5, 7},
			{5, 5}, {5, 6}, {1, 6}, {2, 6}, {3, 6}, {5, 10}, {5, 11}, {5, 12}, {5, 9}, {5, 8},
			{12, 8}, {12, 9}, {12, 10}, {12, 11}, {15, 14}, {15, 13}, {15, 12}, {15, 11}, {15, 10},
			{17, 7}, {18, 7}, {21, 7}, {21, 6}, {21, 5}, {21, 4}, {21, 3}, {22, 5}, {23, 5},
			{24, 5}, {25, 5}, {18, 10}, {20, 10}, {19, 10}, {21, 10}, {22, 10}, {23, 10},
			{14, 4}, {14, 5}, {14, 6}, {14, 0}, {14, 1}, {9, 2}, {9, 1}, {7, 3}, {8, 3}, {10, 3},
			{9, 3}, {11, 3}, {2, 5}, {2, 4}, {2, 3}, {2, 2}, {2, 0}, {2, 1}, {0, 11}, {1, 11},
			{2, 11}, {21, 2}, {20, 11}, {20, 12}, {23, 13}, {23, 14}, {24, 10}, {25, 10},
			{6, 12}, {7, 12}, {10, 12}, {11, 12}, {12, 12}, {5, 3}, {6, 3}, {5, 4},
		},
	}
}
