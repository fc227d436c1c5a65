package server

import (
	"slices"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/session"
)

type point = [2]int

func toPoint(c gridpath.Coord) point { return point{c.X, c.Y} }

func cells(coords []gridpath.Coord) []point {
	res := make([]point, 0, len(coords))
	for _, c := range coords {
		res = append(res, toPoint(c))
	}
	return res
}

type weightJSON struct {
	Cell point `json:"cell"`
	Cost int   `json:"cost"`
}

type stepJSON struct {
	Cell      point `json:"cell"`
	Direction point `json:"direction"`
}

type stateResponse struct {
	W         int          `json:"w"`
	H         int          `json:"h"`
	Algorithm string       `json:"algorithm"`
	Start     point        `json:"start"`
	Goal      point        `json:"goal"`
	Walls     []point      `json:"walls"`
	Weights   []weightJSON `json:"weights"`
	Explored  []point      `json:"explored"`
	Route     []stepJSON   `json:"route"`
	Found     bool         `json:"found"`
	Cost      int          `json:"cost"`
	Expanded  int          `json:"expanded"`
}

func newStateResponse(view session.View) stateResponse {
	weighted := make([]gridpath.Coord, 0, len(view.Weights))
	for c := range view.Weights {
		weighted = append(weighted, c)
	}
	slices.SortFunc(weighted, gridpath.Coord.Compare)
	weights := make([]weightJSON, 0, len(weighted))
	for _, c := range weighted {
		weights = append(weights, weightJSON{Cell: toPoint(c), Cost: view.Weights[c]})
	}

	route := make([]stepJSON, 0, len(view.Route))
	for _, step := range view.Route {
		route = append(route, stepJSON{Cell: toPoint(step.Cell), Direction: toPoint(step.Direction)})
	}

	return stateResponse{
		W:         view.Width,
		H:         view.Height,
		Algorithm: view.Algorithm.String(),
		Start:     toPoint(view.Start),
		Goal:      toPoint(view.Goal),
		Walls:     cells(view.Walls),
		Weights:   weights,
		Explored:  cells(view.Explored),
		Route:     route,
		Found:     view.Found,
		Cost:      view.Cost,
		Expanded:  view.Expanded,
	}
}

// snapshotResponse is one replay step. The replay runs from the goal, so
// Path lists cells from the goal back to the start.
type snapshotResponse struct {
	Step     int     `json:"step"`
	W        int     `json:"w"`
	H        int     `json:"h"`
	Walls    []point `json:"walls"`
	Frontier []point `json:"frontier,omitempty"`
	Explored []point `json:"explored,omitempty"`
	Relaxed  []point `json:"relaxed,omitempty"`
	Current  point   `json:"current"`
	Start    point   `json:"start"`
	Goal     point   `json:"goal"`
	Done     bool    `json:"done"`
	Found    bool    `json:"found"`
	Path     []point `json:"path,omitempty"`
}

func newSnapshotResponse(st gridpath.StepSnapshot, view session.View) snapshotResponse {
	s := snapshotResponse{
		Step:    st.StepIndex,
		W:       view.Width,
		H:       view.Height,
		Walls:   cells(view.Walls),
		Current: toPoint(st.Current),
		Start:   toPoint(view.Start),
		Goal:    toPoint(view.Goal),
		Done:    st.Done,
		Found:   st.Found,
	}
	if st.Frontier != nil {
		s.Frontier = cells(st.Frontier)
	}
	if st.Explored != nil {
		s.Explored = cells(st.Explored)
	}
	for _, r := range st.Relaxed {
		s.Relaxed = append(s.Relaxed, toPoint(r.To))
	}
	if st.Found && len(st.Path) > 0 {
		s.Path = cells(st.Path)
	}
	return s
}
