// Package export writes session views as GeoJSON for inspection in
// external tools. Cell (x, y) maps to the point (x, y), so y grows downward.
package export

import (
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/session"
)

func point(c gridpath.Coord) orb.Point { return orb.Point{float64(c.X), float64(c.Y)} }

// FeatureCollection describes the view as features tagged with a "kind"
// property: "walls", "route", "weight", "start" and "goal".
func FeatureCollection(view session.View) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	walls := make(orb.MultiPoint, 0, len(view.Walls))
	for _, c := range view.Walls {
		walls = append(walls, point(c))
	}
	wallFeature := geojson.NewFeature(walls)
	wallFeature.Properties["kind"] = "walls"
	wallFeature.Properties["count"] = len(walls)
	fc.Append(wallFeature)

	if view.Found {
		line := make(orb.LineString, 0, len(view.Route)+1)
		for _, step := range view.Route {
			line = append(line, point(step.Cell))
		}
		line = append(line, point(view.Goal))
		routeFeature := geojson.NewFeature(line)
		routeFeature.Properties["kind"] = "route"
		routeFeature.Properties["algorithm"] = view.Algorithm.String()
		routeFeature.Properties["cost"] = view.Cost
		fc.Append(routeFeature)
	}

	cells := make([]gridpath.Coord, 0, len(view.Weights))
	for c := range view.Weights {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, gridpath.Coord.Compare)
	for _, c := range cells {
		weightFeature := geojson.NewFeature(point(c))
		weightFeature.Properties["kind"] = "weight"
		weightFeature.Properties["cost"] = view.Weights[c]
		fc.Append(weightFeature)
	}

	start := geojson.NewFeature(point(view.Start))
	start.Properties["kind"] = "start"
	fc.Append(start)
	goal := geojson.NewFeature(point(view.Goal))
	goal.Properties["kind"] = "goal"
	fc.Append(goal)
	return fc
}

// Marshal encodes the view as a GeoJSON FeatureCollection.
func Marshal(view session.View) ([]byte, error) {
	return FeatureCollection(view).MarshalJSON()
}
