// Package render draws a session view as a raster image.
package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/config"
	"github.com/pdrpinto/gridpath/internal/session"
)

var errTileSize = errors.New("tile size must be positive")

// Render draws explored cells, terrain, walls, grid lines, the route arrows,
// the endpoints and a caption.
func Render(view session.View, cfg config.Config) (image.Image, error) {
	dc, err := draw(view, cfg)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG renders the view and writes it to w as PNG.
func EncodePNG(w io.Writer, view session.View, cfg config.Config) error {
	dc, err := draw(view, cfg)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders the view into a PNG file.
func SavePNG(path string, view session.View, cfg config.Config) error {
	dc, err := draw(view, cfg)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func draw(view session.View, cfg config.Config) (*gg.Context, error) {
	if cfg.TileSize <= 0 {
		return nil, errTileSize
	}
	tile := float64(cfg.TileSize)
	palette := cfg.Palette
	width, height := view.Width*cfg.TileSize, view.Height*cfg.TileSize

	dc := gg.NewContext(width, height)
	dc.SetColor(palette.Background.Color())
	dc.Clear()

	dc.SetColor(palette.Explored.Color())
	for _, c := range view.Explored {
		dc.DrawRectangle(float64(c.X)*tile, float64(c.Y)*tile, tile, tile)
	}
	dc.Fill()

	dc.SetColor(palette.Weight.Color())
	for c := range view.Weights {
		dc.DrawRectangle(float64(c.X)*tile+3, float64(c.Y)*tile+3, tile-6, tile-6)
	}
	dc.Fill()

	dc.SetColor(palette.Wall.Color())
	for _, c := range view.Walls {
		dc.DrawRectangle(float64(c.X)*tile, float64(c.Y)*tile, tile, tile)
	}
	dc.Fill()

	dc.SetColor(palette.GridLines.Color())
	dc.SetLineWidth(1)
	for x := 0; x <= width; x += cfg.TileSize {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
	}
	for y := 0; y <= height; y += cfg.TileSize {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
	}
	dc.Stroke()

	dc.SetColor(palette.Path.Color())
	for _, step := range view.Route {
		drawArrow(dc, step.Cell, step.Direction, tile)
	}

	drawMarker(dc, view.Start, tile, palette.Start)
	drawMarker(dc, view.Goal, tile, palette.Goal)

	dc.SetColor(palette.Text.Color())
	dc.DrawStringAnchored(view.Algorithm.String(), float64(width)-10, float64(height)-10, 1, 0)
	caption := "No path"
	if view.Found {
		caption = fmt.Sprintf("Path length: %d", view.Cost)
	}
	dc.DrawStringAnchored(caption, float64(width)-10, float64(height)-30, 1, 0)

	return dc, nil
}

// drawArrow draws an arrow across the tile at cell pointing along dir.
func drawArrow(dc *gg.Context, cell, dir gridpath.Coord, tile float64) {
	cx, cy := center(cell, tile)
	r := tile * 0.35
	head := tile * 0.15

	dc.Push()
	dc.Translate(cx, cy)
	dc.Rotate(math.Atan2(float64(dir.Y), float64(dir.X)))
	dc.SetLineWidth(3)
	dc.DrawLine(-r, 0, r, 0)
	dc.Stroke()
	dc.MoveTo(r, 0)
	dc.LineTo(r-head, -head)
	dc.LineTo(r-head, head)
	dc.ClosePath()
	dc.Fill()
	dc.Pop()
}

func drawMarker(dc *gg.Context, cell gridpath.Coord, tile float64, colour config.RGB) {
	cx, cy := center(cell, tile)
	dc.SetColor(colour.Color())
	dc.DrawCircle(cx, cy, tile/3)
	dc.Fill()
}

func center(cell gridpath.Coord, tile float64) (float64, float64) {
	return float64(cell.X)*tile + tile/2, float64(cell.Y)*tile + tile/2
}
