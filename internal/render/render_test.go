package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/config"
	"github.com/pdrpinto/gridpath/internal/session"
)

func testView() session.View {
	return session.View{
		Width:     4,
		Height:    3,
		Walls:     []gridpath.Coord{{X: 2, Y: 0}},
		Weights:   map[gridpath.Coord]int{{X: 0, Y: 2}: 15},
		Start:     gridpath.Coord{X: 0, Y: 0},
		Goal:      gridpath.Coord{X: 3, Y: 2},
		Algorithm: gridpath.AStar,
		Explored: []gridpath.Coord{
			{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 2},
		},
		Route: []session.Step{
			{Cell: gridpath.Coord{X: 0, Y: 0}, Direction: gridpath.Coord{X: 1, Y: 1}},
			{Cell: gridpath.Coord{X: 1, Y: 1}, Direction: gridpath.Coord{X: 1, Y: 0}},
			{Cell: gridpath.Coord{X: 2, Y: 1}, Direction: gridpath.Coord{X: 1, Y: 1}},
		},
		Found: true,
		Cost:  38,
	}
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.TileSize = 40
	return cfg
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRender_Layers(t *testing.T) {
	cfg := testConfig()
	img, err := Render(testView(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(160, 120) {
		t.Fatalf("image size = %v, want 160x120", got)
	}

	palette := cfg.Palette
	tests := []struct {
		name string
		x, y int
		want config.RGB
	}{
		{"start marker", 20, 20, palette.Start},
		{"unexplored floor", 60, 20, palette.Background},
		{"wall", 100, 20, palette.Wall},
		{"explored cell", 20, 60, palette.Explored},
		{"route arrow", 60, 60, palette.Path},
		{"weighted tile", 20, 100, palette.Weight},
	}
	for _, tt := range tests {
		if got := rgbaAt(img, tt.x, tt.y); got != tt.want.Color() {
			t.Errorf("%s at (%d, %d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want.Color())
		}
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, testView(), testConfig()); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(160, 120) {
		t.Errorf("decoded size = %v", got)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	if err := SavePNG(path, testView(), testConfig()); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty PNG written")
	}
}

func TestRender_InvalidTileSize(t *testing.T) {
	cfg := testConfig()
	cfg.TileSize = 0
	if _, err := Render(testView(), cfg); err == nil {
		t.Error("Render accepted a zero tile size")
	}
}
