package renderer

import (
	"image"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestPixelStats_GetColor(t *testing.T) {
	var ps PixelStats
	if ps.GetColor() != (core.Vec3{}) {
		t.Errorf("Expected black with no samples, got %v", ps.GetColor())
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	ps.AddSample(core.NewVec3(0, 0, 4))

	expected := core.NewVec3(1.0/3, 1.0/3, 4.0/3)
	if !ps.GetColor().ApproxEquals(expected, 1e-12) {
		t.Errorf("Expected average %v, got %v", expected, ps.GetColor())
	}
	if ps.SampleCount != 3 {
		t.Errorf("Expected 3 samples, got %d", ps.SampleCount)
	}
}

func TestRenderStats_AddTile(t *testing.T) {
	stats := RenderStats{SamplesPerPixel: 10}
	stats.AddTile(TileStats{ID: 0, Bounds: image.Rect(0, 0, 4, 4), Pixels: 16, Samples: 160})
	stats.AddTile(TileStats{ID: 1, Bounds: image.Rect(4, 0, 6, 4), Pixels: 8, Samples: 80})

	if stats.TotalPixels != 24 || stats.TotalSamples != 240 {
		t.Errorf("Expected 24 pixels and 240 samples, got %d and %d", stats.TotalPixels, stats.TotalSamples)
	}
	if stats.AverageSamples() != 10 {
		t.Errorf("Expected 10 average samples, got %f", stats.AverageSamples())
	}
	if len(stats.Tiles) != 2 {
		t.Errorf("Expected 2 tiles, got %d", len(stats.Tiles))
	}
}

func TestRenderStats_EmptyIsSafe(t *testing.T) {
	var stats RenderStats
	if stats.AverageSamples() != 0 || stats.RaysPerSecond() != 0 {
		t.Errorf("Expected zero rates for empty stats, got %f and %f", stats.AverageSamples(), stats.RaysPerSecond())
	}
}

func TestRenderStats_Table(t *testing.T) {
	stats := RenderStats{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 4,
		MaxDepth:        50,
		Workers:         2,
		RenderTime:      2 * time.Second,
	}
	stats.AddTile(TileStats{Pixels: 20000, Samples: 80000})

	table := stats.Table()
	for _, want := range []string{"200x100", "Primary rays", "80000", "40000", "Render time", "2s"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected table to contain %q, got:\n%s", want, table)
		}
	}
}
