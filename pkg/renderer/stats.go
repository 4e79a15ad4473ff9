package renderer

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/olekukonko/tablewriter"
)

// TileStats describes the work done on one rectangular region
type TileStats struct {
	ID         int             // Tile identifier, 0 for a sequential render
	Bounds     image.Rectangle // Pixel bounds in image coordinates
	Pixels     int             // Pixels rendered
	Samples    int             // Primary rays traced
	RenderTime time.Duration   // Wall time spent on the tile
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of primary rays traced
	SamplesPerPixel int           // Configured samples per pixel
	MaxDepth        int           // Configured bounce cutoff
	Workers         int           // Goroutines used, 1 for the sequential path
	Tiles           []TileStats   // Per tile breakdown in completion order
	RenderTime      time.Duration // Wall time for the whole frame
}

// AddTile folds a finished tile into the totals
func (s *RenderStats) AddTile(tile TileStats) {
	s.TotalPixels += tile.Pixels
	s.TotalSamples += tile.Samples
	s.Tiles = append(s.Tiles, tile)
}

// AverageSamples returns the mean number of primary rays per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// RaysPerSecond returns primary ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.RenderTime.Seconds()
}

// Table builds a tabular summary of the frame suitable for logging
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)})
	table.Append([]string{"Pixels", fmt.Sprintf("%d", s.TotalPixels)})
	table.Append([]string{"Samples per pixel", fmt.Sprintf("%d", s.SamplesPerPixel)})
	table.Append([]string{"Primary rays", fmt.Sprintf("%d", s.TotalSamples)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", s.Workers)})
	table.Append([]string{"Tiles", fmt.Sprintf("%d", len(s.Tiles))})
	table.Append([]string{"Rays/sec", fmt.Sprintf("%.0f", s.RaysPerSecond())})
	table.SetFooter([]string{"Render time", s.RenderTime.String()})

	table.Render()
	return buf.String()
}

// PixelStats accumulates radiance samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // Sum of linear samples
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
