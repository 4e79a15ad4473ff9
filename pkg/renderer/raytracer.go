package renderer

import (
	"context"
	"image"
	"runtime"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width
	Height          int   // Image height
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Seed for the render's random stream
	Workers         int   // 1 renders sequentially, 0 uses every CPU
	TileSize        int   // Tile edge in pixels for parallel renders
}

// DefaultSamplingConfig returns the reference renderer settings
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
		Workers:         1,
		TileSize:        32,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() *geometry.World
	GetBackground() integrator.Background
}

// Raytracer runs the per-pixel sampling loop over a scene
type Raytracer struct {
	scene      Scene
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene Scene, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}

	integratorConfig := integrator.DefaultConfig()
	integratorConfig.MaxDepth = config.MaxDepth

	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(integratorConfig, scene.GetBackground()),
		logger:     logger,
	}
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Workers returns the effective number of goroutines a Render call will use
func (rt *Raytracer) Workers() int {
	if rt.config.Workers <= 0 {
		return runtime.NumCPU()
	}
	return rt.config.Workers
}

// Render renders the full frame. With Workers set to 1 the frame is traced in reference order
// from a single stream seeded with Seed; otherwise tiles are traced in parallel with per-tile
// streams. Cancelling ctx stops the render within a row and returns ctx.Err().
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	start := time.Now()
	workers := rt.Workers()

	rt.logger.Infof("rendering %dx%d at %d spp (depth %d, %d workers)",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth, workers)

	var (
		fb    *Framebuffer
		stats RenderStats
		err   error
	)
	// The configured value picks the path so Workers=0 stays tiled on a single CPU
	if rt.config.Workers == 1 {
		fb, stats, err = rt.RenderPass(ctx, core.NewSeededSampler(rt.config.Seed))
	} else {
		fb, stats, err = NewTileRenderer(rt, workers).Render(ctx)
	}
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats.Workers = workers
	stats.RenderTime = time.Since(start)
	rt.logger.Infof("frame completed in %v", stats.RenderTime)

	return fb, stats, nil
}

// RenderPass traces every pixel sequentially with the given sampler
func (rt *Raytracer) RenderPass(ctx context.Context, sampler core.Sampler) (*Framebuffer, RenderStats, error) {
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	stats := rt.newStats()

	bounds := image.Rect(0, 0, rt.config.Width, rt.config.Height)
	stats.AddTile(rt.RenderBounds(ctx, bounds, fb, sampler))

	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}
	return fb, stats, nil
}

// RenderBounds renders the pixels inside bounds into fb.
// Image rows are visited top to bottom, so camera rows j run from high to low, and pixels
// within a row left to right. ctx is checked before each row; a cancelled render leaves the
// remaining rows black.
func (rt *Raytracer) RenderBounds(ctx context.Context, bounds image.Rectangle, fb *Framebuffer, sampler core.Sampler) TileStats {
	start := time.Now()
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()

	stats := TileStats{Bounds: bounds}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if ctx.Err() != nil {
			break
		}
		j := rt.config.Height - 1 - y
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			var ps PixelStats
			rt.samplePixel(camera, world, i, j, &ps, sampler)
			fb.Set(i, y, ps.GetColor())

			stats.Pixels++
			stats.Samples += ps.SampleCount
		}
	}

	stats.RenderTime = time.Since(start)
	return stats
}

// samplePixel accumulates SamplesPerPixel jittered camera rays for pixel (i, j)
func (rt *Raytracer) samplePixel(camera *Camera, world *geometry.World, i, j int, ps *PixelStats, sampler core.Sampler) {
	width := float64(rt.config.Width)
	height := float64(rt.config.Height)

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Jitter in [0,1) within the pixel
		s := (float64(i) + sampler.Get1D()) / width
		t := (float64(j) + sampler.Get1D()) / height

		ray := camera.GetRay(s, t, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, world, sampler, 0))
	}
}

func (rt *Raytracer) newStats() RenderStats {
	return RenderStats{
		Width:           rt.config.Width,
		Height:          rt.config.Height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
	}
}

type discardLogger struct{}

func (discardLogger) Debugf(string, ...interface{})   {}
func (discardLogger) Infof(string, ...interface{})    {}
func (discardLogger) Noticef(string, ...interface{})  {}
func (discardLogger) Warningf(string, ...interface{}) {}
