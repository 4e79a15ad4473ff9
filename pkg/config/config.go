package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

var (
	ErrInvalidSize        = errors.New("width and height must be positive")
	ErrInvalidSamples     = errors.New("samples per pixel must be positive")
	ErrInvalidDepth       = errors.New("max depth must be positive")
	ErrInvalidSupersample = errors.New("supersample factor must be at least 1")
	ErrInvalidTileSize    = errors.New("tile size must be positive")
	ErrInvalidWorkers     = errors.New("worker count must not be negative")
)

// Config holds the render settings.
type Config struct {
	// Output image
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Output string `json:"output"` // Empty writes PPM to stdout

	// Sampling
	SamplesPerPixel int   `json:"samples_per_pixel"`
	MaxDepth        int   `json:"max_depth"`
	Seed            int64 `json:"seed"`
	Supersample     int   `json:"supersample"`

	// Parallelism
	Workers  int `json:"workers"` // 1 renders sequentially, 0 uses every CPU
	TileSize int `json:"tile_size"`

	// Scene ID or path to a JSON scene file
	Scene    string `json:"scene"`
	SceneDir string `json:"scene_dir"`
}

// Default returns the reference settings: a 200x100 image at 100 samples per pixel
func Default() Config {
	sampling := renderer.DefaultSamplingConfig()
	return Config{
		Width:           sampling.Width,
		Height:          sampling.Height,
		SamplesPerPixel: sampling.SamplesPerPixel,
		MaxDepth:        sampling.MaxDepth,
		Seed:            sampling.Seed,
		Supersample:     1,
		Workers:         sampling.Workers,
		TileSize:        sampling.TileSize,
		Scene:           "default",
		SceneDir:        "scenes",
	}
}

// Load reads a JSON config file. Fields not set in the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the config untouched; Seed and Workers are pointers since zero is meaningful.
type Flags struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Supersample     int
	Seed            *int64
	Workers         *int
	Scene           string
	SceneDir        string
	Output          string
}

// Resolve applies CLI flags on top of the config
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.SamplesPerPixel > 0 {
		c.SamplesPerPixel = flags.SamplesPerPixel
	}
	if flags.MaxDepth > 0 {
		c.MaxDepth = flags.MaxDepth
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Seed != nil {
		c.Seed = *flags.Seed
	}
	if flags.Workers != nil {
		c.Workers = *flags.Workers
	}
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.SceneDir != "" {
		c.SceneDir = flags.SceneDir
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidSamples, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidDepth, c.MaxDepth)
	case c.Supersample < 1:
		return fmt.Errorf("%w: %d", ErrInvalidSupersample, c.Supersample)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidTileSize, c.TileSize)
	case c.Workers < 0:
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// AspectRatio is the output width over height, passed to the scene camera
func (c Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// SamplingConfig returns the renderer settings, scaling the resolution by the supersample factor
func (c Config) SamplingConfig() renderer.SamplingConfig {
	scale := c.Supersample
	if scale < 1 {
		scale = 1
	}
	return renderer.SamplingConfig{
		Width:           c.Width * scale,
		Height:          c.Height * scale,
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
		Seed:            c.Seed,
		Workers:         c.Workers,
		TileSize:        c.TileSize,
	}
}
