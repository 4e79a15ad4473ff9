package renderer

import (
	"context"
	"fmt"
)

// TileRenderer splits a frame into tiles and renders them on a worker pool.
// Output is deterministic for a given seed and tile size regardless of worker count.
type TileRenderer struct {
	raytracer *Raytracer
	workers   int
}

// NewTileRenderer creates a tile renderer over raytracer using the given number of workers
func NewTileRenderer(raytracer *Raytracer, workers int) *TileRenderer {
	return &TileRenderer{
		raytracer: raytracer,
		workers:   workers,
	}
}

// Render traces every tile and returns the assembled frame.
// On cancellation workers abandon their current tile at the next row and skip the rest.
func (tr *TileRenderer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	config := tr.raytracer.Config()

	tileSize := config.TileSize
	if tileSize <= 0 {
		tileSize = DefaultSamplingConfig().TileSize
	}

	tiles := NewTileGrid(config.Width, config.Height, tileSize, config.Seed)
	fb := NewFramebuffer(config.Width, config.Height)
	stats := tr.raytracer.newStats()

	pool := NewWorkerPool(tr.raytracer, tr.workers, len(tiles))
	pool.Start(ctx)
	defer pool.Stop()

	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:        tile,
			TaskID:      taskID,
			Framebuffer: fb,
		})
	}

	tr.raytracer.logger.Debugf("submitted %d tiles of %dpx to %d workers", len(tiles), tileSize, pool.GetNumWorkers())

	for i := 0; i < len(tiles); i++ {
		select {
		case <-ctx.Done():
			return nil, RenderStats{}, ctx.Err()
		case result, ok := <-pool.Results():
			if !ok {
				return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
			}
			if result.Skipped {
				return nil, RenderStats{}, ctx.Err()
			}
			stats.AddTile(result.Stats)
		}
	}

	// A tile may have finished early after a cancel mid-row
	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	return fb, stats, nil
}
