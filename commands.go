package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/df07/go-weekend-raytracer/pkg/config"
	"github.com/df07/go-weekend-raytracer/pkg/imageio"
	"github.com/df07/go-weekend-raytracer/pkg/log"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

func setupLogging(ctx *cli.Context) error {
	level, err := logLevel(ctx.GlobalString("log-level"), ctx.GlobalBool("v"), ctx.GlobalBool("vv"))
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

// logLevel resolves the verbosity flags. An explicit --log-level wins over -v and -vv.
func logLevel(name string, verbose, veryVerbose bool) (log.Level, error) {
	if name != "" {
		return log.ParseLevel(name)
	}
	if veryVerbose {
		return log.Debug, nil
	}
	if verbose {
		return log.Info, nil
	}
	return log.Notice, nil
}

// RenderScene renders a single image.
func RenderScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	cfg, err := loadConfig(ctx.String("config"), flagsFromContext(ctx))
	if err != nil {
		return err
	}

	sc, err := createScene(cfg)
	if err != nil {
		return err
	}
	logger.Infof("loaded scene %q with %d spheres", sc.Name, sc.GetPrimitiveCount())

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rt := renderer.NewRaytracer(sc, cfg.SamplingConfig(), log.New("renderer"))
	fb, stats, err := rt.Render(renderCtx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	logger.Noticef("render statistics\n%s", stats.Table())

	if cfg.Output == "" {
		return imageio.Write(os.Stdout, fb, imageio.FormatPPM, cfg.Supersample)
	}

	if err := imageio.Save(cfg.Output, fb, cfg.Supersample); err != nil {
		return err
	}
	logger.Noticef("saved %s", cfg.Output)
	return nil
}

func flagsFromContext(ctx *cli.Context) config.Flags {
	flags := config.Flags{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		Supersample:     ctx.Int("supersample"),
		Scene:           ctx.String("scene"),
		SceneDir:        ctx.String("scene-dir"),
		Output:          ctx.String("out"),
	}
	if ctx.IsSet("seed") {
		seed := ctx.Int64("seed")
		flags.Seed = &seed
	}
	if ctx.IsSet("workers") {
		workers := ctx.Int("workers")
		flags.Workers = &workers
	}
	return flags
}

// loadConfig starts from the defaults or a config file, applies flags and validates
func loadConfig(path string, flags config.Flags) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// createScene loads the configured scene with the camera aspect matched to the output size
func createScene(cfg config.Config) (*scene.Scene, error) {
	return scene.Load(cfg.Scene, cfg.Seed, cfg.SceneDir, renderer.CameraConfig{
		AspectRatio: cfg.AspectRatio(),
	})
}

// ListScenes prints the available scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	catalog, err := scene.ListAllScenes(ctx.String("scene-dir"))
	if err != nil {
		return err
	}

	return writeCatalog(os.Stdout, catalog)
}

func writeCatalog(w io.Writer, catalog scene.Catalog) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Group", "Description"})
	for _, group := range catalog.Groups {
		for _, info := range group.Scenes {
			table.Append([]string{info.ID, info.Name, group.Name, info.Description})
		}
	}
	table.Render()

	_, err := w.Write(buf.Bytes())
	return err
}
