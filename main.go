package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "weekend-raytracer"
	app.Usage = "render sphere scenes with a recursive Monte Carlo path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, notice, warning or error (overrides -v and -vv)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene",
			Description: `
Render a built-in scene, a scene file from the scenes directory ("file:<name>")
or a JSON scene file given by path.

Without --out the image is written to stdout as plain text PPM. Otherwise the
format follows the file extension: .ppm, .png, .webp or .tga.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Usage: "scene ID or path to a .json scene file",
				},
				cli.StringFlag{
					Name:  "config, c",
					Usage: "JSON render config; flags override its values",
				},
				cli.StringFlag{
					Name:  "scene-dir",
					Usage: "directory searched for file: scenes",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width (default 200)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "image height (default 100)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (default 100)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum bounce depth (default 50)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed for sampling and randomized scenes (default 42)",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Usage: "parallel tile workers; 1 renders sequentially, 0 uses every CPU",
				},
				cli.IntFlag{
					Name:  "supersample",
					Usage: "render at this multiple of the output size and downscale",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output image filename",
				},
			},
			Action: RenderScene,
		},
		{
			Name:  "list-scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene-dir",
					Value: "scenes",
					Usage: "directory to scan for .json scene files",
				},
			},
			Action: ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
