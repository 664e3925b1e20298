/*
Package svg2png converts a directory of SVG files into PNG images at a
configurable resolution, one file at a time, aborting on the first failure.

The rendering itself is delegated to Inkscape, which is invoked once per file
with the drawing area as export area. An in-process renderer based on oksvg
is also provided for machines without Inkscape installed.

The package provides a command line interface. To check the supported flags type:

	$ svg2png --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/esimov/svg2png"
	)

	func main() {
		cfg, err := svg2png.LoadConfig(os.Getenv)
		if err != nil {
			log.Fatal(err)
		}
		inputs, err := svg2png.ListInputs(cfg.InputDir, cfg.Sort)
		if err != nil {
			log.Fatal(err)
		}
		b := &svg2png.Batch{Config: cfg, Renderer: svg2png.NewInkscape("")}
		if _, err := b.Run(context.Background(), inputs); err != nil {
			log.Fatal(err)
		}
	}
*/
package svg2png
