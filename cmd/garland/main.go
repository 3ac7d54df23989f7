// Command garland generates a decorative curve for a viewport and prints its
// path and anchors.
//
// The output is either JSON for consumption by a page renderer, or a preview
// image as an SVG document or PNG. Generator options can be overridden with a
// YAML file passed via -config; see [garland.Generator] for the keys.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/garland"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "garland: %v\n", err)
		os.Exit(2)
	}
}

func run(stdout, stderr io.Writer, args []string) (err error) {
	fs := flag.NewFlagSet("garland", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		width     = fs.Float64("width", defaultWidth, "viewport width in pixels")
		height    = fs.Float64("height", defaultHeight, "page height in pixels")
		hero      = fs.Float64("hero", defaultHeroHeight, "hero region height in pixels")
		styleName = fs.String("style", defaultStyle, "curve style: swoop, switchback, fixed-shape")
		sampler   = fs.String("sampler", defaultSampler, "anchor strategy: even, hero-even, valley, row-scatter, nob, fan")
		n         = fs.Int("n", defaultAnchors, "number of anchors to request")
		format    = fs.String("format", defaultFormat, "output format: json, svg, png")
		output    = fs.String("o", "", "output file (default standard output)")
		cfgPath   = fs.String("config", "", "YAML file overriding generator options")
		precision = fs.Int("precision", defaultPrecision, "decimal places in json and svg output")
		scale     = fs.Float64("scale", defaultScale, "png pixels per viewport pixel")
		verbose   = fs.Bool("v", false, "log debug output to standard error")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	if *verbose {
		garland.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer garland.SetLogger(nil)
	}

	style, err := garland.ParseStyle(*styleName)
	if err != nil {
		return err
	}
	strategy, err := garland.ParseStrategy(*sampler)
	if err != nil {
		return err
	}
	write, err := writer(*format, *precision, *scale)
	if err != nil {
		return err
	}
	g, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}

	vp := garland.Viewport{Width: *width, Height: *height, HeroHeight: *hero}
	l, err := g.Layout(vp, style, strategy, *n)
	if err != nil {
		return err
	}

	w := stdout
	if *output != "" {
		f, ferr := os.Create(*output)
		if ferr != nil {
			return fmt.Errorf("failed to create output file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	return write(w, l)
}

// writer returns the output function for the named format.
func writer(format string, prec int, scale float64) (func(io.Writer, garland.Layout) error, error) {
	switch format {
	case "json":
		return func(w io.Writer, l garland.Layout) error { return writeJSON(w, l, prec) }, nil
	case "svg":
		return func(w io.Writer, l garland.Layout) error { return writeSVG(w, l, prec) }, nil
	case "png":
		if !(scale > 0) {
			return nil, errors.New("scale must be positive")
		}
		return func(w io.Writer, l garland.Layout) error { return writePNG(w, l, scale) }, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
