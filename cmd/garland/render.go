package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"iter"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"honnef.co/go/garland"
)

var (
	pngBackground = color.NRGBA{0xfd, 0xf8, 0xf0, 0xff}
	pngStroke     = color.NRGBA{0x2f, 0x4a, 0x3a, 0xff}
	pngAnchor     = color.NRGBA{0xc8, 0x55, 0x3d, 0xff}
)

func toFixed(p garland.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}

// addPath feeds path elements to a rasterx path consumer. A subpath that
// isn't explicitly closed is ended open.
func addPath(a rasterx.Adder, seq iter.Seq[garland.PathElement]) {
	open := false
	for el := range seq {
		switch el.Kind {
		case garland.MoveToKind:
			if open {
				a.Stop(false)
			}
			a.Start(toFixed(el.P0))
			open = true
		case garland.LineToKind:
			a.Line(toFixed(el.P0))
		case garland.CubicToKind:
			a.CubeBezier(toFixed(el.P0), toFixed(el.P1), toFixed(el.P2))
		case garland.ClosePathKind:
			a.Stop(true)
			open = false
		}
	}
	if open {
		a.Stop(false)
	}
}

// render rasterizes the viewport of a layout, scaled by scale. The curve is
// stroked with round caps and joins, anchors are filled discs.
func render(l garland.Layout, scale float64) *image.NRGBA {
	w := max(int(math.Ceil(l.Viewport.Width*scale)), 1)
	h := max(int(math.Ceil(l.Viewport.Height*scale)), 1)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(pngBackground), image.Point{}, draw.Src)

	aff := garland.Scale(scale, scale)
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())

	stroker := rasterx.NewDasher(w, h, scanner)
	stroke := fixed.Int26_6(strokeWidth * scale * 64)
	stroker.SetStroke(stroke, 4<<6, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	stroker.SetColor(pngStroke)
	addPath(stroker, l.Path.Curve.Transform(aff).Elements())
	stroker.Draw()

	scanner.Clear()
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(pngAnchor)
	for _, a := range l.Anchors {
		c := garland.Circle{Center: a.Point.Transform(aff), Radius: anchorRadius * scale}
		addPath(filler, c.Elements())
	}
	filler.Draw()
	return img
}

func writePNG(w io.Writer, l garland.Layout, scale float64) error {
	return png.Encode(w, render(l, scale))
}
