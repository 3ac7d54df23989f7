package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"honnef.co/go/garland"
)

type jsonAnchor struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Distance float64  `json:"distance"`
	Tangent  *float64 `json:"tangent,omitempty"`
	Fan      *float64 `json:"fan,omitempty"`
}

type jsonLayout struct {
	Path       string       `json:"path"`
	Length     float64      `json:"length"`
	HeroLength float64      `json:"hero_length"`
	Anchors    []jsonAnchor `json:"anchors"`
}

// round rounds v to prec decimal places. A non-positive prec leaves v alone.
func round(v float64, prec int) float64 {
	if prec <= 0 {
		return v
	}
	f := math.Pow10(prec)
	return math.Round(v*f) / f
}

func writeJSON(w io.Writer, l garland.Layout, prec int) error {
	out := jsonLayout{
		Path:       l.SVG(garland.SVGOptions{MaxPrecision: prec}),
		Length:     round(l.Length, prec),
		HeroLength: round(l.HeroLength, prec),
		Anchors:    make([]jsonAnchor, len(l.Anchors)),
	}
	for i, a := range l.Anchors {
		ja := jsonAnchor{
			X:        round(a.X, prec),
			Y:        round(a.Y, prec),
			Distance: round(a.Distance, prec),
		}
		if a.Flags&garland.HasTangent != 0 {
			v := round(a.Tangent, prec)
			ja.Tangent = &v
		}
		if a.Flags&garland.HasFan != 0 {
			v := round(a.Fan, prec)
			ja.Fan = &v
		}
		out.Anchors[i] = ja
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeSVG writes a standalone SVG document showing the curve and its anchors.
// Oriented anchors get a tick along their tangent or fan direction.
func writeSVG(w io.Writer, l garland.Layout, prec int) error {
	num := func(v float64) string {
		return strconv.FormatFloat(round(v, prec), 'f', -1, 64)
	}
	box := l.Bounds().Inflate(strokeWidth, strokeWidth)
	for _, a := range l.Anchors {
		box = box.Union(garland.Circle{Center: a.Point, Radius: anchorRadius}.BoundingBox())
	}
	box = box.Expand()

	var err error
	printf := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}
	printf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		num(box.X0), num(box.Y0), num(box.Width()), num(box.Height()), num(box.Width()), num(box.Height()))
	printf(`<rect x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
		num(l.Viewport.Width), num(l.Viewport.Height), svgBackground)
	printf(`<line x1="0" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-dasharray="8 8" stroke-opacity="0.4"/>`+"\n",
		num(l.Viewport.HeroHeight), num(l.Viewport.Width), num(l.Viewport.HeroHeight), svgStroke)
	printf(`<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`+"\n",
		l.SVG(garland.SVGOptions{MaxPrecision: prec}), svgStroke, num(strokeWidth))
	for _, a := range l.Anchors {
		printf(`<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			num(a.X), num(a.Y), num(anchorRadius), svgAnchor)
		if angle, ok := orientation(a); ok {
			end := a.Point.Translate(garland.Vec(math.Cos(angle), math.Sin(angle)).Mul(tickLength))
			printf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2"/>`+"\n",
				num(a.X), num(a.Y), num(end.X), num(end.Y), svgAnchor)
		}
	}
	printf("</svg>\n")
	return err
}

// orientation returns the direction an anchor points in, in radians. Fan
// anchors hang downwards, rotated by their fan angle.
func orientation(a garland.Anchor) (float64, bool) {
	switch {
	case a.Flags&garland.HasFan != 0:
		return (90 - a.Fan) * math.Pi / 180, true
	case a.Flags&garland.HasTangent != 0:
		return a.Tangent * math.Pi / 180, true
	default:
		return 0, false
	}
}
