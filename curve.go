package garland

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Curve is a piecewise cubic curve: an ordered list of cubic Bézier segments
// where each segment starts at the end point of its predecessor.
//
// Curves are treated as immutable once built. Functions that derive a new
// curve from an existing one return a fresh slice.
type Curve []CubicBez

// Start returns the first point of the curve, or the zero point for an empty
// curve.
func (c Curve) Start() Point {
	if len(c) == 0 {
		return Point{}
	}
	return c[0].Start()
}

// End returns the last point of the curve, or the zero point for an empty
// curve.
func (c Curve) End() Point {
	if len(c) == 0 {
		return Point{}
	}
	return c[len(c)-1].End()
}

// Transform returns a new curve with an affine transformation applied to every
// segment.
func (c Curve) Transform(aff Affine) Curve {
	out := make(Curve, len(c))
	for i, seg := range c {
		out[i] = seg.Transform(aff)
	}
	return out
}

// Elements returns an iterator over the curve's path elements: one MoveTo,
// followed by one CubicTo per segment.
func (c Curve) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(c) == 0 {
			return
		}
		if !yield(MoveTo(c[0].P0)) {
			return
		}
		for _, seg := range c {
			if !yield(CubicTo(seg.P1, seg.P2, seg.P3)) {
				return
			}
		}
	}
}

// SVG converts the curve to a string of SVG path commands.
func (c Curve) SVG(opts SVGOptions) string {
	return SVG(c.Elements(), opts)
}

// WriteSVG writes the curve as SVG path commands to w.
func (c Curve) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, c.Elements(), opts)
}

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is a single drawing command. A valid sequence starts with a
// MoveTo.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write([]byte("Z"))
		default:
			panic("unreachable")
		}
	}
	return err
}
