// Package garland generates decorative curves that meander down a web page and
// finds the places along them where ornaments can hang.
//
// # Curves
//
// A [Curve] is a sequence of cubic Béziers joined end to end. Curves are built
// by fitting a Catmull-Rom spline through a handful of waypoints (see
// [CatmullRom]), which produces a curve that passes through every waypoint and
// turns smoothly at each of them.
//
// # Styles
//
// A [Generator] turns a [Viewport] into a [Path] in one of three styles:
//
//   - [StyleSwoop] drapes the curve between alternating high pins and low dips,
//     with the number of pins chosen by viewport width.
//   - [StyleSwitchback] zigzags across the hero region in full-width passes.
//   - [StyleFixedShape] rescales a designer-authored [Shape] to the viewport.
//
// The hero region is the top HeroHeight pixels of the page. If enough of the
// page remains below it, the curve continues as a tail that alternates between
// the two sides of the page until it reaches the bottom.
//
// All constants of the styles live in the option structs of [Generator];
// [DefaultGenerator] returns the stock configuration.
//
// # Arc length
//
// Anchors are positioned by distance along the curve, not by curve parameter.
// An [Evaluator] builds an arc-length table for a curve once and then answers
// position and direction queries for any distance.
//
// # Sampling
//
// A [Sampler] picks anchors on a curve. The package provides samplers for even
// spacing ([EvenSampler]), the bottoms of the swoops ([ValleySampler]), the
// rows of a zigzag ([RowScatterSampler]), upward bumps ([NobSampler]) and a fan
// of anchors around the first valley ([FanSampler]).
//
// All samplers return at most the requested number of anchors, ordered by
// distance along the curve. A curve with fewer features than requested yields
// fewer anchors.
//
// [Generator.Layout] combines generation and sampling in a single call.
//
// # Coordinates
//
// All coordinates are in viewport pixels, with the origin at the top left of
// the page and y growing downwards. Angles are in degrees, measured in that
// coordinate system, so that 90° points down the page.
package garland
