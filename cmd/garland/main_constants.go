package main

// Default command-line flag values
const (
	defaultWidth      = 1440.0 // desktop viewport
	defaultHeight     = 3000.0 // a few screens of content
	defaultHeroHeight = 800.0
	defaultStyle      = "swoop"
	defaultSampler    = "even"
	defaultAnchors    = 8
	defaultFormat     = "json"
	defaultPrecision  = 2
	defaultScale      = 0.5 // PNG pixels per viewport pixel
)

// Preview rendering
const (
	strokeWidth   = 4.0 // curve stroke in viewport pixels
	anchorRadius  = 9.0
	tickLength    = 24.0 // orientation marker length
	svgBackground = "#fdf8f0"
	svgStroke     = "#2f4a3a"
	svgAnchor     = "#c8553d"
)
