package garland

import "errors"

var (
	// ErrInvalidViewport is returned for viewports with non-positive
	// dimensions or a hero region taller than the page.
	ErrInvalidViewport = errors.New("garland: invalid viewport")
	// ErrUnknownStyle is returned for style selectors that don't name a
	// known [Style]. There is no fallback style.
	ErrUnknownStyle = errors.New("garland: unknown style")
	// ErrUnknownStrategy is returned for sampling strategies that don't name
	// a known [Strategy].
	ErrUnknownStrategy = errors.New("garland: unknown sampling strategy")
	// ErrInvalidShape is returned when a fixed-shape style is requested but
	// the generator's [Shape] can't produce a curve.
	ErrInvalidShape = errors.New("garland: invalid fixed shape")
	// ErrInvalidTail is returned when the tail options have a non-positive
	// waypoint spacing.
	ErrInvalidTail = errors.New("garland: invalid tail options")
)
