// Package rescale defines the pan/zoom window used to pick the visible part
// of a video frame when building a thumbnail.
package rescale

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when a window is constructed with a zoom
// below 1 or an offset outside [0, 1].
var ErrInvalidParameter = errors.New("invalid rescale parameter")

// Window describes a pan/zoom window over a 16:9 frame. Offsets are
// normalized positions within the available slack, zoom is a magnification
// factor relative to the 1920x1080 output. A Window is immutable once built.
type Window struct {
	XOffset float64
	YOffset float64
	Zoom    float64
}

// New validates the parameters and returns a Window.
func New(xOffset, yOffset, zoom float64) (Window, error) {
	if zoom < 1 {
		return Window{}, fmt.Errorf("%w: zoom must be >= 1, got %g", ErrInvalidParameter, zoom)
	}
	if xOffset < 0 || xOffset > 1 {
		return Window{}, fmt.Errorf("%w: x offset must be in [0, 1], got %g", ErrInvalidParameter, xOffset)
	}
	if yOffset < 0 || yOffset > 1 {
		return Window{}, fmt.Errorf("%w: y offset must be in [0, 1], got %g", ErrInvalidParameter, yOffset)
	}
	return Window{XOffset: xOffset, YOffset: yOffset, Zoom: zoom}, nil
}

// Default returns the neutral window: no pan, no zoom.
func Default() Window {
	return Window{Zoom: 1}
}
