// Package frame turns an arbitrary video frame into the 1920x1080 window a
// thumbnail shows: normalize to 16:9, zoom, then pan within the slack.
package frame

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/juggertv/thumbgen/pkg/rescale"
)

const (
	// Output dimensions of the windowed frame.
	Width  = 1920
	Height = 1080

	// MarginX is the left column the compositor reserves for the overlay
	// band. The horizontal pan slack includes it so that an x offset of 1
	// reaches the frame's true right edge once composited.
	MarginX = 600
)

// Window selects the visible 1920x1080 sub-window of a frame according to
// the pan/zoom parameters. The frame is first cropped to 16:9 (excess on the
// right or bottom only, never padded), then scaled by the zoom factor. The
// computed window is clamped into the scaled frame, so the result is always
// fully covered by frame pixels.
func Window(frame image.Image, win rescale.Window) *image.NRGBA {
	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()

	var norm image.Image = frame
	if float64(w)/float64(h) > 16.0/9.0 {
		norm = imaging.Crop(frame, image.Rect(0, 0, h*16/9, h))
	} else {
		norm = imaging.Crop(frame, image.Rect(0, 0, w, w*9/16))
	}

	zw := int(Width * win.Zoom)
	zh := int(Height * win.Zoom)
	zoomed := imaging.Resize(norm, zw, zh, imaging.CatmullRom)

	xOff := clamp(int(win.XOffset*float64(zw+MarginX-Width)), 0, zw-Width)
	yOff := clamp(int(win.YOffset*float64(zh-Height)), 0, zh-Height)

	return imaging.Crop(zoomed, image.Rect(xOff, yOff, xOff+Width, yOff+Height))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
