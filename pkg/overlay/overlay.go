// Package overlay builds the team panel of a thumbnail: a rotated color band
// with both team emblems, each under a soft drop shadow.
package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/juggertv/thumbgen/pkg/shadow"
)

// ErrUnsupportedBackground is returned when the overlay background is not a
// solid color.
var ErrUnsupportedBackground = errors.New("unsupported overlay background")

// Background is the background specification of the overlay panel.
type Background interface {
	isBackground()
}

// SolidColor fills the band with a single color. It is the only supported
// background form.
type SolidColor struct {
	Color color.NRGBA
}

func (SolidColor) isBackground() {}

// Pattern is a pre-built background image. Building an overlay from one is
// not implemented.
type Pattern struct {
	Image image.Image
}

func (Pattern) isBackground() {}

const (
	// Width and Height of the overlay canvas, matching the thumbnail.
	Width  = 1920
	Height = 1080

	panelWidth  = 1700
	panelHeight = 1500
	rotation    = 10.0

	emblemBox = 850
)

// Emblem anchor points are the visual centers of the two logos, derived from
// quarters of the canvas height.
var (
	anchor1 = image.Pt(300, Height/4)
	anchor2 = image.Pt(450, 3*Height/4)
)

// Build composes the overlay for two team emblems on a colored band. The
// returned image is always 1920x1080 RGBA over a transparent base.
func Build(emblem1, emblem2 image.Image, bg Background) (*image.NRGBA, error) {
	solid, ok := bg.(SolidColor)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedBackground, bg)
	}

	// The fill rectangle overshoots the panel on every side so the band
	// still covers its corner of the canvas after rotation.
	panel := imaging.New(panelWidth, panelHeight, color.NRGBA{})
	fillRect(panel, image.Rect(0, -100, 1000+panelWidth, 101+panelHeight), solid.Color)
	rotated := imaging.Rotate(panel, rotation, color.NRGBA{})

	out := imaging.New(Width, Height, color.NRGBA{250, 250, 250, 0})
	// Only the lower-right corner of the rotated panel lands on the canvas,
	// producing the diagonal band.
	out = imaging.Paste(out, rotated, image.Pt(-1100, -300))

	e1 := fitEmblem(emblem1)
	e2 := fitEmblem(emblem2)
	shadow.Paste(out, e1, recenter(e1, anchor1), shadow.DefaultSpread)
	shadow.Paste(out, e2, recenter(e2, anchor2), shadow.DefaultSpread)

	return out, nil
}

// fitEmblem fits an emblem within the 850x850 box: resize to width 850 first,
// then re-resize by height if the result is too tall. The first pass changes
// both dimensions, so the height constraint is checked after it.
func fitEmblem(img image.Image) *image.NRGBA {
	out := imaging.Resize(img, emblemBox, 0, imaging.CatmullRom)
	if out.Bounds().Dy() > emblemBox {
		out = imaging.Resize(out, 0, emblemBox, imaging.CatmullRom)
	}
	return out
}

// recenter converts an anchor point to the top-left paste position that puts
// the image's center on the anchor.
func recenter(img image.Image, anchor image.Point) image.Point {
	b := img.Bounds()
	return image.Pt(anchor.X-b.Dx()/2, anchor.Y-b.Dy()/2)
}

// fillRect draws a solid rectangle, clipped to the image bounds.
func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
}
