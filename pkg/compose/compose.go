// Package compose assembles the final thumbnail from its layers: windowed
// frame, darkening wash, team overlay and title plate.
package compose

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/juggertv/thumbgen/pkg/emblem"
	"github.com/juggertv/thumbgen/pkg/frame"
	"github.com/juggertv/thumbgen/pkg/rescale"
	"github.com/juggertv/thumbgen/pkg/shadow"
)

const (
	// Width and Height of the produced thumbnail.
	Width  = 1920
	Height = 1080

	// washAlpha darkens the frame so text and emblems stay legible on it.
	washAlpha = 40

	// overlaySpread is the shadow blur of the enlarged overlay layer.
	overlaySpread = 20.0

	plateMarginRight = 80
	plateY           = 600
)

// Request bundles the inputs of a single thumbnail composition. It is
// consumed synchronously; none of the images are retained or mutated.
type Request struct {
	Frame          image.Image
	Team1          emblem.Emblem
	Team2          emblem.Emblem
	TournamentName string
	AccentColor    color.NRGBA
	PlateColor     color.NRGBA
	PlateTextColor color.NRGBA
	Window         rescale.Window
}

// DefaultPlatePosition places the title plate towards the top right: inset
// by three quarters of its own width plus a fixed margin, at a fixed height.
func DefaultPlatePosition(plate image.Image) image.Point {
	return image.Pt(Width-plate.Bounds().Dx()*3/4-plateMarginRight, plateY)
}

// Assemble layers the thumbnail bottom to top: windowed frame at the fixed
// horizontal margin, a uniform black wash, the 2x-enlarged overlay shadowed
// so its band covers the canvas, and the title plate at platePos. The result
// is 1920x1080 with the alpha channel flattened.
func Assemble(src image.Image, overlay image.Image, plate image.Image, platePos image.Point, win rescale.Window) *image.NRGBA {
	canvas := imaging.New(Width, Height, color.NRGBA{250, 250, 250, 0})

	windowed := frame.Window(src, win)
	canvas = imaging.Paste(canvas, windowed, image.Pt(frame.MarginX, 0))

	wash := imaging.New(Width, Height, color.NRGBA{0, 0, 0, washAlpha})
	shadow.MaskedPaste(canvas, wash, image.Point{}, shadow.Alpha(wash))

	ob := overlay.Bounds()
	big := imaging.Resize(overlay, ob.Dx()*2, ob.Dy()*2, imaging.CatmullRom)
	bb := big.Bounds()
	// The enlarged overlay is shadow-pasted off-center; its half-scale copy
	// lands back at native size covering the canvas from the origin.
	shadow.Paste(canvas, big, image.Pt(-bb.Dx()/4, -bb.Dy()/4), overlaySpread)

	shadow.Paste(canvas, plate, platePos, shadow.DefaultSpread)

	return flatten(canvas)
}

// flatten drops the alpha channel, keeping the composed color values.
func flatten(img *image.NRGBA) *image.NRGBA {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}
