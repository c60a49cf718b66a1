// Package shadow implements soft drop shadows for thumbnail layers.
//
// A shadow paste renders a half-scale copy of the source on an opaque black
// canvas, builds a grayscale mask from the copy's alpha channel, blurs the
// mask into a penumbra and re-stamps the sharp silhouette on top, then
// blends the canvas onto the destination through that mask. The half-scale
// copy embedded in the canvas is the visible content; the black around it
// only shows through the blurred part of the mask.
package shadow

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// DefaultSpread is the Gaussian blur radius of the shadow penumbra.
const DefaultSpread = 10.0

// Paste blends src onto dst at pos with a centered drop shadow. dst is
// mutated in place; src is not.
func Paste(dst *image.NRGBA, src image.Image, pos image.Point, spread float64) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	half := imaging.Resize(src, w/2, h/2, imaging.CatmullRom)
	hb := half.Bounds()
	center := image.Pt(w/2-hb.Dx()/2, h/2-hb.Dy()/2)

	canvas := imaging.New(w, h, color.NRGBA{0, 0, 0, 255})
	halfAlpha := Alpha(half)
	MaskedPaste(canvas, half, center, halfAlpha)

	mask := image.NewGray(image.Rect(0, 0, w, h))
	pasteGray(mask, halfAlpha, center)
	blurred := blurGray(mask, spread)
	// the blur must not soften the silhouette itself, only extend it
	maskedPasteGray(blurred, halfAlpha, center, halfAlpha)

	MaskedPaste(dst, canvas, pos, blurred)
}

// Alpha extracts the alpha channel of an image as a grayscale mask.
func Alpha(img *image.NRGBA) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := y * img.Stride
		di := y * out.Stride
		for x := 0; x < b.Dx(); x++ {
			out.Pix[di+x] = img.Pix[si+x*4+3]
		}
	}
	return out
}

// MaskedPaste blends src onto dst at pos, weighting every channel (alpha
// included) by the mask. The mask shares src's coordinate space. Regions
// falling outside dst are clipped; dst is mutated in place.
func MaskedPaste(dst *image.NRGBA, src *image.NRGBA, pos image.Point, mask *image.Gray) {
	sb := src.Bounds()
	r := image.Rect(pos.X, pos.Y, pos.X+sb.Dx(), pos.Y+sb.Dy()).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		sy := y - pos.Y
		di := y*dst.Stride + r.Min.X*4
		si := sy*src.Stride + (r.Min.X-pos.X)*4
		mi := sy*mask.Stride + (r.Min.X - pos.X)
		for x := r.Min.X; x < r.Max.X; x++ {
			m := uint32(mask.Pix[mi])
			for c := 0; c < 4; c++ {
				d := uint32(dst.Pix[di+c])
				s := uint32(src.Pix[si+c])
				dst.Pix[di+c] = uint8((d*(255-m) + s*m + 127) / 255)
			}
			di += 4
			si += 4
			mi++
		}
	}
}

// pasteGray copies src into dst at pos, replacing existing values.
func pasteGray(dst *image.Gray, src *image.Gray, pos image.Point) {
	sb := src.Bounds()
	r := image.Rect(pos.X, pos.Y, pos.X+sb.Dx(), pos.Y+sb.Dy()).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		sy := y - pos.Y
		copy(dst.Pix[y*dst.Stride+r.Min.X:y*dst.Stride+r.Max.X],
			src.Pix[sy*src.Stride+(r.Min.X-pos.X):sy*src.Stride+(r.Max.X-pos.X)])
	}
}

// maskedPasteGray blends src into dst at pos weighted by the mask.
func maskedPasteGray(dst *image.Gray, src *image.Gray, pos image.Point, mask *image.Gray) {
	sb := src.Bounds()
	r := image.Rect(pos.X, pos.Y, pos.X+sb.Dx(), pos.Y+sb.Dy()).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		sy := y - pos.Y
		di := y*dst.Stride + r.Min.X
		si := sy*src.Stride + (r.Min.X - pos.X)
		mi := sy*mask.Stride + (r.Min.X - pos.X)
		for x := r.Min.X; x < r.Max.X; x++ {
			m := uint32(mask.Pix[mi])
			d := uint32(dst.Pix[di])
			s := uint32(src.Pix[si])
			dst.Pix[di] = uint8((d*(255-m) + s*m + 127) / 255)
			di++
			si++
			mi++
		}
	}
}

// blurGray applies a Gaussian blur to a grayscale mask.
func blurGray(mask *image.Gray, sigma float64) *image.Gray {
	if sigma <= 0 {
		return mask
	}
	b := mask.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := y * mask.Stride
		di := y * rgba.Stride
		for x := 0; x < b.Dx(); x++ {
			v := mask.Pix[si+x]
			rgba.Pix[di+x*4+0] = v
			rgba.Pix[di+x*4+1] = v
			rgba.Pix[di+x*4+2] = v
			rgba.Pix[di+x*4+3] = 255
		}
	}
	blurred := imaging.Blur(rgba, sigma)
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := y * blurred.Stride
		di := y * out.Stride
		for x := 0; x < b.Dx(); x++ {
			out.Pix[di+x] = blurred.Pix[si+x*4]
		}
	}
	return out
}
