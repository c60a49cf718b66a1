package shadow

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

// createSprite builds a transparent canvas with an opaque colored square in
// the middle
func createSprite(size, squareSize int, c color.NRGBA) *image.NRGBA {
	img := imaging.New(size, size, color.NRGBA{})
	min := (size - squareSize) / 2
	max := min + squareSize
	for y := min; y < max; y++ {
		for x := min; x < max; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestAlpha(t *testing.T) {
	sprite := createSprite(40, 20, color.NRGBA{255, 0, 0, 255})

	mask := Alpha(sprite)

	if mask.Bounds().Dx() != 40 || mask.Bounds().Dy() != 40 {
		t.Fatalf("unexpected mask size: %v", mask.Bounds())
	}

	if got := mask.GrayAt(20, 20).Y; got != 255 {
		t.Errorf("expected opaque center in mask, got %d", got)
	}

	if got := mask.GrayAt(2, 2).Y; got != 0 {
		t.Errorf("expected transparent corner in mask, got %d", got)
	}
}

func TestMaskedPasteBlends(t *testing.T) {
	dst := imaging.New(10, 10, color.NRGBA{100, 100, 100, 255})
	src := imaging.New(10, 10, color.NRGBA{255, 255, 255, 255})
	mask := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range mask.Pix {
		mask.Pix[i] = 51
	}

	MaskedPaste(dst, src, image.Point{}, mask)

	// (100*(255-51) + 255*51 + 127) / 255 = 131
	if got := dst.NRGBAAt(5, 5).R; got != 131 {
		t.Errorf("expected blended value 131, got %d", got)
	}
}

func TestMaskedPasteZeroMaskKeepsDestination(t *testing.T) {
	dst := imaging.New(10, 10, color.NRGBA{100, 100, 100, 255})
	src := imaging.New(10, 10, color.NRGBA{255, 255, 255, 255})
	mask := image.NewGray(image.Rect(0, 0, 10, 10))

	MaskedPaste(dst, src, image.Point{}, mask)

	if got := dst.NRGBAAt(5, 5).R; got != 100 {
		t.Errorf("expected destination unchanged, got %d", got)
	}
}

func TestMaskedPasteClipsOutOfBounds(t *testing.T) {
	dst := imaging.New(10, 10, color.NRGBA{100, 100, 100, 255})
	src := imaging.New(10, 10, color.NRGBA{255, 255, 255, 255})
	mask := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range mask.Pix {
		mask.Pix[i] = 255
	}

	// Partially off every edge; must not panic.
	MaskedPaste(dst, src, image.Pt(-5, -5), mask)
	MaskedPaste(dst, src, image.Pt(8, 8), mask)
	MaskedPaste(dst, src, image.Pt(20, 20), mask)

	if got := dst.NRGBAAt(2, 2).R; got != 255 {
		t.Errorf("expected overlap region pasted, got %d", got)
	}
}

func TestPasteShowsHalfScaleContent(t *testing.T) {
	dst := imaging.New(100, 100, color.NRGBA{200, 200, 200, 255})
	sprite := createSprite(40, 20, color.NRGBA{255, 0, 0, 255})

	Paste(dst, sprite, image.Pt(30, 30), DefaultSpread)

	// The half-scale copy sits at the sprite's center: a 10x10 red square
	// around (50, 50) in destination coordinates.
	got := dst.NRGBAAt(50, 50)
	if got.R < 200 || got.G > 60 || got.B > 60 {
		t.Errorf("expected red content at the center, got %+v", got)
	}
}

func TestPasteCastsPenumbra(t *testing.T) {
	dst := imaging.New(100, 100, color.NRGBA{200, 200, 200, 255})
	sprite := createSprite(40, 20, color.NRGBA{255, 0, 0, 255})

	Paste(dst, sprite, image.Pt(30, 30), DefaultSpread)

	// Just outside the sharp silhouette the blurred mask lets the black
	// shadow canvas through.
	got := dst.NRGBAAt(50, 42)
	if got.R >= 200 {
		t.Errorf("expected darkened penumbra above the silhouette, got %+v", got)
	}

	// Far away the destination is untouched.
	if got := dst.NRGBAAt(5, 5); got.R != 200 {
		t.Errorf("expected untouched corner, got %+v", got)
	}
}

func TestPasteDoesNotMutateSource(t *testing.T) {
	dst := imaging.New(100, 100, color.NRGBA{200, 200, 200, 255})
	sprite := createSprite(40, 20, color.NRGBA{255, 0, 0, 255})
	before := append([]uint8(nil), sprite.Pix...)

	Paste(dst, sprite, image.Pt(30, 30), DefaultSpread)

	for i := range before {
		if sprite.Pix[i] != before[i] {
			t.Fatal("source image was mutated")
		}
	}
}
