package overlay

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func createEmblem(width, height int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestBuildDimensions(t *testing.T) {
	e1 := createEmblem(100, 100, color.NRGBA{255, 0, 0, 255})
	e2 := createEmblem(100, 100, color.NRGBA{0, 0, 255, 255})

	out, err := Build(e1, e2, SolidColor{Color: color.NRGBA{0, 128, 0, 255}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if out.Bounds().Dx() != Width || out.Bounds().Dy() != Height {
		t.Errorf("expected %dx%d overlay, got %dx%d",
			Width, Height, out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestBuildExtremeEmblemShapes(t *testing.T) {
	wide := createEmblem(4000, 100, color.NRGBA{255, 0, 0, 255})
	tall := createEmblem(100, 4000, color.NRGBA{0, 0, 255, 255})

	out, err := Build(wide, tall, SolidColor{Color: color.NRGBA{0, 128, 0, 255}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if out.Bounds().Dx() != Width || out.Bounds().Dy() != Height {
		t.Errorf("expected %dx%d overlay, got %dx%d",
			Width, Height, out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestBuildRejectsPatternBackground(t *testing.T) {
	e := createEmblem(100, 100, color.NRGBA{255, 0, 0, 255})
	pattern := Pattern{Image: createEmblem(100, 100, color.NRGBA{1, 2, 3, 255})}

	_, err := Build(e, e, pattern)
	if err == nil {
		t.Fatal("expected an error for a pattern background")
	}

	if !errors.Is(err, ErrUnsupportedBackground) {
		t.Errorf("expected ErrUnsupportedBackground, got %v", err)
	}
}

func TestBuildPaintsColorBand(t *testing.T) {
	e1 := createEmblem(100, 100, color.NRGBA{255, 0, 0, 255})
	e2 := createEmblem(100, 100, color.NRGBA{0, 0, 255, 255})
	accent := color.NRGBA{0, 128, 0, 255}

	out, err := Build(e1, e2, SolidColor{Color: accent})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// The top-left corner lies well inside the rotated band.
	got := out.NRGBAAt(10, 10)
	if got.G < 100 || got.R > 60 || got.A != 255 {
		t.Errorf("expected the accent color at (10,10), got %+v", got)
	}

	// The far right stays transparent: the band only covers the left side.
	if got := out.NRGBAAt(1900, 540); got.A != 0 {
		t.Errorf("expected transparent canvas at (1900,540), got %+v", got)
	}
}

func TestFitEmblemWideFirstPass(t *testing.T) {
	wide := createEmblem(4000, 100, color.NRGBA{255, 0, 0, 255})

	fitted := fitEmblem(wide)

	if fitted.Bounds().Dx() != 850 {
		t.Errorf("expected width 850, got %d", fitted.Bounds().Dx())
	}

	if fitted.Bounds().Dy() > 850 {
		t.Errorf("height exceeds the box: %d", fitted.Bounds().Dy())
	}
}

func TestFitEmblemTallSecondPass(t *testing.T) {
	tall := createEmblem(100, 4000, color.NRGBA{0, 0, 255, 255})

	fitted := fitEmblem(tall)

	if fitted.Bounds().Dy() != 850 {
		t.Errorf("expected height 850, got %d", fitted.Bounds().Dy())
	}

	if fitted.Bounds().Dx() > 850 {
		t.Errorf("width exceeds the box: %d", fitted.Bounds().Dx())
	}
}

func TestBuildDoesNotMutateInputs(t *testing.T) {
	e1 := imaging.New(100, 100, color.NRGBA{255, 0, 0, 255})
	before := append([]uint8(nil), e1.Pix...)

	if _, err := Build(e1, e1, SolidColor{Color: color.NRGBA{0, 128, 0, 255}}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for i := range before {
		if e1.Pix[i] != before[i] {
			t.Fatal("emblem image was mutated")
		}
	}
}
