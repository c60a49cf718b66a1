// Package titleplate rasterizes the tournament name onto a solid plate sized
// to the measured text.
package titleplate

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontSize is the point size the plate is rendered at. The plate is later
// shadow-pasted at half scale, so the large size keeps the glyphs crisp.
const FontSize = 150

const (
	padX   = 12
	padY   = 8
	insetX = 6
)

// Renderer measures and draws tournament names with a fixed display face.
type Renderer struct {
	face font.Face
}

// NewRenderer returns a renderer using the bundled bold face.
func NewRenderer() (*Renderer, error) {
	return NewRendererFromTTF(gobold.TTF)
}

// NewRendererFromFile loads a TTF/OTF font file, letting deployments swap in
// their own display face.
func NewRendererFromFile(path string) (*Renderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	return NewRendererFromTTF(data)
}

// NewRendererFromTTF builds a renderer from raw font bytes.
func NewRendererFromTTF(ttf []byte) (*Renderer, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return &Renderer{face: face}, nil
}

// Measure returns the rendered dimensions of text: the width is the right
// edge of the glyph mask, the height the mask bottom plus the face descent.
func (r *Renderer) Measure(text string) (width, height int) {
	metrics := r.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	bounds, _ := font.BoundString(r.face, text)
	width = bounds.Max.X.Ceil()
	height = ascent + bounds.Max.Y.Ceil() + descent
	return width, height
}

// Render draws the uppercased text on a plate of the measured size plus a
// small fixed padding.
func (r *Renderer) Render(text string, bg, fg color.NRGBA) *image.NRGBA {
	text = strings.ToUpper(text)
	w, h := r.Measure(text)

	plate := imaging.New(w+padX, h+padY, bg)
	d := &font.Drawer{
		Dst:  plate,
		Src:  image.NewUniform(fg),
		Face: r.face,
		Dot:  fixed.P(insetX, r.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	return plate
}
