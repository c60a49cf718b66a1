// Package thumbgen generates promotional thumbnails ("miniatures") for
// tournament game videos.
//
// A thumbnail is composed from a video frame, the two team emblems and the
// tournament branding: the frame is windowed through caller-controlled
// pan/zoom parameters, darkened by a uniform wash, and layered under a
// rotated color band carrying both emblems and a rendered tournament name
// plate, everything shadow-composited at a fixed 1920x1080 resolution.
//
// Basic usage:
//
//	package main
//
//	import (
//		"image/color"
//		"log"
//
//		"github.com/juggertv/thumbgen"
//		"github.com/juggertv/thumbgen/pkg/compose"
//		"github.com/juggertv/thumbgen/pkg/emblem"
//		"github.com/juggertv/thumbgen/pkg/imageio"
//		"github.com/juggertv/thumbgen/pkg/rescale"
//	)
//
//	func main() {
//		gen, err := thumbgen.New()
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		catalog, err := emblem.LoadCatalog("logos")
//		if err != nil {
//			log.Fatal(err)
//		}
//		team1, team2 := gen.IdentifyTeams("VID_RedDragons_vs_BlueWolves.mp4", catalog)
//
//		frame, err := imageio.Load("frame.png")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		thumb, err := gen.ComposeMiniature(compose.Request{
//			Frame:          frame,
//			Team1:          team1,
//			Team2:          team2,
//			TournamentName: "Winter Cup",
//			AccentColor:    color.NRGBA{R: 0xFF, A: 0xFF},
//			PlateColor:     color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
//			PlateTextColor: color.NRGBA{A: 0xFF},
//			Window:         rescale.Default(),
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		if err := imageio.Save(thumb, "thumbnail.jpg", 90); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of the following components:
//
// 1. Emblem catalog (pkg/emblem): team identification from video filenames
//
// 2. Rescale window (pkg/rescale): validated pan/zoom parameters
//
// 3. Overlay builder (pkg/overlay): the rotated color band with both emblems
//
// 4. Title plate (pkg/titleplate): the measured, rasterized tournament name
//
// 5. Frame windower (pkg/frame): 16:9 normalization and window selection
//
// 6. Compositor (pkg/compose): z-ordered assembly of the final image
//
// Composition is a pure function of its inputs: identical requests produce
// identical buffers. There is no shared mutable state, so independent
// requests are safe to run concurrently.
package thumbgen

import (
	"fmt"
	"image"

	"github.com/juggertv/thumbgen/pkg/compose"
	"github.com/juggertv/thumbgen/pkg/emblem"
	"github.com/juggertv/thumbgen/pkg/overlay"
	"github.com/juggertv/thumbgen/pkg/rescale"
	"github.com/juggertv/thumbgen/pkg/titleplate"
)

// Version of the thumbgen library
const Version = "1.0.0"

// Generator produces tournament thumbnails. It holds the title plate
// renderer (the only stateful part, a parsed font face) and is safe for
// concurrent use.
type Generator struct {
	titles *titleplate.Renderer
}

// New creates a Generator using the bundled display font.
func New() (*Generator, error) {
	titles, err := titleplate.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize title renderer: %w", err)
	}
	return &Generator{titles: titles}, nil
}

// NewWithFont creates a Generator rendering titles with the given font file.
func NewWithFont(fontPath string) (*Generator, error) {
	titles, err := titleplate.NewRendererFromFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize title renderer: %w", err)
	}
	return &Generator{titles: titles}, nil
}

// IdentifyTeams matches a video filename against the emblem catalog and
// returns the emblems for team1 and team2.
func (g *Generator) IdentifyTeams(text string, catalog []emblem.Emblem) (emblem.Emblem, emblem.Emblem) {
	return emblem.Identify(text, catalog)
}

// ComposeMiniature builds the 1920x1080 thumbnail for a composition request.
func (g *Generator) ComposeMiniature(req compose.Request) (image.Image, error) {
	if req.Window == (rescale.Window{}) {
		req.Window = rescale.Default()
	}
	if _, err := rescale.New(req.Window.XOffset, req.Window.YOffset, req.Window.Zoom); err != nil {
		return nil, err
	}

	ov, err := overlay.Build(req.Team1.Image, req.Team2.Image, overlay.SolidColor{Color: req.AccentColor})
	if err != nil {
		return nil, fmt.Errorf("failed to build team overlay: %w", err)
	}

	plate := g.titles.Render(req.TournamentName, req.PlateColor, req.PlateTextColor)
	pos := compose.DefaultPlatePosition(plate)

	return compose.Assemble(req.Frame, ov, plate, pos, req.Window), nil
}
