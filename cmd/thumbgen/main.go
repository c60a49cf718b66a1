package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/juggertv/thumbgen"
	"github.com/juggertv/thumbgen/internal/config"
	"github.com/juggertv/thumbgen/internal/ffmpeg"
	"github.com/juggertv/thumbgen/internal/utils"
	"github.com/juggertv/thumbgen/pkg/compose"
	"github.com/juggertv/thumbgen/pkg/emblem"
	"github.com/juggertv/thumbgen/pkg/imageio"
	"github.com/juggertv/thumbgen/pkg/metadata"
	"github.com/juggertv/thumbgen/pkg/rescale"
)

func main() {
	var in, logoDir, outDir, fontPath, ext string
	var name, accent, plateBG, plateFG string
	var team1Name, team2Name string
	var xOffset, yOffset, zoom, timecode float64
	var quality int
	var configPath string
	var printMeta bool

	flag.StringVar(&in, "in", "", "input video or still frame (mp4/mov/avi/mkv or jpg/png/webp)")
	flag.StringVar(&logoDir, "logos", "", "directory with team emblem images (default.* is the fallback)")
	flag.StringVar(&outDir, "out", "", "output directory")
	flag.StringVar(&fontPath, "font", "", "TTF/OTF display font for the title plate (default: bundled)")
	flag.StringVar(&ext, "ext", "", "output format: jpg|png|webp")
	flag.IntVar(&quality, "quality", 0, "JPEG/WebP output quality (1-100)")

	flag.StringVar(&name, "name", "", "tournament display name")
	flag.StringVar(&accent, "color", "#FF0000", "tournament accent color (hex)")
	flag.StringVar(&plateBG, "platebg", "", "title plate background color (hex)")
	flag.StringVar(&plateFG, "platefg", "", "title plate text color (hex)")

	flag.StringVar(&team1Name, "team1", "", "override team 1 (catalog name)")
	flag.StringVar(&team2Name, "team2", "", "override team 2 (catalog name)")

	flag.Float64Var(&xOffset, "xoff", 0, "horizontal pan offset (0-1)")
	flag.Float64Var(&yOffset, "yoff", 0, "vertical pan offset (0-1)")
	flag.Float64Var(&zoom, "zoom", 1, "zoom factor (>=1)")
	flag.Float64Var(&timecode, "tc", -1, "frame timecode as a fraction of the video duration (0-1)")

	flag.StringVar(&configPath, "config", "", "path to a JSON config file")
	flag.BoolVar(&printMeta, "meta", false, "print the video title and description")

	flag.Parse()
	if in == "" || name == "" {
		log.Fatalf("usage: %s -in game.mp4 -name 'Winter Cup' [-logos dir] [-color '#FF0000'] [-zoom 1.2 -xoff 0.5 -yoff 0.5]",
			filepath.Base(os.Args[0]))
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	applyFlagOverrides(cfg, logoDir, outDir, fontPath, ext, plateBG, plateFG, quality, timecode)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	accentColor, err := utils.ParseHexColor(accent)
	if err != nil {
		log.Fatal(err)
	}
	bgColor, err := utils.ParseHexColor(cfg.Colors.PlateBackground)
	if err != nil {
		log.Fatal(err)
	}
	fgColor, err := utils.ParseHexColor(cfg.Colors.PlateText)
	if err != nil {
		log.Fatal(err)
	}

	window, err := rescale.New(xOffset, yOffset, zoom)
	if err != nil {
		log.Fatal(err)
	}

	catalog, err := emblem.LoadCatalog(cfg.Input.LogoDir)
	if err != nil {
		log.Fatal(err)
	}

	var gen *thumbgen.Generator
	if cfg.Fonts.Path != "" {
		gen, err = thumbgen.NewWithFont(cfg.Fonts.Path)
	} else {
		gen, err = thumbgen.New()
	}
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Source frame: grab from the video, or load a still directly.
	var frame image.Image
	isVideo := utils.IsVideoFile(in)
	if isVideo {
		frame, err = ffmpeg.Grab(ctx, in, cfg.Input.Timecode)
	} else {
		frame, err = imageio.Load(in)
	}
	if err != nil {
		log.Fatal(err)
	}

	team1, team2 := pickTeams(in, team1Name, team2Name, catalog)
	log.Printf("teams: %s vs %s", team1.Name, team2.Name)

	thumb, err := gen.ComposeMiniature(compose.Request{
		Frame:          frame,
		Team1:          team1,
		Team2:          team2,
		TournamentName: name,
		AccentColor:    accentColor,
		PlateColor:     bgColor,
		PlateTextColor: fgColor,
		Window:         window,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		log.Fatal(err)
	}
	stem := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	outPath := filepath.Join(cfg.Output.Dir, fmt.Sprintf("%s_%s_thumbnail.%s",
		utils.Slugify(name), utils.Slugify(stem), cfg.Output.Format))
	if err := imageio.Save(thumb, outPath, cfg.Output.Quality); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", outPath)

	if printMeta {
		video := metadata.Video{
			Team1:      team1.Name,
			Team2:      team2.Name,
			Tournament: name,
		}
		if isVideo {
			chapters, err := ffmpeg.Chapters(ctx, in)
			if err != nil {
				log.Printf("chapter listing failed: %v", err)
			}
			for _, ch := range chapters {
				video.Chapters = append(video.Chapters, metadata.Chapter{Start: ch.Start, End: ch.End})
			}
		}
		fmt.Println(video.Title())
		fmt.Println()
		fmt.Println(video.Description())
		fmt.Println()
		fmt.Println("publish:", metadata.DefaultPublication(time.Now()))
	}
}

// pickTeams resolves explicit overrides against the catalog and falls back
// to filename identification.
func pickTeams(in, team1Name, team2Name string, catalog []emblem.Emblem) (emblem.Emblem, emblem.Emblem) {
	team1, team2 := emblem.Identify(filepath.Base(in), catalog)
	if team1Name != "" {
		if e, ok := findEmblem(catalog, team1Name); ok {
			team1 = e
		} else {
			log.Printf("team %q not in catalog, keeping identified %q", team1Name, team1.Name)
		}
	}
	if team2Name != "" {
		if e, ok := findEmblem(catalog, team2Name); ok {
			team2 = e
		} else {
			log.Printf("team %q not in catalog, keeping identified %q", team2Name, team2.Name)
		}
	}
	return team1, team2
}

func findEmblem(catalog []emblem.Emblem, name string) (emblem.Emblem, bool) {
	for _, e := range catalog {
		if e.Name == name || e.ShortName == name {
			return e, true
		}
	}
	return emblem.Emblem{}, false
}

func applyFlagOverrides(cfg *config.Config, logoDir, outDir, fontPath, ext, plateBG, plateFG string, quality int, timecode float64) {
	if logoDir != "" {
		cfg.Input.LogoDir = logoDir
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if fontPath != "" {
		cfg.Fonts.Path = fontPath
	}
	if ext != "" {
		cfg.Output.Format = ext
	}
	if plateBG != "" {
		cfg.Colors.PlateBackground = plateBG
	}
	if plateFG != "" {
		cfg.Colors.PlateText = plateFG
	}
	if quality > 0 {
		cfg.Output.Quality = quality
	}
	if timecode >= 0 {
		cfg.Input.Timecode = timecode
	}
}
