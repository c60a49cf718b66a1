// Package ffmpeg shells out to ffmpeg/ffprobe to read frames and chapter
// metadata from game videos.
package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/juggertv/thumbgen/pkg/imageio"
)

// Chapter is a chapter time range in mm:ss form.
type Chapter struct {
	Start string
	End   string
}

// probeFormat mirrors the ffprobe -show_format JSON output.
type probeFormat struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// probeChapters mirrors the ffprobe -show_chapters JSON output.
type probeChapters struct {
	Chapters []struct {
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	} `json:"chapters"`
}

// Duration returns the video duration in seconds.
func Duration(ctx context.Context, path string) (float64, error) {
	out, err := runProbe(ctx, path, "-show_format")
	if err != nil {
		return 0, err
	}
	var pf probeFormat
	if err := json.Unmarshal(out, &pf); err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	d, err := strconv.ParseFloat(pf.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected ffprobe duration %q: %w", pf.Format.Duration, err)
	}
	return d, nil
}

// Chapters lists the chapters of a video with mm:ss timecodes.
func Chapters(ctx context.Context, path string) ([]Chapter, error) {
	out, err := runProbe(ctx, path, "-show_chapters")
	if err != nil {
		return nil, err
	}
	var pc probeChapters
	if err := json.Unmarshal(out, &pc); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	chapters := make([]Chapter, 0, len(pc.Chapters))
	for _, c := range pc.Chapters {
		start, err := strconv.ParseFloat(c.StartTime, 64)
		if err != nil {
			return nil, fmt.Errorf("unexpected chapter start %q: %w", c.StartTime, err)
		}
		end, err := strconv.ParseFloat(c.EndTime, 64)
		if err != nil {
			return nil, fmt.Errorf("unexpected chapter end %q: %w", c.EndTime, err)
		}
		chapters = append(chapters, Chapter{
			Start: FormatTimecode(start),
			End:   FormatTimecode(end),
		})
	}
	return chapters, nil
}

// Grab extracts the frame at a relative timecode (0..1 of the duration) and
// returns it resized to width 1920.
func Grab(ctx context.Context, path string, tc float64) (image.Image, error) {
	if tc < 0 || tc > 1 {
		return nil, fmt.Errorf("timecode must be in [0, 1], got %g", tc)
	}
	duration, err := Duration(ctx, path)
	if err != nil {
		return nil, err
	}
	at := float64(int(duration * tc))

	tmp := filepath.Join(os.TempDir(), "thumbgen-"+uuid.NewString()+".png")
	defer os.Remove(tmp)

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-ss", strconv.FormatFloat(at, 'f', 3, 64),
		"-i", path,
		"-frames:v", "1",
		tmp,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg frame grab failed: %w: %s", err, stderr.String())
	}

	img, err := imageio.Load(tmp)
	if err != nil {
		return nil, fmt.Errorf("failed to load grabbed frame: %w", err)
	}
	return imaging.Resize(img, 1920, 0, imaging.CatmullRom), nil
}

// FormatTimecode converts seconds to zero-padded mm:ss.
func FormatTimecode(seconds float64) string {
	sec := int(seconds)
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

func runProbe(ctx context.Context, path string, selector string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		selector,
		path,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe failed for %s: %w: %s", path, err, stderr.String())
	}
	return stdout.Bytes(), nil
}
