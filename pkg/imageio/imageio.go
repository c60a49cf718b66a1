// Package imageio loads and saves the raster images the thumbnail pipeline
// works with: team emblems, extracted video frames and the final miniature.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// MinEmblemSize is the smallest usable side for a loaded emblem image.
const MinEmblemSize = 32

// Load reads an image from a file path with WebP support.
func Load(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	// Fallback: explicit WebP decode
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
	}
	if _, err := f.Seek(0, 0); err == nil {
		if img, _, err := image.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// Decode reads an image from a reader, trying the registered decoders first
// and WebP as a fallback.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("image: unknown or unsupported format")
}

// Save writes an image to path. The format is taken from the extension;
// quality applies to jpeg and webp output.
func Save(img image.Image, path string, quality int) error {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return webp.Encode(f, img, &webp.Options{Quality: float32(quality)})
	case "png":
		return imaging.Save(img, path)
	case "jpg", "jpeg":
		return imaging.Save(img, path, imaging.JPEGQuality(quality))
	default:
		return fmt.Errorf("unsupported output format: %s", filepath.Ext(path))
	}
}

// IsImageFile checks if a file has an image extension.
func IsImageFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, imgExt := range []string{"jpg", "jpeg", "png", "gif", "bmp", "webp"} {
		if ext == imgExt {
			return true
		}
	}
	return false
}

// ValidateEmblem checks that an emblem image is large enough to survive the
// overlay rescale without visible artifacts.
func ValidateEmblem(img image.Image) error {
	b := img.Bounds()
	if b.Dx() < MinEmblemSize || b.Dy() < MinEmblemSize {
		return fmt.Errorf("emblem too small: %dx%d (minimum: %d)",
			b.Dx(), b.Dy(), MinEmblemSize)
	}
	return nil
}
