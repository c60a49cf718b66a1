// Package emblem holds the team emblem catalog and the filename based team
// identification used when a new video is registered.
package emblem

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/juggertv/thumbgen/pkg/imageio"
)

// Emblem is a team logo together with the names used to match it against
// video filenames.
type Emblem struct {
	Name      string
	ShortName string
	Image     image.Image
}

// Identify picks the two catalog entries whose short name or name appears in
// candidate. Matches are ordered by ascending short-name length (the shortest
// token identifies a team most specifically); missing matches degrade to the
// catalog's first entry, the default emblem. The best match is returned
// second: callers assign the return slots to team1/team2 by position.
func Identify(candidate string, catalog []Emblem) (Emblem, Emblem) {
	if len(catalog) == 0 {
		return Emblem{}, Emblem{}
	}

	var matches []Emblem
	for _, e := range catalog {
		if nameMatches(candidate, e.ShortName) || nameMatches(candidate, e.Name) {
			matches = append(matches, e)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return len(matches[i].ShortName) < len(matches[j].ShortName)
	})
	if len(matches) > 2 {
		matches = matches[:2]
	}

	picks := append([]Emblem{catalog[0], catalog[0]}, matches...)
	return picks[len(picks)-1], picks[len(picks)-2]
}

// nameMatches reports whether a team name occurs in the candidate text.
// Matching is case-sensitive; keeping the comparison here means the policy
// can change without touching the ordering or padding logic.
func nameMatches(candidate, name string) bool {
	if name == "" {
		return false
	}
	return strings.Contains(candidate, name)
}

// LoadCatalog builds a catalog from every image file in dir. The file stem
// is used as both name and short name. A file named "default" (any
// extension) is placed first so it becomes the fallback emblem; the rest are
// sorted by filename for a deterministic order.
func LoadCatalog(dir string) ([]Emblem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !imageio.IsImageFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	sort.SliceStable(names, func(i, j int) bool {
		return isDefaultName(names[i]) && !isDefaultName(names[j])
	})

	var catalog []Emblem
	for _, name := range names {
		img, err := imageio.Load(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to load emblem %s: %w", name, err)
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		catalog = append(catalog, Emblem{Name: stem, ShortName: stem, Image: img})
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("no emblem images in %s", dir)
	}
	return catalog, nil
}

func isDefaultName(filename string) bool {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) == "default"
}
