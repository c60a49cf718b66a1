// Package metadata builds the hosting-platform title and description for a
// game video. It only produces strings; uploading them is the caller's job.
package metadata

import (
	"fmt"
	"strings"
	"time"
)

// Chapter is a labeled time range inside a game video.
type Chapter struct {
	Start string
	End   string
}

// Video carries everything needed to describe a game video.
type Video struct {
	Team1          string
	Team2          string
	Tournament     string
	TournamentDate string
	TugenyLink     string
	JTRLink        string
	Chapters       []Chapter
}

// Title returns the display title: "Team1 vs Team2 | TOURNAMENT [JUGGER]".
func (v Video) Title() string {
	return fmt.Sprintf("%s vs %s | %s [JUGGER]", v.Team1, v.Team2, strings.ToUpper(v.Tournament))
}

// Description lists the match header, tournament links and one timecode line
// per chapter ("mm:ss Point N").
func (v Video) Description() string {
	lines := []string{
		v.Team1 + " vs " + v.Team2,
		"Refered by : ",
		v.TournamentDate,
		"",
		v.TugenyLink,
		v.JTRLink,
		"",
	}
	for i, ch := range v.Chapters {
		lines = append(lines, fmt.Sprintf("%s Point %d", ch.Start, i+1))
	}
	return strings.Join(lines, "\n")
}

// DefaultPublication returns the default publication slot: yesterday at
// 18:00 UTC, formatted for the hosting platform.
func DefaultPublication(now time.Time) string {
	d := now.UTC().AddDate(0, 0, -1)
	return time.Date(d.Year(), d.Month(), d.Day(), 18, 0, 0, 0, time.UTC).Format("2006-01-02T15:04")
}

// Fields returns the metadata as the key/value form the sync layer consumes.
func (v Video) Fields(now time.Time) map[string]string {
	return map[string]string{
		"vid_name":    v.Title(),
		"description": v.Description(),
		"pub_date":    DefaultPublication(now),
	}
}
