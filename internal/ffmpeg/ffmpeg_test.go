package ffmpeg

import (
	"context"
	"encoding/json"
	"testing"
)

func TestFormatTimecode(t *testing.T) {
	cases := map[float64]string{
		0:      "00:00",
		59:     "00:59",
		60:     "01:00",
		83.7:   "01:23",
		3599:   "59:59",
		3600:   "60:00",
		725.99: "12:05",
	}

	for seconds, want := range cases {
		if got := FormatTimecode(seconds); got != want {
			t.Errorf("FormatTimecode(%g) = %q, want %q", seconds, got, want)
		}
	}
}

func TestGrabRejectsBadTimecode(t *testing.T) {
	// Range validation fires before any process is spawned.
	for _, tc := range []float64{-0.1, 1.1} {
		if _, err := Grab(context.Background(), "irrelevant.mp4", tc); err == nil {
			t.Errorf("expected an error for timecode %g", tc)
		}
	}
}

func TestProbeFormatParsing(t *testing.T) {
	payload := []byte(`{"format": {"duration": "1425.300000"}}`)

	var pf probeFormat
	if err := json.Unmarshal(payload, &pf); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if pf.Format.Duration != "1425.300000" {
		t.Errorf("unexpected duration: %q", pf.Format.Duration)
	}
}

func TestProbeChaptersParsing(t *testing.T) {
	payload := []byte(`{"chapters": [
		{"start_time": "12.000000", "end_time": "90.500000"},
		{"start_time": "90.500000", "end_time": "185.000000"}
	]}`)

	var pc probeChapters
	if err := json.Unmarshal(payload, &pc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(pc.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(pc.Chapters))
	}

	if pc.Chapters[0].StartTime != "12.000000" {
		t.Errorf("unexpected start time: %q", pc.Chapters[0].StartTime)
	}
}
