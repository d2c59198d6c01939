package artifacts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scriptcast/internal/render"
	"scriptcast/internal/script"
	"scriptcast/internal/timeline"
)

func sampleResults() []render.Result {
	return []render.Result{
		{
			Segment:  script.Segment{Index: 1, Title: "Intro", Slug: "intro", Text: "Welcome to the show.", Source: script.SourceHeading},
			FileName: "001-intro.mp3",
			Duration: 2.0,
		},
		{
			Segment:  script.Segment{Index: 2, Title: "Body", Slug: "body", Text: "The main part.", Source: script.SourceHeading},
			FileName: "002-body.mp3",
			Cached:   true,
			Duration: 3.5,
		},
	}
}

func sampleInputs() Inputs {
	return Inputs{
		ScriptPath: "/scripts/episode.md",
		Title:      "Episode One",
		Voice:      "narrator",
		Language:   "en",
	}
}

func TestNewManifest(t *testing.T) {
	results := sampleResults()
	tl := timeline.Build(results)
	m := NewManifest(sampleInputs(), results, tl)

	if m.BuildID == "" {
		t.Error("build id missing")
	}
	if m.CreatedAt.IsZero() {
		t.Error("created_at missing")
	}
	if len(m.Segments) != 2 {
		t.Fatalf("segments = %d", len(m.Segments))
	}
	if m.Segments[1].Start != 2.0 {
		t.Errorf("second segment start = %v", m.Segments[1].Start)
	}
	if !m.Segments[1].Cached || m.Segments[0].Cached {
		t.Error("cached flags not carried over")
	}
	if m.TotalDuration != 5.5 || !m.HasDurations {
		t.Errorf("total=%v hasDurations=%v", m.TotalDuration, m.HasDurations)
	}
}

func TestWriteManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	results := sampleResults()
	m := NewManifest(sampleInputs(), results, timeline.Build(results))

	path, err := WriteManifest(dir, m)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var loaded Manifest
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("manifest not valid JSON: %v", err)
	}
	if loaded.BuildID != m.BuildID || len(loaded.Segments) != 2 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestWriteChaptersAndCaptions(t *testing.T) {
	dir := t.TempDir()
	results := sampleResults()
	tl := timeline.Build(results)

	chaptersPath, err := WriteChapters(dir, tl)
	if err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(chaptersPath)
	if !strings.HasPrefix(string(data), "0:00 Intro") {
		t.Errorf("chapters content: %q", data)
	}

	captionsPath, err := WriteCaptions(dir, tl, results)
	if err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(captionsPath)
	if !strings.Contains(string(data), "00:00:02,000 --> 00:00:05,500") {
		t.Errorf("captions content: %q", data)
	}
}

func TestChaptersWithheldWithoutDurations(t *testing.T) {
	dir := t.TempDir()
	results := sampleResults()
	results[0].Duration = 0
	tl := timeline.Build(results)

	path, err := WriteChapters(dir, tl)
	if err != nil || path != "" {
		t.Errorf("path=%q err=%v, want withheld", path, err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, ChaptersFileName)); !os.IsNotExist(statErr) {
		t.Error("chapters file must not exist")
	}
	path, err = WriteCaptions(dir, tl, results)
	if err != nil || path != "" {
		t.Errorf("captions path=%q err=%v, want withheld", path, err)
	}
}

func TestDescription(t *testing.T) {
	results := sampleResults()
	tl := timeline.Build(results)
	m := NewManifest(sampleInputs(), results, tl)

	text := Description(m, tl)
	for _, want := range []string{"Episode One", "Runtime: 0:05", "0:00 Intro", "001 Intro (heading)", "002 Body (heading)"} {
		if !strings.Contains(text, want) {
			t.Errorf("description missing %q:\n%s", want, text)
		}
	}
}

func TestDescriptionWithoutDurationsOmitsRuntime(t *testing.T) {
	results := sampleResults()
	results[1].Duration = 0
	tl := timeline.Build(results)
	m := NewManifest(sampleInputs(), results, tl)

	text := Description(m, tl)
	if strings.Contains(text, "Runtime:") || strings.Contains(text, "Chapters:") {
		t.Errorf("untrusted durations must omit runtime and chapters:\n%s", text)
	}
	if !strings.Contains(text, "Segments:") {
		t.Error("segment list must still be present")
	}
}

func TestWriteReviewPage(t *testing.T) {
	dir := t.TempDir()
	results := sampleResults()
	results[0].Segment.Text = `Has <angle> & "quoted" text.`
	tl := timeline.Build(results)
	m := NewManifest(sampleInputs(), results, tl)

	path, err := WriteReviewPage(dir, m, results, tl)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	page := string(data)
	for _, want := range []string{
		"Episode One",
		`src="segments/001-intro.mp3"`,
		"&lt;angle&gt;",
		"cached",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("review page missing %q", want)
		}
	}
	if strings.Contains(page, "<angle>") {
		t.Error("segment text must be HTML-escaped")
	}
}
