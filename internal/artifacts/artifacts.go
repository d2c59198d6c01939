// Package artifacts writes the publishing outputs of a build: the build
// manifest, chapter and caption files, the plain-text description, and the
// HTML review page.
//
// The build manifest is always produced, even for degraded builds. Chapters
// and captions are written only when the timeline trusts its durations.
package artifacts

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"scriptcast/internal/fileutil"
	"scriptcast/internal/render"
	"scriptcast/internal/textutil"
	"scriptcast/internal/timeline"
)

// Output file names under the output directory.
const (
	ManifestFileName    = "build_manifest.json"
	ChaptersFileName    = "chapters.txt"
	CaptionsFileName    = "captions.srt"
	DescriptionFileName = "description.txt"
	ReviewFileName      = "review.html"
	MasterFileBase      = "master"
)

// Inputs records what the build was asked to do.
type Inputs struct {
	ScriptPath string `json:"script_path"`
	Title      string `json:"title"`
	Voice      string `json:"voice"`
	Language   string `json:"language"`
	Template   string `json:"template,omitempty"`
	Mock       bool   `json:"mock"`
}

// SegmentOutcome records how one segment was produced.
type SegmentOutcome struct {
	Index    int     `json:"index"`
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	Source   string  `json:"source"`
	File     string  `json:"file"`
	Cached   bool    `json:"cached"`
	Duration float64 `json:"duration"`
	Start    float64 `json:"start"`
}

// Manifest is the machine-readable record of one build.
type Manifest struct {
	BuildID       string           `json:"build_id"`
	CreatedAt     time.Time        `json:"created_at"`
	Inputs        Inputs           `json:"inputs"`
	Segments      []SegmentOutcome `json:"segments"`
	TotalDuration float64          `json:"total_duration"`
	HasDurations  bool             `json:"has_durations"`
	MasterFile    string           `json:"master_file,omitempty"`
	Warnings      []string         `json:"warnings,omitempty"`
}

// NewManifest assembles the manifest for a completed render pass.
func NewManifest(inputs Inputs, results []render.Result, tl timeline.Timeline) Manifest {
	m := Manifest{
		BuildID:       uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Inputs:        inputs,
		TotalDuration: tl.TotalDuration,
		HasDurations:  tl.HasDurations,
	}
	for i, res := range results {
		outcome := SegmentOutcome{
			Index:    res.Segment.Index,
			Title:    res.Segment.Title,
			Slug:     res.Segment.Slug,
			Source:   string(res.Segment.Source),
			File:     res.FileName,
			Cached:   res.Cached,
			Duration: res.Duration,
		}
		if i < len(tl.Entries) {
			outcome.Start = tl.Entries[i].Start
		}
		m.Segments = append(m.Segments, outcome)
	}
	return m
}

// WriteManifest persists the manifest JSON under outputDir.
func WriteManifest(outputDir string, m Manifest) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("artifacts: encode manifest: %w", err)
	}
	path := filepath.Join(outputDir, ManifestFileName)
	if err := fileutil.WriteFileAtomic(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("artifacts: write manifest: %w", err)
	}
	return path, nil
}

// WriteChapters persists chapter lines when the timeline provides them.
// Returns ("", nil) when chapters are withheld.
func WriteChapters(outputDir string, tl timeline.Timeline) (string, error) {
	lines := tl.Chapters()
	if lines == nil {
		return "", nil
	}
	path := filepath.Join(outputDir, ChaptersFileName)
	content := strings.Join(lines, "\n") + "\n"
	if err := fileutil.WriteFileAtomic(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("artifacts: write chapters: %w", err)
	}
	return path, nil
}

// WriteCaptions persists the SRT document when the timeline provides it.
// Returns ("", nil) when captions are withheld.
func WriteCaptions(outputDir string, tl timeline.Timeline, results []render.Result) (string, error) {
	srt := tl.Captions(results)
	if srt == "" {
		return "", nil
	}
	path := filepath.Join(outputDir, CaptionsFileName)
	if err := fileutil.WriteFileAtomic(path, []byte(srt), 0o644); err != nil {
		return "", fmt.Errorf("artifacts: write captions: %w", err)
	}
	return path, nil
}

// Description renders the plain-text publish description: title, runtime,
// chapter list when available, and per-segment source tags.
func Description(m Manifest, tl timeline.Timeline) string {
	var b strings.Builder
	b.WriteString(m.Inputs.Title)
	b.WriteString("\n\n")
	if tl.HasDurations {
		fmt.Fprintf(&b, "Runtime: %s\n\n", textutil.FormatChapterOffset(tl.TotalDuration))
	}
	if chapters := tl.Chapters(); chapters != nil {
		b.WriteString("Chapters:\n")
		for _, line := range chapters {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	b.WriteString("Segments:\n")
	for _, seg := range m.Segments {
		fmt.Fprintf(&b, "  %03d %s (%s)\n", seg.Index, seg.Title, seg.Source)
	}
	return b.String()
}

// WriteDescription persists the publish description under outputDir.
func WriteDescription(outputDir string, m Manifest, tl timeline.Timeline) (string, error) {
	path := filepath.Join(outputDir, DescriptionFileName)
	if err := fileutil.WriteFileAtomic(path, []byte(Description(m, tl)), 0o644); err != nil {
		return "", fmt.Errorf("artifacts: write description: %w", err)
	}
	return path, nil
}
