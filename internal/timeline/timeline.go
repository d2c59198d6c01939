// Package timeline derives time-addressed publishing data from rendered
// segments: chapter markers and SRT captions.
//
// Both outputs require trustworthy durations. If any segment's duration is
// unknown (zero or negative), chapters and captions are withheld entirely
// rather than published with wrong offsets.
package timeline

import (
	"fmt"
	"strings"

	"scriptcast/internal/render"
	"scriptcast/internal/textutil"
)

// Entry places one segment on the master-track timeline.
type Entry struct {
	Index    int
	Title    string
	Start    float64
	Duration float64
	End      float64
}

// Timeline is the ordered placement of all segments.
type Timeline struct {
	Entries       []Entry
	TotalDuration float64
	// HasDurations is false when any segment duration is unknown, which
	// withholds chapters and captions.
	HasDurations bool
}

// Build accumulates segment start offsets in render order.
func Build(results []render.Result) Timeline {
	tl := Timeline{HasDurations: true}
	var cursor float64
	for _, res := range results {
		if res.Duration <= 0 {
			tl.HasDurations = false
		}
		entry := Entry{
			Index:    res.Segment.Index,
			Title:    res.Segment.Title,
			Start:    cursor,
			Duration: res.Duration,
			End:      cursor + res.Duration,
		}
		tl.Entries = append(tl.Entries, entry)
		cursor = entry.End
	}
	tl.TotalDuration = cursor
	return tl
}

// Chapters renders platform-style chapter lines, one "m:ss Title" per
// segment. Returns nil when durations are untrustworthy.
func (tl Timeline) Chapters() []string {
	if !tl.HasDurations || len(tl.Entries) == 0 {
		return nil
	}
	lines := make([]string, 0, len(tl.Entries))
	for _, entry := range tl.Entries {
		lines = append(lines, fmt.Sprintf("%s %s", textutil.FormatChapterOffset(entry.Start), entry.Title))
	}
	return lines
}

// maxCaptionRunes bounds the caption text shown per segment.
const maxCaptionRunes = 200

// Captions renders the segment timeline as an SRT document, one cue per
// segment with the segment text truncated for display. Returns empty when
// durations are untrustworthy.
func (tl Timeline) Captions(results []render.Result) string {
	if !tl.HasDurations || len(tl.Entries) == 0 {
		return ""
	}
	var b strings.Builder
	for i, entry := range tl.Entries {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n",
			textutil.FormatCaptionTimestamp(entry.Start),
			textutil.FormatCaptionTimestamp(entry.End))
		b.WriteString(textutil.TruncateForCaption(results[i].Segment.Text, maxCaptionRunes))
		b.WriteString("\n\n")
	}
	return b.String()
}
