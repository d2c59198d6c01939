package script

import (
	"fmt"

	"scriptcast/internal/textutil"
)

// Source tags how a segment entered the build.
type Source string

const (
	// SourceHeading marks a segment split from a markdown heading.
	SourceHeading Source = "heading"
	// SourceAuto marks a segment produced by length-based chunking.
	SourceAuto Source = "auto"
	// SourceTemplate marks an injected template intro/outro segment.
	SourceTemplate Source = "template"
)

// Segment is one unit of script text mapped to one synthesized audio file.
// Segments are created once per build by the segmenter and immutable after.
type Segment struct {
	Index  int
	Title  string
	Slug   string
	Text   string
	Source Source
	Hash   string
}

// Key returns the stable cache key for this segment: zero-padded index plus slug.
func (s Segment) Key() string {
	return fmt.Sprintf("%03d-%s", s.Index, s.Slug)
}

// FileName returns the canonical output file name for the given audio extension.
func (s Segment) FileName(ext string) string {
	return textutil.SanitizeFileName(s.Key() + "." + ext)
}

// Options configures segmentation for one build.
type Options struct {
	// Mode is auto, headings, or length. auto and headings split on markdown
	// headings and fall back to length chunking for headingless documents;
	// length always chunks.
	Mode string
	// MaxChars bounds length-based chunks. Long sentences may overshoot; a
	// sentence is never hard-truncated.
	MaxChars int
	// Language is the synthesis language tag; empty means "en".
	Language string
	// Template names the intro/outro pair looked up in TemplateDir. Empty
	// disables injection; missing files are silently skipped.
	Template    string
	TemplateDir string
	// VoiceID participates in each segment's content fingerprint.
	VoiceID string
}
