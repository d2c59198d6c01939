package script

import (
	"fmt"
	"strings"

	"scriptcast/internal/textutil"
)

// Split parses content into the final ordered segment list for one build:
// heading or length segmentation, template injection, then finalization
// (index, slug, content fingerprint). It never fails; an empty script yields
// an empty list.
func Split(content string, opts Options) []Segment {
	var segments []Segment

	mode := strings.ToLower(strings.TrimSpace(opts.Mode))
	switch mode {
	case "length":
		segments = lengthSegments(content, opts.MaxChars)
	default:
		segments = headingSegments(content)
		if segments == nil {
			// Headingless documents chunk by length rather than becoming one
			// oversized monolithic segment.
			segments = lengthSegments(content, opts.MaxChars)
		}
	}

	segments = injectTemplates(segments, opts.TemplateDir, opts.Template)

	for i := range segments {
		segments[i].Index = i + 1
		segments[i].Slug = textutil.Slugify(segments[i].Title)
		segments[i].Hash = Fingerprint(segments[i].Text, opts.VoiceID, opts.Language)
	}
	return segments
}

// headingSegments returns heading-mode segments, or nil when the document has
// no real (non-fallback) titles and should fall back to length chunking.
func headingSegments(content string) []Segment {
	sections := splitHeadings(content)
	if !hasRealTitles(sections) {
		return nil
	}
	segments := make([]Segment, 0, len(sections))
	for _, s := range sections {
		segments = append(segments, Segment{
			Title:  s.title,
			Text:   s.body,
			Source: SourceHeading,
		})
	}
	return segments
}

func lengthSegments(content string, maxChars int) []Segment {
	chunks := chunkByLength(content, maxChars)
	segments := make([]Segment, 0, len(chunks))
	for i, chunk := range chunks {
		segments = append(segments, Segment{
			Title:  fmt.Sprintf("Part %d", i+1),
			Text:   chunk,
			Source: SourceAuto,
		})
	}
	return segments
}
