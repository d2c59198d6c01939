package script

import "strings"

// fallbackPreambleTitle names content that precedes the first heading when the
// document supplies no first-level heading of its own.
const fallbackPreambleTitle = "Preamble"

type section struct {
	title string
	body  string
	// titled is false only for the fallback preamble title; it drives the
	// headingless-document fallback to length chunking.
	titled bool
}

// splitHeadings partitions markdown content into sections on second-level
// headings. Content before the first "## " becomes a preamble section titled
// by a leading "# " heading when one exists. Sections whose body trims to
// nothing are dropped.
func splitHeadings(content string) []section {
	lines := strings.Split(content, "\n")

	preamble := section{title: fallbackPreambleTitle}
	sections := []section{}
	current := &preamble
	sawContent := false

	var body strings.Builder
	flush := func() {
		current.body = strings.TrimSpace(body.String())
		body.Reset()
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "## "):
			flush()
			sections = append(sections, section{
				title:  strings.TrimSpace(strings.TrimPrefix(trimmed, "## ")),
				titled: true,
			})
			current = &sections[len(sections)-1]
		case strings.HasPrefix(trimmed, "# ") && current == &preamble && !sawContent:
			// A document title before any content names the preamble.
			preamble.title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			preamble.titled = true
		default:
			if trimmed != "" {
				sawContent = true
			}
			body.WriteString(line)
			body.WriteByte('\n')
		}
	}
	flush()

	out := make([]section, 0, len(sections)+1)
	if preamble.body != "" {
		out = append(out, preamble)
	}
	for _, s := range sections {
		if s.body != "" {
			out = append(out, s)
		}
	}
	return out
}

// hasRealTitles reports whether any section carries a non-fallback title.
func hasRealTitles(sections []section) bool {
	for _, s := range sections {
		if s.titled {
			return true
		}
	}
	return false
}
