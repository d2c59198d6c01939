package script

import "strings"

// SplitForSynthesis splits text into provider-sized pieces on sentence
// boundaries. Providers cap the per-request character count; the renderer
// synthesizes each piece separately and concatenates the audio.
func SplitForSynthesis(text string, maxChars int) []string {
	return chunkByLength(text, maxChars)
}

// splitSentences cuts text into sentence units on terminal punctuation,
// keeping the terminator with its sentence. Text without any terminator
// yields a single unit.
func splitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var units []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if unit := strings.TrimSpace(b.String()); unit != "" {
				units = append(units, unit)
			}
			b.Reset()
		}
	}
	if tail := strings.TrimSpace(b.String()); tail != "" {
		units = append(units, tail)
	}
	return units
}

// chunkByLength greedily packs sentence units into chunks of at most maxChars,
// closing a chunk when adding the next unit would exceed the limit. A single
// sentence longer than maxChars becomes its own chunk rather than being
// truncated.
func chunkByLength(text string, maxChars int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if maxChars <= 0 || len(text) <= maxChars {
		return []string{text}
	}

	units := splitSentences(text)
	chunks := make([]string, 0, len(units))
	var current strings.Builder
	for _, unit := range units {
		if current.Len() == 0 {
			current.WriteString(unit)
			continue
		}
		if current.Len()+1+len(unit) <= maxChars {
			current.WriteByte(' ')
			current.WriteString(unit)
			continue
		}
		chunks = append(chunks, current.String())
		current.Reset()
		current.WriteString(unit)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
