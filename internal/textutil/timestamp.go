package textutil

import (
	"fmt"
	"math"
	"strings"
)

// FormatChapterOffset renders an offset in seconds as "m:ss", growing to
// "h:mm:ss" once the offset reaches one hour. Negative inputs clamp to zero.
func FormatChapterOffset(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// FormatCaptionTimestamp renders an offset in seconds as an SRT timestamp,
// "HH:MM:SS,mmm". Negative inputs clamp to zero.
func FormatCaptionTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	millis := int(math.Round(seconds * 1000))
	hours := millis / 3600000
	millis -= hours * 3600000
	minutes := millis / 60000
	millis -= minutes * 60000
	secs := millis / 1000
	millis -= secs * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// TruncateForCaption collapses whitespace and limits text to maxRunes runes,
// appending an ellipsis when truncated. maxRunes <= 0 means no limit.
func TruncateForCaption(text string, maxRunes int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if maxRunes <= 0 {
		return collapsed
	}
	runes := []rune(collapsed)
	if len(runes) <= maxRunes {
		return collapsed
	}
	return strings.TrimSpace(string(runes[:maxRunes])) + "…"
}
