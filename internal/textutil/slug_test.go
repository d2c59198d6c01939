package textutil

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Part One", "part-one"},
		{"  Intro!  ", "intro"},
		{"Chapter 2: The Plan", "chapter-2-the-plan"},
		{"___", "section"},
		{"", "section"},
		{"Ünïcode héading", "n-code-h-ading"},
		{"already-slugged", "already-slugged"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	if got := SanitizeFileName(`a/b\c:d*e?f"g<h>i|j`); got != "a-b-c-d-efghij" {
		t.Errorf("SanitizeFileName = %q", got)
	}
	if got := SanitizeFileName("   "); got != "" {
		t.Errorf("SanitizeFileName(blank) = %q, want empty", got)
	}
}

func TestFormatChapterOffset(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{5.9, "0:05"},
		{65, "1:05"},
		{600, "10:00"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{-3, "0:00"},
	}
	for _, tc := range cases {
		if got := FormatChapterOffset(tc.seconds); got != tc.want {
			t.Errorf("FormatChapterOffset(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatCaptionTimestamp(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{61.042, "00:01:01,042"},
		{3661.25, "01:01:01,250"},
	}
	for _, tc := range cases {
		if got := FormatCaptionTimestamp(tc.seconds); got != tc.want {
			t.Errorf("FormatCaptionTimestamp(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestTruncateForCaption(t *testing.T) {
	if got := TruncateForCaption("short  text", 200); got != "short text" {
		t.Errorf("collapse: got %q", got)
	}
	long := ""
	for i := 0; i < 30; i++ {
		long += "0123456789"
	}
	got := TruncateForCaption(long, 200)
	if len([]rune(got)) != 201 {
		t.Errorf("truncated length = %d runes, want 200 + ellipsis", len([]rune(got)))
	}
	if got[len(got)-len("…"):] != "…" {
		t.Errorf("missing ellipsis marker in %q", got[len(got)-8:])
	}
}
