package ffprobe

import (
	"context"
	"path/filepath"
	"testing"
)

func TestProbeDurationMissingBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.mp3")
	duration, ok := ProbeDuration(context.Background(), "definitely-not-ffprobe-xyz", path)
	if ok {
		t.Error("missing binary should report unavailable")
	}
	if duration != 0 {
		t.Errorf("duration = %v, want 0", duration)
	}
}

func TestInspectEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", "  "); err == nil {
		t.Error("empty path should fail")
	}
}

func TestDurationSeconds(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"12.5", 12.5},
		{"", 0},
		{"garbage", 0},
		{"-3", 0},
	}
	for _, tc := range cases {
		result := Result{Format: Format{Duration: tc.raw}}
		if got := result.DurationSeconds(); got != tc.want {
			t.Errorf("DurationSeconds(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
