package ffmpeg

import (
	"context"
	"strings"
	"testing"
)

func TestParseSyncPolicy(t *testing.T) {
	for _, value := range []string{"shortest", "PAD", " trim "} {
		if _, err := ParseSyncPolicy(value); err != nil {
			t.Errorf("ParseSyncPolicy(%q) failed: %v", value, err)
		}
	}
	if _, err := ParseSyncPolicy("stretch"); err == nil {
		t.Error("invalid policy should fail")
	}
}

func TestConcatListEscapesQuotes(t *testing.T) {
	list := concatList([]string{"/out/segments/001-it's-here.mp3"})
	if !strings.Contains(list, `'\''`) {
		t.Errorf("single quote not escaped: %q", list)
	}
	if !strings.HasPrefix(list, "file '") {
		t.Errorf("unexpected list format: %q", list)
	}
}

func TestStitchArgsUseConcatDemuxer(t *testing.T) {
	args := stitchArgs("/tmp/list.txt", "/out/master.mp3")
	joined := strings.Join(args, " ")
	for _, want := range []string{"-f concat", "-safe 0", "-i /tmp/list.txt", "-c copy", "/out/master.mp3"} {
		if !strings.Contains(joined, want) {
			t.Errorf("stitch args missing %q: %s", want, joined)
		}
	}
}

func TestMuxArgsPerPolicy(t *testing.T) {
	base := MuxOptions{
		AudioPath:  "/out/master.mp3",
		VideoPath:  "/in/video.mp4",
		OutputPath: "/out/final.mp4",
	}

	cases := []struct {
		name    string
		policy  SyncPolicy
		videoD  float64
		want    []string
		exclude []string
	}{
		{name: "shortest", policy: SyncShortest, want: []string{"-shortest"}, exclude: []string{"apad"}},
		{name: "pad", policy: SyncPad, want: []string{"-af apad", "-shortest"}},
		{name: "trim with duration", policy: SyncTrim, videoD: 12.5, want: []string{"-t 12.500"}, exclude: []string{"-shortest"}},
		{name: "trim without duration", policy: SyncTrim, want: []string{"-shortest"}},
	}
	for _, tc := range cases {
		opts := base
		opts.Policy = tc.policy
		opts.VideoDuration = tc.videoD
		joined := strings.Join(muxArgs(opts), " ")
		for _, want := range tc.want {
			if !strings.Contains(joined, want) {
				t.Errorf("%s: args missing %q: %s", tc.name, want, joined)
			}
		}
		for _, not := range tc.exclude {
			if strings.Contains(joined, not) {
				t.Errorf("%s: args should not contain %q: %s", tc.name, not, joined)
			}
		}
	}
}

func TestMuxValidatesPaths(t *testing.T) {
	_, err := Mux(context.Background(), MuxOptions{AudioPath: "a.mp3", VideoPath: "v.mp4"})
	if err == nil {
		t.Error("missing output path should fail before running anything")
	}
}

func TestStitchValidates(t *testing.T) {
	if _, err := Stitch(context.Background(), StitchOptions{OutputPath: "/out/m.mp3"}); err == nil {
		t.Error("no segments should fail")
	}
	if _, err := Stitch(context.Background(), StitchOptions{SegmentPaths: []string{"a.mp3"}}); err == nil {
		t.Error("missing output should fail")
	}
}

func TestRunReportsLiteralCommand(t *testing.T) {
	result, err := run(context.Background(), "definitely-not-ffmpeg-xyz", []string{"-version"})
	if err == nil {
		t.Fatal("missing binary should fail")
	}
	if !strings.HasPrefix(result.Command, "definitely-not-ffmpeg-xyz -version") {
		t.Errorf("command = %q", result.Command)
	}
}
