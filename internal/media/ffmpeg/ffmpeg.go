// Package ffmpeg wraps the external ffmpeg binary for stitching segment
// audio into a master track and muxing that track onto a video.
//
// Every operation reports the literal command line it ran so failures can be
// reproduced by hand.
package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// SyncPolicy governs how mismatched audio/video durations are reconciled
// during muxing.
type SyncPolicy string

const (
	// SyncShortest stops the output at the shorter track.
	SyncShortest SyncPolicy = "shortest"
	// SyncPad silence-extends the audio to the video length.
	SyncPad SyncPolicy = "pad"
	// SyncTrim cuts the audio to the video length.
	SyncTrim SyncPolicy = "trim"
)

// ParseSyncPolicy validates a policy string.
func ParseSyncPolicy(value string) (SyncPolicy, error) {
	switch SyncPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case SyncShortest:
		return SyncShortest, nil
	case SyncPad:
		return SyncPad, nil
	case SyncTrim:
		return SyncTrim, nil
	default:
		return "", fmt.Errorf("sync policy %q: must be shortest, pad, or trim", value)
	}
}

// CommandResult reports the outcome of one ffmpeg invocation.
type CommandResult struct {
	// Command is the literal command line, for diagnostic display.
	Command string
	Output  string
}

// StitchOptions configures concatenation of segment audio files.
type StitchOptions struct {
	Binary       string
	SegmentPaths []string
	OutputPath   string
}

// Stitch concatenates the ordered segment files into one master track using
// ffmpeg's concat demuxer.
func Stitch(ctx context.Context, opts StitchOptions) (CommandResult, error) {
	if len(opts.SegmentPaths) == 0 {
		return CommandResult{}, errors.New("ffmpeg stitch: no segment files")
	}
	if strings.TrimSpace(opts.OutputPath) == "" {
		return CommandResult{}, errors.New("ffmpeg stitch: output path required")
	}

	listPath := opts.OutputPath + ".concat.txt"
	if err := os.WriteFile(listPath, []byte(concatList(opts.SegmentPaths)), 0o644); err != nil {
		return CommandResult{}, fmt.Errorf("ffmpeg stitch: write concat list: %w", err)
	}
	defer os.Remove(listPath)

	args := stitchArgs(listPath, opts.OutputPath)
	return run(ctx, binaryOrDefault(opts.Binary), args)
}

// MuxOptions configures muxing a master audio track onto a video.
type MuxOptions struct {
	Binary     string
	AudioPath  string
	VideoPath  string
	OutputPath string
	Policy     SyncPolicy
	// VideoDuration, when known, lets the trim policy cut precisely at the
	// video's end instead of falling back to -shortest.
	VideoDuration float64
}

// Mux combines a master audio file and a video file into one output,
// reconciling duration mismatch per the sync policy.
func Mux(ctx context.Context, opts MuxOptions) (CommandResult, error) {
	for name, value := range map[string]string{
		"audio path":  opts.AudioPath,
		"video path":  opts.VideoPath,
		"output path": opts.OutputPath,
	} {
		if strings.TrimSpace(value) == "" {
			return CommandResult{}, fmt.Errorf("ffmpeg mux: %s required", name)
		}
	}

	args := muxArgs(opts)
	return run(ctx, binaryOrDefault(opts.Binary), args)
}

func binaryOrDefault(binary string) string {
	if trimmed := strings.TrimSpace(binary); trimmed != "" {
		return trimmed
	}
	return "ffmpeg"
}

// concatList renders the concat demuxer input file. Single quotes in paths
// are escaped per the demuxer's quoting rules.
func concatList(paths []string) string {
	var b strings.Builder
	for _, path := range paths {
		abs := path
		if resolved, err := filepath.Abs(path); err == nil {
			abs = resolved
		}
		escaped := strings.ReplaceAll(abs, "'", `'\''`)
		b.WriteString("file '")
		b.WriteString(escaped)
		b.WriteString("'\n")
	}
	return b.String()
}

func stitchArgs(listPath, outputPath string) []string {
	return []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-f", "concat", "-safe", "0",
		"-i", listPath,
		"-c", "copy",
		outputPath,
	}
}

func muxArgs(opts MuxOptions) []string {
	args := []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", opts.VideoPath,
		"-i", opts.AudioPath,
		"-map", "0:v:0", "-map", "1:a:0",
		"-c:v", "copy", "-c:a", "aac",
	}
	switch opts.Policy {
	case SyncPad:
		args = append(args, "-af", "apad", "-shortest")
	case SyncTrim:
		if opts.VideoDuration > 0 {
			args = append(args, "-t", strconv.FormatFloat(opts.VideoDuration, 'f', 3, 64))
		} else {
			args = append(args, "-shortest")
		}
	default:
		args = append(args, "-shortest")
	}
	return append(args, opts.OutputPath)
}

func run(ctx context.Context, binary string, args []string) (CommandResult, error) {
	result := CommandResult{Command: binary + " " + strings.Join(args, " ")}

	cmd := exec.CommandContext(ctx, binary, args...)
	output, err := cmd.CombinedOutput()
	result.Output = strings.TrimSpace(string(output))
	if err != nil {
		return result, fmt.Errorf("ffmpeg run: %w: %s", err, result.Output)
	}
	return result, nil
}
