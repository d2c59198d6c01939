package render

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"scriptcast/internal/fileutil"
	"scriptcast/internal/logging"
	"scriptcast/internal/rendercache"
	"scriptcast/internal/script"
	"scriptcast/internal/services/tts"
)

// Prober reports the duration of a local audio file, or unavailable.
type Prober interface {
	ProbeDuration(ctx context.Context, path string) (float64, bool)
}

// Result pairs a segment with its rendered (or reused) audio file.
type Result struct {
	Segment  script.Segment
	Path     string
	FileName string
	Cached   bool
	Duration float64
}

// Options configures one render pass.
type Options struct {
	VoiceID  string
	Model    string
	Format   string
	Language string
	// OutputDir is the build's output directory; audio lands in its
	// segments subfolder.
	OutputDir string
	// Force re-synthesizes every segment regardless of cache state.
	Force bool
	// MaxRequestChars is the provider per-call text limit.
	MaxRequestChars int
}

// Renderer drives synthesis for an ordered segment list.
type Renderer struct {
	synth  tts.Synthesizer
	prober Prober
	logger *slog.Logger
}

// NewRenderer constructs a renderer around the synthesizer and duration
// prober collaborators. prober may be nil when no probe tool is available.
func NewRenderer(synth tts.Synthesizer, prober Prober, logger *slog.Logger) *Renderer {
	return &Renderer{
		synth:  synth,
		prober: prober,
		logger: logging.NewComponentLogger(logger, "renderer"),
	}
}

// Render processes segments in document order, reusing cached audio where the
// segment is unchanged and synthesizing the rest. The first synthesis failure
// aborts the whole pass; nothing is persisted to the cache manifest in that
// case, though audio files already written this pass stay on disk for reuse.
func (r *Renderer) Render(ctx context.Context, segments []script.Segment, opts Options) ([]Result, error) {
	if err := fileutil.EnsureDir(rendercache.SegmentsDir(opts.OutputDir)); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	manifest := rendercache.Load(opts.OutputDir, r.logger)
	ext := AudioExtension(opts.Format)

	results := make([]Result, 0, len(segments))
	for _, seg := range segments {
		result, err := r.renderSegment(ctx, seg, opts, manifest, ext)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rendercache.Save(opts.OutputDir, manifest); err != nil {
		return nil, fmt.Errorf("render: persist cache: %w", err)
	}
	return results, nil
}

func (r *Renderer) renderSegment(ctx context.Context, seg script.Segment, opts Options, manifest rendercache.Manifest, ext string) (Result, error) {
	key := seg.Key()
	fileName := seg.FileName(ext)
	path := filepath.Join(rendercache.SegmentsDir(opts.OutputDir), fileName)

	if entry, ok := manifest[key]; ok && !opts.Force &&
		entry.Hash == seg.Hash && entry.File == fileName && fileutil.FileExists(path) {
		r.logger.Debug("segment unchanged, reusing cached audio",
			logging.String(logging.FieldSegment, key),
			logging.Float64("duration", entry.Duration))
		return Result{
			Segment:  seg,
			Path:     path,
			FileName: fileName,
			Cached:   true,
			Duration: entry.Duration,
		}, nil
	}

	audio, estimate, err := r.synthesize(ctx, seg, opts)
	if err != nil {
		return Result{}, fmt.Errorf("render segment %q: %w", seg.Title, err)
	}
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return Result{}, fmt.Errorf("render segment %q: write audio: %w", seg.Title, err)
	}

	duration := estimate
	if r.prober != nil {
		if probed, ok := r.prober.ProbeDuration(ctx, path); ok {
			duration = probed
		} else {
			r.logger.Debug("duration probe unavailable, using provider estimate",
				logging.String(logging.FieldSegment, key),
				logging.Float64("estimate", estimate))
		}
	}

	manifest[key] = rendercache.Entry{Hash: seg.Hash, File: fileName, Duration: duration}
	r.logger.Info("segment synthesized",
		logging.String(logging.FieldSegment, key),
		logging.String("file", fileName),
		logging.Float64("duration", duration))

	return Result{
		Segment:  seg,
		Path:     path,
		FileName: fileName,
		Cached:   false,
		Duration: duration,
	}, nil
}

// synthesize issues one or more provider calls for the segment text,
// splitting on sentence boundaries when the text exceeds the per-call limit,
// and concatenates the resulting audio.
func (r *Renderer) synthesize(ctx context.Context, seg script.Segment, opts Options) ([]byte, float64, error) {
	pieces := []string{seg.Text}
	if opts.MaxRequestChars > 0 && len(seg.Text) > opts.MaxRequestChars {
		pieces = script.SplitForSynthesis(seg.Text, opts.MaxRequestChars)
	}

	var audio []byte
	var estimate float64
	for _, piece := range pieces {
		resp, err := r.synth.Synthesize(ctx, tts.SynthesisRequest{
			Text:     piece,
			Voice:    opts.VoiceID,
			Model:    opts.Model,
			Format:   opts.Format,
			Language: opts.Language,
		})
		if err != nil {
			return nil, 0, err
		}
		audio = append(audio, resp.Audio...)
		estimate += resp.EstimatedDuration
	}
	return audio, estimate, nil
}

// AudioExtension maps a provider format identifier to a file extension.
func AudioExtension(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	switch {
	case format == "wav", strings.HasPrefix(format, "pcm"):
		return "wav"
	case strings.HasPrefix(format, "opus"):
		return "opus"
	default:
		return "mp3"
	}
}

// FFprobeProber adapts the ffprobe package to the Prober interface.
type FFprobeProber struct {
	Binary string
	Probe  func(ctx context.Context, binary, path string) (float64, bool)
}

// ProbeDuration invokes the configured probe function.
func (p FFprobeProber) ProbeDuration(ctx context.Context, path string) (float64, bool) {
	if p.Probe == nil {
		return 0, false
	}
	return p.Probe(ctx, p.Binary, path)
}
