// Package pipeline drives a full build: segment the script, render audio,
// assemble the timeline, write publishing artifacts, and optionally stitch a
// master track and mux it onto a video.
//
// The pipeline owns degraded-mode decisions: a missing media tool downgrades
// the build to segments and text artifacts with a warning instead of failing.
// Input problems (missing script, missing voice) fail before any rendering.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"scriptcast/internal/artifacts"
	"scriptcast/internal/config"
	"scriptcast/internal/history"
	"scriptcast/internal/logging"
	"scriptcast/internal/media/ffmpeg"
	"scriptcast/internal/media/ffprobe"
	"scriptcast/internal/render"
	"scriptcast/internal/script"
	"scriptcast/internal/services/tts"
	"scriptcast/internal/timeline"
)

// lockFileName guards one output directory against concurrent builds.
const lockFileName = ".scriptcast.lock"

// Request describes one build.
type Request struct {
	ScriptPath string
	// Title overrides the derived title (first segment heading, else the
	// script file base name).
	Title     string
	Voice     string
	OutputDir string
	Force     bool
	Mock      bool
	// VideoPath, when set, muxes the master track onto this video.
	VideoPath string
}

// Report summarizes a completed build.
type Report struct {
	BuildID       string
	Title         string
	Results       []render.Result
	Timeline      timeline.Timeline
	ManifestPath  string
	ChaptersPath  string
	CaptionsPath  string
	DescPath      string
	ReviewPath    string
	MasterPath    string
	MuxedPath     string
	CachedCount   int
	Warnings      []string
	TotalDuration float64
}

// Pipeline wires the build stages together.
type Pipeline struct {
	cfg     *config.Config
	synth   tts.Synthesizer
	hist    *history.Store
	logger  *slog.Logger
	lookBin func(string) (string, error)
}

// New constructs a pipeline. hist may be nil when history is disabled.
func New(cfg *config.Config, synth tts.Synthesizer, hist *history.Store, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		synth:   synth,
		hist:    hist,
		logger:  logging.NewComponentLogger(logger, "pipeline"),
		lookBin: exec.LookPath,
	}
}

// Run executes one build end to end.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Report, error) {
	content, err := p.validate(&req)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("pipeline: create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(req.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("pipeline: acquire build lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("pipeline: another build is already running against %s", req.OutputDir)
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			p.logger.Warn("failed to release build lock", logging.Error(unlockErr))
		}
	}()

	report := &Report{}

	segments := script.Split(content, script.Options{
		Mode:        p.cfg.Segmenter.Mode,
		MaxChars:    p.cfg.Segmenter.MaxChars,
		Language:    p.cfg.Segmenter.Language,
		Template:    p.cfg.Segmenter.Template,
		TemplateDir: p.cfg.Paths.TemplateDir,
		VoiceID:     req.Voice,
	})
	if len(segments) == 0 {
		return nil, errors.New("pipeline: script produced no segments")
	}
	report.Title = buildTitle(req, segments)
	p.logger.Info("script segmented",
		logging.Int("segments", len(segments)),
		logging.String("title", report.Title))

	ffprobeOK := p.binaryAvailable(p.cfg.FFprobeBinary())
	var prober render.Prober
	if ffprobeOK {
		prober = render.FFprobeProber{Binary: p.cfg.FFprobeBinary(), Probe: ffprobe.ProbeDuration}
	} else {
		report.Warnings = append(report.Warnings, "ffprobe not found; using provider duration estimates")
	}

	renderer := render.NewRenderer(p.synth, prober, p.logger)
	results, err := renderer.Render(ctx, segments, render.Options{
		VoiceID:         req.Voice,
		Model:           p.cfg.TTS.Model,
		Format:          p.cfg.TTS.Format,
		Language:        p.cfg.Segmenter.Language,
		OutputDir:       req.OutputDir,
		Force:           req.Force,
		MaxRequestChars: p.cfg.TTS.MaxRequestChars,
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	report.Results = results
	for _, res := range results {
		if res.Cached {
			report.CachedCount++
		}
	}

	report.Timeline = timeline.Build(results)
	report.TotalDuration = report.Timeline.TotalDuration
	if !report.Timeline.HasDurations {
		report.Warnings = append(report.Warnings, "segment durations unknown; chapters and captions withheld")
	}

	if err := p.writeArtifacts(req, report); err != nil {
		return nil, err
	}

	p.assembleMedia(ctx, req, report)
	p.recordHistory(ctx, req, report)

	return report, nil
}

// validate fail-fasts on input problems and returns the script content.
func (p *Pipeline) validate(req *Request) (string, error) {
	if strings.TrimSpace(req.ScriptPath) == "" {
		return "", errors.New("pipeline: script path required")
	}
	if strings.TrimSpace(req.Voice) == "" {
		return "", errors.New("pipeline: voice required")
	}
	if strings.TrimSpace(req.OutputDir) == "" {
		req.OutputDir = p.cfg.Paths.OutputDir
	}
	if strings.TrimSpace(req.OutputDir) == "" {
		return "", errors.New("pipeline: output directory required")
	}
	data, err := os.ReadFile(req.ScriptPath)
	if err != nil {
		return "", fmt.Errorf("pipeline: read script: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("pipeline: script %s is empty", req.ScriptPath)
	}
	if req.VideoPath != "" {
		if _, err := os.Stat(req.VideoPath); err != nil {
			return "", fmt.Errorf("pipeline: video file: %w", err)
		}
	}
	return string(data), nil
}

func (p *Pipeline) writeArtifacts(req Request, report *Report) error {
	manifest := artifacts.NewManifest(artifacts.Inputs{
		ScriptPath: req.ScriptPath,
		Title:      report.Title,
		Voice:      req.Voice,
		Language:   p.cfg.Segmenter.Language,
		Template:   p.cfg.Segmenter.Template,
		Mock:       req.Mock,
	}, report.Results, report.Timeline)
	manifest.Warnings = report.Warnings
	report.BuildID = manifest.BuildID

	var err error
	if report.ManifestPath, err = artifacts.WriteManifest(req.OutputDir, manifest); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if report.ChaptersPath, err = artifacts.WriteChapters(req.OutputDir, report.Timeline); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if report.CaptionsPath, err = artifacts.WriteCaptions(req.OutputDir, report.Timeline, report.Results); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if report.DescPath, err = artifacts.WriteDescription(req.OutputDir, manifest, report.Timeline); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if report.ReviewPath, err = artifacts.WriteReviewPage(req.OutputDir, manifest, report.Results, report.Timeline); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	return nil
}

// assembleMedia stitches the master track and muxes it onto a video when the
// media tool is available. Failures here degrade the build, never fail it.
func (p *Pipeline) assembleMedia(ctx context.Context, req Request, report *Report) {
	if !p.binaryAvailable(p.cfg.FFmpegBinary()) {
		logging.WarnWithContext(p.logger, "ffmpeg not found, skipping master track", "ffmpeg_missing",
			logging.String(logging.FieldImpact, "no master track or muxed video; segments and text artifacts still produced"),
			logging.String(logging.FieldErrorHint, "install ffmpeg or set media.ffmpeg in config"))
		report.Warnings = append(report.Warnings, "ffmpeg not found; master track and mux skipped")
		return
	}

	ext := render.AudioExtension(p.cfg.TTS.Format)
	masterPath := filepath.Join(req.OutputDir, artifacts.MasterFileBase+"."+ext)
	paths := make([]string, 0, len(report.Results))
	for _, res := range report.Results {
		paths = append(paths, res.Path)
	}

	result, err := ffmpeg.Stitch(ctx, ffmpeg.StitchOptions{
		Binary:       p.cfg.FFmpegBinary(),
		SegmentPaths: paths,
		OutputPath:   masterPath,
	})
	if err != nil {
		logging.WarnWithContext(p.logger, "master track stitch failed", "stitch_failed",
			logging.Error(err),
			logging.String("command", result.Command),
			logging.String(logging.FieldImpact, "no master track; per-segment audio still available"))
		report.Warnings = append(report.Warnings, "master track stitch failed: "+err.Error())
		return
	}
	report.MasterPath = masterPath
	p.logger.Info("master track stitched", logging.String("file", masterPath))

	if req.VideoPath == "" {
		return
	}

	policy, err := ffmpeg.ParseSyncPolicy(p.cfg.Media.SyncPolicy)
	if err != nil {
		policy = ffmpeg.SyncShortest
	}
	var videoDuration float64
	if d, ok := ffprobe.ProbeDuration(ctx, p.cfg.FFprobeBinary(), req.VideoPath); ok {
		videoDuration = d
	}
	muxedPath := filepath.Join(req.OutputDir, "final"+filepath.Ext(req.VideoPath))
	result, err = ffmpeg.Mux(ctx, ffmpeg.MuxOptions{
		Binary:        p.cfg.FFmpegBinary(),
		AudioPath:     masterPath,
		VideoPath:     req.VideoPath,
		OutputPath:    muxedPath,
		Policy:        policy,
		VideoDuration: videoDuration,
	})
	if err != nil {
		logging.WarnWithContext(p.logger, "video mux failed", "mux_failed",
			logging.Error(err),
			logging.String("command", result.Command),
			logging.String(logging.FieldImpact, "no muxed video; master track still available"))
		report.Warnings = append(report.Warnings, "video mux failed: "+err.Error())
		return
	}
	report.MuxedPath = muxedPath
	p.logger.Info("video muxed", logging.String("file", muxedPath))
}

// recordHistory is best-effort; failures warn and never fail the build.
func (p *Pipeline) recordHistory(ctx context.Context, req Request, report *Report) {
	if p.hist == nil {
		return
	}
	err := p.hist.Record(ctx, history.Record{
		BuildID:       report.BuildID,
		ScriptPath:    req.ScriptPath,
		Title:         report.Title,
		Voice:         req.Voice,
		Language:      p.cfg.Segmenter.Language,
		SegmentCount:  len(report.Results),
		CachedCount:   report.CachedCount,
		TotalDuration: report.TotalDuration,
		Mock:          req.Mock,
	})
	if err != nil {
		logging.WarnWithContext(p.logger, "build history not recorded", "history_write_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "build succeeded but will not appear in history"))
	}
}

func (p *Pipeline) binaryAvailable(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	_, err := p.lookBin(name)
	return err == nil
}

// buildTitle prefers the explicit request title, then the first heading-mode
// segment's title, then the script file base name.
func buildTitle(req Request, segments []script.Segment) string {
	if title := strings.TrimSpace(req.Title); title != "" {
		return title
	}
	for _, seg := range segments {
		if seg.Source == script.SourceHeading {
			return seg.Title
		}
	}
	base := filepath.Base(req.ScriptPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
