// Package rendercache persists the per-output-directory manifest that lets
// unchanged segments skip re-synthesis.
//
// The manifest is a single JSON object under the output directory's segments
// subfolder, keyed by "<zero-padded index>-<slug>". A missing or unparseable
// file is treated as a cold cache, never as an error: losing the manifest
// only costs re-synthesis, so corruption must not block a build. Entries for
// segments no longer present in a script are never pruned; the manifest only
// grows or gets entries overwritten.
package rendercache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"scriptcast/internal/fileutil"
	"scriptcast/internal/logging"
)

// FileName is the manifest file name inside the segments directory.
const FileName = "render_cache.json"

// SegmentsDirName is the subdirectory of the output directory holding
// synthesized segment audio and the manifest.
const SegmentsDirName = "segments"

// Entry records the last-rendered state for one segment key.
type Entry struct {
	Hash     string  `json:"hash"`
	File     string  `json:"file"`
	Duration float64 `json:"duration"`
}

// Manifest maps segment keys to their last-rendered state.
type Manifest map[string]Entry

// Path returns the manifest location for an output directory.
func Path(outputDir string) string {
	return filepath.Join(outputDir, SegmentsDirName, FileName)
}

// SegmentsDir returns the segments directory for an output directory.
func SegmentsDir(outputDir string) string {
	return filepath.Join(outputDir, SegmentsDirName)
}

// Load reads the manifest for outputDir. A missing file yields an empty
// manifest; an unparseable file logs a warning and also yields an empty
// manifest.
func Load(outputDir string, logger *slog.Logger) Manifest {
	logger = logging.NewComponentLogger(logger, "rendercache")

	data, err := os.ReadFile(Path(outputDir))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.WarnWithContext(logger, "render cache unreadable", "rendercache_read_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "all segments will be re-synthesized"))
		}
		return Manifest{}
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		logging.WarnWithContext(logger, "render cache corrupt, starting fresh", "rendercache_corrupt",
			logging.Error(err),
			logging.String(logging.FieldImpact, "all segments will be re-synthesized"))
		return Manifest{}
	}
	if manifest == nil {
		manifest = Manifest{}
	}
	return manifest
}

// Save atomically overwrites the manifest for outputDir. Called exactly once
// per build, after a fully successful render pass.
func Save(outputDir string, manifest Manifest) error {
	if manifest == nil {
		manifest = Manifest{}
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(Path(outputDir), data, 0o644)
}
