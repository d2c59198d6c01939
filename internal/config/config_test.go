package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Error("exists should be false for missing file")
	}
	if resolved == "" {
		t.Error("resolved path should be populated")
	}
	if cfg.Segmenter.Mode != "auto" {
		t.Errorf("default mode = %q", cfg.Segmenter.Mode)
	}
	if cfg.Segmenter.MaxChars != defaultSegmenterMaxChars {
		t.Errorf("default max_chars = %d", cfg.Segmenter.MaxChars)
	}
	if cfg.Media.SyncPolicy != "shortest" {
		t.Errorf("default sync_policy = %q", cfg.Media.SyncPolicy)
	}
	if !cfg.History.Enabled {
		t.Error("history should default to enabled")
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := writeConfig(t, `
[tts]
api_key = "  key  "
base_url = "https://tts.example.com/v1/"
voice = "river"

[segmenter]
mode = "HEADINGS"
language = "en-US"

[media]
sync_policy = "PAD"
`)

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("exists should be true")
	}
	if cfg.TTS.APIKey != "key" {
		t.Errorf("api key not trimmed: %q", cfg.TTS.APIKey)
	}
	if cfg.TTS.BaseURL != "https://tts.example.com/v1" {
		t.Errorf("base url not normalized: %q", cfg.TTS.BaseURL)
	}
	if cfg.Segmenter.Mode != "headings" {
		t.Errorf("mode not lowercased: %q", cfg.Segmenter.Mode)
	}
	if cfg.Segmenter.Language != "en-US" {
		t.Errorf("language tag = %q", cfg.Segmenter.Language)
	}
	if cfg.Media.SyncPolicy != "pad" {
		t.Errorf("sync policy not lowercased: %q", cfg.Media.SyncPolicy)
	}
}

func TestLoadRejectsInvalidMode(t *testing.T) {
	path := writeConfig(t, `
[segmenter]
mode = "sideways"
`)
	_, _, _, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "segmenter mode") {
		t.Fatalf("expected segmenter mode error, got %v", err)
	}
}

func TestLoadRejectsInvalidSyncPolicy(t *testing.T) {
	path := writeConfig(t, `
[media]
sync_policy = "stretch"
`)
	_, _, _, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "sync_policy") {
		t.Fatalf("expected sync_policy error, got %v", err)
	}
}

func TestLoadRejectsInvalidLanguage(t *testing.T) {
	path := writeConfig(t, `
[segmenter]
language = "not a language"
`)
	_, _, _, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "language") {
		t.Fatalf("expected language error, got %v", err)
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/scripts")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != filepath.Join(home, "scripts") {
		t.Errorf("ExpandPath = %q", got)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	// The sample must itself survive a Load round trip.
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample failed: %v", err)
	}
	if !exists {
		t.Error("sample config should exist")
	}
	if cfg.TTS.MaxRequestChars != defaultTTSMaxRequestChars {
		t.Errorf("sample max_request_chars = %d", cfg.TTS.MaxRequestChars)
	}
}
