package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// normalize trims string fields, expands paths, and canonicalizes enumerated
// values so validation and consumers see one spelling.
func (c *Config) normalize() error {
	var err error
	for _, field := range []*string{
		&c.Paths.OutputDir,
		&c.Paths.TemplateDir,
		&c.Paths.LogDir,
		&c.Paths.DataDir,
	} {
		*field = strings.TrimSpace(*field)
		if *field == "" {
			continue
		}
		if *field, err = expandPath(*field); err != nil {
			return err
		}
	}

	c.TTS.APIKey = strings.TrimSpace(c.TTS.APIKey)
	c.TTS.BaseURL = strings.TrimSuffix(strings.TrimSpace(c.TTS.BaseURL), "/")
	c.TTS.Model = strings.TrimSpace(c.TTS.Model)
	c.TTS.Voice = strings.TrimSpace(c.TTS.Voice)
	c.TTS.Format = strings.TrimSpace(c.TTS.Format)
	if c.TTS.MaxRequestChars <= 0 {
		c.TTS.MaxRequestChars = defaultTTSMaxRequestChars
	}
	if c.TTS.TimeoutSeconds <= 0 {
		c.TTS.TimeoutSeconds = defaultTTSTimeoutSeconds
	}
	if c.TTS.VoiceCacheTTL <= 0 {
		c.TTS.VoiceCacheTTL = defaultVoiceCacheTTL
	}

	c.Segmenter.Mode = strings.ToLower(strings.TrimSpace(c.Segmenter.Mode))
	if c.Segmenter.Mode == "" {
		c.Segmenter.Mode = defaultSegmenterMode
	}
	if c.Segmenter.MaxChars <= 0 {
		c.Segmenter.MaxChars = defaultSegmenterMaxChars
	}
	c.Segmenter.Template = strings.TrimSpace(c.Segmenter.Template)

	lang := strings.TrimSpace(c.Segmenter.Language)
	if lang == "" {
		lang = defaultLanguage
	}
	tag, parseErr := language.Parse(lang)
	if parseErr != nil {
		return fmt.Errorf("language %q: %w", lang, parseErr)
	}
	c.Segmenter.Language = tag.String()

	c.Media.FFmpeg = strings.TrimSpace(c.Media.FFmpeg)
	c.Media.FFprobe = strings.TrimSpace(c.Media.FFprobe)
	c.Media.SyncPolicy = strings.ToLower(strings.TrimSpace(c.Media.SyncPolicy))
	if c.Media.SyncPolicy == "" {
		c.Media.SyncPolicy = defaultSyncPolicy
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	return nil
}
