package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"scriptcast/internal/config"
	"scriptcast/internal/logging"
	"scriptcast/internal/services/tts"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil || cfg == nil {
			c.logger = logging.NewNop()
			return
		}
		logger, logErr := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if logErr != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// synthesizer picks the mock or the real provider client for a build.
func (c *commandContext) synthesizer(mock bool) (tts.Synthesizer, error) {
	if mock {
		return tts.NewMockClient(), nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return tts.NewClient(tts.Config{
		APIKey:         cfg.TTS.APIKey,
		BaseURL:        cfg.TTS.BaseURL,
		Model:          cfg.TTS.Model,
		Format:         cfg.TTS.Format,
		TimeoutSeconds: cfg.TTS.TimeoutSeconds,
	}), nil
}

// voiceCatalog wraps the provider's voice listing in the configured TTL cache.
func (c *commandContext) voiceCatalog(mock bool) (*tts.Catalog, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	ttl := time.Duration(cfg.TTS.VoiceCacheTTL) * time.Minute

	if mock {
		return tts.NewCatalog(tts.NewMockClient(), ttl), nil
	}
	client := tts.NewClient(tts.Config{
		APIKey:         cfg.TTS.APIKey,
		BaseURL:        cfg.TTS.BaseURL,
		TimeoutSeconds: cfg.TTS.TimeoutSeconds,
	})
	return tts.NewCatalog(client, ttl), nil
}
