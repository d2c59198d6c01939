package config

import (
	"fmt"
)

var segmenterModes = map[string]struct{}{
	"auto":     {},
	"headings": {},
	"length":   {},
}

var syncPolicies = map[string]struct{}{
	"shortest": {},
	"pad":      {},
	"trim":     {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSegmenter(); err != nil {
		return err
	}
	if err := c.validateMedia(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSegmenter() error {
	if _, ok := segmenterModes[c.Segmenter.Mode]; !ok {
		return fmt.Errorf("segmenter mode %q: must be auto, headings, or length", c.Segmenter.Mode)
	}
	if c.Segmenter.MaxChars < 50 {
		return fmt.Errorf("segmenter max_chars %d: must be at least 50", c.Segmenter.MaxChars)
	}
	return nil
}

func (c *Config) validateMedia() error {
	if _, ok := syncPolicies[c.Media.SyncPolicy]; !ok {
		return fmt.Errorf("media sync_policy %q: must be shortest, pad, or trim", c.Media.SyncPolicy)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging format %q: must be console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging level %q: must be debug, info, warn, or error", c.Logging.Level)
	}
	return nil
}
