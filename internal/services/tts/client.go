package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://api.elevenlabs.io/v1"
	defaultHTTPTimeout = 120 * time.Second
	wordsPerMinute     = 170.0
)

// Config captures the runtime settings required to talk to the provider.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	Format         string
	TimeoutSeconds int
}

// Client wraps the speech provider's HTTP API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a provider client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			APIKey:         strings.TrimSpace(cfg.APIKey),
			BaseURL:        strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/"),
			Model:          strings.TrimSpace(cfg.Model),
			Format:         strings.TrimSpace(cfg.Format),
			TimeoutSeconds: cfg.TimeoutSeconds,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = defaultBaseURL
	}
	return client
}

type synthesisPayload struct {
	Text         string `json:"text"`
	ModelID      string `json:"model_id,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

// Synthesize issues one synthesis request and returns the audio bytes plus
// the provider's self-reported duration estimate. The estimate falls back to
// a words-per-minute heuristic when the provider does not report one.
func (c *Client) Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, errors.New("tts synthesize: text required")
	}
	voice := strings.TrimSpace(req.Voice)
	if voice == "" {
		return nil, errors.New("tts synthesize: voice required")
	}
	if c.cfg.APIKey == "" {
		return nil, errors.New("tts synthesize: api key required")
	}

	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = c.cfg.Model
	}
	format := strings.TrimSpace(req.Format)
	if format == "" {
		format = c.cfg.Format
	}

	endpoint, err := url.JoinPath(c.cfg.BaseURL, "text-to-speech", voice)
	if err != nil {
		return nil, fmt.Errorf("tts request: build url: %w", err)
	}
	if format != "" {
		endpoint += "?output_format=" + url.QueryEscape(format)
	}

	encoded, err := json.Marshal(synthesisPayload{
		Text:         text,
		ModelID:      model,
		LanguageCode: strings.TrimSpace(req.Language),
	})
	if err != nil {
		return nil, fmt.Errorf("tts request: encode body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("tts request: new request: %w", err)
	}
	httpReq.Header.Set("xi-api-key", c.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tts request: http error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tts request: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			Kind:       classifyStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	duration := headerDuration(resp.Header)
	if duration <= 0 {
		duration = EstimateDuration(text)
	}

	return &SynthesisResponse{
		Audio:             body,
		EstimatedDuration: duration,
		SampleRate:        formatSampleRate(format),
		Format:            format,
	}, nil
}

type voicesResponse struct {
	Voices []struct {
		VoiceID  string            `json:"voice_id"`
		Name     string            `json:"name"`
		Category string            `json:"category"`
		Labels   map[string]string `json:"labels"`
	} `json:"voices"`
}

// Voices fetches the provider's voice catalog.
func (c *Client) Voices(ctx context.Context) ([]Voice, error) {
	if c.cfg.APIKey == "" {
		return nil, errors.New("tts voices: api key required")
	}
	endpoint, err := url.JoinPath(c.cfg.BaseURL, "voices")
	if err != nil {
		return nil, fmt.Errorf("tts voices: build url: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("tts voices: new request: %w", err)
	}
	httpReq.Header.Set("xi-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tts voices: http error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tts voices: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			Kind:       classifyStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var parsed voicesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("tts voices: decode response: %w", err)
	}

	voices := make([]Voice, 0, len(parsed.Voices))
	for _, v := range parsed.Voices {
		voices = append(voices, Voice{
			ID:       v.VoiceID,
			Name:     v.Name,
			Category: v.Category,
			Language: v.Labels["language"],
		})
	}
	return voices, nil
}

// EstimateDuration approximates spoken duration in seconds from word count.
func EstimateDuration(text string) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	seconds := float64(words) / wordsPerMinute * 60
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}

func headerDuration(header http.Header) float64 {
	raw := strings.TrimSpace(header.Get("X-Audio-Duration-Seconds"))
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// formatSampleRate extracts the sample rate from provider format identifiers
// like "mp3_44100_128" or "pcm_22050". Unknown formats report 0.
func formatSampleRate(format string) int {
	parts := strings.Split(format, "_")
	if len(parts) < 2 {
		return 0
	}
	rate, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return rate
}
