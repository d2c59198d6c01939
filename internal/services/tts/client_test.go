package tts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientSynthesize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if !strings.HasPrefix(r.URL.Path, "/text-to-speech/river") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("xi-api-key") != "test-key" {
			t.Fatalf("missing api key header")
		}
		var payload synthesisPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.Text != "Hello world." {
			t.Fatalf("unexpected text %q", payload.Text)
		}
		w.Header().Set("X-Audio-Duration-Seconds", "2.75")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, Model: "demo", Format: "mp3_44100_128"})
	resp, err := client.Synthesize(context.Background(), SynthesisRequest{Text: "Hello world.", Voice: "river"})
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if string(resp.Audio) != "mp3-bytes" {
		t.Errorf("audio = %q", resp.Audio)
	}
	if resp.EstimatedDuration != 2.75 {
		t.Errorf("duration = %v, want provider-reported 2.75", resp.EstimatedDuration)
	}
	if resp.SampleRate != 44100 {
		t.Errorf("sample rate = %d", resp.SampleRate)
	}
}

func TestClientSynthesizeFallsBackToEstimate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("audio"))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL})
	resp, err := client.Synthesize(context.Background(), SynthesisRequest{Text: "one two three four five.", Voice: "v"})
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if resp.EstimatedDuration != EstimateDuration("one two three four five.") {
		t.Errorf("duration = %v, want wpm estimate", resp.EstimatedDuration)
	}
}

func TestClientErrorTaxonomy(t *testing.T) {
	cases := []struct {
		status   int
		kind     ErrorKind
		fragment string
	}{
		{http.StatusUnauthorized, ErrUnauthorized, "unauthorized"},
		{http.StatusPaymentRequired, ErrInsufficientCredit, "insufficient credit"},
		{http.StatusTooManyRequests, ErrRateLimited, "rate limited"},
		{http.StatusInternalServerError, ErrHTTP, "http 500"},
	}
	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte("provider detail"))
		}))

		client := NewClient(Config{APIKey: "k", BaseURL: server.URL})
		_, err := client.Synthesize(context.Background(), SynthesisRequest{Text: "hi.", Voice: "v"})
		server.Close()

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: expected APIError, got %v", tc.status, err)
		}
		if apiErr.Kind != tc.kind {
			t.Errorf("status %d: kind = %q, want %q", tc.status, apiErr.Kind, tc.kind)
		}
		if !strings.Contains(err.Error(), tc.fragment) {
			t.Errorf("status %d: message %q missing %q", tc.status, err.Error(), tc.fragment)
		}
	}
}

func TestClientSynthesizeValidation(t *testing.T) {
	client := NewClient(Config{APIKey: "k"})
	if _, err := client.Synthesize(context.Background(), SynthesisRequest{Voice: "v"}); err == nil {
		t.Error("empty text should fail")
	}
	if _, err := client.Synthesize(context.Background(), SynthesisRequest{Text: "hi."}); err == nil {
		t.Error("empty voice should fail")
	}
	noKey := NewClient(Config{})
	if _, err := noKey.Synthesize(context.Background(), SynthesisRequest{Text: "hi.", Voice: "v"}); err == nil {
		t.Error("missing api key should fail")
	}
}

func TestClientVoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/voices" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"voices": []any{
				map[string]any{
					"voice_id": "river",
					"name":     "River",
					"category": "premade",
					"labels":   map[string]string{"language": "en"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL})
	voices, err := client.Voices(context.Background())
	if err != nil {
		t.Fatalf("Voices returned error: %v", err)
	}
	if len(voices) != 1 || voices[0].ID != "river" || voices[0].Language != "en" {
		t.Errorf("voices = %+v", voices)
	}
}

func TestEstimateDuration(t *testing.T) {
	if got := EstimateDuration(""); got != 0 {
		t.Errorf("empty text estimate = %v", got)
	}
	if got := EstimateDuration("one"); got != 1 {
		t.Errorf("single word should clamp to 1s, got %v", got)
	}
	long := strings.Repeat("word ", 170)
	if got := EstimateDuration(long); got != 60 {
		t.Errorf("170 words at 170wpm should be 60s, got %v", got)
	}
}
