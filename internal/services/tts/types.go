package tts

import "context"

// SynthesisRequest describes one synthesis call. Text must fit within the
// provider's per-request character limit; callers split longer text across
// multiple calls and concatenate the resulting audio.
type SynthesisRequest struct {
	Text     string
	Voice    string
	Model    string
	Format   string
	Language string
}

// SynthesisResponse carries the synthesized audio and the provider's
// self-reported metadata. EstimatedDuration is the provider's estimate in
// seconds; a duration probe against the written file is preferred when
// available.
type SynthesisResponse struct {
	Audio             []byte
	EstimatedDuration float64
	SampleRate        int
	Format            string
}

// Voice describes one entry in the provider's voice catalog.
type Voice struct {
	ID       string `json:"voice_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Language string `json:"language"`
}

// Synthesizer is the collaborator contract the renderer consumes.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResponse, error)
}

// VoiceLister lists the provider's available voices.
type VoiceLister interface {
	Voices(ctx context.Context) ([]Voice, error)
}
