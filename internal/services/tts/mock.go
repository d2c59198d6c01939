package tts

import (
	"bytes"
	"context"
	"encoding/binary"
)

const (
	mockSampleRate = 22050
	mockChannels   = 1
	mockBitDepth   = 16
)

// MockClient is a deterministic no-network synthesizer. It produces a valid
// PCM WAV of silence whose duration matches the words-per-minute estimate for
// the text, so downstream timeline math behaves the same as a real build.
type MockClient struct{}

// NewMockClient returns a synthesizer that never touches the network.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Synthesize generates silent WAV audio sized from the text length.
func (m *MockClient) Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	duration := EstimateDuration(req.Text)
	return &SynthesisResponse{
		Audio:             silentWAV(duration),
		EstimatedDuration: duration,
		SampleRate:        mockSampleRate,
		Format:            "wav",
	}, nil
}

// Voices returns a small fixed catalog for offline use.
func (m *MockClient) Voices(ctx context.Context) ([]Voice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []Voice{
		{ID: "mock-narrator", Name: "Mock Narrator", Category: "mock", Language: "en"},
		{ID: "mock-announcer", Name: "Mock Announcer", Category: "mock", Language: "en"},
	}, nil
}

// silentWAV renders a PCM WAV file of silence with the given duration.
func silentWAV(seconds float64) []byte {
	if seconds < 0 {
		seconds = 0
	}
	samples := int(seconds * mockSampleRate)
	dataSize := samples * mockChannels * (mockBitDepth / 8)

	var buf bytes.Buffer
	buf.Grow(44 + dataSize)

	write := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }

	buf.WriteString("RIFF")
	write(uint32(36 + dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	write(uint32(16))
	write(uint16(1)) // PCM
	write(uint16(mockChannels))
	write(uint32(mockSampleRate))
	write(uint32(mockSampleRate * mockChannels * (mockBitDepth / 8)))
	write(uint16(mockChannels * (mockBitDepth / 8)))
	write(uint16(mockBitDepth))

	buf.WriteString("data")
	write(uint32(dataSize))
	buf.Write(make([]byte, dataSize))

	return buf.Bytes()
}
