package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultElevenLabsURL = "https://api.elevenlabs.io/v1/text-to-speech"

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type ElevenLabsClient struct {
	apiKey     string
	baseURL    string
	voiceID    string
	settings   VoiceSettings
	httpClient *http.Client
}

func NewElevenLabsClient(apiKey, baseURL, voiceID string, settings VoiceSettings, timeout time.Duration) *ElevenLabsClient {
	if baseURL == "" {
		baseURL = DefaultElevenLabsURL
	}
	return &ElevenLabsClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		voiceID:    voiceID,
		settings:   settings,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type speechRequest struct {
	Text          string        `json:"text"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

func (c *ElevenLabsClient) Speak(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(speechRequest{Text: text, VoiceSettings: c.settings})
	if err != nil {
		return nil, fmt.Errorf("elevenlabs marshal: %w", err)
	}

	endpoint := c.baseURL + "/" + url.PathEscape(c.voiceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("elevenlabs returned %d: %s", resp.StatusCode, string(body))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs read: %w", err)
	}

	if len(audio) == 0 {
		return nil, fmt.Errorf("elevenlabs returned empty audio")
	}

	return audio, nil
}
