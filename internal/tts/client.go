// Package tts synthesizes speech through an ElevenLabs-compatible API.
package tts

import (
	"context"
	"fmt"
	"io"

	"examprep/internal/config"
	"github.com/go-resty/resty/v2"
)

// Client is a thin text-to-speech client. Synthesis is best-effort from
// the caller's perspective: the streaming endpoint is tried first, then
// the direct request endpoint.
type Client struct {
	client *resty.Client
	voice  string
	model  string
}

type synthesizeRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id,omitempty"`
}

// New creates a TTS client from configuration
func New(cfg config.TTSConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("xi-api-key", cfg.APIKey)
	return &Client{
		client: client,
		voice:  cfg.Voice,
		model:  cfg.Model,
	}
}

// Synthesize converts text to audio bytes, preferring the streaming
// endpoint and falling back to a direct request.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	audio, streamErr := c.synthesizeStream(ctx, text)
	if streamErr == nil {
		return audio, nil
	}

	audio, directErr := c.synthesizeDirect(ctx, text)
	if directErr == nil {
		return audio, nil
	}
	return nil, fmt.Errorf("speech synthesis failed (stream: %v): %w", streamErr, directErr)
}

func (c *Client) synthesizeStream(ctx context.Context, text string) ([]byte, error) {
	res, err := c.client.R().
		SetContext(ctx).
		SetBody(synthesizeRequest{Text: text, ModelID: c.model}).
		SetDoNotParseResponse(true).
		Post(fmt.Sprintf("/v1/text-to-speech/%s/stream", c.voice))
	if err != nil {
		return nil, err
	}

	body := res.RawBody()
	defer body.Close()

	if res.StatusCode() >= 300 {
		return nil, fmt.Errorf("tts stream endpoint returned %d", res.StatusCode())
	}

	audio, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio stream: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("tts stream endpoint returned no audio")
	}
	return audio, nil
}

func (c *Client) synthesizeDirect(ctx context.Context, text string) ([]byte, error) {
	res, err := c.client.R().
		SetContext(ctx).
		SetBody(synthesizeRequest{Text: text, ModelID: c.model}).
		Post(fmt.Sprintf("/v1/text-to-speech/%s", c.voice))
	if err != nil {
		return nil, err
	}
	if res.StatusCode() >= 300 {
		return nil, fmt.Errorf("tts endpoint returned %d", res.StatusCode())
	}
	audio := res.Body()
	if len(audio) == 0 {
		return nil, fmt.Errorf("tts endpoint returned no audio")
	}
	return audio, nil
}
