// Package gemini provides the Google Gemini text generator
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vatika/v1/internal/infrastructure/config"
	"github.com/vatika/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no API key is set
var ErrNotConfigured = errors.New("gemini: api key not configured")

// Client implements outbound.TextGenerator against the Gemini REST API
type Client struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	client      *http.Client
	logger      *zap.Logger
}

// NewClient creates a new Gemini client
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	return &Client{
		apiKey:      cfg.GeminiKey,
		model:       cfg.GeminiModel,
		baseURL:     cfg.GeminiBaseURL,
		temperature: cfg.Temperature,
		client:      &http.Client{Timeout: cfg.Timeout},
		logger:      logger.Named("gemini-client"),
	}
}

var _ outbound.TextGenerator = (*Client)(nil)

// Name identifies the provider
func (c *Client) Name() string { return "gemini" }

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends the prompt to the generateContent endpoint. Gemini is
// told to answer with bare JSON; the instruction lives in the prompt since
// the API has no response-format switch for this model family.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt + "\n\nRemember: Return ONLY the JSON object, no other text."}}},
		},
		GenerationConfig: generationConfig{Temperature: c.temperature},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		message := resp.Status
		if parsed.Error != nil {
			message = parsed.Error.Message
		}
		return "", fmt.Errorf("gemini: api error: %s", message)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: empty candidate")
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	c.logger.Debug("Generation received",
		zap.String("model", c.model),
		zap.Int("bytes", len(text)),
	)

	return text, nil
}
