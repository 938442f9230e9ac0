// Package openai provides the OpenAI chat-completions text generator
package openai

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

const systemPrompt = "You are a knowledgeable herbalist specializing in medicinal plant recipes and information."

// ErrNotConfigured is returned when no API key is set
var ErrNotConfigured = errors.New("openai: api key not configured")

// Client implements outbound.TextGenerator against the OpenAI API
type Client struct {
	apiKey      string
	model       string
	baseURL     string
	maxTokens   int
	temperature float64
	client      *http.Client
	logger      *zap.Logger
}

// NewClient creates a new OpenAI client
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	return &Client{
		apiKey:      cfg.OpenAIKey,
		model:       cfg.OpenAIModel,
		baseURL:     cfg.OpenAIBaseURL,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		client:      &http.Client{Timeout: cfg.Timeout},
		logger:      logger.Named("openai-client"),
	}
}

var _ outbound.TextGenerator = (*Client)(nil)

// Name identifies the provider
func (c *Client) Name() string { return "openai" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature,omitempty"`
	MaxTokens      int            `json:"max_tokens,omitempty"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Generate sends the prompt through the chat completions endpoint,
// requesting a JSON-object response
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    c.temperature,
		MaxTokens:      c.maxTokens,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	endpoint := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		message := resp.Status
		if parsed.Error != nil {
			message = parsed.Error.Message
		}
		return "", fmt.Errorf("openai: api error: %s", message)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", errors.New("openai: empty completion")
	}

	c.logger.Debug("Completion received",
		zap.String("model", c.model),
		zap.Int("bytes", len(parsed.Choices[0].Message.Content)),
	)

	return parsed.Choices[0].Message.Content, nil
}
