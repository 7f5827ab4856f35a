// Package gemini adapts the Gemini API to generation.Generator.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rpggio/proposta/internal/config"
	"google.golang.org/genai"
)

// ErrNoText indicates the model answered without any text.
var ErrNoText = errors.New("gemini: no text generated")

// Client generates text with a Gemini model.
type Client struct {
	genai  *genai.Client
	model  string
	logger *slog.Logger
}

// New creates a client. A missing API key is a configuration error.
func New(ctx context.Context, cfg config.GeminiConfig, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, config.ErrMissingAPIKey
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{
		genai:  gc,
		model:  cfg.Model,
		logger: logger.With("component", "gemini", "model", cfg.Model),
	}, nil
}

// GenerateContent sends prompt to the model and returns its text.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		c.logger.Error("generate content failed", "error", err)
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
