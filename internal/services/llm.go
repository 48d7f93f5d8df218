package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// LLMClient wraps the hosted chat model behind a text-in/text-out call.
// One attempt per Send; retry and backoff are the caller's problem (and no
// caller here retries).
type LLMClient struct {
	client *genai.Client
	model  string
}

// NewLLMClient creates a Gemini-backed client. apiKey must be set; model is
// the Gemini model name (e.g. "gemini-1.5-flash").
func NewLLMClient(ctx context.Context, apiKey, model string) (*LLMClient, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &LLMClient{client: client, model: model}, nil
}

// Send submits a system prompt plus one user message and returns the reply
// as plain text.
func (c *LLMClient) Send(ctx context.Context, systemPrompt, userText string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := model.GenerateContent(ctx, genai.Text(userText))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("unexpected response format (no text parts)")
	}
	return sb.String(), nil
}

func (c *LLMClient) Close() error {
	return c.client.Close()
}
