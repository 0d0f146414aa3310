package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// groqBaseURL is Groq's OpenAI-compatible endpoint.
const groqBaseURL = "https://api.groq.com/openai/v1"

// Groq is the primary completion backend, reached through Groq's
// OpenAI-compatible API.
type Groq struct {
	Model  string
	client openai.Client
}

var _ Backend = (*Groq)(nil)

// NewGroq creates a Groq backend.
func NewGroq(apiKey, model string) (*Groq, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	return &Groq{
		Model: model,
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(groqBaseURL),
		),
	}, nil
}

// Name implements Backend.
func (g *Groq) Name() string { return "groq" }

// Complete implements Backend.
func (g *Groq) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(0.7),
		MaxCompletionTokens: openai.Int(2048),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
