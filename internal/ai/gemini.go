package ai

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type geminiProvider struct {
	apiKey string
}

func NewGeminiProvider(apiKey string) Provider {
	return &geminiProvider{apiKey: apiKey}
}

func (p *geminiProvider) Name() string {
	return "gemini"
}

func geminiModelName() string {
	if env := os.Getenv("GEMINI_MODEL"); env != "" {
		return env
	}
	return defaultGeminiModel
}

func (p *geminiProvider) GeneratePost(ctx context.Context, input *PostInput) (*PostOutput, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	resp, err := client.Models.GenerateContent(ctx, geminiModelName(), genai.Text(buildPrompt(input)), nil)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: empty response from Gemini", ErrGenerationFailed)
	}

	return parsePostOutput(text)
}
