package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/transfer"
)

const (
	openAIBaseURL = "https://api.openai.com/v1"
	openAIModel   = "gpt-3.5-turbo"

	deepseekBaseURL = "https://api.deepseek.com/v1"
	deepseekModel   = "deepseek-chat"
)

type openAIProvider struct {
	name    string
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewOpenAIProvider(apiKey string) Provider {
	return &openAIProvider{
		name:    "openai",
		apiKey:  apiKey,
		baseURL: openAIBaseURL,
		model:   openAIModel,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// NewDeepseekProvider reuses the chat-completions client against DeepSeek's
// OpenAI-compatible endpoint. Same wire protocol, different base URL and model.
func NewDeepseekProvider(apiKey string) Provider {
	return &openAIProvider{
		name:    "deepseek",
		apiKey:  apiKey,
		baseURL: deepseekBaseURL,
		model:   deepseekModel,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *openAIProvider) Name() string {
	return p.name
}

func (p *openAIProvider) GeneratePost(ctx context.Context, input *PostInput) (*PostOutput, error) {
	reqBody := transfer.ChatCompletionRequest{
		Model: p.model,
		Messages: []transfer.ChatMessage{
			{Role: "user", Content: buildPrompt(input)},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Info(fmt.Sprintf("%s completion endpoint returned status %d", p.name, resp.StatusCode))
		return nil, fmt.Errorf("%w: completion endpoint returned status %d", ErrGenerationFailed, resp.StatusCode)
	}

	var completion transfer.ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		slog.Info(err.Error())
		return nil, ErrMalformedOutput
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: completion contained no choices", ErrGenerationFailed)
	}

	return parsePostOutput(completion.Choices[0].Message.Content)
}
