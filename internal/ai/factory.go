package ai

import (
	"log/slog"
	"strings"
)

// GetProvider resolves a provider by case-insensitive name. Unrecognized names
// fall back to the OpenAI implementation.
func GetProvider(name, apiKey string) Provider {
	normalized := strings.ToLower(name)

	slog.Info("initializing AI provider", "provider", normalized)

	switch normalized {
	case "gemini":
		return NewGeminiProvider(apiKey)
	case "deepseek":
		return NewDeepseekProvider(apiKey)
	case "openai":
		return NewOpenAIProvider(apiKey)
	default:
		return NewOpenAIProvider(apiKey)
	}
}
