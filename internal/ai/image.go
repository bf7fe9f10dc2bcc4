package ai

import (
	"log/slog"
	"net/url"
)

type ImageResult struct {
	URL  string `json:"url"`
	Path string `json:"path,omitempty"`
}

// ImageGenerator is a placeholder visual generator. Swap the body of
// GenerateImage for a DALL-E or Imagen call when image generation goes live.
type ImageGenerator struct {
	apiKey string
}

func NewImageGenerator(apiKey string) *ImageGenerator {
	return &ImageGenerator{apiKey: apiKey}
}

func (g *ImageGenerator) GenerateImage(prompt string) *ImageResult {
	slog.Info("image generation requested", "prompt", truncate(prompt, 30))

	return &ImageResult{
		URL: "https://via.placeholder.com/1024x1024.png?text=" + url.QueryEscape(truncate(prompt, 50)),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
