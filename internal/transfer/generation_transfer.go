package transfer

type GenerationRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
}

type ImageRequest struct {
	Prompt string `json:"prompt"`
}
