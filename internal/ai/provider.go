package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrGenerationFailed covers any failure to obtain usable post content from a
// backend: network errors, non-200 responses, empty completions.
var ErrGenerationFailed = errors.New("ai generation failed")

// ErrMalformedOutput means the backend answered but the payload could not be
// interpreted as the required structure. It matches ErrGenerationFailed under
// errors.Is.
var ErrMalformedOutput = fmt.Errorf("%w: response is not valid JSON", ErrGenerationFailed)

type PostInput struct {
	MediaType   string // IMAGE, VIDEO, DOCUMENT
	ContextHint string
	FileContent string
}

type PostOutput struct {
	Hook     string `json:"hook"`
	Body     string `json:"body"`
	Hashtags string `json:"hashtags"`
	AltText  string `json:"altText"`
}

type Provider interface {
	Name() string
	GeneratePost(ctx context.Context, input *PostInput) (*PostOutput, error)
}

func buildPrompt(input *PostInput) string {
	hint := input.ContextHint
	if hint == "" {
		hint = "professional update"
	}

	return fmt.Sprintf(`
You are a LinkedIn content expert.
Media type: %s
Context: %s

Write:
1) A 2-3 line hook (grab attention).
2) A body of 3-8 short paragraphs/sentences.
3) 3-5 professional hashtags.
4) An alt-text description.

Return ONLY a JSON object with keys: hook, body, hashtags, altText.
DO NOT wrap in markdown code blocks.
`, input.MediaType, hint)
}

// stripCodeFences removes markdown fence markers that models sometimes wrap
// around JSON despite instructions not to.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parsePostOutput validates a raw model response and projects it into a
// PostOutput. Missing fields default to empty strings. Hashtags may arrive as
// either a string or an array of strings.
func parsePostOutput(raw string) (*PostOutput, error) {
	clean := stripCodeFences(raw)

	var loose struct {
		Hook     string          `json:"hook"`
		Body     string          `json:"body"`
		Hashtags json.RawMessage `json:"hashtags"`
		AltText  string          `json:"altText"`
	}
	if err := json.Unmarshal([]byte(clean), &loose); err != nil {
		return nil, ErrMalformedOutput
	}

	out := &PostOutput{
		Hook:    loose.Hook,
		Body:    loose.Body,
		AltText: loose.AltText,
	}

	if len(loose.Hashtags) > 0 {
		var asString string
		if err := json.Unmarshal(loose.Hashtags, &asString); err == nil {
			out.Hashtags = asString
		} else {
			var asList []string
			if err := json.Unmarshal(loose.Hashtags, &asList); err == nil {
				out.Hashtags = strings.Join(asList, " ")
			}
		}
	}

	return out, nil
}
