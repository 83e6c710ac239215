// Package autotag suggests genre tags for a review from the title and the
// streaming link, by asking a generative model for a JSON list of genres.
package autotag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"dootrec/pkg/utils"
)

// ErrUnavailable is returned when no model is configured.
var ErrUnavailable = errors.New("auto-tag unavailable: no model configured")

// Input is what the model sees about the title.
type Input struct {
	Title   string `json:"title" validate:"required"`
	OTTLink string `json:"ott_link" validate:"required"`
}

// Output is the schema the model must answer with.
type Output struct {
	Genres []string `json:"genres" validate:"required"`
}

// Tagger produces genre suggestions. Implementations make a single request
// and do not retry.
type Tagger interface {
	Suggest(ctx context.Context, in Input) (*Output, error)
}

// TaggerFunc adapts a function to the Tagger interface.
type TaggerFunc func(ctx context.Context, in Input) (*Output, error)

func (f TaggerFunc) Suggest(ctx context.Context, in Input) (*Output, error) {
	return f(ctx, in)
}

// Unavailable returns a Tagger that always fails with ErrUnavailable.
func Unavailable() Tagger {
	return TaggerFunc(func(context.Context, Input) (*Output, error) {
		return nil, ErrUnavailable
	})
}

var promptTemplate = template.Must(template.New("autotag").Parse(
	`You are an expert in categorizing movies and shows by genre.

Given the title and OTT link for a movie or show, suggest a list of genre tags that would be appropriate for a review post.

Title: {{.Title}}
OTT Link: {{.OTTLink}}

Genres:`))

// RenderPrompt fills the fixed prompt template.
func RenderPrompt(in Input) (string, error) {
	var sb strings.Builder
	if err := promptTemplate.Execute(&sb, in); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return sb.String(), nil
}

// ParseOutput decodes and validates a model reply. Code fences around the
// JSON are tolerated; blank genres are dropped.
func ParseOutput(text string) (*Output, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if text == "" {
		return nil, errors.New("empty model reply")
	}

	var out Output
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("decode model reply: %w", err)
	}

	if errs := utils.ValidateStruct(out); len(errs) > 0 {
		return nil, fmt.Errorf("model reply does not match schema: %s", utils.FormatValidationErrors(errs))
	}

	genres := make([]string, 0, len(out.Genres))
	for _, g := range out.Genres {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	out.Genres = genres

	return &out, nil
}
