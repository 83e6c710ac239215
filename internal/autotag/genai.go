package autotag

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Config configures the Gemini-backed tagger.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration

	// BaseURL and HTTPClient override the endpoint, for tests.
	BaseURL    string
	HTTPClient *http.Client
}

// GenAITagger asks a Gemini model for genres using a JSON response schema.
type GenAITagger struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

var outputSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"genres": {
			Type:        genai.TypeArray,
			Description: "An array of suggested genre tags for the review post.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"genres"},
}

// New returns a Gemini tagger, or an always-failing one when no API key is set.
func New(ctx context.Context, cfg Config, log *zap.Logger) (Tagger, error) {
	if cfg.APIKey == "" {
		log.Warn("GEMINI_API_KEY not set, genre suggestions are disabled")
		return Unavailable(), nil
	}
	return NewGenAITagger(ctx, cfg, log)
}

// NewGenAITagger creates the client. It does not contact the API.
func NewGenAITagger(ctx context.Context, cfg Config, log *zap.Logger) (*GenAITagger, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAITagger{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     log.With(zap.String("component", "autotag"), zap.String("model", cfg.Model)),
	}, nil
}

// Suggest sends one generateContent request and validates the reply.
func (t *GenAITagger) Suggest(ctx context.Context, in Input) (*Output, error) {
	prompt, err := RenderPrompt(in)
	if err != nil {
		return nil, err
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	temperature := float32(0.2)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	start := time.Now()
	result, err := t.client.Models.GenerateContent(ctx, t.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   outputSchema,
		Temperature:      &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("GenAI generate failed: %w", err)
	}

	out, err := ParseOutput(result.Text())
	if err != nil {
		return nil, err
	}

	t.log.Debug("Genres suggested",
		zap.String("title", in.Title),
		zap.Strings("genres", out.Genres),
		zap.Duration("duration", time.Since(start)),
	)

	return out, nil
}
