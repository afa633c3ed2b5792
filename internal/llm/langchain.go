package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// Provider identifies a text-generation backend.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// Options configures the langchain-backed completer. Temperature is
// pinned to zero at call time for reproducible summaries, so it is
// deliberately not an option here.
type Options struct {
	Provider Provider
	APIKey   string
	Model    string
	BaseURL  string
}

// LangchainCompleter implements Completer over a langchaingo model.
type LangchainCompleter struct {
	llm   llms.Model
	model string
}

// NewLangchainCompleter builds the model client for the configured
// provider.
func NewLangchainCompleter(ctx context.Context, opts Options) (*LangchainCompleter, error) {
	if opts.Model == "" {
		return nil, errors.New("model name is required")
	}

	log.Debug().
		Str("provider", string(opts.Provider)).
		Str("model", opts.Model).
		Msg("Creating text-generation client")

	var model llms.Model
	var err error

	switch opts.Provider {
	case ProviderOpenAI:
		model, err = createOpenAIModel(opts)
	case ProviderGemini:
		model, err = createGeminiModel(ctx, opts)
	case ProviderOllama:
		model, err = createOllamaModel(opts)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", opts.Provider)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create model for provider %s: %w", opts.Provider, err)
	}

	return &LangchainCompleter{llm: model, model: opts.Model}, nil
}

// Complete sends one (system, user) prompt pair and returns the
// generated text. Sampling is deterministic: temperature 0 and the
// fixed configured model on every call.
func (c *LangchainCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, "Here is the CRM lead data: "+user),
	}

	resp, err := c.llm.GenerateContent(ctx, content,
		llms.WithModel(c.model),
		llms.WithTemperature(0),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}

	return resp.Choices[0].Content, nil
}

func createOpenAIModel(opts Options) (llms.Model, error) {
	o := []openai.Option{
		openai.WithModel(opts.Model),
		openai.WithToken(opts.APIKey),
	}
	if opts.BaseURL != "" {
		o = append(o, openai.WithBaseURL(opts.BaseURL))
	}
	return openai.New(o...)
}

func createGeminiModel(ctx context.Context, opts Options) (llms.Model, error) {
	return googleai.New(ctx, googleai.WithAPIKey(opts.APIKey))
}

func createOllamaModel(opts Options) (llms.Model, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return ollama.New(
		ollama.WithServerURL(baseURL),
		ollama.WithModel(opts.Model),
	)
}
