package llm

import "context"

// Provider is the narrow inference-client contract consumed by the research
// agents. The caller never learns how the response text was produced.
type Provider interface {
	// Generate takes a prompt and returns the model's text response.
	Generate(ctx context.Context, prompt string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

// WithModel overrides the configured model for one call.
func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

// WithMaxTokens caps the response length for one call.
func WithMaxTokens(n int64) Option {
	return func(o *Options) { o.MaxTokens = n }
}

type Response struct {
	Content string
	Usage   Usage
}
